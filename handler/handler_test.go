package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass/handler"
	"github.com/dmitrymomot/simplepass/pkg/binder"
)

type loginRequest struct {
	Passkey  string   `form:"passkey"`
	Redirect []string `query:"redirect"`
}

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func postForm(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	var got loginRequest
	h := handler.Wrap(
		func(_ handler.Context, req loginRequest) handler.Response {
			got = req
			return handler.Templ(textComponent("ok"))
		},
		handler.WithBinders[handler.Context, loginRequest](binder.Query(), binder.Form()),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, postForm("/?redirect=/passed", url.Values{"passkey": {"kamal"}}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, "kamal", got.Passkey)
	assert.Equal(t, []string{"/passed"}, got.Redirect)
}

func TestWrap_SkipsNotApplicableBinder(t *testing.T) {
	t.Parallel()

	called := false
	h := handler.Wrap(
		func(_ handler.Context, req loginRequest) handler.Response {
			called = true
			assert.Empty(t, req.Passkey)
			return handler.Redirect("/")
		},
		handler.WithBinders[handler.Context, loginRequest](binder.Form()),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestWrap_BindErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		wantCode    int
	}{
		{name: "unsupported media type", contentType: "application/json", wantCode: http.StatusUnsupportedMediaType},
		{name: "malformed content type", contentType: "multipart/form-data; boundary=", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handler.Wrap(
				func(_ handler.Context, _ loginRequest) handler.Response {
					t.Fatal("handler must not run")
					return nil
				},
				handler.WithBinders[handler.Context, loginRequest](binder.Form()),
			)

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
			r.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var gotErr error
	h := handler.Wrap(
		func(_ handler.Context, _ struct{}) handler.Response { return nil },
		handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
			gotErr = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, gotErr, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestWrap_RenderError(t *testing.T) {
	t.Parallel()

	t.Run("http error keeps its code", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(_ handler.Context, _ struct{}) handler.Response {
			return handler.ResponseFunc(func(http.ResponseWriter, *http.Request) error {
				return handler.ErrForbidden
			})
		})

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "forbidden")
	})

	t.Run("other errors are hidden", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(_ handler.Context, _ struct{}) handler.Response {
			return handler.ResponseFunc(func(http.ResponseWriter, *http.Request) error {
				return errors.New("database password is hunter2")
			})
		})

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "hunter2")
	})
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(_ handler.Context, _ struct{}) handler.Response {
			order = append(order, "handler")
			return handler.Redirect("/")
		},
		handler.WithDecorators(mark("first"), mark("second")),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

type appContext struct {
	handler.Context
	tenant string
}

func TestWrap_ContextFactory(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		func(ctx appContext, _ struct{}) handler.Response {
			return handler.Templ(textComponent(ctx.tenant))
		},
		handler.WithContextFactory[appContext, struct{}](func(w http.ResponseWriter, r *http.Request) appContext {
			return appContext{Context: handler.NewContext(w, r), tenant: "acme"}
		}),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "acme", w.Body.String())
}

func TestNewContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key{}, "value"))
	w := httptest.NewRecorder()

	ctx := handler.NewContext(w, r)
	require.NotNil(t, ctx)
	assert.Same(t, r, ctx.Request())
	assert.Equal(t, w, ctx.ResponseWriter())
	assert.Equal(t, "value", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
}

func TestError(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(_ handler.Context, _ struct{}) handler.Response {
		return handler.Error(handler.ErrUnauthorized)
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
