package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass/pkg/binder"
)

type loginRequest struct {
	Email    string   `form:"email"`
	Password string   `form:"password"`
	Remember bool     `form:"remember"`
	Attempt  int      `form:"attempt"`
	Redirect []string `query:"redirect"`
	Page     *uint    `query:"page"`
	Ignored  string   `form:"-"`
	Untagged string
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		body := url.Values{
			"email":    {"a@example.com"},
			"password": {"secret", "second"},
			"remember": {"on"},
			"attempt":  {"3"},
			"Ignored":  {"x"},
			"Untagged": {"x"},
		}
		r := httptest.NewRequest(http.MethodPost, "/login?email=query@example.com", strings.NewReader(body.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req loginRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "a@example.com", req.Email)
		assert.Equal(t, "secret", req.Password)
		assert.True(t, req.Remember)
		assert.Equal(t, 3, req.Attempt)
		assert.Empty(t, req.Ignored)
		assert.Empty(t, req.Untagged)
	})

	t.Run("query does not leak into form fields", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/login?email=query@example.com", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req loginRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Empty(t, req.Email)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("email", "m@example.com"))
		require.NoError(t, mw.WriteField("password", "pw"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/login", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var req loginRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "m@example.com", req.Email)
		assert.Equal(t, "pw", req.Password)
	})

	t.Run("no content type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/login", nil)

		var req loginRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrNotApplicable)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		r.Header.Set("Content-Type", "application/json")

		var req loginRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("attempt=many"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var req loginRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrFailedToParseForm)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.ErrorIs(t, binder.Form()(r, loginRequest{}), binder.ErrInvalidTarget)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("single value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/login?redirect=%2Fa%3Fx%3D1%2C2&page=4", nil)

		var req loginRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, []string{"/a?x=1,2"}, req.Redirect)
		require.NotNil(t, req.Page)
		assert.Equal(t, uint(4), *req.Page)
	})

	t.Run("repeated parameter keeps every value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/login?redirect=/a&redirect=/b", nil)

		var req loginRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, []string{"/a", "/b"}, req.Redirect)
	})

	t.Run("absent parameter", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/login", nil)

		var req loginRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Nil(t, req.Redirect)
		assert.Nil(t, req.Page)
	})

	t.Run("malformed query", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/login", nil)
		r.URL.RawQuery = "redirect=%zz"

		var req loginRequest
		assert.ErrorIs(t, binder.Query()(r, &req), binder.ErrFailedToParseQuery)
	})
}
