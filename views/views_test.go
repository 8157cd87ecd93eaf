package views_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass/handler"
	"github.com/dmitrymomot/simplepass/views"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestLogin_Passkey(t *testing.T) {
	t.Parallel()

	html := render(t, views.Login(views.LoginPage{
		Labels: views.DefaultLabels(false),
		Action: "/simplepass?redirect=%2Fpassed",
		Error:  "Incorrect passkey.",
	}))

	assert.Contains(t, html, `<title>Authentication</title>`)
	assert.Contains(t, html, `action="/simplepass?redirect=%2Fpassed"`)
	assert.Contains(t, html, `name="passkey"`)
	assert.Contains(t, html, `placeholder="Pass key"`)
	assert.Contains(t, html, "Enter the pass key to continue")
	assert.Contains(t, html, "Incorrect passkey.")
	assert.NotContains(t, html, `name="email"`)
	assert.NotContains(t, html, "You have been logged out.")
	assert.Contains(t, html, `id="simplepass"`)
}

func TestLogin_EmailPassword(t *testing.T) {
	t.Parallel()

	html := render(t, views.Login(views.LoginPage{
		Labels:        views.DefaultLabels(true),
		Action:        "/simplepass",
		EmailPassword: true,
		Email:         `a"b@example.com`,
		LoggedOut:     true,
	}))

	assert.Contains(t, html, "Enter your credentials to continue")
	assert.Contains(t, html, `name="email"`)
	assert.Contains(t, html, `name="password"`)
	assert.Contains(t, html, `value="a&#34;b@example.com"`)
	assert.Contains(t, html, "You have been logged out.")
	assert.NotContains(t, html, `name="passkey"`)
}

func TestLogin_Authenticated(t *testing.T) {
	t.Parallel()

	html := render(t, views.Login(views.LoginPage{
		Labels:        views.DefaultLabels(false),
		Action:        "/simplepass",
		LogoutAction:  "/simplepass/_logout",
		Authenticated: true,
	}))

	assert.Contains(t, html, `action="/simplepass/_logout"`)
	assert.Contains(t, html, "Log out")
	assert.NotContains(t, html, `name="passkey"`)
}

func TestLogin_EscapesText(t *testing.T) {
	t.Parallel()

	labels := views.DefaultLabels(false)
	labels.Title = "<script>alert(1)</script>"
	html := render(t, views.Login(views.LoginPage{Labels: labels, Error: "<b>x</b>"}))

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<b>x</b>")
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
}

func TestLogin_Theme(t *testing.T) {
	t.Parallel()

	html := render(t, views.Login(views.LoginPage{
		Labels: views.DefaultLabels(false),
		Theme: views.Theme{
			Title:      "Staging",
			CSS:        "main{border:1px solid red}</style><script>",
			FontURL:    "https://fonts.example.com/css?family=Inter",
			FontFamily: `Inter"};`,
		},
	}))

	assert.Contains(t, html, "<title>Staging</title>")
	assert.Contains(t, html, "main{border:1px solid red}")
	assert.NotContains(t, html, "</style><script>")
	assert.Contains(t, html, `href="https://fonts.example.com/css?family=Inter"`)
	assert.Contains(t, html, `body{font-family:"Inter",sans-serif}`)
}

func TestLogin_UnsafeFontURL(t *testing.T) {
	t.Parallel()

	html := render(t, views.Login(views.LoginPage{
		Labels: views.DefaultLabels(false),
		Theme:  views.Theme{FontURL: "javascript:alert(1)"},
	}))
	assert.NotContains(t, html, "javascript:")
}

func TestLogin_WriteError(t *testing.T) {
	t.Parallel()

	err := views.Login(views.LoginPage{Labels: views.DefaultLabels(false)}).Render(context.Background(), failingWriter{})
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestErrorPage(t *testing.T) {
	t.Parallel()

	page := views.ErrorPage(views.Theme{Title: "Staging", CSS: "main{color:red}"}, views.DefaultLabels(false))
	html := render(t, page(handler.ErrorPageParams{Error: "Not authorized.", StatusCode: 401, RequestID: "req-1"}))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Staging</title>")
	assert.Contains(t, html, "main{color:red}")
	assert.Contains(t, html, `<main id="simplepass">`)
	assert.Contains(t, html, "Not authorized.")
	assert.Contains(t, html, `<small>req-1</small>`)

	html = render(t, page(handler.ErrorPageParams{Error: "Not authorized.", StatusCode: 401}))
	assert.NotContains(t, html, "request-id")
}

func TestLabels(t *testing.T) {
	t.Parallel()

	t.Run("merge keeps overrides", func(t *testing.T) {
		t.Parallel()
		l := views.Labels{Submit: "Enter"}.Merge(views.DefaultLabels(false))
		assert.Equal(t, "Enter", l.Submit)
		assert.Equal(t, "Pass key", l.PasskeyPlaceholder)
	})

	t.Run("message keys", func(t *testing.T) {
		t.Parallel()
		l := views.DefaultLabels(false)
		assert.Equal(t, "Passkey is required.", l.Message("passkey_required"))
		assert.Equal(t, "Incorrect passkey.", l.Message("incorrect_passkey"))
		assert.Equal(t, "Email and password are required.", l.Message("credentials_required"))
		assert.Equal(t, "Invalid credentials.", l.Message("invalid_credentials"))
		assert.Equal(t, "You are already authenticated.", l.Message("already_authenticated"))
		assert.Equal(t, "Not authorized.", l.Message("unauthorized"))
		assert.NotEmpty(t, l.Message("internal_server_error"))
		assert.Empty(t, l.Message("nope"))
	})

	t.Run("parse yaml", func(t *testing.T) {
		t.Parallel()
		l, err := views.ParseLabels([]byte("title: Staging\nsubmit: Enter\n"))
		require.NoError(t, err)
		assert.Equal(t, "Staging", l.Title)
		assert.Equal(t, "Enter", l.Submit)
		assert.Empty(t, l.Logout)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := views.ParseLabels([]byte("titel: Staging\n"))
		require.ErrorIs(t, err, views.ErrLabelsFile)
	})

	t.Run("load file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "labels.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logout: Sign out\n"), 0o600))

		l, err := views.LoadLabels(path)
		require.NoError(t, err)
		assert.Equal(t, "Sign out", l.Logout)

		_, err = views.LoadLabels(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, views.ErrLabelsFile)
	})
}

func TestLoadCSS(t *testing.T) {
	t.Parallel()

	css, err := views.LoadCSS("main{color:red}")
	require.NoError(t, err)
	assert.Equal(t, "main{color:red}", css)

	path := filepath.Join(t.TempDir(), "theme.css")
	require.NoError(t, os.WriteFile(path, []byte("h1{color:blue}"), 0o600))
	css, err = views.LoadCSS(path)
	require.NoError(t, err)
	assert.Equal(t, "h1{color:blue}", css)

	_, err = views.LoadCSS(filepath.Join(t.TempDir(), "missing.css"))
	require.ErrorIs(t, err, views.ErrThemeFile)
}
