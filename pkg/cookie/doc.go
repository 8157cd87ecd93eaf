// Package cookie is the cookie transport used by simplepass.
//
// It reads a named cookie from a request and appends or expires cookies on a
// response without disturbing Set-Cookie headers written by other parts of the
// host application.
//
// # Usage
//
//	import "github.com/dmitrymomot/simplepass/pkg/cookie"
//
//	t := cookie.NewTransport()
//	opts := cookie.BuildOptions(cookie.Options{Secure: true}, 3600)
//
//	t.Write(w, "session", value, opts)
//	v, ok := t.Read(r, "session")
//	t.Clear(w, "session", opts) // same attributes, or browsers keep the cookie
//
// # Session cookie attributes
//
// BuildOptions always sets HttpOnly and sets MaxAge to the given ttl. Path
// defaults to "/" and SameSite to Lax unless the base options set them. Secure
// is copied verbatim: there is no safe default for it.
//
// # Configuration
//
// Config loads base attributes from the environment via
// github.com/caarlos0/env. COOKIE_SECURE is required.
//
// # One-shot cookies
//
// Pop reads a cookie and clears it in the same response, which is how
// "you have been logged out" notices survive exactly one redirect.
package cookie
