package cookie

import (
	"net/http"
	"time"
)

// Transport reads and writes named cookies.
type Transport interface {
	// Read returns the value of the named request cookie.
	Read(r *http.Request, name string) (string, bool)
	// Write appends a Set-Cookie header. Cookies already set on w are kept.
	Write(w http.ResponseWriter, name, value string, opts Options)
	// Clear expires the named cookie. opts must carry the path, domain,
	// SameSite and Secure attributes the cookie was written with.
	Clear(w http.ResponseWriter, name string, opts Options)
}

// HTTPTransport is the net/http implementation of Transport.
// It parses the Cookie header itself, so it works regardless of how the host
// application handles cookies.
type HTTPTransport struct{}

// NewTransport returns the default transport.
func NewTransport() HTTPTransport {
	return HTTPTransport{}
}

func (HTTPTransport) Read(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (HTTPTransport) Write(w http.ResponseWriter, name, value string, opts Options) {
	// http.SetCookie adds a header value rather than replacing existing ones.
	http.SetCookie(w, newCookie(name, value, opts))
}

func (HTTPTransport) Clear(w http.ResponseWriter, name string, opts Options) {
	c := newCookie(name, "", opts)
	c.MaxAge = -1 // serialized as Max-Age=0
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// Pop reads a one-shot cookie and clears it if present.
func Pop(t Transport, w http.ResponseWriter, r *http.Request, name string, opts Options) (string, bool) {
	value, ok := t.Read(r, name)
	if !ok {
		return "", false
	}
	t.Clear(w, name, opts)
	return value, true
}

func newCookie(name, value string, opts Options) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: opts.HttpOnly,
		SameSite: opts.SameSite,
	}
}
