package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// Options are the attributes written with a cookie.
type Options struct {
	Path     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
	SameSite http.SameSite
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) {
		o.Path = path
	}
}

func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

func WithMaxAge(seconds int) Option {
	return func(o *Options) {
		o.MaxAge = seconds
	}
}

func WithSecure(secure bool) Option {
	return func(o *Options) {
		o.Secure = secure
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *Options) {
		o.HttpOnly = httpOnly
	}
}

func WithSameSite(sameSite http.SameSite) Option {
	return func(o *Options) {
		o.SameSite = sameSite
	}
}

// Apply returns a copy of base with opts applied. base is not modified.
func Apply(base Options, opts ...Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}

// BuildOptions returns the attributes for a session cookie that lives ttl seconds.
//
// HttpOnly is always true and MaxAge is always ttl, whatever base says.
// Path defaults to "/" and SameSite to Lax unless base sets them.
// Secure is taken from base as is.
func BuildOptions(base Options, ttl int) Options {
	result := base
	if result.Path == "" {
		result.Path = "/"
	}
	if result.SameSite == 0 {
		result.SameSite = http.SameSiteLaxMode
	}
	result.HttpOnly = true
	result.MaxAge = ttl
	return result
}

// Validate reports attribute combinations browsers reject.
func (o Options) Validate() error {
	if o.SameSite == http.SameSiteNoneMode && !o.Secure {
		return ErrSameSiteNone
	}
	return nil
}

// ParseSameSite converts "lax", "strict", "none" or "default" to http.SameSite.
// An empty string returns 0, meaning "not set".
func ParseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	case "default":
		return http.SameSiteDefaultMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}
