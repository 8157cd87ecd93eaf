package cookie

import "errors"

var (
	ErrInvalidSameSite = errors.New("cookie.invalid_same_site")
	ErrSameSiteNone    = errors.New("cookie.same_site_none_requires_secure")
)
