package token

import "errors"

var (
	ErrInvalidTTL = errors.New("token: ttl must be positive")
	ErrSealFailed = errors.New("token: seal failed")
	// ErrUnexpected marks failures that are not a property of the token itself.
	// Callers must not treat them as "not authenticated".
	ErrUnexpected = errors.New("token: unexpected unseal failure")
)
