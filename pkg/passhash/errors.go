package passhash

import "errors"

var (
	ErrEmptyPassword      = errors.New("passhash.empty_password")
	ErrInvalidParams      = errors.New("passhash.invalid_params")
	ErrInvalidHash        = errors.New("passhash.invalid_hash")
	ErrIncompatibleHash   = errors.New("passhash.incompatible_hash")
	ErrRandomSourceFailed = errors.New("passhash.random_source_failed")
)
