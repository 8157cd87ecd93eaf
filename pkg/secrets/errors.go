package secrets

import "errors"

var (
	// Registry construction errors. All of them are fatal configuration errors.
	ErrNoSecrets         = errors.New("secrets: at least one secret is required")
	ErrSecretTooShort    = errors.New("secrets: secret is too short")
	ErrInvalidSecretID   = errors.New("secrets: secret id must be a positive integer")
	ErrDuplicateSecretID = errors.New("secrets: duplicate secret id")

	// Key derivation errors
	ErrKeyDerivationFailed = errors.New("secrets: key derivation failed")
	ErrInvalidSalt         = errors.New("secrets: invalid salt")
)
