package simplepass

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/simplepass/handler"
)

// Login and logout failures. Keys match the views.Labels message keys.
var (
	ErrPasskeyRequired      = handler.NewHTTPError(http.StatusUnauthorized, "passkey_required")
	ErrIncorrectPasskey     = handler.NewHTTPError(http.StatusUnauthorized, "incorrect_passkey")
	ErrCredentialsRequired  = handler.NewHTTPError(http.StatusUnauthorized, "credentials_required")
	ErrInvalidCredentials   = handler.NewHTTPError(http.StatusUnauthorized, "invalid_credentials")
	ErrAlreadyAuthenticated = handler.NewHTTPError(http.StatusUnauthorized, "already_authenticated")
	ErrUnauthorized         = handler.NewHTTPError(http.StatusUnauthorized, "unauthorized")
)

// Configuration errors returned by New.
var (
	ErrInvalidConfig    = errors.New("simplepass.invalid_config")
	ErrVerifierRequired = errors.New("simplepass.verifier_required")
	ErrInvalidPassType  = errors.New("simplepass.invalid_pass_type")
	ErrVerifyFailed     = errors.New("simplepass.verify_failed")
)
