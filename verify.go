package simplepass

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/simplepass/pkg/passhash"
	"github.com/dmitrymomot/simplepass/pkg/sanitizer"
)

// VerifyContext is passed to verifiers. handler.Context satisfies it.
type VerifyContext interface {
	context.Context
	Request() *http.Request
}

// PasskeyVerifier reports whether passkey grants access.
// A non-nil error is treated as an internal failure, not as a wrong pass key.
type PasskeyVerifier func(ctx VerifyContext, passkey string) (bool, error)

// EmailPasswordVerifier reports whether the email and password grant access.
// A non-nil error is treated as an internal failure, not as wrong credentials.
type EmailPasswordVerifier func(ctx VerifyContext, email, password string) (bool, error)

// PasskeyEquals accepts exactly passkey, compared in constant time.
func PasskeyEquals(passkey string) PasskeyVerifier {
	want := []byte(passkey)
	return func(_ VerifyContext, got string) (bool, error) {
		return subtle.ConstantTimeCompare([]byte(got), want) == 1, nil
	}
}

// PasskeyHash accepts the pass key hashed into encoded, an argon2id PHC string
// produced by passhash.Hash.
func PasskeyHash(encoded string) (PasskeyVerifier, error) {
	if err := passhash.Check(encoded); err != nil {
		return nil, err
	}
	return func(_ VerifyContext, passkey string) (bool, error) {
		return passhash.Verify(passkey, encoded)
	}, nil
}

// CredentialHashes accepts any email in hashes with the password hashed into
// its value. Emails are trimmed and matched case-insensitively.
//
// Unknown emails still cost one hash computation, so response time does not
// reveal which emails exist.
func CredentialHashes(hashes map[string]string) (EmailPasswordVerifier, error) {
	if len(hashes) == 0 {
		return nil, fmt.Errorf("%w: no credentials", ErrInvalidConfig)
	}

	normalized := make(map[string]string, len(hashes))
	var decoy string
	for email, encoded := range hashes {
		key := sanitizer.NormalizeEmail(email)
		if key == "" {
			return nil, fmt.Errorf("%w: empty email", ErrInvalidConfig)
		}
		if err := passhash.Check(encoded); err != nil {
			return nil, fmt.Errorf("%w: credentials for %q: %w", ErrInvalidConfig, email, err)
		}
		normalized[key] = encoded
		decoy = encoded
	}

	return func(_ VerifyContext, email, password string) (bool, error) {
		encoded, ok := normalized[sanitizer.NormalizeEmail(email)]
		if !ok {
			_, _ = passhash.Verify(password, decoy)
			return false, nil
		}
		return passhash.Verify(password, encoded)
	}, nil
}

// LoadCredentials reads a YAML file mapping emails to argon2id PHC strings:
//
//	admin@example.com: "$argon2id$v=19$m=65536,t=3,p=2$..."
func LoadCredentials(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: credentials file: %w", ErrInvalidConfig, err)
	}

	var hashes map[string]string
	if err := yaml.Unmarshal(data, &hashes); err != nil {
		return nil, fmt.Errorf("%w: credentials file: %w", ErrInvalidConfig, err)
	}
	return hashes, nil
}

// verifyError reports a verifier failure as an internal error. The cause is
// kept as text only, so an HTTPError it wraps cannot set the response status.
func verifyError(err error) error {
	return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
}
