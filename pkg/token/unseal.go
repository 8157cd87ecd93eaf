package token

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/dmitrymomot/simplepass/pkg/secrets"
)

// Unseal opens a token against every secret in the registry, in registry order.
// The first secret that authenticates the token wins.
//
// A token is Expired when now is past the expiry sealed into it, or when it is
// older than ttl. ttl is the currently configured lifetime, so shortening it
// takes effect for tokens already issued.
//
// Problems with the token itself are reported through Result.Status and never
// as an error. A non-nil error wraps ErrUnexpected (or is ErrInvalidTTL) and
// means verification could not be performed.
func Unseal(token string, reg *secrets.Registry, ttl time.Duration, now time.Time) (Result, error) {
	if ttl <= 0 {
		return Result{}, ErrInvalidTTL
	}

	parsed, ok := parse(token)
	if !ok {
		return Result{Status: Malformed}, nil
	}

	plaintext, opened, err := parsed.open(reg)
	if err != nil {
		return Result{}, err
	}
	if !opened {
		return Result{Status: Invalid}, nil
	}

	issuedAt := time.UnixMilli(parsed.issuedAt)
	if issuedAt.After(now.Add(ClockSkew)) {
		return Result{Status: Invalid}, nil
	}
	if !now.Before(time.UnixMilli(parsed.expiresAt)) || now.Sub(issuedAt) > ttl {
		return Result{Status: Expired}, nil
	}

	var p Payload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return Result{Status: Invalid}, nil
	}
	if !p.valid() || p.IssuedAt != parsed.issuedAt/1000 {
		return Result{Status: Invalid}, nil
	}

	return Result{Status: Valid, payload: p}, nil
}

type sealed struct {
	header     string
	issuedAt   int64
	expiresAt  int64
	salt       []byte
	nonce      []byte
	ciphertext []byte
}

func parse(token string) (sealed, bool) {
	if token == "" || len(token) > MaxTokenSize {
		return sealed{}, false
	}

	parts := strings.Split(token, sep)
	if len(parts) != 6 || parts[0] != prefix {
		return sealed{}, false
	}

	var (
		s   sealed
		err error
	)
	if s.issuedAt, err = strconv.ParseInt(parts[1], 10, 64); err != nil || s.issuedAt <= 0 {
		return sealed{}, false
	}
	if s.expiresAt, err = strconv.ParseInt(parts[2], 10, 64); err != nil || s.expiresAt <= s.issuedAt {
		return sealed{}, false
	}
	if s.salt, err = b64.DecodeString(parts[3]); err != nil || len(s.salt) != secrets.SaltSize {
		return sealed{}, false
	}
	if s.nonce, err = b64.DecodeString(parts[4]); err != nil || len(s.nonce) != chacha20poly1305.NonceSizeX {
		return sealed{}, false
	}
	if s.ciphertext, err = b64.DecodeString(parts[5]); err != nil || len(s.ciphertext) < chacha20poly1305.Overhead {
		return sealed{}, false
	}

	s.header = strings.Join(parts[:3], sep)
	return s, true
}

// open tries every secret. An AEAD open failure is the expected outcome for a
// wrong secret or a tampered token; anything else is unexpected.
func (s sealed) open(reg *secrets.Registry) ([]byte, bool, error) {
	for _, secret := range reg.All() {
		key, err := secrets.DeriveKey(secret, s.salt)
		if err != nil {
			return nil, false, errors.Join(ErrUnexpected, err)
		}

		aead, err := chacha20poly1305.NewX(key)
		secrets.ClearBytes(key)
		if err != nil {
			return nil, false, errors.Join(ErrUnexpected, err)
		}

		plaintext, err := aead.Open(nil, s.nonce, s.ciphertext, []byte(s.header))
		if err == nil {
			return plaintext, true, nil
		}
	}
	return nil, false, nil
}
