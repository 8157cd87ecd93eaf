package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the size of derived encryption keys (256 bits).
	KeySize = 32

	// SaltSize is the size of the random salt mixed into every derivation.
	SaltSize = 32

	// saltInfo is used for HKDF key derivation to provide domain separation
	saltInfo = "simplepass-seal-v1"
)

// DeriveKey derives a 32-byte key from a secret and a per-token salt using HKDF-SHA-256.
// The caller should clear the returned key with ClearBytes once it is no longer needed.
func DeriveKey(e Entry, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, ErrInvalidSalt
	}

	hkdfReader := hkdf.New(sha256.New, []byte(e.Value), salt, []byte(saltInfo))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdfReader, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// NewSalt returns SaltSize random bytes.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// ClearBytes zeroes b.
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
