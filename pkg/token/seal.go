package token

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/dmitrymomot/simplepass/pkg/secrets"
)

const (
	// prefix identifies the token format and its key derivation.
	prefix = "sp1"
	sep    = "."

	// MaxTokenSize bounds the work done on untrusted input.
	MaxTokenSize = 4096

	// ClockSkew is how far in the future an issued-at time may be.
	ClockSkew = time.Minute
)

// Strict decoding rejects non-canonical encodings, so every character of a token matters.
var b64 = base64.RawURLEncoding.Strict()

// Seal creates a new session token valid for ttl from now.
// The token is encrypted and authenticated under the registry's current secret,
// with a fresh salt and nonce on every call.
//
// Token format:
//
//	sp1.<issued-at ms>.<expires-at ms>.<salt>.<nonce>.<ciphertext>
//
// The first three segments are authenticated as additional data.
func Seal(reg *secrets.Registry, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	data, err := json.Marshal(Payload{
		V:        Version,
		Passed:   true,
		IssuedAt: now.Unix(),
	})
	if err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}

	return sealData(reg.Current(), data, now.UnixMilli(), now.Add(ttl).UnixMilli())
}

func sealData(secret secrets.Entry, data []byte, issuedAt, expiresAt int64) (string, error) {
	salt, err := secrets.NewSalt()
	if err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}

	key, err := secrets.DeriveKey(secret, salt)
	if err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}
	defer secrets.ClearBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrSealFailed, err)
	}

	hdr := header(issuedAt, expiresAt)
	ciphertext := aead.Seal(nil, nonce, data, []byte(hdr))

	var sb strings.Builder
	sb.Grow(len(hdr) + 3 + b64.EncodedLen(len(salt)) + b64.EncodedLen(len(nonce)) + b64.EncodedLen(len(ciphertext)))
	sb.WriteString(hdr)
	sb.WriteString(sep)
	sb.WriteString(b64.EncodeToString(salt))
	sb.WriteString(sep)
	sb.WriteString(b64.EncodeToString(nonce))
	sb.WriteString(sep)
	sb.WriteString(b64.EncodeToString(ciphertext))
	return sb.String(), nil
}

func header(issuedAt, expiresAt int64) string {
	return prefix + sep + strconv.FormatInt(issuedAt, 10) + sep + strconv.FormatInt(expiresAt, 10)
}
