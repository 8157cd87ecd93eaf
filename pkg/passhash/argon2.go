package passhash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const algorithm = "argon2id"

const (
	minMemoryKB   uint32 = 8 * 1024
	minSaltLength uint32 = 16
	minKeyLength  uint32 = 16
)

// Params are the argon2id cost parameters.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams follow the RFC 9106 second recommended option.
var DefaultParams = Params{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Validate reports parameters too weak to be used.
func (p Params) Validate() error {
	switch {
	case p.Memory < minMemoryKB:
		return fmt.Errorf("%w: memory must be >= %d KiB", ErrInvalidParams, minMemoryKB)
	case p.Time < 1:
		return fmt.Errorf("%w: time must be >= 1", ErrInvalidParams)
	case p.Parallelism < 1:
		return fmt.Errorf("%w: parallelism must be >= 1", ErrInvalidParams)
	case p.SaltLength < minSaltLength:
		return fmt.Errorf("%w: salt length must be >= %d", ErrInvalidParams, minSaltLength)
	case p.KeyLength < minKeyLength:
		return fmt.Errorf("%w: key length must be >= %d", ErrInvalidParams, minKeyLength)
	}
	return nil
}

// Hash returns the PHC string of password:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
//
// The password bytes are used as given, without normalization.
func Hash(password string, p Params) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if err := p.Validate(); err != nil {
		return "", err
	}

	salt := make([]byte, p.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", errors.Join(ErrRandomSourceFailed, err)
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, p.KeyLength)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithm,
		argon2.Version,
		p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches the PHC string encoded.
// A malformed hash is an error, a mismatch is (false, nil).
func Verify(password, encoded string) (bool, error) {
	p, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, p.KeyLength)
	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

// Check validates the format and parameters of a PHC string without
// computing anything. Use it at startup to reject bad configuration early.
func Check(encoded string) error {
	_, _, _, err := decode(encoded)
	return err
}

func decode(encoded string) (Params, []byte, []byte, error) {
	var p Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, fmt.Errorf("%w: expected 6 segments", ErrInvalidHash)
	}
	if parts[1] != algorithm {
		return p, nil, nil, fmt.Errorf("%w: algorithm %q", ErrIncompatibleHash, parts[1])
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return p, nil, nil, fmt.Errorf("%w: missing version", ErrInvalidHash)
	}
	if v, err := strconv.Atoi(version); err != nil || v != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: version %q", ErrIncompatibleHash, version)
	}

	if err := parseParams(parts[3], &p); err != nil {
		return p, nil, nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt encoding", ErrInvalidHash)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: hash encoding", ErrInvalidHash)
	}

	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))
	if err := p.Validate(); err != nil {
		return p, nil, nil, errors.Join(ErrInvalidHash, err)
	}
	return p, salt, key, nil
}

func parseParams(s string, p *Params) error {
	pairs := strings.Split(s, ",")
	if len(pairs) != 3 {
		return fmt.Errorf("%w: parameters", ErrInvalidHash)
	}

	seen := map[string]bool{}
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || seen[k] {
			return fmt.Errorf("%w: parameter %q", ErrInvalidHash, pair)
		}
		seen[k] = true

		switch k {
		case "m":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: memory", ErrInvalidHash)
			}
			p.Memory = uint32(n)
		case "t":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: time", ErrInvalidHash)
			}
			p.Time = uint32(n)
		case "p":
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				return fmt.Errorf("%w: parallelism", ErrInvalidHash)
			}
			p.Parallelism = uint8(n)
		default:
			return fmt.Errorf("%w: unknown parameter %q", ErrInvalidHash, k)
		}
	}
	return nil
}
