// Package secrets holds the rotating set of secrets used to seal session tokens.
//
// A Registry is an ordered list of (id, secret) pairs. The entry with the
// highest id is the current secret and is the only one used to seal new
// tokens; every entry is tried when a token is opened. Deploying a new highest
// id therefore rotates the secret without logging anybody out: tokens sealed
// under the previous secret stay valid until they expire.
//
// # Usage
//
//	import "github.com/dmitrymomot/simplepass/pkg/secrets"
//
//	reg, err := secrets.FromMap(map[uint64]string{
//		1: os.Getenv("OLD_SECRET"),
//		2: os.Getenv("NEW_SECRET"),
//	})
//	if err != nil {
//		log.Fatal(err) // weak or missing secrets are a deployment error
//	}
//
//	reg.Current() // {ID: 2, ...}
//
// Every secret must be at least MinSecretLength characters long.
// Construction errors (ErrNoSecrets, ErrSecretTooShort, ErrInvalidSecretID,
// ErrDuplicateSecretID) are meant to abort startup.
//
// # Key derivation
//
// DeriveKey expands a secret and a random per-token salt into a 256-bit key
// with HKDF-SHA-256, so no two tokens share an encryption key.
package secrets
