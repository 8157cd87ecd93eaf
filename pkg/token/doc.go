// Package token seals and unseals stateless session tokens.
//
// A token is the whole session: a small JSON payload encrypted and
// authenticated with XChaCha20-Poly1305. The key is derived with HKDF-SHA-256
// from the registry's current secret and a random per-token salt, and a fresh
// random nonce is used on every call, so sealing the same payload twice never
// yields the same token.
//
// Token format:
//
//	sp1.<issued-at ms>.<expires-at ms>.<salt>.<nonce>.<ciphertext>
//
// The version prefix and both timestamps are bound to the ciphertext as
// additional authenticated data.
//
// # Usage
//
//	import "github.com/dmitrymomot/simplepass/pkg/token"
//
//	tok, err := token.Seal(reg, 12*time.Hour, time.Now())
//	if err != nil {
//		return err
//	}
//
//	res, err := token.Unseal(tok, reg, 12*time.Hour, time.Now())
//	if err != nil {
//		return err // verification itself failed, not the token
//	}
//	if p, ok := res.Payload(); ok {
//		_ = p.IssuedAt
//	}
//
// # Verification outcome
//
// Unseal returns a tagged Result rather than an error for anything wrong
// with the token: Malformed, Invalid (tampered, wrong secret or wrong payload
// shape), Expired or Valid. Only failures that are not a property of the token
// are returned as errors wrapping ErrUnexpected.
//
// Every secret in the registry is tried, so tokens sealed under an older secret
// remain valid during rotation. Expiry is checked against both the expiry
// sealed into the token and the ttl passed to Unseal.
package token
