// Package passhash hashes and verifies secrets with argon2id, encoded as
// PHC strings. It lets the pass key or user passwords be configured as
// hashes instead of plaintext.
package passhash
