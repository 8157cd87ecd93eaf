package simplepass_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass"
	"github.com/dmitrymomot/simplepass/handler"
	"github.com/dmitrymomot/simplepass/pkg/passhash"
)

var fastParams = passhash.Params{
	Memory:      8 * 1024,
	Time:        1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   16,
}

func hash(t *testing.T, password string) string {
	t.Helper()
	encoded, err := passhash.Hash(password, fastParams)
	require.NoError(t, err)
	return encoded
}

func verifyContext() simplepass.VerifyContext {
	return handler.NewContext(httptest.NewRecorder(), httptest.NewRequest("POST", "/simplepass", nil))
}

func TestPasskeyEquals(t *testing.T) {
	t.Parallel()

	verify := simplepass.PasskeyEquals("kamal")

	ok, err := verify(verifyContext(), "kamal")
	require.NoError(t, err)
	assert.True(t, ok)

	for _, wrong := range []string{"", "Kamal", "kamal ", "kama"} {
		ok, err := verify(verifyContext(), wrong)
		require.NoError(t, err)
		assert.False(t, ok, "passkey %q", wrong)
	}
}

func TestPasskeyHash(t *testing.T) {
	t.Parallel()

	verify, err := simplepass.PasskeyHash(hash(t, "open sesame"))
	require.NoError(t, err)

	ok, err := verify(verifyContext(), "open sesame")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = verify(verifyContext(), "open sesame!")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = simplepass.PasskeyHash("plain-text")
	require.ErrorIs(t, err, passhash.ErrInvalidHash)
}

func TestCredentialHashes(t *testing.T) {
	t.Parallel()

	verify, err := simplepass.CredentialHashes(map[string]string{
		"Admin@Example.com": hash(t, "correct horse"),
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"match", "admin@example.com", "correct horse", true},
		{"email case and spaces", "  ADMIN@example.com ", "correct horse", true},
		{"wrong password", "admin@example.com", "battery staple", false},
		{"unknown email", "guest@example.com", "correct horse", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, err := verify(verifyContext(), tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestCredentialHashes_Errors(t *testing.T) {
	t.Parallel()

	_, err := simplepass.CredentialHashes(nil)
	require.ErrorIs(t, err, simplepass.ErrInvalidConfig)

	_, err = simplepass.CredentialHashes(map[string]string{" ": hash(t, "password")})
	require.ErrorIs(t, err, simplepass.ErrInvalidConfig)

	_, err = simplepass.CredentialHashes(map[string]string{"a@example.com": "not-a-hash"})
	require.ErrorIs(t, err, simplepass.ErrInvalidConfig)
	require.ErrorIs(t, err, passhash.ErrInvalidHash)
}

func TestLoadCredentials(t *testing.T) {
	t.Parallel()

	encoded := hash(t, "correct horse")
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin@example.com: \""+encoded+"\"\n"), 0o600))

	hashes, err := simplepass.LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"admin@example.com": encoded}, hashes)

	_, err = simplepass.LoadCredentials(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, simplepass.ErrInvalidConfig)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- just\n- a list\n"), 0o600))
	_, err = simplepass.LoadCredentials(bad)
	require.ErrorIs(t, err, simplepass.ErrInvalidConfig)
}
