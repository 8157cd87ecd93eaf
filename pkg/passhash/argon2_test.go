package passhash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass/pkg/passhash"
)

var testParams = passhash.Params{
	Memory:      8 * 1024,
	Time:        1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   16,
}

func TestHashVerify(t *testing.T) {
	t.Parallel()

	encoded, err := passhash.Hash("kamal", testParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=8192,t=1,p=1$"))
	require.NoError(t, passhash.Check(encoded))

	ok, err := passhash.Verify("kamal", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = passhash.Verify("Kamal", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := passhash.Hash("kamal", testParams)
	require.NoError(t, err)
	assert.NotEqual(t, encoded, other, "salt must be random")
}

func TestHash_Errors(t *testing.T) {
	t.Parallel()

	_, err := passhash.Hash("", testParams)
	require.ErrorIs(t, err, passhash.ErrEmptyPassword)

	weak := testParams
	weak.Memory = 1024
	_, err = passhash.Hash("kamal", weak)
	require.ErrorIs(t, err, passhash.ErrInvalidParams)

	require.NoError(t, passhash.DefaultParams.Validate())
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	valid, err := passhash.Hash("kamal", testParams)
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"empty", "", passhash.ErrInvalidHash},
		{"plaintext", "kamal", passhash.ErrInvalidHash},
		{"bcrypt", "$2a$10$abcdefghijklmnopqrstuv", passhash.ErrInvalidHash},
		{"argon2i", strings.Replace(valid, "argon2id", "argon2i", 1), passhash.ErrIncompatibleHash},
		{"version", strings.Replace(valid, "v=19", "v=16", 1), passhash.ErrIncompatibleHash},
		{"unknown param", strings.Replace(valid, "p=1", "x=1", 1), passhash.ErrInvalidHash},
		{"weak memory", strings.Replace(valid, "m=8192", "m=16", 1), passhash.ErrInvalidHash},
		{"bad salt", "$" + strings.Join([]string{parts[1], parts[2], parts[3], "!!", parts[5]}, "$"), passhash.ErrInvalidHash},
		{"short key", "$" + strings.Join([]string{parts[1], parts[2], parts[3], parts[4], "AAAA"}, "$"), passhash.ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, err := passhash.Verify("kamal", tt.encoded)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, ok)
			assert.ErrorIs(t, passhash.Check(tt.encoded), tt.wantErr)
		})
	}
}
