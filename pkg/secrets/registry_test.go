package secrets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass/pkg/secrets"
)

var (
	secretA = strings.Repeat("a", 32)
	secretB = strings.Repeat("b", 32) + "-new"
)

func TestFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{"too short", "tooshort", secrets.ErrSecretTooShort},
		{"empty", "", secrets.ErrSecretTooShort},
		{"exactly 32 chars", strings.Repeat("x", 32), nil},
		{"long", "a-very-long-secure-secret-for-testing-purposes", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg, err := secrets.FromString(tt.secret)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, reg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(1), reg.Current().ID)
			assert.Equal(t, tt.secret, reg.Current().Value)
		})
	}
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	t.Run("empty map", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.FromMap(map[uint64]string{})
		require.ErrorIs(t, err, secrets.ErrNoSecrets)
	})

	t.Run("one short secret", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.FromMap(map[uint64]string{1: secretA, 2: "tooshort"})
		require.ErrorIs(t, err, secrets.ErrSecretTooShort)
		assert.NotContains(t, err.Error(), "tooshort")
	})

	t.Run("zero id", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.FromMap(map[uint64]string{0: secretA})
		require.ErrorIs(t, err, secrets.ErrInvalidSecretID)
	})

	t.Run("current is highest id", func(t *testing.T) {
		t.Parallel()
		reg, err := secrets.FromMap(map[uint64]string{7: secretB, 3: secretA})
		require.NoError(t, err)
		assert.Equal(t, secrets.Entry{ID: 7, Value: secretB}, reg.Current())

		all := reg.All()
		require.Len(t, all, 2)
		assert.Equal(t, uint64(3), all[0].ID)
		assert.Equal(t, uint64(7), all[1].ID)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("no entries", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.New()
		require.ErrorIs(t, err, secrets.ErrNoSecrets)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		t.Parallel()
		_, err := secrets.New(
			secrets.Entry{ID: 1, Value: secretA},
			secrets.Entry{ID: 1, Value: secretB},
		)
		require.ErrorIs(t, err, secrets.ErrDuplicateSecretID)
	})

	t.Run("all returns a copy", func(t *testing.T) {
		t.Parallel()
		reg, err := secrets.New(secrets.Entry{ID: 1, Value: secretA})
		require.NoError(t, err)

		all := reg.All()
		all[0].Value = "changed"
		assert.Equal(t, secretA, reg.Current().Value)
		assert.Equal(t, 1, reg.Len())
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantErr   error
		wantLen   int
		currentID uint64
	}{
		{name: "empty", raw: "  ", wantErr: secrets.ErrNoSecrets},
		{name: "single secret", raw: secretA, wantLen: 1, currentID: 1},
		{name: "single secret with colon", raw: "key:" + secretA, wantLen: 1, currentID: 1},
		{name: "single entry with id", raw: "5:" + secretA, wantLen: 1, currentID: 5},
		{name: "rotation list", raw: "1:" + secretA + ", 2:" + secretB, wantLen: 2, currentID: 2},
		{name: "trailing comma", raw: "1:" + secretA + ",", wantLen: 1, currentID: 1},
		{name: "list entry without id", raw: "1:" + secretA + "," + secretB, wantErr: secrets.ErrInvalidSecretID},
		{name: "list with short secret", raw: "1:" + secretA + ",2:short", wantErr: secrets.ErrSecretTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg, err := secrets.Parse(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, reg.Len())
			assert.Equal(t, tt.currentID, reg.Current().ID)
		})
	}
}
