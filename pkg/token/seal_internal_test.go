package token

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplepass/pkg/secrets"
)

func TestUnseal_PayloadShape(t *testing.T) {
	t.Parallel()

	reg, err := secrets.FromString("a-very-long-secure-secret-for-testing-purposes")
	require.NoError(t, err)
	now := time.Now()

	tests := []struct {
		name string
		data string
	}{
		{"foreign object", `{"not":"a token"}`},
		{"wrong version", `{"v":2,"passed":true,"iat":` + itoa(now.Unix()) + `}`},
		{"not passed", `{"v":1,"passed":false,"iat":` + itoa(now.Unix()) + `}`},
		{"iat mismatch", `{"v":1,"passed":true,"iat":12345}`},
		{"not json", `passed`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tok, err := sealData(reg.Current(), []byte(tt.data), now.UnixMilli(), now.Add(time.Hour).UnixMilli())
			require.NoError(t, err)

			res, err := Unseal(tok, reg, time.Hour, now)
			require.NoError(t, err)
			assert.Equal(t, Invalid, res.Status)
		})
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
