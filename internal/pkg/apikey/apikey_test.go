//go:build unit

package apikey_test

import (
	"testing"

	"hydro-command/internal/pkg/apikey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	key, err := apikey.Generate()
	require.NoError(t, err)

	prefix, err := apikey.Prefix(key.Plaintext)
	require.NoError(t, err)
	assert.Equal(t, key.Prefix, prefix)
	assert.NotContains(t, key.Hash, key.Plaintext)

	assert.NoError(t, apikey.Compare(key.Hash, key.Plaintext))
	assert.ErrorIs(t, apikey.Compare(key.Hash, key.Plaintext+"x"), apikey.ErrComparisonFailed)
}

func TestPrefix(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "valid key", key: "hk_0a1b2c3d_secret", want: "0a1b2c3d"},
		{name: "wrong scheme", key: "xx_0a1b2c3d_secret", wantErr: true},
		{name: "short prefix", key: "hk_0a1b_secret", wantErr: true},
		{name: "missing secret", key: "hk_0a1b2c3d_", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := apikey.Prefix(tc.key)
			if tc.wantErr {
				assert.ErrorIs(t, err, apikey.ErrMalformedKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
