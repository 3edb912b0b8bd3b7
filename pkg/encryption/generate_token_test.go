package encryption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTemporaryTokenLength(t *testing.T) {
	for _, length := range []int{1, 7, 32, 64} {
		token, err := GenerateTemporaryToken(length)
		require.NoError(t, err)
		assert.Len(t, token, length)
	}
}

func TestGenerateTemporaryTokenIsHex(t *testing.T) {
	token, err := GenerateTemporaryToken(64)
	require.NoError(t, err)
	for _, r := range token {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestGenerateTemporaryTokenIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateTemporaryToken(64)
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
