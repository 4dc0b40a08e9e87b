package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("generates requested length", func(t *testing.T) {
		id, err := Generate(16)
		require.NoError(t, err)
		assert.Len(t, id, 16)
	})

	t.Run("uses default length for non-positive input", func(t *testing.T) {
		id, err := Generate(0)
		require.NoError(t, err)
		assert.Len(t, id, DefaultLength)
	})

	t.Run("only emits base62 characters", func(t *testing.T) {
		id, err := Generate(64)
		require.NoError(t, err)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
		}
	})

	t.Run("successive IDs differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id, err := Generate(24)
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate ID generated: %s", id)
			seen[id] = true
		}
	})
}

func TestNewQRToken(t *testing.T) {
	token, err := NewQRToken(24)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(token, "qr_"))
	assert.Len(t, token, len("qr_")+24)
	assert.True(t, HasPrefix(token, PrefixQRToken))
	assert.False(t, HasPrefix(token, PrefixPermit))
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix("ep", 12)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "ep_"))
}
