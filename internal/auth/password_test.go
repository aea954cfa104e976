package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("abc123")
	require.NoError(t, err)

	assert.NotEqual(t, "abc123", hash)
	assert.True(t, VerifyPassword("abc123", hash))
	assert.False(t, VerifyPassword("abc124", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("abc123")
	require.NoError(t, err)

	second, err := HashPassword("abc123")
	require.NoError(t, err)

	// same input, different salt, different hash
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("abc123", first))
	assert.True(t, VerifyPassword("abc123", second))
}
