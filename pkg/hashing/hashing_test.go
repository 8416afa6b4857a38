package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheck(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
