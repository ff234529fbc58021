package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hortaliza123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "hortaliza123", hash)

	assert.True(t, VerifyPassword(hash, "hortaliza123"))
	assert.False(t, VerifyPassword(hash, "otra-clave"))
}

func TestHashRefreshRawDeterministic(t *testing.T) {
	a := HashRefreshRaw("token")
	b := HashRefreshRaw("token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex
	assert.NotEqual(t, a, HashRefreshRaw("token2"))
}

func TestNewRefreshTokenRandom(t *testing.T) {
	t1, err := NewRefreshToken(7)
	require.NoError(t, err)
	t2, err := NewRefreshToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, t1.Raw, t2.Raw)
	assert.Len(t, t1.Raw, 96)
}
