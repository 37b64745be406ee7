package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordServiceHashAndCompare(t *testing.T) {
	ps := NewPasswordService(4) // minimum cost keeps the test fast

	hash, err := ps.HashPassword("s3nha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, "s3nha-forte", hash)

	assert.True(t, ps.ComparePassword("s3nha-forte", hash))
	assert.False(t, ps.ComparePassword("wrong", hash))
}

func TestPasswordServiceValidate(t *testing.T) {
	ps := NewPasswordService(4)

	assert.ErrorIs(t, ps.ValidatePassword(""), ErrPasswordEmpty)
	assert.ErrorIs(t, ps.ValidatePassword("abc"), ErrPasswordTooShort)
	assert.ErrorIs(t, ps.ValidatePassword(strings.Repeat("a", 73)), ErrPasswordTooLong)
	assert.NoError(t, ps.ValidatePassword("123456"))
}

func TestPasswordServiceInvalidCostFallsBack(t *testing.T) {
	ps := NewPasswordService(99)

	hash, err := ps.HashPassword("s3nha-forte")
	require.NoError(t, err)
	assert.True(t, ps.ComparePassword("s3nha-forte", hash))
}
