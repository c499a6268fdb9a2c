package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("mật-khẩu-bí-mật")
	require.NoError(t, err)
	require.NotEqual(t, "mật-khẩu-bí-mật", hash)

	assert.True(t, CheckPasswordHash("mật-khẩu-bí-mật", hash))
	assert.False(t, CheckPasswordHash("sai-mật-khẩu", hash))
}

func TestCheckPasswordHash_NotAHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}
