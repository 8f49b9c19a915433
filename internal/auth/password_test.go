package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against its password", func(t *testing.T) {
		hash, err := HashPassword("pw123456")
		assert.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "pw123456", hash)
		assert.True(t, CheckPassword("pw123456", hash))
	})

	t.Run("same password hashes differently each call", func(t *testing.T) {
		first, err := HashPassword("pw123456")
		assert.NoError(t, err)
		second, err := HashPassword("pw123456")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
		assert.True(t, CheckPassword("pw123456", first))
		assert.True(t, CheckPassword("pw123456", second))
	})

	t.Run("rejects passwords over 72 bytes", func(t *testing.T) {
		hash, err := HashPassword(strings.Repeat("a", MaxPasswordLen+1))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
		assert.Empty(t, hash)
	})

	t.Run("accepts password at the 72 byte limit", func(t *testing.T) {
		hash, err := HashPassword(strings.Repeat("a", MaxPasswordLen))
		assert.NoError(t, err)
		assert.True(t, CheckPassword(strings.Repeat("a", MaxPasswordLen), hash))
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	assert.NoError(t, err)

	t.Run("wrong password fails", func(t *testing.T) {
		assert.False(t, CheckPassword("battery-staple", hash))
	})

	t.Run("malformed hash compares as false", func(t *testing.T) {
		assert.False(t, CheckPassword("correct-horse", "not-a-bcrypt-hash"))
		assert.False(t, CheckPassword("correct-horse", ""))
	})
}
