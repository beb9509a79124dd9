package encrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashVerifyPassword(t *testing.T) {
	hash := HashPassword("s3cret!")
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, VerifyPassword(hash, "s3cret!"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not-a-hash", "s3cret!"))
}

func TestHashPassword_Salted(t *testing.T) {
	// 同一密码两次哈希结果不同
	assert.NotEqual(t, HashPassword("s3cret!"), HashPassword("s3cret!"))
}
