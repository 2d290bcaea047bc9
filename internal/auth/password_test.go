package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(10)

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, hasher.Verify("pw123", hash))
	assert.False(t, hasher.Verify("wrong", hash))
}

func TestPasswordHasher_SaltRandomization(t *testing.T) {
	hasher := NewPasswordHasher(10)

	first, err := hasher.Hash("pw123")
	assert.NoError(t, err)
	second, err := hasher.Hash("pw123")
	assert.NoError(t, err)

	// Each hash embeds a fresh salt, but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("pw123", first))
	assert.True(t, hasher.Verify("pw123", second))
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(10)

	// A malformed stored hash must fail closed.
	assert.False(t, hasher.Verify("pw123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("pw123", ""))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	hasher := NewPasswordHasher(-1)

	hash, err := hasher.Hash("pw123")
	assert.NoError(t, err)
	assert.True(t, hasher.Verify("pw123", hash))
}
