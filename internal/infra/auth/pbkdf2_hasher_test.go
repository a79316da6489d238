package auth

import (
	"encoding/base64"
	"testing"

	"kennel/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_GenerateSalt(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt, service.SaltLength)

	// Fresh salts must differ.
	other, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestPBKDF2Hasher_DeriveKey_Deterministic(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	first := hasher.DeriveKey("Secr3t!", salt)
	second := hasher.DeriveKey("Secr3t!", salt)

	assert.Len(t, first, 32)
	assert.Equal(t, first, second)

	// A different salt yields a different key.
	otherSalt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, first, hasher.DeriveKey("Secr3t!", otherSalt))
}

func TestPBKDF2Hasher_Verify_RoundTrip(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	encoded := base64.StdEncoding.EncodeToString(hasher.DeriveKey("Secr3t!", salt))

	assert.True(t, hasher.Verify("Secr3t!", salt, encoded))
	assert.False(t, hasher.Verify("wrong", salt, encoded))
	assert.False(t, hasher.Verify("", salt, encoded))
}

func TestPBKDF2Hasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewPBKDF2Hasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	assert.False(t, hasher.Verify("Secr3t!", salt, "not-base64!!"))
	assert.False(t, hasher.Verify("Secr3t!", salt, ""))
}
