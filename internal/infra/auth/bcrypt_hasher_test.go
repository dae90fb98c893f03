package auth

import (
	"testing"

	"kda/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("811899")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "811899", hash)

	assert.NoError(t, hasher.Compare(hash, "811899"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Nil auth config falls back to the bcrypt default cost.
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "password"))
}
