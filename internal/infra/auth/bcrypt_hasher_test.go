package auth

import (
	"testing"

	"gramsaarthi/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	second, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	// Fresh random salt per call, so identical passwords never collide.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("samepassword", first))
	assert.True(t, hasher.Check("samepassword", second))
}

func TestBcryptHasher_MalformedHashReturnsFalse(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("password", ""))
	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("password", "$2a$garbage"))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	// Out-of-range or missing cost falls back to the bcrypt default.
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}).(*bcryptHasher)
	assert.Equal(t, 12, hasher.cost)
}
