package auth

import (
	"strings"
	"testing"

	"rental/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("correct horse battery staple", "not-a-hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	a, err := hasher.Hash("same")
	require.NoError(t, err)
	b, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_CostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(newTestHasherConfig(1)).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasher(newTestHasherConfig(99)).(*bcryptHasher).cost)
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}
