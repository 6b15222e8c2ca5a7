package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oliviahealth/Careplan/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("same input")
	require.NoError(t, err)
	second, err := hasher.Hash("same input")
	require.NoError(t, err)

	// bcrypt salts each hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same input", first))
	assert.True(t, hasher.Check("same input", second))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{
			name: "nil config uses default cost",
			cfg:  nil,
			want: bcrypt.DefaultCost,
		},
		{
			name: "nil auth section uses default cost",
			cfg:  &config.Config{},
			want: bcrypt.DefaultCost,
		},
		{
			name: "out of range cost uses default cost",
			cfg:  &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}},
			want: bcrypt.DefaultCost,
		},
		{
			name: "valid cost is honored",
			cfg:  &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}},
			want: bcrypt.MinCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(nil)

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}
