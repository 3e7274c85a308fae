package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, p := range []string{"test6", "", "pässwörd with spaces"} {
		hashed, err := h.Hash(p)
		require.NoError(t, err)
		assert.NotEqual(t, p, hashed)

		ok, err := h.Verify(p, hashed)
		require.NoError(t, err)
		assert.True(t, ok, "password %q should verify", p)
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("correct")
	require.NoError(t, err)

	ok, err := h.Verify("wrong", hashed)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Verify("anything", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_WorkFactor(t *testing.T) {
	hashed, err := NewBcryptHasher(DefaultPasswordCost).Hash("test6")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestBcryptHasher_KnownHash(t *testing.T) {
	// digest produced by another bcrypt implementation at cost 10
	const hashed = "$2b$10$0131nbW1J4EdbNjxPriCfO4TIKQers2/dxGwjWQFh9kP8aCrj4ADu"
	h := NewBcryptHasher(DefaultPasswordCost)

	_, err := h.Verify("test6", hashed)
	assert.NoError(t, err)
}
