package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cost 4 (bcrypt.MinCost) keeps the tests fast; production uses 10.
func newFastHasher() *BcryptHasher {
	return NewBcryptHasher(4)
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := newFastHasher()

	hashed, err := h.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.True(t, h.Verify("Password123!", hashed))
	assert.False(t, h.Verify("password123!", hashed))
	assert.False(t, h.Verify("", hashed))
}

func TestBcryptHasher_HashNeverStoresPlaintext(t *testing.T) {
	h := newFastHasher()

	hashed, err := h.Hash("super-secret")
	require.NoError(t, err)

	assert.NotContains(t, hashed, "super-secret")
	assert.True(t, strings.HasPrefix(hashed, "$2"), "expected bcrypt format, got %q", hashed)
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := newFastHasher()

	first, err := h.Hash("same-secret")
	require.NoError(t, err)
	second, err := h.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same-secret", first))
	assert.True(t, h.Verify("same-secret", second))
}

func TestBcryptHasher_VerifyMalformedStored(t *testing.T) {
	h := newFastHasher()
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	assert.Equal(t, 10, NewBcryptHasher(0).cost)
	assert.Equal(t, 10, NewBcryptHasher(99).cost)
	assert.Equal(t, 4, NewBcryptHasher(4).cost)
}
