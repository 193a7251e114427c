package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements [SecretHasher] using bcrypt. Salting is handled by
// the algorithm itself (the salt is embedded in the output), and comparison
// happens inside bcrypt's constant-time CompareHashAndPassword.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher] with the given work factor.
// Costs outside bcrypt's supported range fall back to cost 10, which keeps
// interactive login latency acceptable.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 10
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash of secret.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether candidate matches the stored bcrypt hash.
// A malformed stored value simply fails verification.
func (h *BcryptHasher) Verify(candidate, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
