package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// keyPrefix is the non-secret marker every generated API key starts with.
const keyPrefix = "sk_"

// keyRandomBytes is the number of random bytes in the key suffix (256 bits).
const keyRandomBytes = 32

// APIKeyGenerator implements [KeyGenerator]. Keys have the form
// "sk_" + hex(32 random bytes).
type APIKeyGenerator struct{}

// NewAPIKeyGenerator constructs an [APIKeyGenerator] ready for use.
func NewAPIKeyGenerator() *APIKeyGenerator {
	return &APIKeyGenerator{}
}

// Generate returns a fresh plaintext API key built from crypto/rand material.
func (g *APIKeyGenerator) Generate() (string, error) {
	suffix, err := RandomHex(keyRandomBytes)
	if err != nil {
		return "", fmt.Errorf("error generating api key material: %w", err)
	}

	return keyPrefix + suffix, nil
}

// RandomHex returns n random bytes from crypto/rand, hex-encoded.
// Used for API key material and session-refresh artifacts.
func RandomHex(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
