// Package crypto holds the credential primitives of the application: the
// one-way secret hasher used for passwords and API key material, and the
// API key generator.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecretHasher provides salted one-way hashing of secrets and verification
// of candidates against stored hashes.
//
// Implementations must delegate comparison entirely to a constant-time
// algorithm; a custom byte-by-byte comparison of secrets is forbidden.
type SecretHasher interface {
	// Hash derives a salted one-way hash of secret.
	Hash(secret string) (string, error)

	// Verify reports whether candidate matches the stored hash.
	Verify(candidate, stored string) bool
}

// KeyGenerator produces plaintext API key material.
type KeyGenerator interface {
	// Generate returns a fresh API key string. The value is returned to the
	// caller exactly once at issuance and is never recoverable afterwards.
	Generate() (string, error)
}
