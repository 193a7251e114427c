package models

import "time"

// APIKey represents a long-lived service credential issued on behalf of a user.
// The plaintext key material is returned to the caller exactly once at
// issuance time; only a bcrypt hash of it is ever persisted.
type APIKey struct {
	// ID is the unique identifier of the key (UUID).
	ID string `json:"id"`

	// UserID is the identifier of the owning user.
	UserID string `json:"user_id"`

	// Name is the human-readable key label, unique per owning user.
	Name string `json:"name"`

	// KeyHash is the bcrypt hash of the plaintext key material.
	// Never exposed via JSON.
	KeyHash string `json:"-"`

	// IsActive reports whether the key is usable. Revocation flips this flag;
	// the record itself is never deleted.
	IsActive bool `json:"is_active"`

	// ExpiresAt is the optional absolute expiry of the key. A nil value means
	// the key never expires.
	ExpiresAt *time.Time `json:"expires_at"`

	// LastUsedAt is set as a side effect of every successful verification.
	LastUsedAt *time.Time `json:"last_used_at"`

	// CreatedAt is the timestamp when the key was issued.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the APIKey model.
func (k APIKey) TableName() string {
	return "api_keys"
}

// Expired reports whether the key has an absolute expiry in the past
// relative to now.
func (k APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && now.After(*k.ExpiresAt)
}
