package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID).
	ID string `json:"id"`

	// Email is the unique contact address of the user.
	// Used as the login identifier during authentication. Matching is exact;
	// no case normalization is applied.
	Email string `json:"email"`

	// Password stores the user's password representation.
	// This value MUST be a bcrypt hash, never plaintext.
	Password string `json:"-"`

	// Name is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// IsActive reports whether the account is enabled. A deactivated account
	// fails every authentication path, including its previously issued API keys.
	IsActive bool `json:"is_active"`

	// RefreshToken is the opaque session-refresh artifact. Set on login,
	// cleared (nil) on logout. Never exposed via JSON.
	RefreshToken *string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
