package models

import "time"

// SignupRequest is the payload of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAPIKeyRequest is the payload of POST /keys/create.
type CreateAPIKeyRequest struct {
	Name string `json:"name"`

	// ExpiresAt is the optional absolute expiry of the new key (RFC 3339).
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
