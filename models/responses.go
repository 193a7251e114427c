package models

import "time"

// SignupResponse is the body returned by POST /auth/signup.
// It carries the public attributes of the newly created account and
// deliberately nothing credential-related.
type SignupResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse is the body returned by POST /auth/login on success.
type LoginResponse struct {
	// AccessToken is the signed session token in compact JWS form.
	AccessToken string `json:"accessToken"`
}

// IssuedKey is the one-time issuance result of a new API key.
//
// Key holds the plaintext secret. It exists only in this response: the server
// stores a one-way hash and cannot reproduce the plaintext afterwards.
type IssuedKey struct {
	ID        string     `json:"id"`
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	ExpiresAt *time.Time `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

// APIKeyInfo is a single element of the key listing. It exposes lifecycle
// metadata only — never the secret or its hash.
type APIKeyInfo struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"isActive"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	LastUsedAt *time.Time `json:"lastUsedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// MessageResponse is a generic confirmation body ({"message": "..."}).
type MessageResponse struct {
	Message string `json:"message"`
}

// ProtectedResponse is the body returned by the demo protected routes.
type ProtectedResponse struct {
	Message    string    `json:"message"`
	User       Principal `json:"user"`
	AccessType string    `json:"accessType"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
