package store

import (
	"context"

	"github.com/tulbadex/authgate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the canonical stored record.
	// Returns [ErrEmailAlreadyExists] on an email uniqueness violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by exact contact address.
	// Returns [ErrNoUserWasFound] when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by identifier.
	// Returns [ErrNoUserWasFound] when no record matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateRefreshToken unconditionally sets (or clears, when nil) the
	// session-refresh artifact of the given user.
	UpdateRefreshToken(ctx context.Context, userID string, token *string) error
}

// APIKeyRepository is the data-access contract for service credentials.
type APIKeyRepository interface {
	// CreateAPIKey persists a new key record and returns the canonical stored
	// record. Returns [ErrKeyNameAlreadyExists] on an (owner, name)
	// uniqueness violation — the database constraint is the source of truth,
	// so concurrent issuance with the same name cannot race past it.
	CreateAPIKey(ctx context.Context, key models.APIKey) (models.APIKey, error)

	// ListKeysByOwner returns every key of the given owner, newest first.
	ListKeysByOwner(ctx context.Context, ownerID string) ([]models.APIKey, error)

	// ListActiveKeys returns every currently active key across all owners.
	// Used by verification, which must compare the candidate against each
	// stored hash.
	ListActiveKeys(ctx context.Context) ([]models.APIKey, error)

	// RevokeKey flips the active flag of an owner-scoped key to false.
	// Returns [ErrKeyNotFound] when no matching record exists; revoking an
	// already-revoked key succeeds.
	RevokeKey(ctx context.Context, ownerID, keyID string) error

	// TouchKey records a successful verification by setting last_used_at.
	TouchKey(ctx context.Context, keyID string) error
}
