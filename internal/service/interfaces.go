package service

import (
	"context"

	"github.com/tulbadex/authgate/models"
)

// AuthService covers the password-session side of authentication:
// account registration, credential verification, JWT issuance and parsing.
type AuthService interface {
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	Logout(ctx context.Context, userID string) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// APIKeyService covers the service-credential side: key issuance,
// listing, revocation, and verification of presented plaintext keys.
type APIKeyService interface {
	Issue(ctx context.Context, ownerID string, request models.CreateAPIKeyRequest) (models.IssuedKey, error)
	List(ctx context.Context, ownerID string) ([]models.APIKeyInfo, error)
	Revoke(ctx context.Context, ownerID string, keyID string) error
	Verify(ctx context.Context, candidate string) (models.Principal, error)
}
