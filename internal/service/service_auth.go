package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tulbadex/authgate/internal/config"
	"github.com/tulbadex/authgate/internal/crypto"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/store"
	"github.com/tulbadex/authgate/internal/utils"
	"github.com/tulbadex/authgate/models"
)

// refreshArtifactBytes is the amount of random material behind the opaque
// refresh artifact stored on a user row after a successful login.
const refreshArtifactBytes = 32

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and verifies the salted password hashes stored on user rows.
	hasher crypto.SecretHasher

	// ids assigns identifiers to new user rows.
	ids *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.SecretHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// It validates that both Email and Password are non-empty, hashes the
// password, and delegates persistence to the UserRepository. Uniqueness of
// the email is enforced by the storage layer, not by a prior lookup.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:       a.ids.Generate(),
		Email:    request.Email,
		Password: passwordHash,
		Name:     request.Name,
		IsActive: true,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session token.
//
// It looks up the account by email, verifies the supplied password against the
// stored hash, and on success issues a JWT and rotates the stored refresh
// artifact. Unknown email, wrong password, and a deactivated account all
// collapse to ErrWrongPassword so that responses do not reveal which
// credential component failed.
//
// Returns the issued token or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongPassword on any credential failure.
//   - A wrapped error if the lookup, token creation, or persistence fails
//     for a reason other than a bad credential.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Token{}, ErrWrongPassword
		}
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, foundUser.Password) {
		log.Error().
			Str("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.Token{}, ErrWrongPassword
	}

	if !foundUser.IsActive {
		log.Error().
			Str("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("login attempt for deactivated user")
		return models.Token{}, ErrWrongPassword
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("token creation failed")
		return models.Token{}, err
	}

	artifact, err := crypto.RandomHex(refreshArtifactBytes)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("refresh artifact generation failed")
		return models.Token{}, fmt.Errorf("refresh artifact generation failed: %w", err)
	}

	if err := a.userRepository.UpdateRefreshToken(ctx, foundUser.ID, &artifact); err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("refresh artifact update failed")
		return models.Token{}, fmt.Errorf("refresh artifact update failed: %w", err)
	}

	return token, nil
}

// Logout clears the stored refresh artifact for the given user.
//
// Already-issued access tokens remain valid until they expire; only the
// server-side artifact is invalidated.
func (a *authService) Logout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.UpdateRefreshToken(ctx, userID, nil); err != nil {
		log.Err(err).Str("id", userID).Msg("refresh artifact reset failed")
		return fmt.Errorf("refresh artifact reset failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
