package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tulbadex/authgate/internal/crypto"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/store"
	"github.com/tulbadex/authgate/internal/utils"
	"github.com/tulbadex/authgate/models"
)

// apiKeyService is the concrete implementation of APIKeyService.
//
// Plaintext key material exists only inside Issue and Verify; everything that
// reaches the storage layer is a bcrypt hash. Verification therefore cannot
// look a key up directly and instead scans the active rows comparing hashes.
type apiKeyService struct {
	// apiKeyRepository is the data-access layer for api key rows.
	apiKeyRepository store.APIKeyRepository

	// userRepository resolves key owners during verification.
	userRepository store.UserRepository

	// hasher produces and verifies the stored key hashes.
	hasher crypto.SecretHasher

	// keygen produces fresh plaintext key material at issuance.
	keygen crypto.KeyGenerator

	// ids assigns identifiers to new key rows.
	ids *utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAPIKeyService constructs a new APIKeyService wired to the given
// repositories and credential primitives.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAPIKeyService(apiKeyRepository store.APIKeyRepository, userRepository store.UserRepository, hasher crypto.SecretHasher, keygen crypto.KeyGenerator, logger *logger.Logger) APIKeyService {
	return &apiKeyService{
		apiKeyRepository: apiKeyRepository,
		userRepository:   userRepository,
		hasher:           hasher,
		keygen:           keygen,
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// Issue creates a new api key owned by ownerID.
//
// It generates fresh key material, stores only its hash, and returns the
// plaintext exactly once in the result. Name uniqueness per owner is enforced
// by the storage layer, not by a prior lookup.
//
// Returns the issued key or:
//   - ErrInvalidDataProvided if the requested name is empty.
//   - A wrapped storage error if the repository call fails (e.g. name already
//     taken — see store.ErrKeyNameAlreadyExists).
func (s *apiKeyService) Issue(ctx context.Context, ownerID string, request models.CreateAPIKeyRequest) (models.IssuedKey, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" {
		log.Error().Str("owner", ownerID).Msg("invalid api key data provided")
		return models.IssuedKey{}, ErrInvalidDataProvided
	}

	plaintext, err := s.keygen.Generate()
	if err != nil {
		log.Err(err).Str("owner", ownerID).Msg("api key generation failed")
		return models.IssuedKey{}, fmt.Errorf("api key generation failed: %w", err)
	}

	keyHash, err := s.hasher.Hash(plaintext)
	if err != nil {
		log.Err(err).Str("owner", ownerID).Msg("api key hashing failed")
		return models.IssuedKey{}, fmt.Errorf("api key hashing failed: %w", err)
	}

	key := models.APIKey{
		ID:        s.ids.Generate(),
		UserID:    ownerID,
		Name:      request.Name,
		KeyHash:   keyHash,
		IsActive:  true,
		ExpiresAt: request.ExpiresAt,
	}

	createdKey, err := s.apiKeyRepository.CreateAPIKey(ctx, key)
	if err != nil {
		log.Err(err).Str("owner", ownerID).Str("name", request.Name).Msg("api key creation ended with error")
		return models.IssuedKey{}, fmt.Errorf("api key creation ended with error: %w", err)
	}

	return models.IssuedKey{
		ID:        createdKey.ID,
		Key:       plaintext,
		Name:      createdKey.Name,
		ExpiresAt: createdKey.ExpiresAt,
		CreatedAt: createdKey.CreatedAt,
	}, nil
}

// List returns metadata for every key owned by ownerID, newest first.
// Hashes are never included.
func (s *apiKeyService) List(ctx context.Context, ownerID string) ([]models.APIKeyInfo, error) {
	log := logger.FromContext(ctx)

	keys, err := s.apiKeyRepository.ListKeysByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("owner", ownerID).Msg("api key listing ended with error")
		return nil, fmt.Errorf("api key listing ended with error: %w", err)
	}

	infos := make([]models.APIKeyInfo, 0, len(keys))
	for _, key := range keys {
		infos = append(infos, models.APIKeyInfo{
			ID:         key.ID,
			Name:       key.Name,
			IsActive:   key.IsActive,
			ExpiresAt:  key.ExpiresAt,
			LastUsedAt: key.LastUsedAt,
			CreatedAt:  key.CreatedAt,
		})
	}

	return infos, nil
}

// Revoke deactivates the key keyID if it is owned by ownerID.
//
// Revocation is idempotent at the row level; revoking an already-revoked key
// still succeeds, while a missing or foreign key yields
// store.ErrKeyNotFound wrapped in the returned error.
func (s *apiKeyService) Revoke(ctx context.Context, ownerID string, keyID string) error {
	log := logger.FromContext(ctx)

	if err := s.apiKeyRepository.RevokeKey(ctx, ownerID, keyID); err != nil {
		log.Err(err).Str("owner", ownerID).Str("key", keyID).Msg("api key revocation ended with error")
		return fmt.Errorf("api key revocation ended with error: %w", err)
	}

	return nil
}

// Verify authenticates a presented plaintext api key.
//
// It scans the active key rows comparing the candidate against each stored
// hash, stopping at the first match. The matched key must not be expired and
// its owner must exist and be active. On success the key's last-used marker is
// updated best-effort and a service principal for the owner is returned.
//
// Every rejection reason (no match, expired key, missing or deactivated owner)
// collapses to ErrInvalidAPIKey so that responses do not reveal why a key was
// refused. Storage failures during the scan or the owner lookup are wrapped
// and returned as-is so that callers can distinguish an outage from a bad
// credential.
func (s *apiKeyService) Verify(ctx context.Context, candidate string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if candidate == "" {
		return models.Principal{}, ErrInvalidAPIKey
	}

	activeKeys, err := s.apiKeyRepository.ListActiveKeys(ctx)
	if err != nil {
		log.Err(err).Msg("active api key listing ended with error")
		return models.Principal{}, fmt.Errorf("active api key listing ended with error: %w", err)
	}

	var matched *models.APIKey
	for i := range activeKeys {
		if s.hasher.Verify(candidate, activeKeys[i].KeyHash) {
			matched = &activeKeys[i]
			break
		}
	}

	if matched == nil {
		log.Error().Msg("presented api key matched no active key")
		return models.Principal{}, ErrInvalidAPIKey
	}

	if matched.Expired(time.Now()) {
		log.Error().Str("key", matched.ID).Msg("presented api key is expired")
		return models.Principal{}, ErrInvalidAPIKey
	}

	owner, err := s.userRepository.FindUserByID(ctx, matched.UserID)
	if err != nil {
		log.Err(err).Str("key", matched.ID).Str("owner", matched.UserID).Msg("api key owner lookup failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Principal{}, ErrInvalidAPIKey
		}
		return models.Principal{}, fmt.Errorf("api key owner lookup failed: %w", err)
	}

	if !owner.IsActive {
		log.Error().Str("key", matched.ID).Str("owner", owner.ID).Msg("api key owner is deactivated")
		return models.Principal{}, ErrInvalidAPIKey
	}

	if err := s.apiKeyRepository.TouchKey(ctx, matched.ID); err != nil {
		log.Warn().Err(err).Str("key", matched.ID).Msg("last-used update failed")
	}

	return models.Principal{
		UserID: owner.ID,
		Email:  owner.Email,
		Type:   models.PrincipalTypeService,
	}, nil
}
