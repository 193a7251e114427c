package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/models"
)

// apiKeyRepository is the PostgreSQL-backed implementation of
// [APIKeyRepository]. It manages service credential records in the
// "api_keys" table; queries with dynamic predicates are built with squirrel.
type apiKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAPIKeyRepository constructs an [APIKeyRepository] backed by the provided
// database connection and logger.
func NewAPIKeyRepository(db *DB, logger *logger.Logger) APIKeyRepository {
	logger.Debug().Msg("creating api key repository")
	return &apiKeyRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAPIKey persists a new key record and returns the canonical stored
// representation. The (user_id, name) uniqueness constraint is enforced by
// the database and surfaces as [ErrKeyNameAlreadyExists], so concurrent
// issuance requests with the same name cannot both succeed.
func (r *apiKeyRepository) CreateAPIKey(ctx context.Context, key models.APIKey) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAPIKeyQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.CreateAPIKey").Msg("error building insert query")
		return models.APIKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	created, err := scanAPIKey(row)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.CreateAPIKey").
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("error creating api key")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.APIKey{}, ErrKeyNameAlreadyExists
		default:
			return models.APIKey{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListKeysByOwner returns every key belonging to ownerID, newest first.
func (r *apiKeyRepository) ListKeysByOwner(ctx context.Context, ownerID string) ([]models.APIKey, error) {
	query, args, err := buildListKeysByOwnerQuery(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryKeys(ctx, query, args...)
}

// ListActiveKeys returns every active key across all owners. The result set
// is bounded by the number of live credentials; verification iterates it
// with an early return on first match.
func (r *apiKeyRepository) ListActiveKeys(ctx context.Context) ([]models.APIKey, error) {
	query, args, err := buildListActiveKeysQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryKeys(ctx, query, args...)
}

// RevokeKey soft-deletes an owner-scoped key by flipping its active flag.
//
// The UPDATE matches on (id, user_id): zero affected rows means no such key
// exists for that owner → [ErrKeyNotFound]. Re-revoking an already-revoked
// key still matches the row, so repeated calls succeed.
func (r *apiKeyRepository) RevokeKey(ctx context.Context, ownerID, keyID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRevokeKeyQuery(ownerID, keyID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.RevokeKey").
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("error revoking api key")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrKeyNotFound
	}

	return nil
}

// TouchKey sets last_used_at of the given key to the current time.
func (r *apiKeyRepository) TouchKey(ctx context.Context, keyID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchKeyQuery(keyID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.TouchKey").Msg("error updating last_used_at")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// queryKeys runs a multi-row api key SELECT and scans the full result set.
func (r *apiKeyRepository) queryKeys(ctx context.Context, query string, args ...any) ([]models.APIKey, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*apiKeyRepository.queryKeys").
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("error querying api keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.APIKey, 0)
	for rows.Next() {
		var key models.APIKey
		if err := rows.Scan(
			&key.ID,
			&key.UserID,
			&key.Name,
			&key.KeyHash,
			&key.IsActive,
			&key.ExpiresAt,
			&key.LastUsedAt,
			&key.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

// scanAPIKey maps a single api_keys row onto [models.APIKey].
func scanAPIKey(row *sql.Row) (models.APIKey, error) {
	var key models.APIKey
	err := row.Scan(
		&key.ID,
		&key.UserID,
		&key.Name,
		&key.KeyHash,
		&key.IsActive,
		&key.ExpiresAt,
		&key.LastUsedAt,
		&key.CreatedAt,
	)
	if err != nil {
		return models.APIKey{}, err
	}

	return key, nil
}
