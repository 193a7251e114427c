package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/tulbadex/authgate/models"
)

const (
	createUser = `INSERT INTO users (id, email, password, name)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password, name, is_active, refresh_token, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password, name, is_active, refresh_token, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password, name, is_active, refresh_token, created_at, updated_at
    FROM users
    WHERE id = $1;`

	updateRefreshToken = `UPDATE users
    SET refresh_token = $2, updated_at = NOW()
    WHERE id = $1;`
)

// psql is the squirrel statement builder configured for PostgreSQL
// placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// apiKeyColumns is the canonical column list scanned into [models.APIKey].
var apiKeyColumns = []string{
	"id",
	"user_id",
	"name",
	"key_hash",
	"is_active",
	"expires_at",
	"last_used_at",
	"created_at",
}

// buildInsertAPIKeyQuery builds the INSERT for a new api key record.
// The RETURNING clause hands back the canonical database representation.
func buildInsertAPIKeyQuery(key models.APIKey) (string, []any, error) {
	return psql.
		Insert(key.TableName()).
		Columns("id", "user_id", "name", "key_hash", "is_active", "expires_at").
		Values(key.ID, key.UserID, key.Name, key.KeyHash, key.IsActive, key.ExpiresAt).
		Suffix("RETURNING " + strings.Join(apiKeyColumns, ", ")).
		ToSql()
}

// buildListKeysByOwnerQuery builds the SELECT of all keys of one owner,
// newest first.
func buildListKeysByOwnerQuery(ownerID string) (string, []any, error) {
	return psql.
		Select(apiKeyColumns...).
		From(models.APIKey{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
}

// buildListActiveKeysQuery builds the SELECT of every active key across all
// owners, used by the verification scan.
func buildListActiveKeysQuery() (string, []any, error) {
	return psql.
		Select(apiKeyColumns...).
		From(models.APIKey{}.TableName()).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

// buildRevokeKeyQuery builds the owner-scoped soft delete.
func buildRevokeKeyQuery(ownerID, keyID string) (string, []any, error) {
	return psql.
		Update(models.APIKey{}.TableName()).
		Set("is_active", false).
		Where(sq.Eq{"id": keyID, "user_id": ownerID}).
		ToSql()
}

// buildTouchKeyQuery builds the last_used_at write-back performed after a
// successful verification.
func buildTouchKeyQuery(keyID string) (string, []any, error) {
	return psql.
		Update(models.APIKey{}.TableName()).
		Set("last_used_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": keyID}).
		ToSql()
}
