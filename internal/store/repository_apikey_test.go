package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/models"
)

func newTestAPIKeyRepo(t *testing.T) (*apiKeyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &apiKeyRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func apiKeyRow(k models.APIKey) *sqlmock.Rows {
	return sqlmock.
		NewRows(apiKeyColumns).
		AddRow(k.ID, k.UserID, k.Name, k.KeyHash, k.IsActive, k.ExpiresAt, k.LastUsedAt, k.CreatedAt)
}

func TestCreateAPIKey_Success(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	key := models.APIKey{
		ID:        "k-1",
		UserID:    "u-1",
		Name:      "ci-bot",
		KeyHash:   "$2a$10$hash",
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery("INSERT INTO api_keys").
		WithArgs(key.ID, key.UserID, key.Name, key.KeyHash, key.IsActive, nil).
		WillReturnRows(apiKeyRow(key))

	created, err := repo.CreateAPIKey(context.Background(), key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "ci-bot" {
		t.Errorf("expected name ci-bot, got %s", created.Name)
	}
}

func TestCreateAPIKey_DuplicateName(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO api_keys").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAPIKey(context.Background(), models.APIKey{Name: "ci-bot"})
	if !errors.Is(err, ErrKeyNameAlreadyExists) {
		t.Fatalf("expected ErrKeyNameAlreadyExists, got %v", err)
	}
}

func TestListKeysByOwner_ReturnsAllRows(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(apiKeyColumns).
		AddRow("k-2", "u-1", "newer", "h2", true, nil, nil, now).
		AddRow("k-1", "u-1", "older", "h1", false, nil, nil, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM api_keys").
		WithArgs("u-1").
		WillReturnRows(rows)

	keys, err := repo.ListKeysByOwner(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if keys[0].ID != "k-2" {
		t.Errorf("expected newest key first, got %s", keys[0].ID)
	}
}

func TestListKeysByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM api_keys").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(apiKeyColumns))

	keys, err := repo.ListKeysByOwner(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected empty slice, got %d keys", len(keys))
	}
}

func TestListActiveKeys_NullableColumns(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	now := time.Now()
	expires := now.Add(24 * time.Hour)
	rows := sqlmock.NewRows(apiKeyColumns).
		AddRow("k-1", "u-1", "with-expiry", "h1", true, expires, now, now)

	mock.ExpectQuery("SELECT (.+) FROM api_keys").
		WillReturnRows(rows)

	keys, err := repo.ListActiveKeys(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keys[0].ExpiresAt == nil || !keys[0].ExpiresAt.Equal(expires) {
		t.Errorf("expected expiry to round-trip, got %v", keys[0].ExpiresAt)
	}
	if keys[0].LastUsedAt == nil {
		t.Error("expected last_used_at to round-trip")
	}
}

func TestRevokeKey_Success(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE api_keys").
		WithArgs(false, "k-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RevokeKey(context.Background(), "u-1", "k-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRevokeKey_NotFound(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE api_keys").
		WithArgs(false, "k-404", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RevokeKey(context.Background(), "u-1", "k-404")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestRevokeKey_DBError(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE api_keys").
		WillReturnError(errors.New("deadlock detected"))

	err := repo.RevokeKey(context.Background(), "u-1", "k-1")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestTouchKey_Success(t *testing.T) {
	repo, mock, db := newTestAPIKeyRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE api_keys").
		WithArgs("k-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.TouchKey(context.Background(), "k-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
