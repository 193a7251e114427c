package store

import (
	"github.com/tulbadex/authgate/internal/logger"
)

// Repositories bundles every data-access implementation the service layer
// consumes.
type Repositories struct {
	UserRepository   UserRepository
	APIKeyRepository APIKeyRepository
}

// NewRepositories wires all repositories to the shared database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		APIKeyRepository: NewAPIKeyRepository(db, logger),
	}
}
