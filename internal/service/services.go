package service

import (
	"github.com/tulbadex/authgate/internal/config"
	"github.com/tulbadex/authgate/internal/crypto"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/store"
)

type Services struct {
	AuthService   AuthService
	APIKeyService APIKeyService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	keygen := crypto.NewAPIKeyGenerator()

	return &Services{
		AuthService:   NewAuthService(repositories.UserRepository, hasher, cfg.Auth, logger),
		APIKeyService: NewAPIKeyService(repositories.APIKeyRepository, repositories.UserRepository, hasher, keygen, logger),
	}
}
