package handler

import (
	"github.com/tulbadex/authgate/internal/config"
	"github.com/tulbadex/authgate/internal/handler/http"
	"github.com/tulbadex/authgate/internal/logger"
	"github.com/tulbadex/authgate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
