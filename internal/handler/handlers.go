package handler

import (
	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/handler/http"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger, opts...),
	}, nil
}
