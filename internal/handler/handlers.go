package handler

import (
	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/config"
	"github.com/MKhiriev/env-metrics/internal/handler/http"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, catalog *catalog.Catalog, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, catalog, cfg, logger),
	}, nil
}
