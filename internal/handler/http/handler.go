package http

import (
	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/config"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/service"
)

type Handler struct {
	services *service.Services
	catalog  *catalog.Catalog

	version     string
	corsOrigins []string

	metrics *metrics
	logger  *logger.Logger
}

func NewHandler(services *service.Services, catalog *catalog.Catalog, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		catalog:     catalog,
		version:     cfg.App.Version,
		corsOrigins: cfg.Server.CORSOrigins,
		metrics:     newMetrics(),
		logger:      logger,
	}
}
