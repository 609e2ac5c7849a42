package service

import (
	"github.com/MKhiriev/env-metrics/internal/auth"
	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/config"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/store"
)

type Services struct {
	AuthService        AuthService
	MeasurementService MeasurementService
	ViewService        ViewService
}

func NewServices(storages *store.Storages, catalog *catalog.Catalog, verifier auth.Verifier, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	measurementService := NewMeasurementValidationService().
		Wrap(NewMeasurementService(storages.MeasurementRepository, logger))

	return &Services{
		AuthService:        NewAuthService(verifier, cfg.App, logger),
		MeasurementService: measurementService,
		ViewService:        NewViewService(catalog, storages.ViewRepository, logger),
	}
}
