package store

import (
	"github.com/MKhiriev/env-metrics/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	MeasurementRepository MeasurementRepository
	ViewRepository        ViewRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, logger *logger.Logger) (*Storages, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}

	logger.Info().Msg("creating storages...")

	return &Storages{
		MeasurementRepository: NewMeasurementRepository(db, logger),
		ViewRepository:        NewViewRepository(db, logger),
	}, nil
}
