package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/store"
	"github.com/MKhiriev/env-metrics/models"
)

type measurementService struct {
	measurementRepository store.MeasurementRepository

	logger *logger.Logger
}

func NewMeasurementService(measurementRepository store.MeasurementRepository, logger *logger.Logger) MeasurementService {
	return &measurementService{
		measurementRepository: measurementRepository,
		logger:                logger,
	}
}

// List returns one page of resource rows matching query, newest first.
func (m *measurementService) List(ctx context.Context, resource catalog.Resource, query models.ListQuery) (models.ListResult, error) {
	result, err := m.measurementRepository.List(ctx, resource, query)
	if err != nil {
		return models.ListResult{}, fmt.Errorf("error listing %s: %w", resource.Name, err)
	}

	return result, nil
}

// Get returns the resource row with primary key id. A missing row is
// reported as *NotFoundError.
func (m *measurementService) Get(ctx context.Context, resource catalog.Resource, id int64) (models.Row, error) {
	row, err := m.measurementRepository.Get(ctx, resource, id)
	if errors.Is(err, store.ErrMeasurementNotFound) {
		return models.Row{}, &NotFoundError{Title: resource.Title, ID: id}
	}
	if err != nil {
		return models.Row{}, fmt.Errorf("error getting %s %d: %w", resource.Name, id, err)
	}

	return row, nil
}
