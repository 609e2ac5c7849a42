package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/validators"
	"github.com/MKhiriev/env-metrics/models"
)

// MeasurementValidationService rejects queries the storage layer must never
// see before handing them to the wrapped MeasurementService.
type MeasurementValidationService struct {
	inner     MeasurementService
	validator validators.Validator
}

func NewMeasurementValidationService() MeasurementServiceWrapper {
	return &MeasurementValidationService{
		validator: validators.NewListQueryValidator(),
	}
}

func (v *MeasurementValidationService) List(ctx context.Context, resource catalog.Resource, query models.ListQuery) (models.ListResult, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.ListResult{}, fmt.Errorf("error during list query validation: %w", err)
	}

	return v.inner.List(ctx, resource, query)
}

func (v *MeasurementValidationService) Get(ctx context.Context, resource catalog.Resource, id int64) (models.Row, error) {
	return v.inner.Get(ctx, resource, id)
}

func (v *MeasurementValidationService) Wrap(inner MeasurementService) MeasurementService {
	v.inner = inner
	return v
}
