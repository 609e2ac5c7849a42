package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=MeasurementServiceWrapper

import (
	"context"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/models"
)

// AuthService turns a bearer credential into the request principal.
type AuthService interface {
	Authenticate(ctx context.Context, credential string) (models.Principal, error)
}

// MeasurementService reads paginated measurement rows of a catalog resource.
type MeasurementService interface {
	List(ctx context.Context, resource catalog.Resource, query models.ListQuery) (models.ListResult, error)
	Get(ctx context.Context, resource catalog.Resource, id int64) (models.Row, error)
}

// ViewService serves the fixed statistical views declared in the catalog.
type ViewService interface {
	Views(ctx context.Context) []models.ViewInfo
	Resolve(ctx context.Context, route string) (catalog.ViewDescriptor, error)
	Rows(ctx context.Context, view catalog.ViewDescriptor) ([]models.Row, error)
}

// MeasurementServiceWrapper defines middleware composition for MeasurementService.
// Implementations wrap an existing MeasurementService to add behavior such as
// validating.
type MeasurementServiceWrapper interface {
	Wrap(MeasurementService) MeasurementService
}
