package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/models"
)

// MeasurementRepository reads measurement rows of a catalog resource.
type MeasurementRepository interface {
	// List returns one page of rows matching query together with the number
	// of all matching rows. Rows are ordered newest first.
	List(ctx context.Context, resource catalog.Resource, query models.ListQuery) (models.ListResult, error)

	// Get returns the row whose primary key equals id or ErrMeasurementNotFound.
	Get(ctx context.Context, resource catalog.Resource, id int64) (models.Row, error)
}

// ViewRepository reads aggregate views described by the catalog.
type ViewRepository interface {
	// All returns every row of the view's source relation.
	All(ctx context.Context, view catalog.ViewDescriptor) ([]models.Row, error)
}

// ErrorClassificator decides whether a failed database call may succeed if
// repeated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
