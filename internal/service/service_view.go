package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/store"
	"github.com/MKhiriev/env-metrics/models"
)

type viewService struct {
	catalog        *catalog.Catalog
	viewRepository store.ViewRepository

	logger *logger.Logger
}

func NewViewService(catalog *catalog.Catalog, viewRepository store.ViewRepository, logger *logger.Logger) ViewService {
	return &viewService{
		catalog:        catalog,
		viewRepository: viewRepository,
		logger:         logger,
	}
}

// Views describes every catalog view in declaration order.
func (v *viewService) Views(ctx context.Context) []models.ViewInfo {
	views := v.catalog.Views()

	infos := make([]models.ViewInfo, 0, len(views))
	for _, view := range views {
		infos = append(infos, models.ViewInfo{
			Route:        view.Route,
			Projection:   slices.Clone(view.Projection),
			RequiresAuth: view.RequiresAuth,
		})
	}
	return infos
}

// Resolve finds the view registered under route.
func (v *viewService) Resolve(ctx context.Context, route string) (catalog.ViewDescriptor, error) {
	view, err := v.catalog.Resolve(route)
	if err != nil {
		return catalog.ViewDescriptor{}, fmt.Errorf("%w: %w", ErrUnknownView, err)
	}
	return view, nil
}

// Rows reads every row of view.
func (v *viewService) Rows(ctx context.Context, view catalog.ViewDescriptor) ([]models.Row, error) {
	rows, err := v.viewRepository.All(ctx, view)
	if err != nil {
		return nil, fmt.Errorf("error reading view %s: %w", view.Route, err)
	}
	return rows, nil
}
