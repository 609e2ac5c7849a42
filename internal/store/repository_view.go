package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/models"
)

type viewRepository struct {
	*DB
	logger *logger.Logger
}

// NewViewRepository constructs a [ViewRepository] backed by the provided
// database connection and logger.
func NewViewRepository(db *DB, logger *logger.Logger) ViewRepository {
	return &viewRepository{
		DB:     db,
		logger: logger,
	}
}

// All reads every row of the view in the order the view defines.
func (v *viewRepository) All(ctx context.Context, view catalog.ViewDescriptor) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := v.withTimeout(ctx)
	defer cancel()

	query, args, err := buildSelectViewQuery(view)
	if err != nil {
		log.Err(err).
			Str("func", "viewRepository.All").
			Str("relation", view.SourceRelation).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		v.logDBError(ctx, err, "viewRepository.All", view.SourceRelation, "failed to select view rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result, err := scanRows(rows, view.Projection, 64)
	if err != nil {
		v.logDBError(ctx, err, "viewRepository.All", view.SourceRelation, "failed to read view rows")
		return nil, err
	}

	return result, nil
}
