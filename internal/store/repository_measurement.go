package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/models"
)

// listTxOptions makes the count and the page observe one snapshot.
var listTxOptions = &sql.TxOptions{
	Isolation: sql.LevelRepeatableRead,
	ReadOnly:  true,
}

// measurementRepository is the PostgreSQL-backed implementation of
// [MeasurementRepository]. Relation and column names come from the catalog.
type measurementRepository struct {
	*DB
	logger *logger.Logger
}

// NewMeasurementRepository constructs a [MeasurementRepository] backed by
// the provided database connection and logger.
func NewMeasurementRepository(db *DB, logger *logger.Logger) MeasurementRepository {
	return &measurementRepository{
		DB:     db,
		logger: logger,
	}
}

// List counts the rows matching query and reads the requested page inside a
// single read-only repeatable-read transaction.
//
// The transaction, and with it the pooled connection, is released on every
// return path. An offset at or past the total skips the page query and
// returns an empty page.
func (m *measurementRepository) List(ctx context.Context, resource catalog.Resource, query models.ListQuery) (models.ListResult, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	pred := buildListPredicate(resource, query)

	countQuery, countArgs, err := buildCountQuery(resource, pred)
	if err != nil {
		log.Err(err).
			Str("func", "measurementRepository.List").
			Str("relation", resource.Relation).
			Msg("failed to create count query")
		return models.ListResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	pageQuery, pageArgs, err := buildPageQuery(resource, pred, query)
	if err != nil {
		log.Err(err).
			Str("func", "measurementRepository.List").
			Str("relation", resource.Relation).
			Msg("failed to create page query")
		return models.ListResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := m.DB.BeginTx(ctx, listTxOptions)
	if err != nil {
		m.logDBError(ctx, err, "measurementRepository.List", resource.Relation, "failed to begin read-only transaction")
		return models.ListResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result := models.ListResult{
		Data:   []models.Row{},
		Limit:  query.Limit,
		Offset: query.Offset,
	}

	if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&result.Total); err != nil {
		m.logDBError(ctx, err, "measurementRepository.List", resource.Relation, "failed to count matching rows")
		return models.ListResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if query.Offset < result.Total {
		result.Data, err = m.readPage(ctx, tx, resource, pageQuery, pageArgs, min(query.Limit, result.Total-query.Offset))
		if err != nil {
			return models.ListResult{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		m.logDBError(ctx, err, "measurementRepository.List", resource.Relation, "failed to commit read-only transaction")
		return models.ListResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "measurementRepository.List").
		Str("relation", resource.Relation).
		Int("total", result.Total).
		Int("returned", len(result.Data)).
		Send()

	return result, nil
}

func (m *measurementRepository) readPage(ctx context.Context, tx *sql.Tx, resource catalog.Resource, query string, args []any, capacity int) ([]models.Row, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		m.logDBError(ctx, err, "measurementRepository.List", resource.Relation, "failed to select page")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	data, err := scanRows(rows, resource.Projection, capacity)
	if err != nil {
		m.logDBError(ctx, err, "measurementRepository.List", resource.Relation, "failed to read page")
		return nil, err
	}
	return data, nil
}

// Get reads the row whose primary key equals id.
func (m *measurementRepository) Get(ctx context.Context, resource catalog.Resource, id int64) (models.Row, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	query, args, err := buildGetByIDQuery(resource, id)
	if err != nil {
		log.Err(err).
			Str("func", "measurementRepository.Get").
			Str("relation", resource.Relation).
			Int64("id", id).
			Msg("failed to create query")
		return models.Row{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanRow(m.DB.QueryRowContext(ctx, query, args...), resource.Projection)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Row{}, fmt.Errorf("%w: %s id %d", ErrMeasurementNotFound, resource.Name, id)
	}
	if err != nil {
		m.logDBError(ctx, err, "measurementRepository.Get", resource.Relation, "failed to select row by id")
		return models.Row{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row, nil
}
