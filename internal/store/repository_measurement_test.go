package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testResource = catalog.Resource{
	Name:           "air-quality",
	Title:          "Air quality",
	Relation:       "air_quality",
	PrimaryKey:     "id",
	TemporalColumn: "measurement_date",
	Projection:     []string{"id", "measurement_date", "location", "pm25"},
	Filters:        []string{"location"},
}

const (
	countSQL = `SELECT count(*) FROM air_quality`
	pageSQL  = `SELECT id, measurement_date, location, pm25 FROM air_quality`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, time.Second, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func strPtr(s string) *string { return &s }

// stationRows returns n rows at Station A, newest first, one day apart.
func stationRows(n int, newest time.Time) *sqlmock.Rows {
	rows := sqlmock.NewRows(testResource.Projection)
	for i := 0; i < n; i++ {
		rows.AddRow(int64(100-i), newest.AddDate(0, 0, -i), "Station A", 10.5+float64(i))
	}
	return rows
}

func TestMeasurementRepository_List(t *testing.T) {
	newest := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	type want struct {
		err     error
		total   int
		dataLen int
	}

	tests := []struct {
		name  string
		query models.ListQuery
		setup func(mock sqlmock.Sqlmock)
		want  want
	}{
		{
			name:  "two most recent of five matches",
			query: models.ListQuery{Location: strPtr("Station A"), Limit: 2, Offset: 0},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL + ` WHERE (location ILIKE $1)`)).
					WithArgs("%Station A%").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
				mock.ExpectQuery(regexp.QuoteMeta(pageSQL + ` WHERE (location ILIKE $1) ORDER BY measurement_date DESC, id DESC LIMIT 2 OFFSET 0`)).
					WithArgs("%Station A%").
					WillReturnRows(stationRows(2, newest))
				mock.ExpectCommit()
			},
			want: want{total: 5, dataLen: 2},
		},
		{
			name:  "no filters",
			query: models.NewListQuery(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`^` + regexp.QuoteMeta(countSQL) + `$`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
				mock.ExpectQuery(regexp.QuoteMeta(pageSQL + ` ORDER BY measurement_date DESC, id DESC LIMIT 100 OFFSET 0`)).
					WillReturnRows(stationRows(3, newest))
				mock.ExpectCommit()
			},
			want: want{total: 3, dataLen: 3},
		},
		{
			name: "date range",
			query: models.ListQuery{
				DateFrom: timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				DateTo:   timePtr(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
				Limit:    10,
			},
			setup: func(mock sqlmock.Sqlmock) {
				from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
				to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL + ` WHERE (measurement_date >= $1 AND measurement_date <= $2)`)).
					WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(regexp.QuoteMeta(pageSQL + ` WHERE (measurement_date >= $1 AND measurement_date <= $2)`)).
					WithArgs(from, to).
					WillReturnRows(stationRows(1, newest))
				mock.ExpectCommit()
			},
			want: want{total: 1, dataLen: 1},
		},
		{
			// inverted bounds are passed through and simply match nothing
			name: "inverted date range",
			query: models.ListQuery{
				DateFrom: timePtr(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
				DateTo:   timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
				Limit:    10,
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL + ` WHERE (measurement_date >= $1 AND measurement_date <= $2)`)).
					WithArgs(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectCommit()
			},
			want: want{total: 0, dataLen: 0},
		},
		{
			name:  "offset beyond total",
			query: models.ListQuery{Limit: 10, Offset: 50},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
				mock.ExpectCommit()
			},
			want: want{total: 5, dataLen: 0},
		},
		{
			name:  "last partial page",
			query: models.ListQuery{Limit: 2, Offset: 4},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
				mock.ExpectQuery(regexp.QuoteMeta(`LIMIT 2 OFFSET 4`)).
					WillReturnRows(stationRows(1, newest))
				mock.ExpectCommit()
			},
			want: want{total: 5, dataLen: 1},
		},
		{
			name:  "begin fails",
			query: models.NewListQuery(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			want: want{err: ErrBeginningTransaction},
		},
		{
			name:  "count fails",
			query: models.NewListQuery(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
					WillReturnError(errors.New("relation does not exist"))
				mock.ExpectRollback()
			},
			want: want{err: ErrExecutingQuery},
		},
		{
			name:  "page fails",
			query: models.NewListQuery(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
				mock.ExpectQuery(regexp.QuoteMeta(pageSQL)).
					WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			want: want{err: ErrExecutingQuery},
		},
		{
			name:  "row iteration fails",
			query: models.NewListQuery(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
				mock.ExpectQuery(regexp.QuoteMeta(pageSQL)).
					WillReturnRows(stationRows(2, newest).RowError(1, errors.New("broken pipe")))
				mock.ExpectRollback()
			},
			want: want{err: ErrScanningRows},
		},
		{
			name:  "column mismatch",
			query: models.NewListQuery(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
				mock.ExpectQuery(regexp.QuoteMeta(pageSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
				mock.ExpectRollback()
			},
			want: want{err: ErrScanningRow},
		},
		{
			name:  "commit fails",
			query: models.NewListQuery(),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectCommit().WillReturnError(errors.New("connection lost"))
			},
			want: want{err: ErrCommitingTransaction},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			repo := NewMeasurementRepository(newDBFromSQL(db), logger.Nop())

			result, err := repo.List(testContext(), testResource, tt.query)

			require.NoError(t, mock.ExpectationsWereMet())
			if tt.want.err != nil {
				assert.ErrorIs(t, err, tt.want.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.total, result.Total)
			assert.Equal(t, tt.query.Limit, result.Limit)
			assert.Equal(t, tt.query.Offset, result.Offset)
			require.NotNil(t, result.Data)
			assert.Len(t, result.Data, tt.want.dataLen)
			assert.LessOrEqual(t, len(result.Data), tt.query.Limit)
		})
	}
}

// TestMeasurementRepository_List_RowsAreNewestFirst verifies the returned
// page keeps the order the database delivered and projects every column.
func TestMeasurementRepository_List_RowsAreNewestFirst(t *testing.T) {
	newest := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(regexp.QuoteMeta(pageSQL)).
		WillReturnRows(stationRows(2, newest))
	mock.ExpectCommit()

	repo := NewMeasurementRepository(newDBFromSQL(db), logger.Nop())
	result, err := repo.List(testContext(), testResource, models.ListQuery{Location: strPtr("Station A"), Limit: 2})
	require.NoError(t, err)
	require.Len(t, result.Data, 2)

	var prev time.Time
	for i, row := range result.Data {
		assert.Equal(t, testResource.Projection, row.Columns)

		v, ok := row.Get("measurement_date")
		require.True(t, ok)
		ts, ok := v.(time.Time)
		require.True(t, ok)
		if i > 0 {
			assert.False(t, ts.After(prev), "rows must be ordered newest first")
		}
		prev = ts
	}

	id, _ := result.Data[0].Get("id")
	assert.Equal(t, int64(100), id)
}

func TestMeasurementRepository_Get(t *testing.T) {
	getSQL := pageSQL + ` WHERE id = $1 LIMIT 1`
	ts := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(testResource.Projection).AddRow(int64(42), ts, "Station A", 12.5))

		repo := NewMeasurementRepository(newDBFromSQL(db), logger.Nop())
		row, err := repo.Get(testContext(), testResource, 42)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
		assert.Equal(t, []any{int64(42), ts, "Station A", 12.5}, row.Values)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(testResource.Projection))

		repo := NewMeasurementRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.Get(testContext(), testResource, 42)

		require.ErrorIs(t, err, ErrMeasurementNotFound)
		assert.Contains(t, err.Error(), "42")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
			WithArgs(int64(42)).
			WillReturnError(errors.New("connection refused"))

		repo := NewMeasurementRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.Get(testContext(), testResource, 42)

		require.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrMeasurementNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestScanRow_NormalizesBytes(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"notes"}).AddRow([]byte("dusty")))

	row, err := scanRow(db.QueryRow("SELECT notes FROM air_quality"), []string{"notes"})
	require.NoError(t, err)

	data, err := row.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":"dusty"}`, string(data))
}

func timePtr(t time.Time) *time.Time { return &t }
