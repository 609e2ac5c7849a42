package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/env-metrics/models"
)

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRow reads one row whose columns are exactly projection.
func scanRow(scanner rowScanner, projection []string) (models.Row, error) {
	values := make([]any, len(projection))
	dest := make([]any, len(projection))
	for i := range values {
		dest[i] = &values[i]
	}

	if err := scanner.Scan(dest...); err != nil {
		return models.Row{}, err
	}
	return models.NewRow(projection, values), nil
}

// scanRows drains rows into a non-nil slice.
func scanRows(rows *sql.Rows, projection []string, capacity int) ([]models.Row, error) {
	result := make([]models.Row, 0, capacity)

	for rows.Next() {
		row, err := scanRow(rows, projection)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
