package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is a single record read from a relation. Columns keeps the projection
// order so the JSON object is written in the same order the columns were
// selected.
type Row struct {
	Columns []string
	Values  []any
}

// NewRow pairs columns with values. Both slices must have the same length.
func NewRow(columns []string, values []any) Row {
	return Row{Columns: columns, Values: values}
}

// Get returns the value of column name and whether it is part of the row.
func (r Row) Get(name string) (any, bool) {
	for i, c := range r.Columns {
		if c == name {
			return r.Values[i], true
		}
	}
	return nil, false
}

// MarshalJSON writes the row as a flat JSON object keyed by column name.
func (r Row) MarshalJSON() ([]byte, error) {
	if len(r.Columns) != len(r.Values) {
		return nil, fmt.Errorf("row has %d columns and %d values", len(r.Columns), len(r.Values))
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, column := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(normalizeValue(r.Values[i]))
		if err != nil {
			return nil, fmt.Errorf("error marshaling column %q: %w", column, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// normalizeValue converts driver values that encoding/json would render badly.
// Text columns may come back as []byte, which would otherwise be base64-encoded.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
