package validators

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/env-metrics/models"
)

// Query parameter names accepted by list endpoints.
const (
	FieldLimit    = "limit"
	FieldOffset   = "offset"
	FieldDateFrom = "date_from"
	FieldDateTo   = "date_to"
	FieldLocation = "location"
	FieldSource   = "source"
	FieldID       = "id"
)

// dateLayouts are the ISO-8601 forms accepted for date bounds, tried in order.
// Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// BuildListQuery parses list parameters into a models.ListQuery.
//
// allowedFilters names the substring filters ("location", "source") the
// target resource supports; other filter parameters are ignored. Empty values
// count as absent. Every invalid parameter is reported in the returned
// *ValidationError.
//
// Date bounds are not compared with each other: date_from after date_to
// yields a well-formed query that matches nothing.
func BuildListQuery(params url.Values, allowedFilters []string) (models.ListQuery, error) {
	query := models.NewListQuery()
	verr := &ValidationError{}

	if raw := strings.TrimSpace(params.Get(FieldLimit)); raw != "" {
		if n, ok := parseInt(verr, FieldLimit, raw); ok {
			query.Limit = n
		}
	}
	if raw := strings.TrimSpace(params.Get(FieldOffset)); raw != "" {
		if n, ok := parseInt(verr, FieldOffset, raw); ok {
			query.Offset = n
		}
	}

	query.DateFrom = parseDate(verr, FieldDateFrom, params.Get(FieldDateFrom))
	query.DateTo = parseDate(verr, FieldDateTo, params.Get(FieldDateTo))

	if slices.Contains(allowedFilters, FieldLocation) {
		query.Location = nonEmpty(params.Get(FieldLocation))
	}
	if slices.Contains(allowedFilters, FieldSource) {
		query.Source = nonEmpty(params.Get(FieldSource))
	}

	// range checks only for values that parsed
	for _, f := range checkRanges(query, fieldsWithout(verr, FieldLimit, FieldOffset)...) {
		verr.add(f)
	}

	if err := verr.orNil(); err != nil {
		return models.ListQuery{}, err
	}
	return query, nil
}

// ParseID parses a record identifier taken from the request path.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{intParsingError(FieldID)}}
	}
	return id, nil
}

// ListQueryValidator validates an already-built models.ListQuery.
type ListQueryValidator struct {
}

// NewListQueryValidator constructs a new ListQueryValidator and returns it as
// the Validator interface.
func NewListQueryValidator() Validator {
	return &ListQueryValidator{}
}

// Validate checks the pagination bounds of a models.ListQuery (value or
// pointer). fields restricts the check to FieldLimit and/or FieldOffset.
func (v *ListQueryValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var query models.ListQuery
	switch q := value.(type) {
	case models.ListQuery:
		query = q
	case *models.ListQuery:
		if q == nil {
			return ErrUnsupportedType
		}
		query = *q
	default:
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if f != FieldLimit && f != FieldOffset {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldOffset}
	}

	verr := &ValidationError{Fields: checkRanges(query, fields...)}
	return verr.orNil()
}

// checkRanges validates the named pagination fields of query.
func checkRanges(query models.ListQuery, fields ...string) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		switch f {
		case FieldLimit:
			if query.Limit < 1 {
				errs = append(errs, FieldError{
					Field:   FieldLimit,
					Message: "Input should be greater than or equal to 1",
					Kind:    KindGreaterThanEqual,
				})
			} else if query.Limit > models.MaxLimit {
				errs = append(errs, FieldError{
					Field:   FieldLimit,
					Message: fmt.Sprintf("Input should be less than or equal to %d", models.MaxLimit),
					Kind:    KindLessThanEqual,
				})
			}
		case FieldOffset:
			if query.Offset < 0 {
				errs = append(errs, FieldError{
					Field:   FieldOffset,
					Message: "Input should be greater than or equal to 0",
					Kind:    KindGreaterThanEqual,
				})
			}
		}
	}
	return errs
}

// fieldsWithout returns the candidates that have no error recorded yet.
func fieldsWithout(verr *ValidationError, candidates ...string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !slices.ContainsFunc(verr.Fields, func(f FieldError) bool { return f.Field == c }) {
			out = append(out, c)
		}
	}
	return out
}

func parseInt(verr *ValidationError, field, raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.add(intParsingError(field))
		return 0, false
	}
	return n, true
}

func intParsingError(field string) FieldError {
	return FieldError{
		Field:   field,
		Message: "Input should be a valid integer, unable to parse string as an integer",
		Kind:    KindIntParsing,
	}
}

func parseDate(verr *ValidationError, field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			// measurement_date has no time zone: the driver keeps the wall clock and drops the offset.
			t = t.UTC()
			return &t
		}
	}

	verr.add(FieldError{
		Field:   field,
		Message: "Input should be a valid datetime or date",
		Kind:    KindDatetimeParsing,
	})
	return nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
