package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Kinds of field errors reported to clients.
const (
	KindIntParsing       = "int_parsing"
	KindGreaterThanEqual = "greater_than_equal"
	KindLessThanEqual    = "less_than_equal"
	KindDatetimeParsing  = "datetime_parsing"
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string
	Message string
	Kind    string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every rejected field of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(f FieldError) {
	e.Fields = append(e.Fields, f)
}

// orNil returns e only if at least one field was rejected.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
