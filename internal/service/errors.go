package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/env-metrics/internal/store"
)

var (
	ErrMissingCredential = errors.New("no bearer credential provided")

	ErrUnknownResource = errors.New("unknown resource")
	ErrUnknownView     = errors.New("unknown view")
)

// NotFoundError reports a measurement id that has no row.
type NotFoundError struct {
	Title string
	ID    int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s measurement with ID %d not found", e.Title, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return store.ErrMeasurementNotFound
}
