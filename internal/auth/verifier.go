package auth

//go:generate mockgen -source=verifier.go -destination=../mock/verifier_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/env-metrics/models"
)

// Verifier turns a bearer credential into an authenticated principal.
type Verifier interface {
	Verify(ctx context.Context, credential string) (models.Principal, error)
}
