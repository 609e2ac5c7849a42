package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/env-metrics/internal/auth"
	"github.com/MKhiriev/env-metrics/internal/config"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/models"
)

// TestPrincipal is the identity every request gets while auth test mode is on.
var TestPrincipal = models.Principal{
	ID:    "test-user",
	Email: "test@example.com",
}

// authService is the concrete implementation of AuthService.
type authService struct {
	// verifier checks bearer credentials against the identity provider.
	verifier auth.Verifier

	// testMode substitutes TestPrincipal for every credential. It is never
	// enabled in production.
	testMode bool

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by verifier. Test mode is
// taken from cfg and ignored when cfg names the production environment.
func NewAuthService(verifier auth.Verifier, cfg config.App, logger *logger.Logger) AuthService {
	testMode := cfg.AuthTestMode && !cfg.IsProduction()
	if testMode {
		logger.Warn().
			Str("principal", TestPrincipal.ID).
			Msg("auth test mode is enabled, bearer tokens are not verified")
	}

	return &authService{
		verifier: verifier,
		testMode: testMode,
		logger:   logger,
	}
}

// Authenticate verifies credential and returns its principal.
//
// An empty credential fails with ErrMissingCredential without reaching the
// verifier. Verification failures keep their auth sentinel (auth.ErrInvalidToken,
// auth.ErrTokenExpired, ...) so the transport layer can choose the status.
func (a *authService) Authenticate(ctx context.Context, credential string) (models.Principal, error) {
	if a.testMode {
		return TestPrincipal, nil
	}
	if credential == "" {
		return models.Principal{}, ErrMissingCredential
	}

	principal, err := a.verifier.Verify(ctx, credential)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return models.Principal{}, fmt.Errorf("token verification failed: %w", err)
	}

	return principal, nil
}
