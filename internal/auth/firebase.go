// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/models"
	"github.com/golang-jwt/jwt/v5"
)

const issuerPrefix = "https://securetoken.google.com/"

// keySource resolves signing keys by key id. *KeySet is the production
// implementation.
type keySource interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

// firebaseProject is the immutable configuration published by Init.
type firebaseProject struct {
	id     string
	parser *jwt.Parser
}

// FirebaseVerifier verifies Firebase ID tokens.
//
// The zero state is unconfigured: Verify returns ErrUnconfigured until Init
// has loaded a service-account file with a project id. Init runs at most once;
// if it fails the verifier stays unconfigured for the lifetime of the process.
type FirebaseVerifier struct {
	credentialsPath string
	keys            keySource
	revocation      RevocationChecker
	logger          *logger.Logger
	now             func() time.Time

	once    sync.Once
	initErr error
	project atomic.Pointer[firebaseProject]
}

// NewFirebaseVerifier creates an unconfigured verifier. A nil revocation
// checker disables revocation checks.
func NewFirebaseVerifier(credentialsPath string, keys *KeySet, revocation RevocationChecker, logger *logger.Logger) *FirebaseVerifier {
	return newFirebaseVerifier(credentialsPath, keys, revocation, logger)
}

func newFirebaseVerifier(credentialsPath string, keys keySource, revocation RevocationChecker, logger *logger.Logger) *FirebaseVerifier {
	if revocation == nil {
		revocation = NoopRevocationChecker{}
	}
	return &FirebaseVerifier{
		credentialsPath: credentialsPath,
		keys:            keys,
		revocation:      revocation,
		logger:          logger,
		now:             time.Now,
	}
}

// Init reads the project id from the service-account credentials file.
//
// Only the first call does any work; later calls return the first result.
// A returned error is informational: the process keeps running and protected
// requests are answered with ErrUnconfigured.
func (v *FirebaseVerifier) Init() error {
	v.once.Do(func() {
		projectID, err := readProjectID(v.credentialsPath)
		if err != nil {
			v.initErr = err
			v.logger.Warn().Err(err).
				Str("credentials_path", v.credentialsPath).
				Msg("firebase credentials are unavailable, token verification is disabled")
			return
		}

		v.project.Store(&firebaseProject{
			id: projectID,
			parser: jwt.NewParser(
				jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
				jwt.WithAudience(projectID),
				jwt.WithIssuer(issuerPrefix+projectID),
				jwt.WithIssuedAt(),
				jwt.WithExpirationRequired(),
				jwt.WithTimeFunc(func() time.Time { return v.now() }),
			),
		})
		v.logger.Info().Str("project_id", projectID).Msg("firebase token verifier initialized")
	})
	return v.initErr
}

// Configured reports whether Init has succeeded.
func (v *FirebaseVerifier) Configured() bool {
	return v.project.Load() != nil
}

// Verify checks credential and returns the principal it identifies.
func (v *FirebaseVerifier) Verify(ctx context.Context, credential string) (models.Principal, error) {
	project := v.project.Load()
	if project == nil {
		return models.Principal{}, ErrUnconfigured
	}
	if credential == "" {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, errEmptyCredential)
	}

	claims := jwt.MapClaims{}
	_, err := project.parser.ParseWithClaims(credential, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, errUnknownKeyID)
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return models.Principal{}, classifyParseError(err)
	}

	subject, _ := claims.GetSubject()
	if subject == "" {
		return models.Principal{}, ErrMissingSubject
	}

	if err := v.revocation.CheckRevoked(ctx, subject, authTime(claims)); err != nil {
		return models.Principal{}, err
	}

	email, _ := claims["email"].(string)
	return models.Principal{
		ID:     subject,
		Email:  email,
		Claims: claims,
	}, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, ErrVerificationUnavailable):
		return err
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, ErrInvalidToken):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
}

// authTime returns the moment the user signed in, falling back to the
// token's issue time.
func authTime(claims jwt.MapClaims) time.Time {
	if v, ok := claims["auth_time"].(float64); ok && v > 0 {
		return time.Unix(int64(v), 0)
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		return iat.Time
	}
	return time.Time{}
}

type serviceAccount struct {
	ProjectID string `json:"project_id"`
}

func readProjectID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading firebase credentials: %w", err)
	}

	var account serviceAccount
	if err := json.Unmarshal(data, &account); err != nil {
		return "", fmt.Errorf("error decoding firebase credentials: %w", err)
	}
	if account.ProjectID == "" {
		return "", errMissingProjectID
	}
	return account.ProjectID, nil
}
