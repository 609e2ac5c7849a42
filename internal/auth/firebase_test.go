package auth

import (
	"context"
	"crypto/rsa"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verifierFixture struct {
	verifier *FirebaseVerifier
	keys     *keyServer
	key      *rsa.PrivateKey
}

func newVerifierFixture(t *testing.T, revocation RevocationChecker) *verifierFixture {
	t.Helper()
	key := newRSAKey(t)
	srv := newKeyServer(t, map[string]string{"k1": certPEM(t, key)}, "max-age=3600")

	keySet := NewKeySet(srv.URL, utils.NewHTTPClient(time.Second), time.Hour)
	v := NewFirebaseVerifier(writeCredentials(t, serviceAccountJSON(testProjectID)), keySet, revocation, logger.Nop())
	require.NoError(t, v.Init())

	return &verifierFixture{verifier: v, keys: srv, key: key}
}

func TestFirebaseVerifier_Verify_Success(t *testing.T) {
	f := newVerifierFixture(t, nil)
	token := signToken(t, f.key, "k1", validClaims(time.Now()))

	p, err := f.verifier.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "uid-123", p.ID)
	assert.Equal(t, "user@example.com", p.Email)
	assert.Equal(t, "uid-123", p.Claims["sub"])
	assert.Equal(t, testProjectID, p.Claims["aud"])
}

func TestFirebaseVerifier_Verify_EmailIsOptional(t *testing.T) {
	f := newVerifierFixture(t, nil)
	claims := validClaims(time.Now())
	delete(claims, "email")

	p, err := f.verifier.Verify(context.Background(), signToken(t, f.key, "k1", claims))

	require.NoError(t, err)
	assert.Equal(t, "uid-123", p.ID)
	assert.Empty(t, p.Email)
}

func TestFirebaseVerifier_Verify_Failures(t *testing.T) {
	otherKey := newRSAKey(t)

	tests := []struct {
		name    string
		token   func(f *verifierFixture) string
		wantErr error
	}{
		{
			name:    "empty credential",
			token:   func(f *verifierFixture) string { return "" },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   func(f *verifierFixture) string { return "not-a-jwt" },
			wantErr: ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(f *verifierFixture) string {
				claims := validClaims(time.Now())
				claims["iat"] = time.Now().Add(-2 * time.Hour).Unix()
				claims["exp"] = time.Now().Add(-time.Hour).Unix()
				return signToken(t, f.key, "k1", claims)
			},
			wantErr: ErrTokenExpired,
		},
		{
			name: "missing exp",
			token: func(f *verifierFixture) string {
				claims := validClaims(time.Now())
				delete(claims, "exp")
				return signToken(t, f.key, "k1", claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "issued in the future",
			token: func(f *verifierFixture) string {
				claims := validClaims(time.Now())
				claims["iat"] = time.Now().Add(30 * time.Minute).Unix()
				return signToken(t, f.key, "k1", claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong audience",
			token: func(f *verifierFixture) string {
				claims := validClaims(time.Now())
				claims["aud"] = "another-project"
				return signToken(t, f.key, "k1", claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(f *verifierFixture) string {
				claims := validClaims(time.Now())
				claims["iss"] = "https://accounts.example.com"
				return signToken(t, f.key, "k1", claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "signed by another key",
			token: func(f *verifierFixture) string {
				return signToken(t, otherKey, "k1", validClaims(time.Now()))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unknown kid",
			token: func(f *verifierFixture) string {
				return signToken(t, f.key, "k2", validClaims(time.Now()))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "no kid",
			token: func(f *verifierFixture) string {
				return signToken(t, f.key, "", validClaims(time.Now()))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "HS256",
			token: func(f *verifierFixture) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims(time.Now()))
				token.Header["kid"] = "k1"
				signed, err := token.SignedString([]byte("shared-secret"))
				require.NoError(t, err)
				return signed
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: func(f *verifierFixture) string {
				claims := validClaims(time.Now())
				delete(claims, "sub")
				return signToken(t, f.key, "k1", claims)
			},
			wantErr: ErrMissingSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVerifierFixture(t, nil)

			p, err := f.verifier.Verify(context.Background(), tt.token(f))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, p.IsZero())
		})
	}
}

func TestFirebaseVerifier_Verify_KeysUnavailable(t *testing.T) {
	f := newVerifierFixture(t, nil)
	f.keys.status.Store(http.StatusBadGateway)

	_, err := f.verifier.Verify(context.Background(), signToken(t, f.key, "k1", validClaims(time.Now())))

	assert.ErrorIs(t, err, ErrVerificationUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

type stubRevocation struct {
	err     error
	subject string
	at      time.Time
}

func (s *stubRevocation) CheckRevoked(_ context.Context, subject string, issuedAt time.Time) error {
	s.subject = subject
	s.at = issuedAt
	return s.err
}

func TestFirebaseVerifier_Verify_Revoked(t *testing.T) {
	revocation := &stubRevocation{err: ErrTokenRevoked}
	f := newVerifierFixture(t, revocation)
	now := time.Now()
	claims := validClaims(now)
	claims["auth_time"] = now.Add(-10 * time.Minute).Unix()

	_, err := f.verifier.Verify(context.Background(), signToken(t, f.key, "k1", claims))

	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.Equal(t, "uid-123", revocation.subject)
	assert.Equal(t, now.Add(-10*time.Minute).Unix(), revocation.at.Unix())
}

func TestFirebaseVerifier_Verify_RevocationUnavailable(t *testing.T) {
	f := newVerifierFixture(t, &stubRevocation{err: ErrVerificationUnavailable})

	_, err := f.verifier.Verify(context.Background(), signToken(t, f.key, "k1", validClaims(time.Now())))

	assert.ErrorIs(t, err, ErrVerificationUnavailable)
}

func TestFirebaseVerifier_Unconfigured_BeforeInit(t *testing.T) {
	v := NewFirebaseVerifier(writeCredentials(t, serviceAccountJSON(testProjectID)), nil, nil, logger.Nop())

	assert.False(t, v.Configured())
	_, err := v.Verify(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestFirebaseVerifier_Init_MissingCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firebase-credentials.json")
	v := NewFirebaseVerifier(path, nil, nil, logger.Nop())

	err := v.Init()
	require.Error(t, err)
	assert.False(t, v.Configured())

	// the file showing up later does not matter: Init ran once
	require.NoError(t, os.WriteFile(path, []byte(serviceAccountJSON(testProjectID)), 0o600))
	assert.Equal(t, err, v.Init())
	assert.False(t, v.Configured())

	_, verifyErr := v.Verify(context.Background(), "anything")
	assert.ErrorIs(t, verifyErr, ErrUnconfigured)
}

func TestFirebaseVerifier_Init_NoProjectID(t *testing.T) {
	v := NewFirebaseVerifier(writeCredentials(t, `{"type":"service_account"}`), nil, nil, logger.Nop())

	assert.ErrorIs(t, v.Init(), errMissingProjectID)
	assert.False(t, v.Configured())
}

func TestFirebaseVerifier_Init_MalformedCredentials(t *testing.T) {
	v := NewFirebaseVerifier(writeCredentials(t, `{"project_id":`), nil, nil, logger.Nop())

	assert.Error(t, v.Init())
	assert.False(t, v.Configured())
}

func TestFirebaseVerifier_Init_Idempotent(t *testing.T) {
	f := newVerifierFixture(t, nil)

	assert.NoError(t, f.verifier.Init())
	assert.NoError(t, f.verifier.Init())
	assert.True(t, f.verifier.Configured())
}

func TestAuthTime(t *testing.T) {
	iat := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, iat.Add(-time.Hour).Unix(), authTime(jwt.MapClaims{
		"auth_time": float64(iat.Add(-time.Hour).Unix()),
		"iat":       float64(iat.Unix()),
	}).Unix())
	assert.Equal(t, iat.Unix(), authTime(jwt.MapClaims{"iat": float64(iat.Unix())}).Unix())
	assert.True(t, authTime(jwt.MapClaims{}).IsZero())
}
