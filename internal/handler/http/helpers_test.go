package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/env-metrics/internal/catalog"
	"github.com/MKhiriev/env-metrics/internal/config"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"github.com/MKhiriev/env-metrics/internal/mock"
	"github.com/MKhiriev/env-metrics/internal/service"
	"github.com/MKhiriev/env-metrics/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testVersion = "1.0.0"
	testOrigin  = "http://localhost:3000"
	testToken   = "test-token"
)

var testPrincipal = models.Principal{ID: "uid-1", Email: "user@example.com"}

type testEnv struct {
	handler      *Handler
	router       http.Handler
	auth         *mock.MockAuthService
	measurements *mock.MockMeasurementService
	views        *mock.MockViewService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:         mock.NewMockAuthService(ctrl),
		measurements: mock.NewMockMeasurementService(ctrl),
		views:        mock.NewMockViewService(ctrl),
	}

	cfg := config.StructuredConfig{
		App:    config.App{Version: testVersion},
		Server: config.Server{CORSOrigins: []string{testOrigin}},
	}
	env.handler = NewHandler(&service.Services{
		AuthService:        env.auth,
		MeasurementService: env.measurements,
		ViewService:        env.views,
	}, catalog.Default(), cfg, logger.Nop())
	env.router = env.handler.Init()

	return env
}

// do sends a request with an optional bearer token through the full router.
func (e *testEnv) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return serve(e.router, req)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// expectAuth makes the auth service accept testToken.
func (e *testEnv) expectAuth() {
	e.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(testPrincipal, nil)
}

func resource(t *testing.T, name string) catalog.Resource {
	t.Helper()
	r, err := catalog.Default().Resource(name)
	require.NoError(t, err)
	return r
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Detail
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
