package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	queryhandlers "manse-backend/application/queries/handlers"
	"manse-backend/infrastructure/config"
	"manse-backend/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCalendar struct{}

func (stubCalendar) GanjiFromSolar(ctx context.Context, year, month, day int) (string, error) {
	return "계유년 임오월 병인일", nil
}

func (stubCalendar) GanjiFromLunar(ctx context.Context, year, month, day int, leapMonth bool) (string, error) {
	return "계유년 임오월 병인일", nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		ServerAddress:      ":8080",
		Environment:        "development",
		LogLevel:           "info",
		EnableMetrics:      true,
		EnableCORS:         true,
		CORSAllowedOrigins: []string{"*"},
	}
	require.NoError(t, cfg.Validate())

	logger := zap.NewNop()
	metrics := observability.NewCollector("test")
	query := queryhandlers.NewGetFourPillarsHandler(stubCalendar{}, metrics, logger)

	return NewRouter(cfg, query, metrics, logger).Setup()
}

func TestRouter_HealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/ready"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "status")
		})
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SajuRouteWired(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/saju?birthday=19900101", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "result")
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/saju", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
