package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankeo/internal/catalog"
	"rankeo/internal/config"
	"rankeo/internal/middlewares"
	"rankeo/internal/repositories"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"https://rankeo.example"},
			RateLimitRPS:   1,
			RateLimitBurst: 3,
		},
		Store:  config.StoreConfig{Backend: "memory", Timeout: time.Second},
		Ingest: config.IngestConfig{DedupWindow: 500 * time.Millisecond},
	}
	cat := catalog.Default()
	s := newServer(cfg, cat, catalog.NewIndex(cat), nil, repositories.NewMemoryCounterRepository(nil))
	return s.httpServer.Handler
}

func TestHealthRoute(t *testing.T) {
	handler := newTestServer(t)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","counter_store":"memory"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(middlewares.RequestIDHeader))
}

func TestMetricsRouteExposesInstrumentation(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/metrics", strings.NewReader(`{"kind":"view","scope":"home","slug":"home"}`))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `http_requests_total{method="POST",path="/api/metrics",status="200"}`)
	assert.Contains(t, body, "rankeo_events_total")
}

func TestIngestPreflight(t *testing.T) {
	handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/metrics", nil)
	req.Header.Set("Origin", "https://rankeo.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://rankeo.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestIngestIsRateLimited(t *testing.T) {
	handler := newTestServer(t)

	var codes []int
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/metrics", strings.NewReader(`{"kind":"view","scope":"home","slug":"home"}`))
		req.RemoteAddr = "192.0.2.10:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestReadRoutes(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		target     string
		wantStatus int
	}{
		{target: "/api/trending/rankings", wantStatus: http.StatusOK},
		{target: "/api/trending/compares", wantStatus: http.StatusOK},
		{target: "/api/popular/rankings?days=30", wantStatus: http.StatusOK},
		{target: "/api/popular/compares", wantStatus: http.StatusOK},
		{target: "/api/entities/ciudad", wantStatus: http.StatusOK},
		{target: "/api/entities/pais/chile/metrics", wantStatus: http.StatusOK},
		{target: "/api/compare/pais/chile-vs-peru", wantStatus: http.StatusOK},
		{target: "/api/compare/ciudad/pairs", wantStatus: http.StatusOK},
		{target: "/api/rankings/ciudades-mas-verdes", wantStatus: http.StatusOK},
		{target: "/api/rankings/ciudades-mas-verdes?region=asia", wantStatus: http.StatusNotFound},
		{target: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
