package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankeo/internal/catalog"
	"rankeo/internal/models"
	"rankeo/internal/repositories"
	"rankeo/internal/services"
)

type fixture struct {
	router   *mux.Router
	counters repositories.CounterRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	c := catalog.Default()
	ix := catalog.NewIndex(c)
	counters := repositories.NewMemoryCounterRepository(clock)
	metricService := services.NewMetricService(c, ix)

	eh := NewEventHandler(services.NewIngestService(counters, time.Second, clock))
	th := NewTrendingHandler(services.NewTrendingService(counters, c, ix))
	enh := NewEntityHandler(
		services.NewEntityService(c, ix, metricService),
		services.NewCompareService(ix, metricService),
		services.NewPairService(ix),
	)
	ch := NewCommonHandler(nil, counters)

	r := mux.NewRouter()
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.HandleFunc("/api/metrics", eh.RecordEvent).Methods("POST")
	r.HandleFunc("/api/trending/rankings", th.TrendingRankings).Methods("GET")
	r.HandleFunc("/api/trending/compares", th.TrendingCompares).Methods("GET")
	r.HandleFunc("/api/popular/rankings", th.PopularRankings).Methods("GET")
	r.HandleFunc("/api/popular/compares", th.PopularCompares).Methods("GET")
	r.HandleFunc("/api/entities/{kind}", enh.ListEntities).Methods("GET")
	r.HandleFunc("/api/entities/{kind}/{slug}/metrics", enh.EntityMetrics).Methods("GET")
	r.HandleFunc("/api/compare/{kind}/pairs", enh.Pairs).Methods("GET")
	r.HandleFunc("/api/compare/{kind}/{pair}", enh.Compare).Methods("GET")
	r.HandleFunc("/api/rankings/{id}", enh.RankingSegment).Methods("GET")

	return &fixture{router: r, counters: counters}
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestRecordEvent(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "valid event", body: `{"kind":"view","scope":"ranking","slug":"paises-mas-innovadores"}`, wantStatus: http.StatusOK, wantBody: `{"ok":true}`},
		{name: "compound key", body: `{"kind":"share","scope":"ranking","slug":"paises-mas-innovadores|region:europa|anio:2025"}`, wantStatus: http.StatusOK, wantBody: `{"ok":true}`},
		{name: "not json", body: `kind=view`, wantStatus: http.StatusBadRequest, wantBody: `{"ok":false}`},
		{name: "missing slug", body: `{"kind":"view","scope":"ranking"}`, wantStatus: http.StatusBadRequest, wantBody: `{"ok":false}`},
		{name: "unknown kind", body: `{"kind":"click","scope":"ranking","slug":"x"}`, wantStatus: http.StatusBadRequest, wantBody: `{"ok":false}`},
		{name: "unknown scope", body: `{"kind":"view","scope":"blog","slug":"x"}`, wantStatus: http.StatusBadRequest, wantBody: `{"ok":false}`},
		{name: "slug with spaces", body: `{"kind":"view","scope":"home","slug":"hola mundo"}`, wantStatus: http.StatusBadRequest, wantBody: `{"ok":false}`},
		{name: "slug is a number", body: `{"kind":"view","scope":"home","slug":42}`, wantStatus: http.StatusBadRequest, wantBody: `{"ok":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rr := f.do(http.MethodPost, "/api/metrics", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestRecordEventFeedsTrending(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 5; i++ {
		rr := f.do(http.MethodPost, "/api/metrics", `{"kind":"view","scope":"ranking","slug":"paises-mas-innovadores"}`)
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr := f.do(http.MethodPost, "/api/metrics", `{"kind":"compare","scope":"compare_pais","slug":"chile-vs-peru"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(http.MethodGet, "/api/trending/rankings", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var rankings []models.TrendingItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rankings))
	require.Len(t, rankings, 1)
	assert.Equal(t, int64(1), rankings[0].Count)
	assert.Equal(t, "/ranking/paises-mas-innovadores", rankings[0].Href)

	rr = f.do(http.MethodGet, "/api/popular/compares?days=30&limit=5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var compares []models.TrendingItem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &compares))
	require.Len(t, compares, 1)
	assert.Equal(t, "Chile vs Perú", compares[0].Title)
}

func TestTrendingEndpointsReturnEmptyArrays(t *testing.T) {
	f := newFixture(t)
	for _, target := range []string{
		"/api/trending/rankings",
		"/api/trending/compares?days=500",
		"/api/popular/rankings?limit=abc",
		"/api/popular/compares",
	} {
		rr := f.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, rr.Code, target)
		assert.JSONEq(t, `[]`, rr.Body.String(), target)
	}
}

func TestEntityEndpoints(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/api/entities/pais", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var entities []models.EntitySummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entities))
	assert.Len(t, entities, 20)

	rr = f.do(http.MethodGet, "/api/entities/ciudad/sao-paulo/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var detail models.EntityDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
	assert.Equal(t, "São Paulo", detail.Name)
	assert.NotEmpty(t, detail.Metrics)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/entities/planeta", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/entities/pais/atlantida/metrics", "").Code)
}

func TestCompareEndpoints(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/api/compare/pais/chile-vs-peru", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var comparison models.Comparison
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comparison))
	assert.Equal(t, "Chile", comparison.A.Name)
	assert.Equal(t, "Perú", comparison.B.Name)
	assert.NotEmpty(t, comparison.Rows)
	assert.NotEmpty(t, comparison.Intro)
	assert.NotEmpty(t, comparison.Summary)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/compare/pais/chile-peru", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/compare/pais/chile-vs-lima", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/compare/region/a-vs-b", "").Code)

	rr = f.do(http.MethodGet, "/api/compare/ciudad/pairs?top=4&limit=3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var pairs []string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pairs))
	assert.Len(t, pairs, 3)

	rr = f.do(http.MethodGet, "/api/compare/pais/pairs", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pairs))
	assert.Len(t, pairs, 190)
}

func TestRankingSegmentEndpoint(t *testing.T) {
	f := newFixture(t)

	rr := f.do(http.MethodGet, "/api/rankings/paises-mas-competitivos?region=europa&year=2024", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var segment models.RankingSegment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &segment))
	assert.Equal(t, "Países más competitivos en Europa 2024", segment.Title)
	assert.NotEmpty(t, segment.Entries)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/rankings/no-existe", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/rankings/paises-mas-competitivos?year=1990", "").Code)
}

func TestHealthHandler(t *testing.T) {
	f := newFixture(t)
	rr := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","counter_store":"memory"}`, rr.Body.String())
}
