package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rankeo/internal/handlers"
	"rankeo/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middlewares.NewPrometheusMiddleware().Instrument)
	r.Use(middlewares.Cors(s.cfg.Server.AllowedOrigins))

	ch := handlers.NewCommonHandler(s.db, s.counters)
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.registerEventRoutes(r)
	s.registerTrendingRoutes(r)
	s.registerEntityRoutes(r)

	return r
}

func (s *Server) registerEventRoutes(r *mux.Router) {
	eh := handlers.NewEventHandler(s.ingestService)
	r.Handle("/api/metrics", s.rateLimiter.Limit(http.HandlerFunc(eh.RecordEvent))).Methods("POST", "OPTIONS")
}

func (s *Server) registerTrendingRoutes(r *mux.Router) {
	th := handlers.NewTrendingHandler(s.trendingService)
	r.HandleFunc("/api/trending/rankings", th.TrendingRankings).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/trending/compares", th.TrendingCompares).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/popular/rankings", th.PopularRankings).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/popular/compares", th.PopularCompares).Methods("GET", "OPTIONS")
}

func (s *Server) registerEntityRoutes(r *mux.Router) {
	eh := handlers.NewEntityHandler(s.entityService, s.compareService, s.pairService)
	r.HandleFunc("/api/entities/{kind}", eh.ListEntities).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/entities/{kind}/{slug}/metrics", eh.EntityMetrics).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/compare/{kind}/pairs", eh.Pairs).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/compare/{kind}/{pair}", eh.Compare).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/rankings/{id}", eh.RankingSegment).Methods("GET", "OPTIONS")
}
