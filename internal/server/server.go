package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"rankeo/internal/catalog"
	"rankeo/internal/config"
	"rankeo/internal/database"
	"rankeo/internal/middlewares"
	"rankeo/internal/repositories"
	"rankeo/internal/services"
)

type Server struct {
	cfg         *config.Config
	httpServer  *http.Server
	db          database.Service
	counters    repositories.CounterRepository
	rateLimiter *middlewares.RateLimiter

	ingestService   services.IngestService
	trendingService services.TrendingService
	entityService   services.EntityService
	compareService  services.CompareService
	pairService     services.PairService
}

// NewServer builds the catalog, the counter store and every service from cfg. It never
// fails: an unreachable store degrades to in-memory counters.
func NewServer(cfg *config.Config) *Server {
	cat := catalog.Default()
	for _, warning := range cat.Validate() {
		log.Warn().Str("warning", warning).Msg("Catalog validation")
	}
	index := catalog.NewIndex(cat)

	var db database.Service
	if cfg.Store.MongoURI != "" {
		var err error
		db, err = database.New(cfg.Store.MongoURI)
		if err != nil {
			log.Error().Err(err).Msg("MongoDB unavailable")
			db = nil
		}
	}

	breaker := repositories.DefaultBreakerConfig()
	breaker.CallTimeout = cfg.Store.Timeout
	counters := repositories.NewCounterRepository(repositories.StoreOptions{
		Backend: cfg.Store.Backend,
		Redis: repositories.RedisConfig{
			URL:     cfg.Store.KVURL,
			Token:   cfg.Store.KVToken,
			Timeout: cfg.Store.Timeout,
		},
		Mongo:         db,
		MongoDatabase: cfg.Store.MongoDatabase,
		Breaker:       breaker,
	})

	return newServer(cfg, cat, index, db, counters)
}

func newServer(cfg *config.Config, cat *catalog.Catalog, index *catalog.Index, db database.Service, counters repositories.CounterRepository) *Server {
	metricService := services.NewMetricService(cat, index)

	s := &Server{
		cfg:             cfg,
		db:              db,
		counters:        counters,
		rateLimiter:     middlewares.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst),
		ingestService:   services.NewIngestService(counters, cfg.Ingest.DedupWindow, nil),
		trendingService: services.NewTrendingService(counters, cat, index),
		entityService:   services.NewEntityService(cat, index, metricService),
		compareService:  services.NewCompareService(index, metricService),
		pairService:     services.NewPairService(index),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.cfg.Server.Port).Str("counter_store", s.counters.Name()).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close MongoDB connection")
		}
	}

	log.Info().Msg("Server exiting")
	done <- true
}
