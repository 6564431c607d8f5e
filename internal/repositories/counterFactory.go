package repositories

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"rankeo/internal/database"
)

const (
	BackendAuto   = "auto"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type StoreOptions struct {
	Backend       string
	Redis         RedisConfig
	Mongo         database.Service
	MongoDatabase string
	Breaker       BreakerConfig
	Now           Clock
}

// ResolveBackend applies the auto rule: the key-value store is used only when both its
// endpoint and token are configured.
func ResolveBackend(opts StoreOptions) string {
	if opts.Backend != "" && opts.Backend != BackendAuto {
		return opts.Backend
	}
	if opts.Redis.URL != "" && opts.Redis.Token != "" {
		return BackendRedis
	}
	return BackendMemory
}

// NewCounterRepository builds the configured store. A remote store that cannot be reached
// at startup is replaced by the in-memory store so the site keeps serving.
func NewCounterRepository(opts StoreOptions) CounterRepository {
	backend := ResolveBackend(opts)

	switch backend {
	case BackendRedis:
		client, err := NewRedisClient(opts.Redis)
		if err != nil {
			log.Error().Err(err).Msg("Redis counter store unavailable, using in-memory counters")
			break
		}
		log.Info().Msg("Using redis counter store")
		return WithCircuitBreaker(NewRedisCounterRepository(client, opts.Now), opts.Breaker)

	case BackendMongo:
		if opts.Mongo == nil {
			log.Error().Msg("Mongo counter store selected without MONGO_URI, using in-memory counters")
			break
		}
		repo := newMongoCounterRepository(opts.Mongo, opts.MongoDatabase, opts.Now)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("Could not ensure counter indexes")
		}
		cancel()
		log.Info().Str("database", opts.MongoDatabase).Msg("Using mongo counter store")
		return WithCircuitBreaker(repo, opts.Breaker)

	case BackendMemory:
	default:
		log.Warn().Str("backend", backend).Msg("Unknown counter store, using in-memory counters")
	}

	log.Info().Msg("Using in-memory counter store; counts are per process and lost on restart")
	return NewMemoryCounterRepository(opts.Now)
}
