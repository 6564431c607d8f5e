package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"rankeo/internal/models"
)

type BreakerConfig struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
	CallTimeout      time.Duration
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		CallTimeout:      800 * time.Millisecond,
	}
}

// breakerCounterRepository fails fast while a remote store keeps erroring, and bounds
// every round trip with CallTimeout.
type breakerCounterRepository struct {
	next    CounterRepository
	breaker *gobreaker.CircuitBreaker[[]models.TrendingEntry]
	timeout time.Duration
}

func WithCircuitBreaker(next CounterRepository, cfg BreakerConfig) CounterRepository {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultBreakerConfig().FailureThreshold
	}
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("store", name).Str("from", from.String()).Str("to", to.String()).Msg("Counter store circuit changed state")
		},
	}
	return &breakerCounterRepository{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker[[]models.TrendingEntry](settings),
		timeout: cfg.CallTimeout,
	}
}

func (r *breakerCounterRepository) Name() string { return r.next.Name() }

func (r *breakerCounterRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *breakerCounterRepository) Increment(ctx context.Context, kind models.EventKind, scope models.Scope, subject string) error {
	_, err := r.breaker.Execute(func() ([]models.TrendingEntry, error) {
		ctx, cancel := r.withTimeout(ctx)
		defer cancel()
		return nil, r.next.Increment(ctx, kind, scope, subject)
	})
	return translateBreakerError(err)
}

func (r *breakerCounterRepository) TopN(ctx context.Context, kind models.EventKind, scope models.Scope, windowDays, limit int) ([]models.TrendingEntry, error) {
	entries, err := r.breaker.Execute(func() ([]models.TrendingEntry, error) {
		ctx, cancel := r.withTimeout(ctx)
		defer cancel()
		return r.next.TopN(ctx, kind, scope, windowDays, limit)
	})
	if err != nil {
		return nil, translateBreakerError(err)
	}
	return entries, nil
}

func translateBreakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
