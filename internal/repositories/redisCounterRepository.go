package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rankeo/internal/models"
)

type RedisConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// NewRedisClient connects to the key-value store. An http(s) REST endpoint is mapped to
// the TLS redis endpoint of the same host; the token is used as the password.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	rawURL, err := redisURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if cfg.Token != "" {
		opts.Password = cfg.Token
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Second
	}
	opts.DialTimeout = 2 * timeout
	opts.ReadTimeout = timeout
	opts.WriteTimeout = timeout
	opts.PoolTimeout = 2 * timeout
	opts.MaxRetries = 1

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func redisURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid redis URL: %w", err)
	}
	switch u.Scheme {
	case "redis", "rediss":
		return raw, nil
	case "http", "https":
		host := u.Hostname()
		if host == "" {
			return "", fmt.Errorf("invalid redis URL: missing host in %q", raw)
		}
		return "rediss://" + host + ":6379", nil
	}
	return "", fmt.Errorf("invalid redis URL: unsupported scheme %q", u.Scheme)
}

// redisCounterRepository stores each bucket as a hash; HINCRBY gives atomic increments
// shared by every instance.
type redisCounterRepository struct {
	client *redis.Client
	now    Clock
}

func NewRedisCounterRepository(client *redis.Client, now Clock) CounterRepository {
	if now == nil {
		now = systemClock
	}
	return &redisCounterRepository{client: client, now: now}
}

func (r *redisCounterRepository) Name() string { return "redis" }

func (r *redisCounterRepository) Increment(ctx context.Context, kind models.EventKind, scope models.Scope, subject string) error {
	done := trackQuery("redis_counters", "hincrby")
	key := bucketKey(kind, scope, DayKey(r.now()))
	err := r.client.HIncrBy(ctx, key, bucketField(scope, subject), 1).Err()
	done(err)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", key, err)
	}
	return nil
}

func (r *redisCounterRepository) TopN(ctx context.Context, kind models.EventKind, scope models.Scope, windowDays, limit int) ([]models.TrendingEntry, error) {
	var mu sync.Mutex
	totals := make(map[string]int64)

	eg, ctx := errgroup.WithContext(ctx)
	for _, day := range RecentDayKeys(r.now(), windowDays) {
		key := bucketKey(kind, scope, day)
		eg.Go(func() error {
			done := trackQuery("redis_counters", "hgetall")
			bucket, err := r.client.HGetAll(ctx, key).Result()
			done(err)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", key, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for field, raw := range bucket {
				count, err := strconv.ParseInt(raw, 10, 64)
				if err != nil || count < 0 {
					log.Warn().Str("bucket", key).Str("field", field).Str("value", raw).Msg("Skipping non-numeric counter value")
					continue
				}
				totals[subjectFromField(scope, field)] += count
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return topEntries(totals, limit), nil
}
