package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rankeo/internal/metrics"
	"rankeo/internal/models"
	"rankeo/internal/repositories"
)

const (
	DefaultDedupWindow = 500 * time.Millisecond
	dedupCapacity      = 10000
)

var ErrInvalidEvent = errors.New("invalid metric event")

var subjectKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.|:]+$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// eventValidator returns the shared validator with the subject key rule registered.
func eventValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("subjectkey", func(fl validator.FieldLevel) bool {
			return subjectKeyPattern.MatchString(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("failed to register subjectkey validator: %v", err))
		}
	})
	return validate
}

type Outcome string

const (
	OutcomeAccepted   Outcome = "accepted"
	OutcomeSuppressed Outcome = "suppressed"
	OutcomeDropped    Outcome = "dropped"
)

type IngestService interface {
	Record(ctx context.Context, event models.MetricEvent) (Outcome, error)
}

type ingestServiceImpl struct {
	counters repositories.CounterRepository
	window   time.Duration
	now      repositories.Clock

	mu       sync.Mutex
	lastSeen *lru.Cache[string, time.Time]
}

func NewIngestService(counters repositories.CounterRepository, window time.Duration, now repositories.Clock) IngestService {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	if now == nil {
		now = time.Now
	}
	lastSeen, err := lru.New[string, time.Time](dedupCapacity)
	if err != nil {
		panic(fmt.Sprintf("failed to create dedup cache: %v", err))
	}
	return &ingestServiceImpl{counters: counters, window: window, now: now, lastSeen: lastSeen}
}

// Record validates an event, drops repeats seen within the dedup window and increments
// the day's counter once. A failing store is logged and reported as OutcomeDropped; only
// invalid events return an error.
func (s *ingestServiceImpl) Record(ctx context.Context, event models.MetricEvent) (Outcome, error) {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &log.Logger
	}

	event.SubjectKey = strings.TrimSpace(event.SubjectKey)
	if err := eventValidator().Struct(event); err != nil {
		metrics.EventsTotal.WithLabelValues("invalid", "invalid", "invalid").Inc()
		logger.Debug().Err(err).Msg("Rejected metric event")
		return "", fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	if s.seenRecently(event) {
		metrics.EventsTotal.WithLabelValues(string(event.Kind), string(event.Scope), string(OutcomeSuppressed)).Inc()
		return OutcomeSuppressed, nil
	}

	if err := s.counters.Increment(ctx, event.Kind, event.Scope, event.SubjectKey); err != nil {
		metrics.EventsTotal.WithLabelValues(string(event.Kind), string(event.Scope), string(OutcomeDropped)).Inc()
		metrics.CounterStoreErrorsTotal.WithLabelValues(s.counters.Name(), "increment").Inc()
		logger.Error().Err(err).
			Str("kind", string(event.Kind)).
			Str("scope", string(event.Scope)).
			Str("slug", event.SubjectKey).
			Msg("Failed to record metric event")
		return OutcomeDropped, nil
	}

	metrics.EventsTotal.WithLabelValues(string(event.Kind), string(event.Scope), string(OutcomeAccepted)).Inc()
	return OutcomeAccepted, nil
}

// seenRecently checks and refreshes the last-seen time of an event in one step.
func (s *ingestServiceImpl) seenRecently(event models.MetricEvent) bool {
	key := string(event.Kind) + ":" + string(event.Scope) + ":" + event.SubjectKey
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastSeen.Get(key); ok && now.Sub(last) < s.window {
		return true
	}
	s.lastSeen.Add(key, now)
	return false
}
