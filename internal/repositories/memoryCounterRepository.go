package repositories

import (
	"context"
	"sync"

	"rankeo/internal/models"
)

// memoryCounterRepository keeps buckets in process memory. Counts are lost on restart
// and are not shared between instances.
type memoryCounterRepository struct {
	mu      sync.Mutex
	buckets map[string]map[string]int64
	now     Clock
}

func NewMemoryCounterRepository(now Clock) CounterRepository {
	if now == nil {
		now = systemClock
	}
	return &memoryCounterRepository{
		buckets: make(map[string]map[string]int64),
		now:     now,
	}
}

func (r *memoryCounterRepository) Name() string { return "memory" }

func (r *memoryCounterRepository) Increment(_ context.Context, kind models.EventKind, scope models.Scope, subject string) error {
	key := bucketKey(kind, scope, DayKey(r.now()))

	r.mu.Lock()
	defer r.mu.Unlock()

	bucket, ok := r.buckets[key]
	if !ok {
		bucket = make(map[string]int64)
		r.buckets[key] = bucket
	}
	bucket[bucketField(scope, subject)]++
	return nil
}

func (r *memoryCounterRepository) TopN(_ context.Context, kind models.EventKind, scope models.Scope, windowDays, limit int) ([]models.TrendingEntry, error) {
	totals := make(map[string]int64)

	r.mu.Lock()
	for _, day := range RecentDayKeys(r.now(), windowDays) {
		for field, count := range r.buckets[bucketKey(kind, scope, day)] {
			totals[subjectFromField(scope, field)] += count
		}
	}
	r.mu.Unlock()

	return topEntries(totals, limit), nil
}
