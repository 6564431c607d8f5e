package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"rankeo/internal/models"
)

const dayKeyLayout = "2006-01-02"

var ErrStoreUnavailable = errors.New("counter store unavailable")

// CounterRepository holds day-partitioned usage counters. Increment is not idempotent;
// duplicate suppression belongs to the caller.
type CounterRepository interface {
	Increment(ctx context.Context, kind models.EventKind, scope models.Scope, subject string) error
	TopN(ctx context.Context, kind models.EventKind, scope models.Scope, windowDays, limit int) ([]models.TrendingEntry, error)
	Name() string
}

// Clock returns the current time. Stores derive the UTC day bucket from it.
type Clock func() time.Time

func systemClock() time.Time { return time.Now() }

// DayKey formats t as the UTC day bucket key, YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// RecentDayKeys lists the day keys of a window ending today, newest first. Windows
// shorter than one day are widened to today.
func RecentDayKeys(now time.Time, windowDays int) []string {
	if windowDays < 1 {
		windowDays = 1
	}
	u := now.UTC()
	today := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	keys := make([]string, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		keys = append(keys, DayKey(today.AddDate(0, 0, -i)))
	}
	return keys
}

func bucketKey(kind models.EventKind, scope models.Scope, dayKey string) string {
	return fmt.Sprintf("metrics:%s:%s:%s", kind, scope, dayKey)
}

// bucketField is the hash field of a subject. The scope prefix keeps buckets written by
// earlier deployments readable.
func bucketField(scope models.Scope, subject string) string {
	return string(scope) + ":" + subject
}

func subjectFromField(scope models.Scope, field string) string {
	return strings.TrimPrefix(field, string(scope)+":")
}

// topEntries orders totals by count descending, subject ascending, and keeps limit.
func topEntries(totals map[string]int64, limit int) []models.TrendingEntry {
	if limit <= 0 {
		return []models.TrendingEntry{}
	}
	entries := make([]models.TrendingEntry, 0, len(totals))
	for subject, count := range totals {
		entries = append(entries, models.TrendingEntry{SubjectKey: subject, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].SubjectKey < entries[j].SubjectKey
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
