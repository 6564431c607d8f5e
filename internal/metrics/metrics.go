package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ingestion
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rankeo_events_total",
		Help: "Total number of usage events received.",
	}, []string{"kind", "scope", "outcome"}) // outcome: "accepted", "suppressed", "dropped" or "invalid"

	// Counter store
	CounterStoreErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rankeo_counter_store_errors_total",
		Help: "Total number of counter store operations that failed.",
	}, []string{"store", "op"})

	// Trending
	TrendingFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rankeo_trending_fallback_total",
		Help: "Total number of trending comparison reads served from view events.",
	})
	TrendingDroppedKeysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rankeo_trending_dropped_keys_total",
		Help: "Total number of counted subject keys that no longer resolve to catalog content.",
	}, []string{"scope"})
)
