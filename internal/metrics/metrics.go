// Package metrics exposes Prometheus instrumentation for provider calls and
// the search cache.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProviderCalls counts provider API calls by provider and operation.
	ProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_provider_calls_total",
		Help: "Provider API calls issued, by provider and operation.",
	}, []string{"provider", "op"})

	// ProviderFailures counts failed provider API calls.
	ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_provider_failures_total",
		Help: "Provider API calls that returned an error, by provider and operation.",
	}, []string{"provider", "op"})

	// ProviderDuration observes provider call latency.
	ProviderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "palette_provider_duration_seconds",
		Help:    "Provider API call latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	// CacheHits counts search cache hits by provider.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_search_cache_hits_total",
		Help: "Search cache hits, by provider.",
	}, []string{"provider"})

	// CacheMisses counts search cache misses by provider.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_search_cache_misses_total",
		Help: "Search cache misses, by provider.",
	}, []string{"provider"})

	// BoardsGenerated counts generated moodboards.
	BoardsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "palette_boards_generated_total",
		Help: "Moodboards generated.",
	})

	// BreakerOpens counts circuit breaker transitions to open.
	BreakerOpens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "palette_breaker_opens_total",
		Help: "Circuit breaker transitions into the open state, by provider.",
	}, []string{"provider"})
)
