// Package metrics provides Prometheus metrics for the search service.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Search Metrics
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search requests by entity kind",
		},
		[]string{"kind"},
	)

	SearchShortQueryTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_short_query_total",
			Help: "Queries rejected by the minimum-length fast path",
		},
	)

	SearchEmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_emissions_total",
			Help: "Result emissions by phase",
		},
		[]string{"phase"}, // "partial" or "final"
	)

	SearchLocalSufficientTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_local_sufficient_total",
			Help: "Searches resolved entirely from the local index",
		},
	)

	SearchRemoteFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_remote_fallbacks_total",
			Help: "Debounced remote lookups actually performed",
		},
	)

	SearchStaleDiscardsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_stale_discards_total",
			Help: "Remote completions discarded because a newer query superseded them",
		},
	)

	SearchAliasHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_alias_hits_total",
			Help: "Queries resolved through the nickname table",
		},
	)

	LocalQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_local_query_duration_seconds",
			Help:    "Local index query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	LocalQueryErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_local_query_errors_total",
			Help: "Local index failures (treated as empty result sets)",
		},
	)

	// Remote Store Metrics
	RemoteRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_remote_requests_total",
			Help: "Total remote store requests made",
		},
	)

	RemoteErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_remote_errors_total",
			Help: "Remote store errors by type",
		},
		[]string{"type"}, // "network", "status", "decode", "rate_limit"
	)

	RemoteQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_remote_query_duration_seconds",
			Help:    "Remote store query latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	RemoteCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_remote_cache_hits_total",
			Help: "Remote query cache hit count",
		},
	)

	RemoteCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_remote_cache_misses_total",
			Help: "Remote query cache miss count",
		},
	)

	// Index Metrics
	EntityIndexSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "search_entity_index_size",
			Help: "Number of entities in the local index by kind",
		},
		[]string{"kind"},
	)

	AliasTableSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_alias_table_size",
			Help: "Number of distinct nicknames in the alias table",
		},
	)
)
