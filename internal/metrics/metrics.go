package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for flightdeck.
type MetricsRegistry struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Seeding metrics
	SeedRunsTotal   *prometheus.CounterVec
	SeedRunDuration prometheus.Histogram
	SeedRowsTotal   *prometheus.CounterVec
}

// NewMetricsRegistry registers all metrics on the default registerer.
func NewMetricsRegistry() *MetricsRegistry {
	return NewMetricsRegistryWith(prometheus.DefaultRegisterer)
}

// NewMetricsRegistryWith registers on a caller-supplied registerer, which
// keeps tests free of duplicate-registration panics.
func NewMetricsRegistryWith(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightdeck_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		SeedRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_seed_runs_total",
				Help: "Total seeding runs by outcome",
			},
			[]string{"outcome"},
		),
		SeedRunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flightdeck_seed_run_duration_seconds",
				Help:    "Seeding run execution time in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
		SeedRowsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_seed_rows_total",
				Help: "Total rows inserted by seeding runs, by table",
			},
			[]string{"table"},
		),
	}
}
