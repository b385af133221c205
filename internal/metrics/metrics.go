package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Datastore Metrics
var (
	HealthChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHealthChecksTotal,
			Help: HelpTextHealthChecksTotal,
		},
		[]string{LabelResult},
	)

	ProvisionRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProvisionRuns,
			Help: HelpTextProvisionRuns,
		},
		[]string{LabelOutcome},
	)

	SeedRowsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedRowsInserted,
			Help: HelpTextSeedRowsInserted,
		},
		[]string{LabelTable},
	)
)
