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

// Business Metrics
var (
	BetsPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBetsPlaced,
			Help: HelpTextBetsPlaced,
		},
	)

	BetsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsSettled,
			Help: HelpTextBetsSettled,
		},
		[]string{LabelOutcome},
	)

	MarketLookupFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketLookupFailures,
			Help: HelpTextMarketLookupFailures,
		},
	)

	ResolutionChecks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameResolutionChecks,
			Help: HelpTextResolutionChecks,
		},
	)
)
