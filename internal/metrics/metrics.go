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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	TeamsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTeamsRegistered,
			Help: HelpTextTeamsRegistered,
		},
	)

	AttemptsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAttemptsSubmitted,
			Help: HelpTextAttemptsSubmitted,
		},
		[]string{LabelRank},
	)

	AttemptsReviewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAttemptsReviewed,
			Help: HelpTextAttemptsReviewed,
		},
		[]string{LabelStatus},
	)

	DropsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsGenerated,
			Help: HelpTextDropsGenerated,
		},
		[]string{LabelItemType, LabelRarity},
	)

	MergesReviewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMergesReviewed,
			Help: HelpTextMergesReviewed,
		},
		[]string{LabelStatus},
	)
)
