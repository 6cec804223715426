// Package metrics exposes the Prometheus instrumentation: HTTP
// request metrics collected by middleware, and garden business
// metrics fed from the event bus.
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

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Waterings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWaterings,
			Help: HelpTextWaterings,
		},
		[]string{LabelNeighbor},
	)

	Fertilizings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFertilizings,
			Help: HelpTextFertilizings,
		},
	)

	Shakes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameShakes,
			Help: HelpTextShakes,
		},
	)

	PetalsPicked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetalsPicked,
			Help: HelpTextPetalsPicked,
		},
		[]string{LabelColor},
	)

	Harvests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvests,
			Help: HelpTextHarvests,
		},
	)

	HarvestScore = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvestScore,
			Help: HelpTextHarvestScore,
		},
	)

	PostcardsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePostcardsSent,
			Help: HelpTextPostcardsSent,
		},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)
)
