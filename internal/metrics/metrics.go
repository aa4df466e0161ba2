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

// Catalog Metrics
var (
	ItemsCompiled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCompiled,
			Help: HelpTextItemsCompiled,
		},
		[]string{LabelIdentity},
	)

	CompileFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCompileFailures,
			Help: HelpTextCompileFailures,
		},
		[]string{LabelReason},
	)

	CompileDegradations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCompileDegradations,
			Help: HelpTextCompileDegradations,
		},
		[]string{LabelReason},
	)

	MutationsBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMutationsBlocked,
			Help: HelpTextMutationsBlocked,
		},
		[]string{LabelEvent},
	)

	InteractionsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInteractionsDispatched,
			Help: HelpTextInteractionsDispatched,
		},
		[]string{LabelIdentity, LabelCategory},
	)

	CallbackFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCallbackFailures,
			Help: HelpTextCallbackFailures,
		},
		[]string{LabelIdentity},
	)

	DefinitionsRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDefinitionsRegistered,
			Help: HelpTextDefinitionsRegistered,
		},
	)
)
