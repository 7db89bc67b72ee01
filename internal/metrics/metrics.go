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
	RecipesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesProcessed,
			Help: HelpTextRecipesProcessed,
		},
		[]string{LabelRecipe},
	)

	CostCalculations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCostCalculations,
			Help: HelpTextCostCalculations,
		},
	)

	TemplateSource = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTemplateSource,
			Help: HelpTextTemplateSource,
		},
		[]string{LabelSource},
	)

	TemplateCacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTemplateCacheEvents,
			Help: HelpTextTemplateCacheEvents,
		},
		[]string{LabelEvent},
	)

	GameCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameCommands,
			Help: HelpTextGameCommands,
		},
		[]string{LabelCommand, LabelResult},
	)

	GameSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGameSessionsActive,
			Help: HelpTextGameSessionsActive,
		},
	)

	CatalogSyncedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncedRecords,
			Help: HelpTextCatalogSyncedRecords,
		},
		[]string{LabelKind},
	)
)
