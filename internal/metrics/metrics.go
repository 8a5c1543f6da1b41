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
	AttributesAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAttributesAdded,
			Help: HelpTextAttributesAdded,
		},
		[]string{LabelKind},
	)

	EffectsAttached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEffectsAttached,
			Help: HelpTextEffectsAttached,
		},
		[]string{LabelCategory, LabelKind},
	)

	EffectConstructionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEffectConstructionErrors,
			Help: HelpTextEffectConstructionErrors,
		},
		[]string{LabelCategory, LabelKind},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	CatalogReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
	)

	CatalogLookupCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLookupCacheHits,
			Help: HelpTextCatalogLookupCacheHits,
		},
	)

	CatalogLookupCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLookupCacheMisses,
			Help: HelpTextCatalogLookupCacheMisses,
		},
	)
)
