package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameAttributesAdded          = "item_attributes_added_total"
	MetricNameEffectsAttached          = "item_effects_attached_total"
	MetricNameEffectConstructionErrors = "item_effect_construction_errors_total"
	MetricNameCatalogItems             = "catalog_items"
	MetricNameCatalogReloads           = "catalog_reloads_total"
	MetricNameCatalogLookupCacheHits   = "catalog_lookup_cache_hits_total"
	MetricNameCatalogLookupCacheMisses = "catalog_lookup_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextAttributesAdded          = "Total number of attributes added to items"
	HelpTextEffectsAttached          = "Total number of effects attached to items"
	HelpTextEffectConstructionErrors = "Total number of failed effect constructions"
	HelpTextCatalogItems             = "Number of items currently in the catalog"
	HelpTextCatalogReloads           = "Total number of catalog reloads"
	HelpTextCatalogLookupCacheHits   = "Total number of catalog lookup cache hits"
	HelpTextCatalogLookupCacheMisses = "Total number of catalog lookup cache misses"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelKind     = "kind"
	LabelCategory = "category"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
