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

// Catalog metric names
const (
	MetricNameItemsCompiled          = "items_compiled_total"
	MetricNameCompileFailures        = "item_compile_failures_total"
	MetricNameCompileDegradations    = "item_compile_degradations_total"
	MetricNameMutationsBlocked       = "container_mutations_blocked_total"
	MetricNameInteractionsDispatched = "interactions_dispatched_total"
	MetricNameCallbackFailures       = "interaction_callback_failures_total"
	MetricNameDefinitionsRegistered  = "definitions_registered"
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

// Catalog metric help text
const (
	HelpTextItemsCompiled          = "Total number of stacks compiled from definitions"
	HelpTextCompileFailures        = "Total number of fatal compile failures"
	HelpTextCompileDegradations    = "Total number of non-fatal attribute degradations during compile"
	HelpTextMutationsBlocked       = "Total number of container mutations vetoed by protection"
	HelpTextInteractionsDispatched = "Total number of interaction callbacks invoked"
	HelpTextCallbackFailures       = "Total number of interaction callbacks that failed"
	HelpTextDefinitionsRegistered  = "Current number of registered item definitions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelIdentity = "identity"
	LabelReason   = "reason"
	LabelEvent    = "event"
	LabelCategory = "category"
)

// ============================================================================
// Label Values
// ============================================================================

// Compile failure / degradation reasons
const (
	ReasonUnknownBaseKind  = "unknown_base_kind"
	ReasonUnknownRarity    = "unknown_rarity"
	ReasonUnknownModifier  = "unknown_modifier"
	ReasonMalformedVisual  = "malformed_visual_reference"
	ReasonProfileFetch     = "profile_fetch_failure"
	ReasonPlaceholderError = "placeholder_failure"
)

// Container mutation event names
const (
	EventClick    = "click"
	EventDrag     = "drag"
	EventDrop     = "drop"
	EventHandSwap = "hand_swap"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
