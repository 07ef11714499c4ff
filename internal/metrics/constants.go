package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameTeamsRegistered   = "teams_registered_total"
	MetricNameAttemptsSubmitted = "dungeon_attempts_submitted_total"
	MetricNameAttemptsReviewed  = "dungeon_attempts_reviewed_total"
	MetricNameDropsGenerated    = "loot_drops_generated_total"
	MetricNameMergesReviewed    = "merge_requests_reviewed_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextTeamsRegistered   = "Total number of teams registered"
	HelpTextAttemptsSubmitted = "Total number of dungeon attempts submitted"
	HelpTextAttemptsReviewed  = "Total number of dungeon attempts reviewed"
	HelpTextDropsGenerated    = "Total number of loot drops generated"
	HelpTextMergesReviewed    = "Total number of merge requests reviewed"
)

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelRank     = "rank"
	LabelItemType = "item_type"
	LabelRarity   = "rarity"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
