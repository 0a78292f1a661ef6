package metrics

// Metric Names
const (
	MetricNameHTTPRequestsTotal    = "gambabot_http_requests_total"
	MetricNameHTTPRequestDuration  = "gambabot_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "gambabot_http_requests_in_flight"

	MetricNameBetsPlaced           = "gambabot_bets_placed_total"
	MetricNameBetsSettled          = "gambabot_bets_settled_total"
	MetricNameMarketLookupFailures = "gambabot_market_lookup_failures_total"
	MetricNameResolutionChecks     = "gambabot_resolution_checks_total"
)

// Help Texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextBetsPlaced           = "Total number of bets placed"
	HelpTextBetsSettled          = "Total number of bets settled, by outcome"
	HelpTextMarketLookupFailures = "Total number of market lookups that found no usable market"
	HelpTextResolutionChecks     = "Total number of provider resolution checks performed"
)

// Labels
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
