package metrics

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
	MetricNameWaterings     = "plant_waterings_total"
	MetricNameFertilizings  = "plant_fertilizings_total"
	MetricNameShakes        = "plant_shakes_total"
	MetricNamePetalsPicked  = "petals_picked_total"
	MetricNameHarvests      = "plant_harvests_total"
	MetricNameHarvestScore  = "harvest_score_total"
	MetricNamePostcardsSent = "postcards_sent_total"
	MetricNameItemsBought   = "items_bought_total"
	MetricNameCoinsSpent    = "coins_spent_total"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelNeighbor = "neighbor"
	LabelColor    = "color"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextEventsPublished      = "Total number of events published"
	HelpTextEventHandlerErrors   = "Total number of event handler errors"
	HelpTextWaterings            = "Total number of waterings, split by self/neighbor"
	HelpTextFertilizings         = "Total number of fertilizer applications"
	HelpTextShakes               = "Total number of plant shakes"
	HelpTextPetalsPicked         = "Total number of petals picked, by color"
	HelpTextHarvests             = "Total number of harvests"
	HelpTextHarvestScore         = "Total score banked by harvests"
	HelpTextPostcardsSent        = "Total number of postcards sent"
	HelpTextItemsBought          = "Total number of store purchases, by item"
	HelpTextCoinsSpent           = "Total coins spent in the store"
)

// Log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected type"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
