package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains all Prometheus metrics for the PAD generator
type Metrics struct {
	// DL Plus message metrics
	MessagesBuilt  prometheus.Counter
	MessagesParsed prometheus.Counter
	BuildErrors    prometheus.Counter
	MessageBytes   prometheus.Histogram
	TagsPerMessage prometheus.Histogram

	// DLS output metrics
	DLSWrites      prometheus.Counter
	DLSWriteErrors prometheus.Counter

	// Track metrics
	TrackUpdates prometheus.Counter

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPErrors          *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		// DL Plus message metrics
		MessagesBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "padgen_messages_built_total",
			Help: "Total number of DL Plus messages built",
		}),
		MessagesParsed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "padgen_messages_parsed_total",
			Help: "Total number of DL Plus messages parsed",
		}),
		BuildErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "padgen_build_errors_total",
			Help: "Total number of failed DL Plus message builds",
		}),
		MessageBytes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "padgen_message_bytes",
			Help:    "UTF-8 byte length of built DL Plus messages",
			Buckets: prometheus.LinearBuckets(0, 16, 9), // 0 to the 128 byte ceiling
		}),
		TagsPerMessage: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "padgen_tags_per_message",
			Help:    "Number of DL Plus tags per built message",
			Buckets: prometheus.LinearBuckets(0, 1, 5), // 0 to 4 tags
		}),

		// DLS output metrics
		DLSWrites: promauto.NewCounter(prometheus.CounterOpts{
			Name: "padgen_dls_writes_total",
			Help: "Total number of DLS file writes",
		}),
		DLSWriteErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "padgen_dls_write_errors_total",
			Help: "Total number of failed DLS file writes",
		}),

		// Track metrics
		TrackUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "padgen_track_updates_total",
			Help: "Total number of now-playing track updates",
		}),

		// HTTP API metrics
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "padgen_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "padgen_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		HTTPErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "padgen_http_errors_total",
			Help: "Total number of HTTP errors",
		}, []string{"method", "endpoint", "error_type"}),
	}
}

// RecordMessageBuilt records a successfully built message
func (m *Metrics) RecordMessageBuilt(messageBytes, tagCount int) {
	m.MessagesBuilt.Inc()
	m.MessageBytes.Observe(float64(messageBytes))
	m.TagsPerMessage.Observe(float64(tagCount))
}

// RecordMessageParsed increments the messages parsed counter
func (m *Metrics) RecordMessageParsed() {
	m.MessagesParsed.Inc()
}

// RecordBuildError increments the build errors counter
func (m *Metrics) RecordBuildError() {
	m.BuildErrors.Inc()
}

// RecordDLSWrite records a DLS file write attempt
func (m *Metrics) RecordDLSWrite(err error) {
	if err != nil {
		m.DLSWriteErrors.Inc()
		return
	}
	m.DLSWrites.Inc()
}

// RecordTrackUpdate increments the track updates counter
func (m *Metrics) RecordTrackUpdate() {
	m.TrackUpdates.Inc()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordHTTPError records an HTTP error
func (m *Metrics) RecordHTTPError(method, endpoint, errorType string) {
	m.HTTPErrors.WithLabelValues(method, endpoint, errorType).Inc()
}
