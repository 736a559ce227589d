package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Domain operation metrics
	RoomOperationsCounter    prometheus.CounterVec
	InquiryOperationsCounter prometheus.CounterVec

	// Change feed metrics
	FeedEventsCounter      prometheus.CounterVec
	FeedSubscriptionsGauge prometheus.Gauge
)

// InitMetrics initializes Prometheus metrics with the configured name prefix.
func InitMetrics(prefix string) {
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of failed authentications",
		},
	)

	RoomOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_room_operations_total",
			Help: "Total number of room catalog operations",
		},
		[]string{"operation"},
	)

	InquiryOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_inquiry_operations_total",
			Help: "Total number of inquiry operations",
		},
		[]string{"operation"},
	)

	FeedEventsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_feed_events_total",
			Help: "Total number of change feed events published",
		},
		[]string{"table", "action"},
	)

	FeedSubscriptionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: prefix + "_feed_subscriptions",
			Help: "Currently connected change feed subscribers",
		},
	)
}
