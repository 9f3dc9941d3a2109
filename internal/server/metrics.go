package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scopelens_extractions_total",
			Help: "Total number of extraction calls",
		},
		[]string{"format", "status"}, // status: ok, unsupported, decode_failed, error
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scopelens_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)
)

// recordExtraction counts one extraction outcome.
func recordExtraction(format, status string) {
	extractionCount.WithLabelValues(format, status).Inc()
}

// recordHTTPRequestDuration records one handled request.
func recordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
