// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "effix_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	ExportCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "effix_export_total",
			Help: "Total number of table exports",
		},
		[]string{"page", "format"}, // format: csv, pdf, terminal
	)

	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "effix_form_submissions_total",
			Help: "Total number of create form submissions",
		},
		[]string{"form"},
	)
)

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

func RecordExport(page, format string) {
	ExportCount.WithLabelValues(page, format).Inc()
}

func RecordFormSubmission(form string) {
	FormSubmissions.WithLabelValues(form).Inc()
}
