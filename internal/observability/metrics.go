package observability

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anthromorph",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "anthromorph",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	engineOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "anthromorph",
			Subsystem: "engine",
			Name:      "operations_total",
			Help:      "Engine operations by outcome.",
		},
		[]string{"operation", "status"},
	)
	engineDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "anthromorph",
			Subsystem: "engine",
			Name:      "operation_duration_seconds",
			Help:      "Engine operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
)

// RegisterMetrics registers all collectors with the default registry.
// Safe to call from every entry point; registration happens once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, engineOperations, engineDuration)
	})
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// PrometheusRecorder implements the engine's MetricsRecorder against the
// prometheus collectors above.
type PrometheusRecorder struct{}

// NewPrometheusRecorder registers the collectors and returns a recorder
// for injection into the engine service.
func NewPrometheusRecorder() *PrometheusRecorder {
	RegisterMetrics()
	return &PrometheusRecorder{}
}

// Observe records one engine operation outcome.
func (*PrometheusRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	status := "error"
	if success {
		status = "success"
	}
	engineOperations.WithLabelValues(operation, status).Inc()
	engineDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}
