// Package metrics exposes Prometheus instrumentation for backend calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hay-kot/tubenotes/internal/core/api"
)

// APIMetrics records every backend request by operation and status.
type APIMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ api.Observer = (*APIMetrics)(nil)

// NewAPIMetrics registers the request collectors on reg.
func NewAPIMetrics(reg prometheus.Registerer) *APIMetrics {
	factory := promauto.With(reg)

	return &APIMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubenotes_api_requests_total",
				Help: "Total number of backend API requests",
			},
			[]string{"op", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tubenotes_api_request_duration_seconds",
				Help:    "Backend API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
}

// ObserveRequest implements api.Observer. Requests that never got a response
// are counted under status "error".
func (m *APIMetrics) ObserveRequest(op string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.requests.WithLabelValues(op, label).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}
