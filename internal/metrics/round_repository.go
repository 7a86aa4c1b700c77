// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundRepoRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenvote",
		Subsystem: "round_repository",
		Name:      "operations_total",
		Help:      "Count of round repository operations.",
	}, []string{"operation", "status"})
	roundRepoRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenvote",
		Subsystem: "round_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of round repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// RoundRepository tracks metrics for round repository operations.
type RoundRepository struct{}

// NewRoundRepository creates a RoundRepository metrics collector.
func NewRoundRepository() *RoundRepository {
	return &RoundRepository{}
}

// Observe records duration and status of a repository operation.
func (m RoundRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	roundRepoRequestsTotal.WithLabelValues(operation, status).Inc()
	roundRepoRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
