package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditRepoRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenvote",
		Subsystem: "audit_repository",
		Name:      "operations_total",
		Help:      "Count of audit repository operations.",
	}, []string{"operation", "status"})
	auditRepoRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenvote",
		Subsystem: "audit_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of audit repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
)

// AuditRepository tracks metrics for ClickHouse audit log operations.
type AuditRepository struct{}

// NewAuditRepository creates an AuditRepository metrics collector.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Observe records duration and status of an audit log operation.
func (m AuditRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	auditRepoRequestsTotal.WithLabelValues(operation, status).Inc()
	auditRepoRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
