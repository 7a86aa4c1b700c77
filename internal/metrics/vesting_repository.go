package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	vestingRepoRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenvote",
		Subsystem: "vesting_repository",
		Name:      "operations_total",
		Help:      "Count of vesting repository operations.",
	}, []string{"operation", "status"})
	vestingRepoRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenvote",
		Subsystem: "vesting_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of vesting repository operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// VestingRepository tracks metrics for vesting repository operations.
type VestingRepository struct{}

// NewVestingRepository creates a VestingRepository metrics collector.
func NewVestingRepository() *VestingRepository {
	return &VestingRepository{}
}

// Observe records duration and status of a repository operation.
func (m VestingRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	vestingRepoRequestsTotal.WithLabelValues(operation, status).Inc()
	vestingRepoRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
