package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulerFetchDueTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenvote",
		Subsystem: "round_scheduler",
		Name:      "fetch_due_total",
		Help:      "Count of attempts to fetch rounds due for a transition.",
	}, []string{"stage", "status"})

	schedulerFetchDueDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenvote",
		Subsystem: "round_scheduler",
		Name:      "fetch_due_duration_seconds",
		Help:      "Duration of fetching due rounds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage", "status"})

	schedulerProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenvote",
		Subsystem: "round_scheduler",
		Name:      "process_batch_total",
		Help:      "Count of due-round batches processed.",
	}, []string{"stage", "status"})

	schedulerProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenvote",
		Subsystem: "round_scheduler",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a batch of due rounds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage", "status"})

	schedulerProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenvote",
		Subsystem: "round_scheduler",
		Name:      "process_batch_size",
		Help:      "Number of rounds processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"stage"})

	schedulerProcessRoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tokenvote",
		Subsystem: "round_scheduler",
		Name:      "process_round_duration_seconds",
		Help:      "Duration of processing a single round.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage", "status"})
)

// RoundScheduler tracks metrics for one round scheduler stage.
type RoundScheduler struct {
	stage string
}

// NewRoundScheduler constructs a RoundScheduler with sane defaults.
func NewRoundScheduler(stage string) *RoundScheduler {
	if stage == "" {
		stage = "unknown"
	}
	return &RoundScheduler{stage: stage}
}

// ObserveFetchDue records a fetch-due attempt outcome and duration.
func (m RoundScheduler) ObserveFetchDue(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerFetchDueTotal.WithLabelValues(m.stage, status).Inc()
	schedulerFetchDueDuration.WithLabelValues(m.stage, status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a batch of due rounds.
func (m RoundScheduler) ObserveProcessBatch(err error, rounds int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerProcessBatchTotal.WithLabelValues(m.stage, status).Inc()
	schedulerProcessBatchDuration.WithLabelValues(m.stage, status).
		Observe(time.Since(started).Seconds())
	schedulerProcessBatchSize.WithLabelValues(m.stage).Observe(float64(rounds))
}

// ObserveProcessRound records processing of a single round.
func (m RoundScheduler) ObserveProcessRound(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerProcessRoundDuration.WithLabelValues(m.stage, status).
		Observe(time.Since(started).Seconds())
}
