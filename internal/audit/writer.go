package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/pkg/batcher"
)

// Sink accepts audit events for asynchronous persistence. Services emit
// through this interface so tests can swap in a recorder.
type Sink interface {
	Record(ctx context.Context, ev Event) error
}

// EventInserter is the persistence half the writer batches into.
type EventInserter interface {
	InsertEvents(ctx context.Context, events []Event) error
}

// Writer batches audit events into the event log. Audit writes never block
// or fail the operation that produced them; a dropped batch is logged and
// surfaced through metrics only.
type Writer struct {
	batch  *batcher.Batcher[Event]
	logger *zap.Logger
}

// WriterOptions mirror the underlying batcher knobs.
type WriterOptions struct {
	FlushSize        int
	FlushInterval    time.Duration
	FlushesPerSecond int
}

// NewWriter builds a Writer over the given inserter.
func NewWriter(logger *zap.Logger, inserter EventInserter, opts WriterOptions) *Writer {
	logger = logger.Named("auditWriter")
	return &Writer{
		logger: logger,
		batch: batcher.New(logger, inserter.InsertEvents, batcher.Options{
			Size:             opts.FlushSize,
			Interval:         opts.FlushInterval,
			FlushesPerSecond: opts.FlushesPerSecond,
		}),
	}
}

// Start launches background flushing.
func (w *Writer) Start(ctx context.Context) {
	w.batch.Start(ctx)
}

// Stop drains pending events and stops the flush loop.
func (w *Writer) Stop() {
	w.batch.Stop()
}

// Record queues one event. Errors are logged, not propagated: the audit
// trail must never veto a committed state change.
func (w *Writer) Record(ctx context.Context, ev Event) error {
	if err := w.batch.Add(ctx, ev); err != nil {
		w.logger.Warn("audit event dropped",
			zap.String("type", string(ev.Type)),
			zap.String("subject", ev.Subject),
			zap.Error(err),
		)
	}
	return nil
}
