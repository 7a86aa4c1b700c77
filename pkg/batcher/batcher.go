// Package batcher provides a generic buffered batch writer: items queue up
// and flush either when the buffer fills or on an interval, with a rate
// limit on flushes.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop has begun.
var ErrStopped = errors.New("batcher stopped")

// Options tune a Batcher. Zero fields fall back to defaults.
type Options struct {
	// Size flushes the buffer once it holds this many items. Default 100.
	Size int
	// Interval flushes whatever is buffered this often. Default 5s.
	Interval time.Duration
	// FlushesPerSecond rate-limits flush calls. Default 10.
	FlushesPerSecond int
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 100
	}
	if o.Interval <= 0 {
		o.Interval = 5 * time.Second
	}
	if o.FlushesPerSecond <= 0 {
		o.FlushesPerSecond = 10
	}
	return o
}

// Batcher buffers items and hands them to flush in batches. A failed flush
// is logged and the batch dropped; the flush callback owns any retrying.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	opts   Options
	rl     ratelimit.Limiter
	logger *zap.Logger

	items chan T
	stop  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// New constructs a Batcher; call Start before Add.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, opts Options) *Batcher[T] {
	opts = opts.withDefaults()
	return &Batcher[T]{
		flush:  flush,
		opts:   opts,
		rl:     ratelimit.New(opts.FlushesPerSecond),
		logger: logger,
		items:  make(chan T, opts.Size*2),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	go b.run(ctx)
}

// Stop drains buffered items with one final flush and waits for the loop to
// exit. Safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.once.Do(func() { close(b.stop) })
	<-b.done
}

// Add queues an item. It fails once the batcher is stopped or the context
// is done.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.opts.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.Size)
	doFlush := func() {
		if len(buf) == 0 {
			return
		}
		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch flush failed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			doFlush()
			return
		case <-b.stop:
			// drain whatever was queued before the stop
			for {
				select {
				case item := <-b.items:
					buf = append(buf, item)
					if len(buf) >= b.opts.Size {
						doFlush()
					}
				default:
					doFlush()
					return
				}
			}
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.opts.Size {
				doFlush()
			}
		case <-ticker.C:
			doFlush()
		}
	}
}
