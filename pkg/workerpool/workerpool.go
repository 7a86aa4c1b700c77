// Package workerpool provides a generic bounded-concurrency fan-out that
// preserves input ordering in its results.
package workerpool

import (
	"context"
	"sync"
)

type job struct {
	index int
}

// Map runs fn over items with at most workers goroutines and returns the
// results in input order. The first error cancels the remaining work and is
// returned; results are then discarded.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	results := make([]R, len(items))
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				r, err := fn(ctx, items[j.index])
				if err != nil {
					select {
					case errs <- err:
					default:
					}
					cancel()
					return
				}
				results[j.index] = r
			}
		}()
	}

feed:
	for i := range items {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{index: i}:
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
