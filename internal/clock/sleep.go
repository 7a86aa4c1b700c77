// Package clock provides time helpers shared by the background services and
// the vesting eligibility rules.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early with the
// context's error if it is canceled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
