// Package engine implements the vesting/claim engine: time metrics over a
// fixed 30-day vesting month, daily claim amounts, ordered eligibility
// checks and next-claim timing.
//
// All functions are pure computations over snapshots passed in by the
// caller, evaluated against a single explicit now. Eligibility is a
// prediction; the authoritative serialization of concurrent claims stays
// with the on-chain program.
package engine

import (
	"time"
)

const (
	// SecondsPerDay is one vesting day.
	SecondsPerDay = 24 * 60 * 60
	// DaysPerMonth is the fixed vesting month length. A vesting month is
	// exactly 30 days, not a calendar month.
	DaysPerMonth = 30
	// SecondsPerMonth is one fixed vesting month.
	SecondsPerMonth = DaysPerMonth * SecondsPerDay
)

// TimeMetrics locates an instant within a pool's vesting timeline.
type TimeMetrics struct {
	// HasStarted is false before the pool's start timestamp; all other
	// fields are zero in that case.
	HasStarted bool `json:"hasStarted"`
	// ElapsedSeconds since the start timestamp.
	ElapsedSeconds int64 `json:"elapsedSeconds"`
	// ElapsedDays is whole days since start.
	ElapsedDays int64 `json:"elapsedDays"`
	// ElapsedMonths is whole fixed 30-day months since start.
	ElapsedMonths int64 `json:"elapsedMonths"`
	// Month is the 1-indexed current vesting month (ElapsedMonths+1).
	Month uint32 `json:"month"`
	// DayOfMonth is days into the current month, 0-based (0..29).
	DayOfMonth int `json:"dayOfMonth"`
}

// CalculateTimeMetrics evaluates the vesting timeline at now. Callers must
// capture now once per evaluation and reuse it for every dependent
// computation so a day rollover cannot split a single decision.
func CalculateTimeMetrics(startAt, now time.Time) TimeMetrics {
	elapsed := now.Unix() - startAt.Unix()
	if elapsed < 0 {
		return TimeMetrics{HasStarted: false}
	}

	elapsedDays := elapsed / SecondsPerDay
	elapsedMonths := elapsed / SecondsPerMonth
	return TimeMetrics{
		HasStarted:     true,
		ElapsedSeconds: elapsed,
		ElapsedDays:    elapsedDays,
		ElapsedMonths:  elapsedMonths,
		Month:          uint32(elapsedMonths) + 1,
		DayOfMonth:     int(elapsedDays % DaysPerMonth),
	}
}
