package engine

import (
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/schedule"
)

// MonthlyAmount returns floor(total * entry bps / 10000): the slice of a
// user's total allocation released during one vesting month.
func MonthlyAmount(total model.TokenAmount, entry schedule.Entry) model.TokenAmount {
	return total.MulDivFloor(uint64(entry.PercentBps), schedule.TotalBps)
}

// DailyClaimableAmount returns one day's claim for the given month: the
// monthly slice split evenly across the fixed 30 days, floored. When a
// precomputed monthly amount is supplied (non-zero) it is used as-is to
// avoid repeated rounding drift; otherwise the amount derives from the
// schedule entry.
//
// Exactly one day's worth is claimable per call. Days not claimed are
// forfeited, never accumulated.
func DailyClaimableAmount(total model.TokenAmount, entry schedule.Entry, precomputedMonthly model.TokenAmount) model.TokenAmount {
	monthly := precomputedMonthly
	if monthly.IsZero() {
		monthly = MonthlyAmount(total, entry)
	}
	return monthly.DivFloor(DaysPerMonth)
}
