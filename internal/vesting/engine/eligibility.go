package engine

import (
	"time"

	"github.com/tokenvote-labs/tokenvote-backend/internal/clock"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/schedule"
)

// ReasonCode identifies why a claim is not currently possible. Every code
// maps to a distinct user-displayable message; they are never collapsed
// into a generic "not eligible".
type ReasonCode string

const (
	ReasonNotWhitelisted         ReasonCode = "not_whitelisted"
	ReasonNoAllocation           ReasonCode = "no_allocation"
	ReasonPoolNotFound           ReasonCode = "pool_not_found"
	ReasonNotStarted             ReasonCode = "not_started"
	ReasonAlreadyClaimedToday    ReasonCode = "already_claimed_today"
	ReasonNoScheduleForMonth     ReasonCode = "no_schedule_for_month"
	ReasonNothingToClaim         ReasonCode = "nothing_to_claim"
	ReasonInsufficientPool       ReasonCode = "insufficient_pool_balance"
	ReasonInsufficientAllocation ReasonCode = "insufficient_remaining_allocation"
)

var reasonMessages = map[ReasonCode]string{
	ReasonNotWhitelisted:         "not whitelisted",
	ReasonNoAllocation:           "no allocation",
	ReasonPoolNotFound:           "pool not found",
	ReasonNotStarted:             "not started",
	ReasonAlreadyClaimedToday:    "already claimed today",
	ReasonNoScheduleForMonth:     "no schedule entry for current month",
	ReasonNothingToClaim:         "nothing to claim today",
	ReasonInsufficientPool:       "insufficient pool balance",
	ReasonInsufficientAllocation: "insufficient remaining allocation",
}

// Message returns the displayable reason text.
func (c ReasonCode) Message() string {
	return reasonMessages[c]
}

// Eligibility is the verdict of CheckClaimEligibility. When Eligible is
// false, Reason and Message explain the first failed check; when true,
// Amount carries the claimable amount and Entry the supporting schedule row.
type Eligibility struct {
	Eligible bool              `json:"eligible"`
	Reason   ReasonCode        `json:"reason,omitempty"`
	Message  string            `json:"message,omitempty"`
	Amount   model.TokenAmount `json:"amount"`
	Entry    *schedule.Entry   `json:"scheduleEntry,omitempty"`
	Metrics  TimeMetrics       `json:"metrics"`
}

func ineligible(code ReasonCode, metrics TimeMetrics) Eligibility {
	return Eligibility{
		Eligible: false,
		Reason:   code,
		Message:  code.Message(),
		Amount:   model.Amount(0),
		Metrics:  metrics,
	}
}

// CheckClaimEligibility runs the ordered eligibility checks for one user's
// daily claim; the first failing check wins. pool and entry may be nil when
// the corresponding snapshot does not exist.
func CheckClaimEligibility(pool *model.VestingAccount, entry *model.WhitelistEntry, now time.Time) Eligibility {
	if entry == nil {
		return ineligible(ReasonNotWhitelisted, TimeMetrics{})
	}
	if entry.Total.IsZero() {
		return ineligible(ReasonNoAllocation, TimeMetrics{})
	}
	if pool == nil {
		return ineligible(ReasonPoolNotFound, TimeMetrics{})
	}

	metrics := CalculateTimeMetrics(pool.StartAt, now)
	if !metrics.HasStarted {
		return ineligible(ReasonNotStarted, metrics)
	}

	if entry.LastWithdrawAt != nil && clock.SameUTCDay(*entry.LastWithdrawAt, now) {
		return ineligible(ReasonAlreadyClaimedToday, metrics)
	}

	schedEntry, ok := schedule.ForMonth(metrics.Month)
	if !ok {
		return ineligible(ReasonNoScheduleForMonth, metrics)
	}

	amount := DailyClaimableAmount(entry.Total, schedEntry, model.TokenAmount{})
	if amount.IsZero() {
		return ineligible(ReasonNothingToClaim, metrics)
	}
	if pool.Remaining.LessThan(amount) {
		return ineligible(ReasonInsufficientPool, metrics)
	}
	if entry.Remaining.LessThan(amount) {
		return ineligible(ReasonInsufficientAllocation, metrics)
	}

	return Eligibility{
		Eligible: true,
		Amount:   amount,
		Entry:    &schedEntry,
		Metrics:  metrics,
	}
}
