// Package dripplan generates the full daily token-release table for a
// vesting allocation, for transparency and export.
//
// Unlike the live eligibility path, which runs on fixed 30-day vesting
// months, the plan aligns to real calendar months (28-31 days) so published
// schedules read naturally against a calendar. The divergence is
// intentional and mirrors the on-chain release notes.
package dripplan

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/schedule"
)

// Scale is the fixed-point factor applied to base units so month splits
// never leak fractions: all plan arithmetic happens in micro-units.
const Scale = 1_000_000

var errEmptySchedule = errors.New("drip plan requires at least one schedule entry")

// DayAmount is one calendar day's release.
type DayAmount struct {
	// Date is the UTC calendar day, formatted YYYY-MM-DD.
	Date string `json:"date"`
	// Day is the 1-based day index within the calendar month.
	Day int `json:"day"`
	// Micros is the release in micro base units; daily sums reconcile
	// exactly against the month allocation in this field.
	Micros model.TokenAmount `json:"micros"`
	// Amount is the display rendering: base units with six decimals.
	Amount string `json:"amount"`
}

// MonthPlan is one calendar month's daily release table.
type MonthPlan struct {
	// Month is the vesting month index (2..18; month 1 is airdropped).
	Month      uint32 `json:"month"`
	PercentBps uint32 `json:"percentBps"`
	// CalendarMonth is the month the releases fall in, formatted YYYY-MM.
	CalendarMonth string      `json:"calendarMonth"`
	DaysInMonth   int         `json:"daysInMonth"`
	Days          []DayAmount `json:"days"`
	// TotalMicros equals the sum of the Days' Micros exactly.
	TotalMicros model.TokenAmount `json:"totalMicros"`
	Total       string            `json:"total"`
}

// Generate builds the per-day release plan for a total allocation vesting
// from startAt. Entries for the airdrop month are skipped. Within each
// month the integer-division remainder is distributed one micro-unit at a
// time across the earliest days (carry-forward rounding), so the daily
// amounts sum to the month allocation with no drift.
func Generate(total model.TokenAmount, startAt time.Time, entries []schedule.Entry) ([]MonthPlan, error) {
	if len(entries) == 0 {
		return nil, errEmptySchedule
	}

	totalMicros := new(big.Int).Mul(total.BigInt(), big.NewInt(Scale))
	base := time.Date(startAt.UTC().Year(), startAt.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)

	plans := make([]MonthPlan, 0, len(entries))
	for _, e := range entries {
		if e.Month == schedule.AirdropMonth {
			continue
		}

		monthStart := base.AddDate(0, int(e.Month)-1, 0)
		days := daysInMonth(monthStart)

		monthMicros := new(big.Int).Mul(totalMicros, big.NewInt(int64(e.PercentBps)))
		monthMicros.Quo(monthMicros, big.NewInt(schedule.TotalBps))

		daysBig := big.NewInt(int64(days))
		dailyBase, remainder := new(big.Int).QuoRem(monthMicros, daysBig, new(big.Int))
		extraDays := remainder.Int64()

		plan := MonthPlan{
			Month:         e.Month,
			PercentBps:    e.PercentBps,
			CalendarMonth: monthStart.Format("2006-01"),
			DaysInMonth:   days,
			Days:          make([]DayAmount, 0, days),
			TotalMicros:   model.AmountFromBig(monthMicros),
			Total:         formatMicros(monthMicros),
		}
		for day := 1; day <= days; day++ {
			amount := new(big.Int).Set(dailyBase)
			if int64(day) <= extraDays {
				amount.Add(amount, big.NewInt(1))
			}
			date := monthStart.AddDate(0, 0, day-1)
			plan.Days = append(plan.Days, DayAmount{
				Date:   date.Format("2006-01-02"),
				Day:    day,
				Micros: model.AmountFromBig(amount),
				Amount: formatMicros(amount),
			})
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func daysInMonth(monthStart time.Time) int {
	return monthStart.AddDate(0, 1, -1).Day()
}

// formatMicros renders micro base units as a decimal base-unit string with
// six fractional digits.
func formatMicros(micros *big.Int) string {
	q, r := new(big.Int).QuoRem(micros, big.NewInt(Scale), new(big.Int))
	return fmt.Sprintf("%s.%06d", q.String(), r.Int64())
}
