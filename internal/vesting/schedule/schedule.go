// Package schedule holds the static 18-month vesting release table shared by
// every pool and whitelist entry.
package schedule

// Entry maps one vesting month to its share of the total allocation.
type Entry struct {
	Month      uint32 `json:"month"`
	PercentBps uint32 `json:"percentBps"`
}

const (
	// Months is the length of the vesting schedule.
	Months = 18
	// TotalBps is the sum of all entries' basis points.
	TotalBps = 10000
	// AirdropMonth is disbursed up front through the relaunch airdrop and is
	// excluded from daily-drip computation.
	AirdropMonth = 1
)

// table: 10% up front, 8% for five months, 6% for five, 4% once, 3% for
// four, 2% for two. Sums to exactly 100%.
var table = [Months]Entry{
	{Month: 1, PercentBps: 1000},
	{Month: 2, PercentBps: 800},
	{Month: 3, PercentBps: 800},
	{Month: 4, PercentBps: 800},
	{Month: 5, PercentBps: 800},
	{Month: 6, PercentBps: 800},
	{Month: 7, PercentBps: 600},
	{Month: 8, PercentBps: 600},
	{Month: 9, PercentBps: 600},
	{Month: 10, PercentBps: 600},
	{Month: 11, PercentBps: 600},
	{Month: 12, PercentBps: 400},
	{Month: 13, PercentBps: 300},
	{Month: 14, PercentBps: 300},
	{Month: 15, PercentBps: 300},
	{Month: 16, PercentBps: 300},
	{Month: 17, PercentBps: 200},
	{Month: 18, PercentBps: 200},
}

// ForMonth returns the entry for a 1-indexed vesting month, or false when
// the month falls outside the schedule.
func ForMonth(month uint32) (Entry, bool) {
	if month < 1 || month > Months {
		return Entry{}, false
	}
	return table[month-1], true
}

// Entries returns a copy of the full table.
func Entries() []Entry {
	out := make([]Entry, Months)
	copy(out[:], table[:])
	return out
}

// DripEntries returns the months subject to daily-drip release, excluding
// the airdrop month.
func DripEntries() []Entry {
	out := make([]Entry, 0, Months-1)
	for _, e := range table {
		if e.Month == AirdropMonth {
			continue
		}
		out = append(out, e)
	}
	return out
}
