package dripplan

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the downloadable schedule's column layout.
var csvHeader = []string{"month", "percent_bps", "calendar_month", "date", "day", "amount"}

// WriteCSV streams the plan as CSV, one row per day.
func WriteCSV(w io.Writer, plans []MonthPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, plan := range plans {
		for _, day := range plan.Days {
			row := []string{
				strconv.FormatUint(uint64(plan.Month), 10),
				strconv.FormatUint(uint64(plan.PercentBps), 10),
				plan.CalendarMonth,
				day.Date,
				strconv.Itoa(day.Day),
				day.Amount,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
