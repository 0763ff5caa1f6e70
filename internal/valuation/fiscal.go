package valuation

import (
	"fmt"
	"time"
)

// FiscalYear returns the October-start government fiscal year containing d.
func FiscalYear(d time.Time) int {
	if d.Month() >= time.October {
		return d.Year() + 1
	}
	return d.Year()
}

// FiscalLabel formats a fiscal year as "FY 2026", or "FY26" when short.
func FiscalLabel(fy int, short bool) string {
	if short {
		return fmt.Sprintf("FY%02d", fy%100)
	}
	return fmt.Sprintf("FY %d", fy)
}
