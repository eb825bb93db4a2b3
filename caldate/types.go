// Package caldate defines the Date value type, week-start options, and
// sentinel errors for the caldate subpackage of github.com/solvey/heatcal.
package caldate

import (
	"errors"
)

// Sentinel errors for caldate operations.
var (
	// ErrInvalidFormat indicates input text is not a well-formed YYYY-MM-DD date.
	ErrInvalidFormat = errors.New("caldate: date must match YYYY-MM-DD")
)

// WeekStart selects which weekday occupies index 0 of a week row/column.
type WeekStart int

const (
	// WeekStartSunday places Sunday at index 0 (GitHub-style grids).
	WeekStartSunday WeekStart = 0
	// WeekStartMonday places Monday at index 0; Sunday moves to index 6.
	WeekStartMonday WeekStart = 1
)

// DaysPerWeek is the fixed width of one week column/row.
const DaysPerWeek = 7

// Date is a timezone-less calendar date. Equality and ordering are by
// calendar-day identity; the zero value is not a valid date.
type Date struct {
	Year  int
	Month int // 1..12
	Day   int // 1..31
}

// monthTokens is the fixed English label set for month spans.
var monthTokens = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// weekdayTokens is the fixed English label set in native order (Sunday first).
var weekdayTokens = [DaysPerWeek]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

// MonthToken returns the fixed 3-letter English token for month m (1..12).
// Out-of-range months return the empty string.
func MonthToken(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthTokens[m-1]
}

// WeekdayToken returns the 3-letter English token for the weekday at
// position i (0..6) of a week starting at ws.
func WeekdayToken(i int, ws WeekStart) string {
	if i < 0 || i >= DaysPerWeek {
		return ""
	}
	return weekdayTokens[(i+int(ws))%DaysPerWeek]
}
