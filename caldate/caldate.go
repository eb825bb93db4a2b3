package caldate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePattern is the only textual shape Parse accepts. No locale parsing,
// no partial dates, no time components.
var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Parse converts text of the exact form YYYY-MM-DD into a Date.
// Surrounding whitespace is trimmed first. Any other shape, and any
// pattern-conforming text that names an impossible calendar day
// (month 13, February 30, ...), fails with ErrInvalidFormat — a malformed
// input never yields a silently-wrong date.
func Parse(text string) (Date, error) {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	// time.Date normalizes overflow (Feb 30 → Mar 1/2); a round-trip that
	// changes any component exposes an impossible day.
	d := Date{Year: year, Month: month, Day: day}
	if FromTime(d.toTime()) != d {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return d, nil
}

// MustParse is Parse for compile-time-known literals; it panics on error.
// Intended for tests and fixtures only.
func MustParse(text string) Date {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders d in canonical YYYY-MM-DD form, zero-padded.
func Format(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String implements fmt.Stringer via Format.
func (d Date) String() string { return Format(d) }

// FromTime truncates a time.Time to its calendar-day identity.
// The time's own location decides which day it is; heatcal itself only ever
// constructs UTC times internally.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// toTime anchors d at midnight UTC for arithmetic. UTC has no DST, so
// day-difference math is exact.
func (d Date) toTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative),
// calendar-correct across month and year boundaries.
func AddDays(d Date, n int) Date {
	return FromTime(d.toTime().AddDate(0, 0, n))
}

// DaysBetween returns the signed number of calendar days from a to b
// (positive when b is after a, zero when equal).
func DaysBetween(a, b Date) int {
	return int(b.toTime().Sub(a.toTime()) / (24 * time.Hour))
}

// Compare orders two dates by calendar-day identity:
// -1 if a < b, 0 if equal, +1 if a > b.
func Compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		return sign(a.Year - b.Year)
	case a.Month != b.Month:
		return sign(a.Month - b.Month)
	case a.Day != b.Day:
		return sign(a.Day - b.Day)
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return Compare(d, other) < 0 }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return Compare(d, other) > 0 }

// Weekday returns the native weekday of d: 0=Sunday .. 6=Saturday.
func (d Date) Weekday() int {
	return int(d.toTime().Weekday())
}

// DayOfWeekIndex remaps d's native weekday onto a week starting at ws:
// (native - ws + 7) mod 7. With WeekStartMonday, Sunday maps to 6.
func DayOfWeekIndex(d Date, ws WeekStart) int {
	return (d.Weekday() - int(ws) + DaysPerWeek) % DaysPerWeek
}

// sign collapses an int difference to -1, 0 or +1.
func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
