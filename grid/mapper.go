package grid

import (
	"github.com/solvey/heatcal/caldate"
)

// WeekNumber returns the range-relative week ordinal of d for a range
// starting at start:
//
//	week = floor((daysSince(start, d) + dayIndex(start)) / 7) + 1
//
// The start date is always week 1; the counter rolls over exactly on the
// 7-day cadence anchored to the start's offset within its own week.
func WeekNumber(start, d caldate.Date, ws caldate.WeekStart) int {
	return (caldate.DaysBetween(start, d)+caldate.DayOfWeekIndex(start, ws))/caldate.DaysPerWeek + 1
}

// MapDate returns d's coordinate within r's matrix.
func MapDate(r Range, d caldate.Date, ws caldate.WeekStart) Coord {
	return Coord{
		Day:  caldate.DayOfWeekIndex(d, ws),
		Week: WeekNumber(r.Start, d, ws),
	}
}

// Weeks reports the total number of week ordinals the range spans.
// An inverted range has zero weeks.
func Weeks(r Range, ws caldate.WeekStart) int {
	if r.Inverted() {
		return 0
	}
	return WeekNumber(r.Start, r.End, ws)
}

// Map assigns a coordinate to every date of the range, in one pass.
// Inverted ranges yield an empty map.
func Map(r Range, ws caldate.WeekStart) map[caldate.Date]Coord {
	days := r.Days()
	out := make(map[caldate.Date]Coord, len(days))
	for _, d := range days {
		out[d] = MapDate(r, d, ws)
	}
	return out
}
