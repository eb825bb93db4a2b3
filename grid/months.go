package grid

import (
	"github.com/solvey/heatcal/caldate"
)

// MonthLabels groups the range's weeks into month-label spans.
//
// Algorithm:
//  1. For every date, note its week ordinal and calendar month; per week,
//     keep the largest month value seen (the fixed straddle tie-break:
//     the later of two same-year months wins the week).
//  2. Walk weeks 1..totalWeeks. Whenever the week's primary month
//     differs from the running span's month, close the span at this week
//     and open a new one.
//  3. The final span closes at totalWeeks + 1.
//
// A full calendar year yields exactly twelve spans, Jan through Dec.
// Inverted or empty ranges yield nil.
func MonthLabels(r Range, ws caldate.WeekStart) []MonthSpan {
	total := Weeks(r, ws)
	if total == 0 {
		return nil
	}

	// Largest month present in each week; index 0 unused (weeks are 1-based).
	primary := make([]int, total+1)
	for _, d := range r.Days() {
		w := WeekNumber(r.Start, d, ws)
		if d.Month > primary[w] {
			primary[w] = d.Month
		}
	}

	var spans []MonthSpan
	for w := 1; w <= total; w++ {
		if primary[w] == 0 {
			continue // a week with no dates; cannot occur for a contiguous range
		}
		if len(spans) == 0 || caldate.MonthToken(primary[w]) != spans[len(spans)-1].Name {
			if len(spans) > 0 {
				spans[len(spans)-1].End = w
			}
			spans = append(spans, MonthSpan{Name: caldate.MonthToken(primary[w]), Start: w})
		}
	}
	if len(spans) > 0 {
		spans[len(spans)-1].End = total + 1
	}

	return spans
}
