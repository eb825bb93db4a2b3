package caldate

// GenerateRange enumerates every date from start to end inclusive, in
// ascending order. An inverted range (start after end) yields nil rather
// than an error: the grid layer treats it as a zero-width grid.
//
// Complexity: O(n) for n days in the range.
func GenerateRange(start, end Date) []Date {
	if start.After(end) {
		return nil
	}
	n := DaysBetween(start, end) + 1
	out := make([]Date, 0, n)
	for d := start; !d.After(end); d = AddDays(d, 1) {
		out = append(out, d)
	}
	return out
}

// Min returns the earliest of dates and true, or the zero Date and false
// when dates is empty.
func Min(dates []Date) (Date, bool) {
	if len(dates) == 0 {
		return Date{}, false
	}
	m := dates[0]
	for _, d := range dates[1:] {
		if d.Before(m) {
			m = d
		}
	}
	return m, true
}
