// Package grid defines the layout types and options for the grid
// subpackage of github.com/solvey/heatcal.
package grid

import (
	"github.com/solvey/heatcal/caldate"
)

// Range is an inclusive calendar-date interval. ResolveRange always
// produces Start ≤ End unless the host explicitly configured an inverted
// pair; see Weeks for how that degenerates.
type Range struct {
	Start caldate.Date
	End   caldate.Date
}

// Inverted reports whether the range runs backwards (start after end).
func (r Range) Inverted() bool { return r.Start.After(r.End) }

// Days enumerates the range inclusively; nil when inverted.
func (r Range) Days() []caldate.Date { return caldate.GenerateRange(r.Start, r.End) }

// Contains reports whether d lies inside the range.
func (r Range) Contains(d caldate.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// ResolveOptions carries the host's free-text range bounds. Either may
// be empty or unparseable; ResolveRange falls back silently.
type ResolveOptions struct {
	StartText string
	EndText   string
}

// Coord is one date's position in the week/day matrix.
// Day is 0..6 relative to the configured week start; Week is the
// 1-based range-relative week ordinal.
type Coord struct {
	Day  int
	Week int
}

// Orientation selects how (day, week) maps onto (row, column).
type Orientation int

const (
	// Horizontal lays weeks out as columns, weekdays as rows (GitHub-style).
	Horizontal Orientation = iota
	// Vertical lays weeks out as rows, weekdays as columns.
	Vertical
)

// Position is a 1-based (row, column) cell address after orientation.
type Position struct {
	Row int
	Col int
}

// Position projects c through the orientation: horizontal puts the day
// on the row axis (1..7) and the week on the column axis; vertical swaps
// the two.
func (o Orientation) Position(c Coord) Position {
	if o == Vertical {
		return Position{Row: c.Week, Col: c.Day + 1}
	}
	return Position{Row: c.Day + 1, Col: c.Week}
}

// MonthSpan labels a contiguous run of week ordinals belonging to one
// month. Start is the first week of the run; End is the week where the
// next span starts (totalWeeks+1 for the last span), so End ≥ Start.
type MonthSpan struct {
	Name  string // fixed 3-letter English token, "Jan".."Dec"
	Start int
	End   int
}
