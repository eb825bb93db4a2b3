// Package view defines the composed render-pass types for the view
// subpackage of github.com/solvey/heatcal.
package view

import (
	"github.com/solvey/heatcal/caldate"
	"github.com/solvey/heatcal/dataset"
	"github.com/solvey/heatcal/grid"
	"github.com/solvey/heatcal/scheme"
)

// Config is the host's recognized option bag for one render pass.
type Config struct {
	// StartText / EndText are free-text range bounds; empty or
	// unparseable values fall back per grid.ResolveRange.
	StartText string
	EndText   string

	WeekStart   caldate.WeekStart
	Orientation grid.Orientation

	// ZeroColor / MaxColor are the scheme's gradient endpoints
	// (hash-optional hex), validated when the scheme is built.
	ZeroColor string
	MaxColor  string

	// MinValue / MaxValue, when present, replace the computed stats
	// bounds before normalization.
	MinValue *float64
	MaxValue *float64

	ShowMonthLabels   bool
	ShowWeekdayLabels bool
}

// DefaultConfig returns the GitHub-green defaults: Sunday-first weeks,
// horizontal orientation, both label sets on.
func DefaultConfig() Config {
	return Config{
		WeekStart:         caldate.WeekStartSunday,
		Orientation:       grid.Horizontal,
		ZeroColor:         "#161b22",
		MaxColor:          "#39d353",
		ShowMonthLabels:   true,
		ShowWeekdayLabels: true,
	}
}

// CellKind tags the state of one date cell.
type CellKind int

const (
	// CellEmpty: the date has no entry at all.
	CellEmpty CellKind = iota
	// CellZero: an entry exists but carries no plottable value.
	CellZero
	// CellFilled: an entry with an intensity in [0,1].
	CellFilled
)

// CellState is the tagged variant attached to each cell. SourceRef and
// Intensity are meaningful only for the kinds that carry them.
type CellState struct {
	Kind      CellKind
	SourceRef any     // host handle, CellZero and CellFilled only
	Intensity float64 // CellFilled only
}

// Cell is one date's fully resolved render input.
type Cell struct {
	Date        caldate.Date
	Coord       grid.Coord
	Pos         grid.Position
	State       CellState
	Color       string // resolved hex for the active theme
	DisplayText string
}

// View is the complete output of one render pass.
type View struct {
	Range       grid.Range
	Weeks       int
	Orientation grid.Orientation
	WeekStart   caldate.WeekStart

	// Cells covers every date of the range in ascending order.
	Cells []Cell

	// MonthLabels is nil when disabled; WeekdayLabels likewise (7 tokens
	// in week-start order when enabled).
	MonthLabels   []grid.MonthSpan
	WeekdayLabels []string

	Scheme scheme.Definition
	IsDark bool

	// Dataset is the processed snapshot; State its one-shot
	// classification, computed before any cell work.
	Dataset *dataset.Processed
	State   dataset.State
}
