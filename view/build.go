package view

import (
	"github.com/solvey/heatcal/caldate"
	"github.com/solvey/heatcal/dataset"
	"github.com/solvey/heatcal/grid"
	"github.com/solvey/heatcal/intensity"
	"github.com/solvey/heatcal/scheme"
)

// Build runs one full render pass over immutable inputs.
//
// Algorithm:
//  1. Fold records into a dataset snapshot and classify it.
//  2. Build the theme-adjusted scheme (the only fallible step: malformed
//     scheme hex is a settings-boundary error).
//  3. Resolve the range from config bounds, entry dates and today.
//  4. Apply min/max overrides, then walk the range once: coordinate,
//     oriented position, cell state, intensity, color.
func Build(records []dataset.Record, cfg Config, today caldate.Date, isDark bool) (*View, error) {
	ds := dataset.Process(records)

	def, err := scheme.Build(cfg.ZeroColor, cfg.MaxColor)
	if err != nil {
		return nil, err
	}

	r := grid.ResolveRange(
		grid.ResolveOptions{StartText: cfg.StartText, EndText: cfg.EndText},
		ds.Dates(),
		today,
	)

	v := &View{
		Range:       r,
		Weeks:       grid.Weeks(r, cfg.WeekStart),
		Orientation: cfg.Orientation,
		WeekStart:   cfg.WeekStart,
		Scheme:      def,
		IsDark:      isDark,
		Dataset:     ds,
		State:       ds.State(),
	}

	if cfg.ShowMonthLabels {
		v.MonthLabels = grid.MonthLabels(r, cfg.WeekStart)
	}
	if cfg.ShowWeekdayLabels {
		v.WeekdayLabels = weekdayLabels(cfg.WeekStart)
	}

	stats := ds.Stats.WithOverrides(cfg.MinValue, cfg.MaxValue)
	variant := def.ForTheme(isDark)

	days := r.Days()
	v.Cells = make([]Cell, 0, len(days))
	for _, d := range days {
		cell := Cell{
			Date:  d,
			Coord: grid.MapDate(r, d, cfg.WeekStart),
			Color: variant.Zero,
		}
		cell.Pos = cfg.Orientation.Position(cell.Coord)

		if e, ok := ds.Entries[d]; ok {
			cell.DisplayText = e.DisplayText
			cell.State = cellState(e, stats)
			if cell.State.Kind == CellFilled {
				cell.Color, err = scheme.ColorForIntensity(cell.State.Intensity, def, isDark)
				if err != nil {
					return nil, err
				}
			}
		}

		v.Cells = append(v.Cells, cell)
	}

	return v, nil
}

// cellState derives the tagged state of one entry under the dataset's
// normalization mode.
func cellState(e dataset.Entry, stats dataset.Stats) CellState {
	if e.Value == nil {
		return CellState{Kind: CellZero, SourceRef: e.SourceRef}
	}

	var t float64
	if stats.HasNumeric {
		t = intensity.Numeric(*e.Value, stats.Min, stats.Max)
	} else {
		t = intensity.Boolean(*e.Value != 0)
	}
	return CellState{Kind: CellFilled, SourceRef: e.SourceRef, Intensity: t}
}

// weekdayLabels returns the seven gutter tokens in week-start order.
func weekdayLabels(ws caldate.WeekStart) []string {
	out := make([]string, caldate.DaysPerWeek)
	for i := range out {
		out[i] = caldate.WeekdayToken(i, ws)
	}
	return out
}
