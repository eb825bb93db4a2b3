package termrender

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solvey/heatcal/caldate"
	"github.com/solvey/heatcal/grid"
	"github.com/solvey/heatcal/view"
)

// Render draws v as a terminal grid using opts. A zero-week view yields
// the empty string.
func Render(v *view.View, opts Options) string {
	if v == nil || v.Weeks == 0 || len(v.Cells) == 0 {
		return ""
	}

	cells := make(map[grid.Position]view.Cell, len(v.Cells))
	for _, c := range v.Cells {
		cells[c.Pos] = c
	}

	if v.Orientation == grid.Vertical {
		return renderVertical(v, cells, opts)
	}
	return renderHorizontal(v, cells, opts)
}

// renderHorizontal prints weekday rows against week columns: an optional
// month-label line on top, an optional weekday gutter on the left.
func renderHorizontal(v *view.View, cells map[grid.Position]view.Cell, opts Options) string {
	cellW := lipgloss.Width(opts.CellGlyph)
	gutterW := 0
	if v.WeekdayLabels != nil {
		gutterW = 4
	}

	var b strings.Builder
	if v.MonthLabels != nil {
		b.WriteString(monthLine(v.MonthLabels, gutterW, cellW, opts))
		b.WriteByte('\n')
	}

	for day := 0; day < caldate.DaysPerWeek; day++ {
		if v.WeekdayLabels != nil {
			b.WriteString(opts.LabelStyle.Render(padTo(v.WeekdayLabels[day], gutterW)))
		}
		for week := 1; week <= v.Weeks; week++ {
			b.WriteString(renderSlot(cells, grid.Position{Row: day + 1, Col: week}, opts))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderVertical prints one week per line under a weekday header, with
// month labels in a left gutter at the first row of each span.
func renderVertical(v *view.View, cells map[grid.Position]view.Cell, opts Options) string {
	cellW := lipgloss.Width(opts.CellGlyph)
	gutterW := 0
	if v.MonthLabels != nil {
		gutterW = 4
	}

	var b strings.Builder
	if v.WeekdayLabels != nil {
		b.WriteString(strings.Repeat(" ", gutterW))
		for _, token := range v.WeekdayLabels {
			b.WriteString(opts.LabelStyle.Render(padTo(token, cellW)))
		}
		b.WriteByte('\n')
	}

	for week := 1; week <= v.Weeks; week++ {
		if v.MonthLabels != nil {
			b.WriteString(opts.LabelStyle.Render(padTo(monthAt(v.MonthLabels, week), gutterW)))
		}
		for day := 1; day <= caldate.DaysPerWeek; day++ {
			b.WriteString(renderSlot(cells, grid.Position{Row: week, Col: day}, opts))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderSlot colors one grid slot, or fills it with the empty glyph when
// no date occupies it (lead-in and tail of the range's edge weeks).
func renderSlot(cells map[grid.Position]view.Cell, pos grid.Position, opts Options) string {
	c, ok := cells[pos]
	if !ok {
		return opts.EmptyGlyph
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render(opts.CellGlyph)
}

// monthLine lays the month-label spans over the week axis, each name
// confined to its span's width.
func monthLine(spans []grid.MonthSpan, gutterW, cellW int, opts Options) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterW))
	for _, sp := range spans {
		width := (sp.End - sp.Start) * cellW
		b.WriteString(opts.LabelStyle.Render(padTo(sp.Name, width)))
	}
	return strings.TrimRight(b.String(), " ")
}

// monthAt returns the span name starting exactly at week, or "".
func monthAt(spans []grid.MonthSpan, week int) string {
	for _, sp := range spans {
		if sp.Start == week {
			return sp.Name
		}
	}
	return ""
}

// padTo truncates or right-pads s to exactly w columns.
func padTo(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if len(s) > w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}
