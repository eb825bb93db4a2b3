// Package termrender defines rendering options for the termrender
// subpackage of github.com/solvey/heatcal.
package termrender

import (
	"github.com/charmbracelet/lipgloss"
)

// Options tunes the glyphs and label styling of Render.
type Options struct {
	// CellGlyph is printed once per date cell, colored per cell.
	// Width should be uniform across glyphs; the default is a two-column
	// block so cells read roughly square.
	CellGlyph string
	// EmptyGlyph replaces CellGlyph on grid slots outside the range
	// (the lead-in of the first week and the tail of the last).
	EmptyGlyph string
	// LabelStyle styles weekday and month labels.
	LabelStyle lipgloss.Style
}

// DefaultOptions returns block-glyph cells with faint labels.
func DefaultOptions() Options {
	return Options{
		CellGlyph:  "██",
		EmptyGlyph: "  ",
		LabelStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
