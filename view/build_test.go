package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvey/heatcal/caldate"
	"github.com/solvey/heatcal/colormath"
	"github.com/solvey/heatcal/dataset"
	"github.com/solvey/heatcal/grid"
	"github.com/solvey/heatcal/view"
)

func fv(v float64) *float64 { return &v }

// fixtureRecords is a small mixed dataset: two numeric days, one
// valueless note, spread over one week of January 2024.
func fixtureRecords() []dataset.Record {
	return []dataset.Record{
		{DateText: "2024-01-01", Value: fv(2), Kind: dataset.KindNumber, DisplayText: "two", SourceRef: "a"},
		{DateText: "2024-01-03", Value: fv(8), Kind: dataset.KindNumber, DisplayText: "eight", SourceRef: "b"},
		{DateText: "2024-01-05", Kind: dataset.KindUnsupported, DisplayText: "note", SourceRef: "c"},
	}
}

// cellFor fetches the cell of one date; the suite fails if it is absent.
func cellFor(t *testing.T, v *view.View, date string) view.Cell {
	t.Helper()
	d := caldate.MustParse(date)
	for _, c := range v.Cells {
		if c.Date == d {
			return c
		}
	}
	t.Fatalf("no cell for %s", date)
	return view.Cell{}
}

//----------------------------------------------------------------------------//
// Build Tests
//----------------------------------------------------------------------------//

// TestBuild_CellStates verifies the empty/zero/filled tagging across the
// fixture range.
func TestBuild_CellStates(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-01-07"

	v, err := view.Build(fixtureRecords(), cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)
	require.Len(t, v.Cells, 7)

	filledMax := cellFor(t, v, "2024-01-03")
	assert.Equal(t, view.CellFilled, filledMax.State.Kind)
	assert.Equal(t, "b", filledMax.State.SourceRef)
	assert.Equal(t, 1.0, filledMax.State.Intensity, "value at max normalizes to 1")
	assert.Equal(t, "#39d353", filledMax.Color)

	atMin := cellFor(t, v, "2024-01-01")
	assert.Equal(t, view.CellFilled, atMin.State.Kind)
	assert.Equal(t, 0.0, atMin.State.Intensity, "the lowest recorded value sits at min")
	assert.Equal(t, v.Scheme.Dark.Zero, atMin.Color, "zero intensity resolves to the exact zero color")

	zero := cellFor(t, v, "2024-01-05")
	assert.Equal(t, view.CellZero, zero.State.Kind)
	assert.Equal(t, "c", zero.State.SourceRef)
	assert.Equal(t, v.Scheme.Dark.Zero, zero.Color, "valueless entry shows the zero color")
	assert.Equal(t, "note", zero.DisplayText)

	empty := cellFor(t, v, "2024-01-02")
	assert.Equal(t, view.CellEmpty, empty.State.Kind)
	assert.Nil(t, empty.State.SourceRef)
	assert.Equal(t, v.Scheme.Dark.Zero, empty.Color)
}

// TestBuild_BooleanMode verifies datasets of bare 0/1 values normalize by
// truthiness rather than the numeric band.
func TestBuild_BooleanMode(t *testing.T) {
	records := []dataset.Record{
		{DateText: "2024-01-01", Value: fv(1), Kind: dataset.KindBoolean},
		{DateText: "2024-01-02", Value: fv(0), Kind: dataset.KindBoolean},
	}
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-01-02"

	v, err := view.Build(records, cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)
	require.False(t, v.Dataset.Stats.HasNumeric)

	assert.Equal(t, 1.0, cellFor(t, v, "2024-01-01").State.Intensity)
	assert.Equal(t, 0.0, cellFor(t, v, "2024-01-02").State.Intensity)
}

// TestBuild_MinMaxOverrides verifies host bounds replace the computed
// stats before normalization.
func TestBuild_MinMaxOverrides(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-01-07"
	cfg.MinValue = fv(0)
	cfg.MaxValue = fv(16)

	v, err := view.Build(fixtureRecords(), cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cellFor(t, v, "2024-01-03").State.Intensity, 1e-12, "8 in [0,16]")
	assert.InDelta(t, 0.125, cellFor(t, v, "2024-01-01").State.Intensity, 1e-12, "2 in [0,16]")
}

// TestBuild_ThemeSelectsVariant checks the explicit isDark parameter
// switches the resolved zero color.
func TestBuild_ThemeSelectsVariant(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-01-02"

	dark, err := view.Build(nil, cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)
	light, err := view.Build(nil, cfg, caldate.MustParse("2024-06-15"), false)
	require.NoError(t, err)

	assert.Equal(t, dark.Scheme.Dark.Zero, dark.Cells[0].Color)
	assert.Equal(t, light.Scheme.Light.Zero, light.Cells[0].Color)
	assert.NotEqual(t, dark.Cells[0].Color, light.Cells[0].Color)
}

// TestBuild_LabelToggles verifies both label sets honor their flags.
func TestBuild_LabelToggles(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-03-31"
	cfg.ShowMonthLabels = false
	cfg.ShowWeekdayLabels = false

	bare, err := view.Build(nil, cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)
	assert.Nil(t, bare.MonthLabels)
	assert.Nil(t, bare.WeekdayLabels)

	cfg.ShowMonthLabels = true
	cfg.ShowWeekdayLabels = true
	cfg.WeekStart = caldate.WeekStartMonday

	full, err := view.Build(nil, cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)
	assert.NotEmpty(t, full.MonthLabels)
	require.Len(t, full.WeekdayLabels, 7)
	assert.Equal(t, "Mon", full.WeekdayLabels[0])
	assert.Equal(t, "Sun", full.WeekdayLabels[6])
}

// TestBuild_OrientationPositions verifies the oriented positions follow
// the coordinate swap.
func TestBuild_OrientationPositions(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-01-14"
	cfg.Orientation = grid.Vertical

	v, err := view.Build(nil, cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)

	for _, c := range v.Cells {
		assert.Equal(t, grid.Vertical.Position(c.Coord), c.Pos, "date=%s", c.Date)
		assert.Equal(t, c.Coord.Week, c.Pos.Row)
	}
}

// TestBuild_DatasetStatePropagates verifies the one-shot classification
// reaches the host untouched.
func TestBuild_DatasetStatePropagates(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-01-07"

	empty, err := view.Build(nil, cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)
	assert.Equal(t, dataset.StateEmpty, empty.State)

	undated, err := view.Build([]dataset.Record{{DateText: "nope"}}, cfg, caldate.MustParse("2024-06-15"), true)
	require.NoError(t, err)
	assert.Equal(t, dataset.StateNoDatedEntries, undated.State)
}

// TestBuild_InvalidSchemeHex is the only failing input: malformed scheme
// colors are a settings-boundary error, not data.
func TestBuild_InvalidSchemeHex(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.ZeroColor = "#nothex"

	_, err := view.Build(nil, cfg, caldate.MustParse("2024-06-15"), true)
	assert.ErrorIs(t, err, colormath.ErrInvalidHex)
}

// TestBuild_Deterministic verifies referential transparency: identical
// inputs, identical outputs.
func TestBuild_Deterministic(t *testing.T) {
	cfg := view.DefaultConfig()
	cfg.StartText = "2024-01-01"
	cfg.EndText = "2024-02-29"
	today := caldate.MustParse("2024-06-15")

	a, err := view.Build(fixtureRecords(), cfg, today, true)
	require.NoError(t, err)
	b, err := view.Build(fixtureRecords(), cfg, today, true)
	require.NoError(t, err)

	assert.Equal(t, a.Cells, b.Cells)
	assert.Equal(t, a.MonthLabels, b.MonthLabels)
	assert.Equal(t, a.Scheme, b.Scheme)
}
