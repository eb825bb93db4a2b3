// Package scheme defines the scheme types and theme constants for the
// scheme subpackage of github.com/solvey/heatcal.
package scheme

// Canonical theme backgrounds the zero color is pulled toward.
const (
	// DarkBackground is the canonical dark-theme surface color.
	DarkBackground = "#161b22"
	// LightBackground is the canonical light-theme surface color.
	LightBackground = "#ebedf0"
)

// Luminance band and blend strength for AdjustZeroColor.
const (
	// darkLuminanceCeiling: in dark mode, zero colors brighter than this
	// are pulled toward DarkBackground.
	darkLuminanceCeiling = 0.15
	// lightLuminanceFloor: in light mode, zero colors darker than this
	// are pulled toward LightBackground.
	lightLuminanceFloor = 0.85
	// themeBlend is how far an out-of-band zero color travels toward the
	// theme background.
	themeBlend = 0.7
)

// Variant is one theme's gradient endpoints, canonical 6-digit hex.
type Variant struct {
	Zero string // color of an existing-but-zero cell
	Max  string // color at full intensity
}

// Definition pairs the dark and light variants of one scheme.
// All four colors are valid canonical hex triples.
type Definition struct {
	Dark  Variant
	Light Variant
}

// ForTheme selects the variant matching the active theme.
func (d Definition) ForTheme(isDark bool) Variant {
	if isDark {
		return d.Dark
	}
	return d.Light
}
