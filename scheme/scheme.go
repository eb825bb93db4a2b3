package scheme

import (
	"github.com/solvey/heatcal/colormath"
)

// Interpolate blends colorA toward colorB by t in Oklab space and returns
// the result as canonical hex. t is clamped to [0,1]; the endpoints are
// returned exactly (canonicalized, not interpolated) at t=0 and t=1.
//
// Algorithm:
//  1. Parse both endpoints; clamp t.
//  2. Convert endpoints to Oklab, lerp each of the three channels.
//  3. Convert back to sRGB and format.
func Interpolate(colorA, colorB string, t float64) (string, error) {
	a, err := colormath.ParseHex(colorA)
	if err != nil {
		return "", err
	}
	b, err := colormath.ParseHex(colorB)
	if err != nil {
		return "", err
	}
	switch {
	case t <= 0:
		return colormath.FormatHex(a), nil
	case t >= 1:
		return colormath.FormatHex(b), nil
	}

	la := colormath.RGBToOklab(a)
	lb := colormath.RGBToOklab(b)
	mixed := colormath.Oklab{
		L: la.L + (lb.L-la.L)*t,
		A: la.A + (lb.A-la.A)*t,
		B: la.B + (lb.B-la.B)*t,
	}
	return colormath.FormatHex(colormath.OklabToRGB(mixed)), nil
}

// ColorForIntensity resolves one cell color from def's active variant.
// intensity ≤ 0 returns the zero color verbatim; anything else
// interpolates zero→max at clamp(intensity, 0, 1).
func ColorForIntensity(intensity float64, def Definition, isDark bool) (string, error) {
	v := def.ForTheme(isDark)
	if intensity <= 0 {
		return v.Zero, nil
	}
	return Interpolate(v.Zero, v.Max, intensity)
}

// AdjustZeroColor makes a zero color sit comfortably on the active theme's
// background. In dark mode, colors with WCAG luminance above 0.15 are
// blended 70% toward DarkBackground; in light mode, colors below 0.85 are
// blended 70% toward LightBackground. Colors already inside the band are
// returned unchanged (canonicalized), so a second application is a no-op.
func AdjustZeroColor(hex string, isDark bool) (string, error) {
	c, err := colormath.ParseHex(hex)
	if err != nil {
		return "", err
	}
	lum := colormath.RelativeLuminance(c)
	switch {
	case isDark && lum > darkLuminanceCeiling:
		return Interpolate(hex, DarkBackground, themeBlend)
	case !isDark && lum < lightLuminanceFloor:
		return Interpolate(hex, LightBackground, themeBlend)
	default:
		return colormath.FormatHex(c), nil
	}
}

// Build assembles a Definition from a zero/max hex pair. Inputs tolerate
// a missing '#'; both variants share the max color, and each variant's
// zero color is derived via AdjustZeroColor for its theme.
func Build(zeroColor, maxColor string) (Definition, error) {
	maxRGB, err := colormath.ParseHex(maxColor)
	if err != nil {
		return Definition{}, err
	}
	maxHex := colormath.FormatHex(maxRGB)

	darkZero, err := AdjustZeroColor(zeroColor, true)
	if err != nil {
		return Definition{}, err
	}
	lightZero, err := AdjustZeroColor(zeroColor, false)
	if err != nil {
		return Definition{}, err
	}

	return Definition{
		Dark:  Variant{Zero: darkZero, Max: maxHex},
		Light: Variant{Zero: lightZero, Max: maxHex},
	}, nil
}
