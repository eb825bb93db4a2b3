package intensity

import (
	"math"
)

// Numeric normalizes v against [min, max]:
//
//	v ≤ min → 0, v ≥ max → 1, else (v-min)/(max-min).
//
// min == max returns 1 unconditionally, even at min == max == 0.
// Non-finite inputs degrade to the nearest clamp rather than NaN.
func Numeric(v, min, max float64) float64 {
	if min >= max {
		return 1
	}
	t := (v - min) / (max - min)
	switch {
	case math.IsNaN(t), t <= 0:
		return 0
	case t >= 1:
		return 1
	default:
		return t
	}
}

// Boolean maps a resolved boolean to full or zero intensity.
func Boolean(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
