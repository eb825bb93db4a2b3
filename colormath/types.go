// Package colormath defines channel types and sentinel errors for the
// colormath subpackage of github.com/solvey/heatcal.
package colormath

import (
	"errors"
)

// Sentinel errors for colormath operations.
var (
	// ErrInvalidHex indicates input text is not a 6-digit hex color.
	ErrInvalidHex = errors.New("colormath: color must be a 6-digit hex triple")
)

// RGB holds three 8-bit sRGB channels.
type RGB struct {
	R, G, B uint8
}

// Oklab is a point in the Oklab perceptual color space.
// L is lightness in [0,1]; A and B are the green–red and blue–yellow axes.
type Oklab struct {
	L, A, B float64
}
