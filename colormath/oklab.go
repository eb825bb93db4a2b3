package colormath

import (
	"math"
)

// sRGB transfer function thresholds (IEC 61966-2-1).
const (
	srgbEncodedKnee = 0.04045
	srgbLinearKnee  = 0.0031308
)

// SRGBToLinear converts one encoded sRGB channel in [0,1] to linear light:
// the linear segment below the knee, a 2.4 power law above it.
func SRGBToLinear(c float64) float64 {
	if c <= srgbEncodedKnee {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse transfer function of SRGBToLinear.
func LinearToSRGB(c float64) float64 {
	if c <= srgbLinearKnee {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// RGBToOklab converts 8-bit sRGB channels to Oklab: linearize, project
// onto the LMS cone-response axes, cube-root, then the Oklab output
// matrix. Coefficients are the published Oklab matrices verbatim.
func RGBToOklab(c RGB) Oklab {
	r := SRGBToLinear(float64(c.R) / 255)
	g := SRGBToLinear(float64(c.G) / 255)
	b := SRGBToLinear(float64(c.B) / 255)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Oklab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

// OklabToRGB inverts RGBToOklab: Oklab → cubed LMS → linear sRGB →
// encoded 8-bit channels. Out-of-gamut results are clamped per channel
// before rounding.
func OklabToRGB(c Oklab) RGB {
	l := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l, m, s = l*l*l, m*m*m, s*s*s

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return RGB{
		R: encodeChannel(r),
		G: encodeChannel(g),
		B: encodeChannel(b),
	}
}

// encodeChannel applies the sRGB transfer function and quantizes one
// linear channel to 8 bits, clamping out-of-gamut values.
func encodeChannel(lin float64) uint8 {
	v := LinearToSRGB(lin)
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
