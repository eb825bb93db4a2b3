package colormath

// BT.709 luma weights on linear RGB (WCAG relative luminance).
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1]:
// each channel linearized, then weighted by the BT.709 coefficients.
func RelativeLuminance(c RGB) float64 {
	r := SRGBToLinear(float64(c.R) / 255)
	g := SRGBToLinear(float64(c.G) / 255)
	b := SRGBToLinear(float64(c.B) / 255)
	return lumaR*r + lumaG*g + lumaB*b
}

// RelativeLuminanceHex is RelativeLuminance over hex text; it fails with
// ErrInvalidHex when hex is not a 6-digit triple.
func RelativeLuminanceHex(hex string) (float64, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return RelativeLuminance(c), nil
}
