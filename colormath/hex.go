package colormath

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex converts a 6-digit hex color into its RGB channels.
// A single leading '#' is tolerated; anything else — shorthand #abc,
// alpha digits, named colors — fails with ErrInvalidHex.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// FormatHex renders c in canonical form: leading '#', lowercase,
// zero-padded to 6 digits.
func FormatHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
