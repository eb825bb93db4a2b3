package main

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// builtinScheme is a zero/max gradient endpoint pair.
type builtinScheme struct {
	zero string
	max  string
}

// builtinSchemes resolves --scheme ids to endpoint pairs. The per-theme
// zero variants are derived downstream; these are the raw user-facing
// pairs.
var builtinSchemes = map[string]builtinScheme{
	"github": {zero: "#161b22", max: "#39d353"},
	"forest": {zero: "#ebedf0", max: "#216e39"},
	"ocean":  {zero: "#0d1b2a", max: "#48cae4"},
	"ember":  {zero: "#1a1210", max: "#ff7b00"},
	"plum":   {zero: "#1c1024", max: "#c77dff"},
}

// resolveScheme picks the base scheme by id and applies per-endpoint hex
// overrides, validating every user-supplied color here so malformed hex
// never reaches the core.
func resolveScheme(id, zeroOverride, maxOverride string) (zero, max string, err error) {
	s, ok := builtinSchemes[id]
	if !ok {
		return "", "", fmt.Errorf("unknown scheme %q (see 'heatcal schemes')", id)
	}
	zero, max = s.zero, s.max

	if zeroOverride != "" {
		if zero, err = validateHex(zeroOverride); err != nil {
			return "", "", fmt.Errorf("--zero-color: %w", err)
		}
	}
	if maxOverride != "" {
		if max, err = validateHex(maxOverride); err != nil {
			return "", "", fmt.Errorf("--max-color: %w", err)
		}
	}
	return zero, max, nil
}

// validateHex normalizes a user-supplied color to #rrggbb form.
func validateHex(s string) (string, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q", s)
	}
	return c.Hex(), nil
}
