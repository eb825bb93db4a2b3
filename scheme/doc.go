// Package scheme derives theme-aware color schemes and resolves cell
// intensities to colors via perceptual (Oklab) interpolation.
//
// What:
//
//   - Interpolate blends two hex colors channel-wise in Oklab space, which
//     keeps mid-tones clean where a naive RGB lerp turns muddy.
//   - ColorForIntensity maps an intensity in [0,1] onto a scheme's
//     zero→max gradient; intensity ≤ 0 returns the zero color exactly,
//     with no interpolation rounding drift at the boundary.
//   - AdjustZeroColor pulls an out-of-band zero color 70% of the way
//     toward the canonical theme background (#161b22 dark, #ebedf0 light)
//     when its WCAG luminance would fight the theme; in-band colors pass
//     through unchanged, so re-applying the adjustment is a no-op.
//   - Build assembles a Definition: the max color shared by both themes,
//     the zero color adjusted per theme.
//
// Why:
//
//   - A zero ("no activity") cell must read as background in both themes;
//     user-picked schemes rarely supply both variants, so the dark/light
//     zero colors are derived rather than configured.
//
// Complexity:
//
//   - All operations are O(1) and allocation-light.
//
// Errors:
//
//   - colormath.ErrInvalidHex, propagated unwrapped so callers can match
//     it with errors.Is. Scheme hex validation happens at the settings
//     boundary; inputs reaching this package are expected to be valid.
package scheme
