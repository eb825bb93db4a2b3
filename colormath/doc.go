// Package colormath provides the deterministic color transforms behind
// heatcal's gradients: hex parsing, sRGB gamma transfer, the Oklab
// perceptual color space, and WCAG relative luminance.
//
// What:
//
//   - ParseHex / FormatHex: 6-digit hex ↔ three 8-bit channels. Input
//     tolerates an optional leading '#'; output always carries it,
//     lowercase and zero-padded.
//   - SRGBToLinear / LinearToSRGB: the standard piecewise transfer
//     functions (linear segment below 0.04045 / 0.0031308, power law 2.4
//     above).
//   - RGBToOklab / OklabToRGB: 3×3 matrix transforms through an LMS
//     cone-response intermediate with cube-root/cube nonlinearity, using
//     the published Oklab coefficients verbatim so output matches other
//     implementations bit-for-bit within rounding.
//   - RelativeLuminance: ITU-R BT.709 weights on linearized channels
//     (0.2126 R + 0.7152 G + 0.0722 B), i.e. WCAG relative luminance.
//
// Why:
//
//   - Gradients interpolated in Oklab keep mid-tones clean; naive RGB
//     lerps drift muddy and dark. Luminance drives theme-aware scheme
//     adjustment in package scheme.
//
// Complexity:
//
//   - All transforms are O(1), allocation-free, side-effect-free.
//
// Errors:
//
//   - ErrInvalidHex: input is not a 6-digit hex color.
package colormath
