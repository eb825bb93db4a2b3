// Package view composes one full render pass: raw records plus host
// configuration in, colored grid cells plus labels out.
//
// What:
//
//   - Build folds records into a dataset snapshot, derives the color
//     scheme, resolves the date range, and walks the range once to
//     produce a Cell per date: grid coordinate, oriented position,
//     tagged state (empty / zero / filled), and resolved hex color.
//   - CellState distinguishes "no entry for this date" from "an entry
//     exists but carries no plottable value" from "a value with an
//     intensity in [0,1]".
//   - The dataset's min/max may be overridden by the host before
//     normalization; boolean-mode datasets normalize by truthiness,
//     numeric-mode datasets by the (min, max) band.
//
// Why:
//
//   - Hosts (DOM, canvas, terminal) need exactly this shape and nothing
//     more; every call is a fresh, referentially transparent pass, with
//     the active theme supplied as an explicit parameter rather than
//     read from ambient state.
//
// Errors:
//
//   - Bad input data never errors: undated records are dropped, an
//     inverted range yields zero cells, and dataset problems surface as
//     the State classification. Only malformed scheme colors — a
//     settings-boundary mistake, not data — fail Build.
package view
