// Package termrender draws a computed heatmap view as a terminal grid.
//
// What:
//
//   - Render turns a view.View into a string: one lipgloss-styled glyph
//     block per cell, colored with the cell's resolved hex, plus the
//     view's weekday gutter and month labels when present.
//   - Both orientations are supported: horizontal prints weekday rows
//     against week columns (GitHub-style), vertical prints one week per
//     line under a weekday header.
//
// Why:
//
//   - The core is rendering-technology agnostic; this package is the
//     terminal host. It is a pure function of the view — no terminal
//     I/O, no size probing — so output is testable as plain text.
//
// Edge cases:
//
//   - A zero-week view renders as the empty string; the caller decides
//     how to present the dataset's empty-state classification.
package termrender
