// Package heatcal turns sparse per-date observations into a calendar-grid
// heatmap: date-range resolution, week/day grid mapping, month labels,
// value normalization, and perceptual (Oklab) color interpolation.
//
// 🚀 What is heatcal?
//
//	A small, deterministic library that brings together:
//		• Calendar dates: timezone-less YYYY-MM-DD parsing, arithmetic, week indexing
//		• Grid layout: range-relative week/day coordinates, horizontal & vertical
//		• Month labels: one span per contiguous run of weeks belonging to a month
//		• Normalization: raw numeric/boolean values → intensity in [0,1]
//		• Color: sRGB↔linear↔LMS↔Oklab pipeline, WCAG luminance, theme-aware schemes
//
// ✨ Why choose heatcal?
//
//   - Pure functions – every call is a fresh pass over immutable inputs
//   - Host-agnostic – theme and "today" arrive as parameters, never globals
//   - Bit-stable color – published Oklab matrices, pinned by tests
//   - Batteries included – lipgloss terminal renderer and a cobra CLI
//
// Everything is organized under flat subpackages:
//
//	caldate/    — calendar-date values, parsing, week-start arithmetic
//	colormath/  — hex, gamma transfer, Oklab conversions, relative luminance
//	scheme/     — perceptual interpolation & theme-adjusted color schemes
//	intensity/  — value → [0,1] normalization (numeric and boolean modes)
//	dataset/    — folding raw records into a date→entry map with stats
//	grid/       — range resolution, week/day mapping, month-label spans
//	view/       — one-pass composition: records + config → colored cells
//	termrender/ — lipgloss rendering of a view as a terminal grid
//	cmd/heatcal — CLI front end over a JSON records file
//
// Quick ASCII example:
//
//	    Jan         Feb
//	    ░░▓▓██░░░░  ░░▓▓
//	    ░░░░▓▓██░░  ▓▓░░
//
//	two months of a horizontal grid, intensity rendered as shade.
//
//	go get github.com/solvey/heatcal
package heatcal
