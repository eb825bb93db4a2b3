// Package grid lays a date range out as a week/day matrix: range
// resolution, range-relative week indexing, orientation, and month-label
// spans.
//
// What:
//
//   - ResolveRange turns optional explicit bounds, the dataset's dates,
//     and "today" into an inclusive Range, with documented silent
//     fallbacks for unparseable bounds.
//   - WeekNumber / MapDate give every date a (dayIndex, weekIndex)
//     coordinate: dayIndex from the configured week start, weekIndex
//     anchored so the range's start date is always week 1. This is
//     range-relative numbering, never ISO week-of-year.
//   - Orientation swaps the coordinate pair into (row, column): weeks as
//     columns when horizontal, weeks as rows when vertical.
//   - MonthLabels emits one span per contiguous run of weeks belonging
//     to a month. When a week straddles a month boundary, the largest
//     month value present in that week wins — a fixed tie-break that
//     places each label at the start of the first week dominated by the
//     new month.
//
// Why:
//
//   - The mapper is pure arithmetic: hosts can lay cells out in DOM
//     nodes, a canvas or a terminal grid from the same coordinates.
//
// Complexity:
//
//   - ResolveRange / MapDate / WeekNumber: O(1) (plus O(k) over dataset
//     keys for the min-date fallback).
//   - Map / MonthLabels: O(n) over the days of the range.
//
// Edge cases:
//
//   - An inverted range (start after end, possible when the host supplies
//     both bounds explicitly) is not auto-corrected: Weeks reports 0 and
//     Map yields no cells.
package grid
