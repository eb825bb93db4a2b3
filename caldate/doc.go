// Package caldate models timezone-less calendar dates and the week
// arithmetic a calendar-grid layout needs.
//
// What:
//
//   - Date is a plain (year, month, day) triple: no time-of-day, no zone.
//   - Parse accepts exactly YYYY-MM-DD (surrounding whitespace trimmed) and
//     rejects everything else, including impossible days like 2024-02-31.
//   - AddDays and DaysBetween are calendar-correct across month and year
//     boundaries, leap years included.
//   - DayOfWeekIndex remaps the native weekday (0=Sunday..6=Saturday) to a
//     configurable week start, so Monday-first grids put Sunday at index 6.
//   - GenerateRange enumerates every date of an inclusive range in order.
//
// Why:
//
//   - Heatmap layouts key cells by calendar-day identity; wall-clock time and
//     zones only introduce off-by-one-day bugs, so they are excluded by type.
//
// Complexity:
//
//   - Parse/Format/AddDays/DaysBetween: O(1).
//   - GenerateRange: O(n) for n days in the range.
//
// Errors:
//
//   - ErrInvalidFormat: input text is not a well-formed YYYY-MM-DD date.
package caldate
