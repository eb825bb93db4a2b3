// Package dataset folds raw per-date records into the date→entry map and
// aggregate stats the layout and color layers consume.
//
// What:
//
//   - Process walks an ordered record sequence once: records without a
//     parseable date are dropped (counted, not retained); records whose
//     value kind is unsupported still occupy a map slot with a nil value,
//     so they render as "a note exists, nothing to plot" rather than
//     "no note".
//   - Duplicate dates resolve deterministically: the higher non-null
//     value wins, any non-null value beats nil, and first-write-wins only
//     when both are nil.
//   - Stats cover non-null values of the final entries. An empty value
//     set yields {min:0, max:1}; a single distinct positive value forces
//     min to 0, so one observed value renders at partial intensity
//     against an assumed zero baseline instead of maxing out.
//   - HasNumeric flips the dataset into numeric-intensity mode the first
//     time a value outside {0,1} is seen; bare 0/1 values stay ambiguous
//     with boolean encoding and do not flip it on their own.
//   - State classifies the whole dataset once, before any cell-level
//     work: empty input, no dated entries, all values unsupported, or ok.
//
// Why:
//
//   - The grid and color layers stay pure over this one immutable
//     snapshot; every render pass rebuilds it from scratch.
//
// Complexity:
//
//   - Process: O(n) over records plus O(m) over distinct dates.
package dataset
