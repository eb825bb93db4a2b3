// Package intensity normalizes raw observation values into the [0,1]
// intensity that drives color interpolation.
//
// What:
//
//   - Numeric maps v linearly from [min,max] onto [0,1], clamping outside
//     the band. A degenerate band (min == max, including 0,0) always
//     yields 1: a dataset with a single distinct value renders at full
//     intensity rather than dividing by zero.
//   - Boolean maps an already-resolved boolean to 0 or 1; truthiness of
//     the raw value is the caller's concern.
//
// Why:
//
//   - Keeping normalization separate from dataset folding lets the host
//     substitute min/max overrides before any color work happens.
//
// Contract:
//
//   - Output is always inside [0,1] and never NaN, whatever the inputs.
package intensity
