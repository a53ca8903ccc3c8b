// Package smoothing applies spatial smoothing algorithms to numeric
// calibration grids.
//
// # Algorithms
//
// Three methods are provided:
//
//  1. Moving average: each cell becomes the mean of all numeric cells in a
//     square window around it (Chebyshev distance, including itself).
//  2. Gaussian: a truncated 2D Gaussian kernel, renormalized over the
//     weights actually used so edge cells are not pulled toward zero.
//  3. Bilinear: each cell becomes the mean of itself and its up/down/left/
//     right numeric neighbors.
//
// # Invariants
//
// Every method reads exclusively from the pristine input grid and writes
// into a freshly cloned output grid, so processing order never affects the
// result and rows can be computed concurrently. Cells outside the mask,
// non-numeric cells, and cells whose neighborhood yields no usable data pass
// through unchanged. Rewritten cells are formatted with
// max(original decimal places, 2) digits.
//
// # Error Handling
//
// Malformed cell data never errors. Invalid algorithm parameters reaching
// this package (non-positive window or sigma, unknown method) fail fast:
// silently substituting an algorithm parameter could mislead a calibration
// engineer about what was actually computed. Defaulting of user-entered
// parameters belongs at the host boundary.
package smoothing
