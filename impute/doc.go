// Package impute fills missing cells of a rectangular field grid
// according to an explicit missing-value policy.
//
// What:
//
//   - Policy is a closed variant: Reject, Constant(v), Aggregate(fn),
//     SplineInterpolate. Construct one with the matching function; the
//     zero value is Reject.
//   - Fill(grid, policy) returns a new complete grid; the input grid is
//     never mutated. An already-complete grid comes back as a clone under
//     every policy.
//   - Mean, Median, Min and Max are ready-made aggregate functions.
//
// Why:
//
//   - Contour breaking, streamline seeding and hillshading all refuse
//     grids with holes; imputation is the one sanctioned way to make a
//     holed grid complete.
//   - An explicit policy value passed at call time replaces any notion of
//     a process-wide default: behavior is a pure function of the inputs.
//
// Policies:
//
//   - Reject: surface the grid's own validation error untouched.
//   - Constant(v): write v into every hole.
//   - Aggregate(fn): apply fn once to all known values, write the single
//     result into every hole.
//   - SplineInterpolate: estimate each hole from surrounding known
//     samples by local inverse-distance weighting over an expanding
//     neighborhood.
//
// Complexity:
//
//   - Reject/Constant/Aggregate: O(W×H) time, O(W×H) memory.
//   - SplineInterpolate: O(m×k) time for m holes and k inspected
//     neighbors per hole; degenerates toward O(m×W×H) on very sparse grids.
//
// Errors:
//
//   - ErrUnsupportedPolicy: unrecognized policy kind.
//   - ErrAllMissing: Aggregate or SplineInterpolate on a grid with no
//     known values at all.
//   - field.ErrMalformedGrid (via *field.MalformedGridError): Reject on an
//     incomplete grid.
package impute
