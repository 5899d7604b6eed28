// Package field models scalar measurements on a rectangular lattice and
// validates that they form a complete grid.
//
// What:
//
//   - Sample is one (x, y, z) measurement; Table is the input collection.
//   - Grid is the lattice view: sorted distinct x values × sorted distinct
//     y values, with a row-major value buffer. A cell with no sample holds
//     NaN and counts as missing.
//   - FromSamples builds a Grid from scattered samples; FromRows builds one
//     from a dense matrix with unit-spaced axes.
//   - Grid.Validate accepts complete grids and reports every missing
//     coordinate pair otherwise.
//
// Why:
//
//   - Contouring, streamline and relief algorithms all require a complete
//     rectangular field; this package is the single gate they share.
//   - Missing cells are representable (NaN) so imputation policies can fill
//     them before geometric processing.
//
// Complexity:
//
//   - FromSamples: O(n log n) time (axis sort), O(W×H) memory.
//   - Validate:    O(W×H) time, O(m) memory for m missing cells.
//
// Errors:
//
//   - ErrNoSamples: the input table is empty.
//   - ErrDuplicateSample: two samples share the same (x, y) coordinate.
//   - ErrAxisCollapsed: an axis has fewer than two distinct values.
//   - ErrMalformedGrid: the grid has missing cells; returned wrapped in a
//     *MalformedGridError listing the missing (x, y) pairs.
package field
