// Package relief computes hillshading for elevation grids.
//
// What:
//
//   - Shade illuminates a complete elevation grid with Horn's
//     slope/aspect method and returns a shade grid in [0, 1] on the same
//     lattice: 0 is full shadow, 1 faces the light head-on.
//
// Why:
//
//   - Relief shading under contours or color fills is the standard way
//     to make terrain and pressure surfaces legible.
//
// Conventions:
//
//   - SunAzimuth is degrees clockwise from north (+y), SunAltitude is
//     degrees above the horizon. ZFactor exaggerates elevation relative
//     to the horizontal units.
//   - Gradients use Horn's 3×3 weighted differences; edge samples reuse
//     their nearest interior neighborhood.
//
// Complexity: O(W×H) time and memory.
//
// Errors:
//
//   - ErrIncompleteGrid: the elevation grid has missing cells.
//   - ErrBadAltitude: sun altitude outside [0, 90].
package relief
