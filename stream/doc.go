// Package stream renders 2-D vector fields (wind, currents) as arrow
// primitives and integrated streamlines.
//
// What:
//
//   - Field pairs two scalar grids, U and V, on one shared lattice and
//     interpolates bilinearly between samples.
//   - Arrows decimates the lattice every Stride samples into renderable
//     arrow primitives scaled by Scale.
//   - Streamlines integrates trajectories through the field with
//     classical fourth-order Runge–Kutta, forward and backward from every
//     seed, stopping at the domain edge, after MaxSteps, or when the
//     local speed drops below MinSpeed.
//
// Why:
//
//   - Arrow decimation keeps dense model output legible.
//   - RK4 keeps streamlines stable on curved fields at large steps where
//     Euler integration visibly spirals.
//
// Complexity:
//
//   - Interp:      O(log W + log H) per lookup (axis bisection).
//   - Arrows:      O(W×H / Stride²).
//   - Streamlines: O(seeds × MaxSteps) lookups.
//
// Errors:
//
//   - ErrGridMismatch: U and V are on different lattices.
//   - ErrIncompleteGrid: a component grid has missing cells.
//   - ErrBadStep: a non-positive integration step with auto-step disabled.
package stream
