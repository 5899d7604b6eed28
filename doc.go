// Package metR is an in-memory toolkit for analyzing gridded
// meteorological fields — from raw scattered samples to renderable
// contour polygons, streamlines and relief shading.
//
// 🌍 What is metR?
//
//	A deterministic, synchronous library that brings together:
//		• Field grids: build complete rectangular lattices from (x, y, z) samples
//		• Imputation: fill missing cells by constant, aggregate or interpolation policies
//		• Filled contours: connected super-level regions with interior-value tags
//		• Isolines: marching-squares level curves, label anchors, Tanaka shading
//		• Vector fields: decimated arrows and RK4 streamlines
//		• Relief: Horn hillshading of elevation grids
//		• Rendering: polygon draw primitives, discrete palettes, raster sinks
//
// ✨ Why choose metR?
//
//   - Predictable – no global defaults, no hidden state, pure functions of input
//   - Honest geometry – edge-touching regions close along the grid edge, never open
//   - Disambiguated – same-level regions with different interior content stay distinct
//   - Pure Go – no cgo; rasterization via golang.org/x/image only
//
// Everything is organized under flat subpackages:
//
//	field/   — Sample, Grid, rectangular-lattice validation
//	impute/  — missing-value policies: Reject, Constant, Aggregate, SplineInterpolate
//	contour/ — break sets, filled regions, isolines, labels, Tanaka segments
//	stream/  — 2-D vector fields, arrows, streamlines
//	relief/  — hillshade computation
//	render/  — draw primitives, palettes, raster output
//
// The usual pipeline:
//
//	grid  ← field.FromSamples(samples)
//	grid  ← impute.Fill(grid, impute.SplineInterpolate())
//	regs  ← contour.FilledRegions(grid, breaks, opts)
//	prims ← render.Emit(regs)
//
// Dive into each package's doc.go for contracts, error sentinels and
// complexity notes.
package metR
