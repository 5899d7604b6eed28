// Package contour partitions a complete scalar grid into renderable
// contour geometry: filled super-level regions, isolines, label anchors
// and illuminated (Tanaka) segments.
//
// What:
//
//   - Breaks is an ordered set of strictly increasing thresholds;
//     EqualBreaks and PrettyBreaks generate one from a value range. There
//     is no package-wide default generator: breaks are always passed at
//     call time.
//   - FilledRegions finds, for every break L, the connected components of
//     the super-level set {z ≥ L} and traces each component's boundary as
//     a closed ring (plus hole rings). Regions touching the grid edge are
//     closed along the edge, never left open. Each region carries its
//     Level, a Component id, and an Interior value — the extreme z inside
//     the component — so two regions sharing a boundary level but holding
//     different content stay distinct.
//   - Isolines traces marching-squares level curves as polylines; open
//     ends always lie on the grid edge.
//   - Labels picks one anchor per polyline at its locally flattest vertex.
//   - Tanaka converts isolines into per-segment shaded primitives lit by
//     a configurable sun azimuth.
//
// Why:
//
//   - Mapping fill color to the boundary level alone conflates regions of
//     different interior content; the Interior tag is the disambiguator.
//   - Generic polygon filling leaves edge-touching regions open; explicit
//     edge closing is the fix this package exists for.
//
// Conventions:
//
//   - A sample with z exactly equal to a break belongs to the higher
//     interval (ties go up).
//   - Boundary rings are traversed with the region's interior on the
//     left: outer rings counter-clockwise, holes clockwise.
//   - Output is grouped by ascending level, then by row-major discovery
//     order. The ordering is render-only: regions discovered later draw
//     on top.
//
// Complexity:
//
//   - FilledRegions: O(B×W×H) time, O(W×H) memory, B = number of breaks.
//   - Isolines:      O(B×W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyBreaks, ErrUnsortedBreaks: malformed break set.
//   - ErrIncompleteGrid: the grid still has missing cells; impute first.
package contour
