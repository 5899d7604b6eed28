// Package contour defines geometry types, options, and sentinel errors
// for the contour subpackage of github.com/m-saenger/metR.
package contour

import (
	"errors"
)

// Sentinel errors for contour operations.
var (
	// ErrEmptyBreaks indicates an empty break set.
	ErrEmptyBreaks = errors.New("contour: break set must hold at least one level")
	// ErrUnsortedBreaks indicates break levels that are not strictly increasing.
	ErrUnsortedBreaks = errors.New("contour: break levels must be strictly increasing")
	// ErrIncompleteGrid indicates the grid still has missing cells.
	ErrIncompleteGrid = errors.New("contour: grid has missing cells; impute before contouring")
	// ErrBadBreakCount indicates a requested break count below two.
	ErrBadBreakCount = errors.New("contour: break count must be at least two")
	// ErrBadBreakSpan indicates a value span with max not above min.
	ErrBadBreakSpan = errors.New("contour: break span must have max greater than min")
)

// Point is a vertex in data coordinates.
type Point struct {
	X, Y float64
}

// Region is one filled contour region: a connected component of the
// super-level set {z ≥ Level}. Ring is the closed outer boundary
// (counter-clockwise, first vertex not repeated); Holes are interior
// boundaries (clockwise). Interior is a representative z value strictly
// inside the region — the component's extreme value — used downstream
// as the fill key. Component is the row-major discovery index of the
// region within its level. Identity of a region is the composite
// (Level, Interior, Component).
type Region struct {
	Level     float64
	Interior  float64
	Component int
	Ring      []Point
	Holes     [][]Point
}

// Line is one traced level curve. Closed lines repeat no vertex; open
// lines start and end on the grid edge.
type Line struct {
	Level  float64
	Points []Point
	Closed bool
}

// Label is a text anchor for one contour line.
type Label struct {
	Level float64
	At    Point
	// Angle is the text rotation in radians, in (-π/2, π/2], following
	// the local line direction but never upside-down.
	Angle float64
}

// ShadedSegment is one illuminated contour segment. Shade is in
// [-1, 1]: positive faces the sun, negative faces away. Width is the
// suggested stroke width factor in [WidthMin, 1].
type ShadedSegment struct {
	Level    float64
	From, To Point
	Shade    float64
	Width    float64
}

// FilledOptions tunes FilledRegions.
type FilledOptions struct {
	// Exclude lists break levels to suppress from the output. Matching
	// regions are silently skipped; this is a filter, not an error.
	Exclude []float64
}

// DefaultFilledOptions returns FilledOptions with no excluded levels.
func DefaultFilledOptions() FilledOptions {
	return FilledOptions{}
}

// LineOptions tunes Isolines.
type LineOptions struct {
	// Exclude lists break levels to suppress from the output.
	Exclude []float64
}

// DefaultLineOptions returns LineOptions with no excluded levels.
func DefaultLineOptions() LineOptions {
	return LineOptions{}
}

// LabelOptions tunes Labels.
type LabelOptions struct {
	// Window is the number of vertices on each side considered when
	// scoring local flatness. Values below 1 fall back to 1.
	Window int
	// MinVertices skips lines shorter than this many vertices.
	// Values below 3 fall back to 3.
	MinVertices int
}

// DefaultLabelOptions returns LabelOptions with Window=2, MinVertices=5.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{Window: 2, MinVertices: 5}
}

// TanakaOptions tunes Tanaka.
type TanakaOptions struct {
	// SunAzimuth is the direction the light comes FROM, in degrees
	// clockwise from north (+y). Cartography's conventional northwest
	// sun is 315.
	SunAzimuth float64
	// WidthMin is the stroke width factor for segments lit head-on;
	// fully shaded segments get width 1. Clamped into [0, 1].
	WidthMin float64
}

// DefaultTanakaOptions returns TanakaOptions with the conventional
// northwest sun (azimuth 315°) and WidthMin=0.2.
func DefaultTanakaOptions() TanakaOptions {
	return TanakaOptions{SunAzimuth: 315, WidthMin: 0.2}
}
