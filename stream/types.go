// Package stream defines vector-field types, options, and sentinel
// errors for the stream subpackage of github.com/m-saenger/metR.
package stream

import (
	"errors"
	"math"

	"github.com/m-saenger/metR/contour"
)

// Sentinel errors for stream operations.
var (
	// ErrGridMismatch indicates U and V grids on different lattices.
	ErrGridMismatch = errors.New("stream: U and V grids must share one lattice")
	// ErrIncompleteGrid indicates a component grid with missing cells.
	ErrIncompleteGrid = errors.New("stream: component grid has missing cells; impute first")
	// ErrBadStep indicates a non-positive integration step.
	ErrBadStep = errors.New("stream: integration step must be positive")
)

// Vector is one (u, v) velocity pair.
type Vector struct {
	U, V float64
}

// Speed returns the vector's magnitude.
func (v Vector) Speed() float64 {
	return math.Hypot(v.U, v.V)
}

// Arrow is one renderable arrow primitive: origin, scaled displacement,
// and the unscaled magnitude for color mapping.
type Arrow struct {
	X, Y      float64
	DX, DY    float64
	Magnitude float64
}

// Polyline is one integrated streamline in data coordinates.
type Polyline []contour.Point

// ArrowOptions tunes Arrows.
type ArrowOptions struct {
	// Stride keeps every Stride-th sample along both axes. Values below
	// 1 fall back to 1 (no decimation).
	Stride int
	// Scale multiplies (u, v) into the arrow displacement. Zero falls
	// back to 1.
	Scale float64
}

// DefaultArrowOptions returns ArrowOptions{Stride: 1, Scale: 1}.
func DefaultArrowOptions() ArrowOptions {
	return ArrowOptions{Stride: 1, Scale: 1}
}

// StreamOptions tunes Streamlines.
type StreamOptions struct {
	// SeedStride places a seed at every SeedStride-th sample along both
	// axes. Values below 1 fall back to 1.
	SeedStride int
	// Step is the integration step in data units. Zero selects the
	// auto step: half the mean lattice spacing. Negative is ErrBadStep.
	Step float64
	// MaxSteps bounds the number of integration steps per direction.
	// Values below 1 fall back to 500.
	MaxSteps int
	// MinSpeed stops integration in stagnant flow.
	MinSpeed float64
}

// DefaultStreamOptions returns StreamOptions{SeedStride: 4, Step: 0
// (auto), MaxSteps: 500, MinSpeed: 1e-9}.
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{SeedStride: 4, MaxSteps: 500, MinSpeed: 1e-9}
}
