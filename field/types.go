// Package field defines core types and sentinel errors for the field
// subpackage of github.com/m-saenger/metR.
package field

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for field operations.
var (
	// ErrNoSamples indicates the input table holds no samples.
	ErrNoSamples = errors.New("field: input table must hold at least one sample")
	// ErrDuplicateSample indicates two samples share the same (x, y) coordinate.
	ErrDuplicateSample = errors.New("field: duplicate sample coordinate")
	// ErrAxisCollapsed indicates an axis has fewer than two distinct values.
	ErrAxisCollapsed = errors.New("field: axis must have at least two distinct values")
	// ErrMalformedGrid indicates the grid is missing one or more cells.
	ErrMalformedGrid = errors.New("field: incomplete rectangular grid")
	// ErrBadShape indicates a value buffer whose length does not match the axes.
	ErrBadShape = errors.New("field: value buffer length must equal len(xs)*len(ys)")
	// ErrUnsortedAxis indicates axis values are not strictly increasing.
	ErrUnsortedAxis = errors.New("field: axis values must be strictly increasing")
)

// Sample is one scalar measurement z taken at lattice coordinate (x, y).
type Sample struct {
	X, Y float64 // Coordinates on the rectangular lattice
	Z    float64 // Measured scalar value
}

// Table is a collection of samples. It is input-only: no operation in this
// module mutates a Table after validation.
type Table []Sample

// Coord is one lattice coordinate pair, used when reporting missing cells.
type Coord struct {
	X, Y float64
}

// MalformedGridError reports an incomplete grid. Missing lists every absent
// (x, y) pair in row-major order (y outer, x inner). It unwraps to
// ErrMalformedGrid so callers can branch with errors.Is.
type MalformedGridError struct {
	Missing []Coord
}

// maxReportedCoords caps how many missing pairs Error() spells out.
const maxReportedCoords = 8

// Error formats the missing pairs, capping the listing at maxReportedCoords.
func (e *MalformedGridError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "field: incomplete rectangular grid: %d missing cell(s):", len(e.Missing))
	n := len(e.Missing)
	if n > maxReportedCoords {
		n = maxReportedCoords
	}
	for _, c := range e.Missing[:n] {
		fmt.Fprintf(&sb, " (%g,%g)", c.X, c.Y)
	}
	if len(e.Missing) > n {
		fmt.Fprintf(&sb, " … and %d more", len(e.Missing)-n)
	}
	return sb.String()
}

// Unwrap links the rich error to the ErrMalformedGrid sentinel.
func (e *MalformedGridError) Unwrap() error { return ErrMalformedGrid }
