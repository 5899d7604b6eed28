// Package field provides constructors and accessors for rectangular
// scalar grids. A Grid is immutable once built: treat all exported
// fields as read-only and use Clone before deriving modified copies.
package field

import (
	"math"
	"sort"
)

// Grid is a scalar field on a complete rectangular lattice.
// Xs and Ys hold the strictly increasing axis values; Values holds one
// z per lattice cell in row-major order (Values[j*len(Xs)+i] is the
// value at (Xs[i], Ys[j])). NaN marks a missing cell.
type Grid struct {
	Xs, Ys []float64
	Values []float64
}

// NewGrid constructs a Grid from explicit axes and a row-major value
// buffer. The buffer is deep-copied to keep the Grid self-contained.
// Returns ErrAxisCollapsed when an axis has fewer than two values,
// ErrUnsortedAxis when axis values are not strictly increasing, and
// ErrBadShape when len(values) != len(xs)*len(ys).
// Complexity: O(W×H) time and memory.
func NewGrid(xs, ys, values []float64) (*Grid, error) {
	if len(xs) < 2 || len(ys) < 2 {
		return nil, ErrAxisCollapsed
	}
	for _, axis := range [2][]float64{xs, ys} {
		for i := 1; i < len(axis); i++ {
			if axis[i] <= axis[i-1] {
				return nil, ErrUnsortedAxis
			}
		}
	}
	if len(values) != len(xs)*len(ys) {
		return nil, ErrBadShape
	}
	g := &Grid{
		Xs:     append([]float64(nil), xs...),
		Ys:     append([]float64(nil), ys...),
		Values: append([]float64(nil), values...),
	}
	return g, nil
}

// FromRows builds a Grid from a dense matrix with unit-spaced axes:
// rows[j][i] becomes the value at (x=i, y=j). Rows must be rectangular.
// Returns ErrNoSamples for an empty matrix, ErrBadShape for jagged rows,
// ErrAxisCollapsed for a single row or column.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoSamples
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrBadShape
		}
	}
	xs := make([]float64, w)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := make([]float64, h)
	for j := range ys {
		ys[j] = float64(j)
	}
	values := make([]float64, 0, w*h)
	for _, row := range rows {
		values = append(values, row...)
	}
	return NewGrid(xs, ys, values)
}

// FromSamples builds a Grid from scattered samples. The axes are the
// sorted distinct x and y coordinates; lattice cells with no sample are
// set to NaN (missing). The input table is never mutated.
// Returns ErrNoSamples for an empty table, ErrDuplicateSample when two
// samples share a coordinate, ErrAxisCollapsed when either axis ends up
// with fewer than two distinct values.
// Complexity: O(n log n) time, O(W×H) memory.
func FromSamples(samples Table) (*Grid, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	xs := distinctSorted(samples, func(s Sample) float64 { return s.X })
	ys := distinctSorted(samples, func(s Sample) float64 { return s.Y })
	if len(xs) < 2 || len(ys) < 2 {
		return nil, ErrAxisCollapsed
	}

	w, h := len(xs), len(ys)
	values := make([]float64, w*h)
	filled := make([]bool, w*h)
	for i := range values {
		values[i] = math.NaN()
	}
	for _, s := range samples {
		i := sort.SearchFloat64s(xs, s.X)
		j := sort.SearchFloat64s(ys, s.Y)
		idx := j*w + i
		if filled[idx] {
			return nil, ErrDuplicateSample
		}
		filled[idx] = true
		values[idx] = s.Z
	}
	return &Grid{Xs: xs, Ys: ys, Values: values}, nil
}

// distinctSorted extracts the sorted distinct coordinate values along one axis.
func distinctSorted(samples Table, axis func(Sample) float64) []float64 {
	vals := make([]float64, len(samples))
	for i, s := range samples {
		vals[i] = axis(s)
	}
	sort.Float64s(vals)
	out := vals[:0]
	for i, v := range vals {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return append([]float64(nil), out...)
}

// Width returns the number of distinct x values.
func (g *Grid) Width() int { return len(g.Xs) }

// Height returns the number of distinct y values.
func (g *Grid) Height() int { return len(g.Ys) }

// At returns the value at column i, row j. Missing cells return NaN.
func (g *Grid) At(i, j int) float64 { return g.Values[j*len(g.Xs)+i] }

// XAt returns the x coordinate of column i.
func (g *Grid) XAt(i int) float64 { return g.Xs[i] }

// YAt returns the y coordinate of row j.
func (g *Grid) YAt(j int) float64 { return g.Ys[j] }

// ZRange returns the minimum and maximum non-missing value.
// A grid of only missing cells returns (NaN, NaN).
func (g *Grid) ZRange() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, v := range g.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return min, max
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		Xs:     append([]float64(nil), g.Xs...),
		Ys:     append([]float64(nil), g.Ys...),
		Values: append([]float64(nil), g.Values...),
	}
}

// Missing returns the coordinates of every missing (NaN) cell in
// row-major order. A complete grid returns nil.
func (g *Grid) Missing() []Coord {
	var missing []Coord
	for j := 0; j < len(g.Ys); j++ {
		for i := 0; i < len(g.Xs); i++ {
			if math.IsNaN(g.At(i, j)) {
				missing = append(missing, Coord{X: g.Xs[i], Y: g.Ys[j]})
			}
		}
	}
	return missing
}

// Validate accepts a complete grid and returns a *MalformedGridError
// (wrapping ErrMalformedGrid) listing every missing coordinate pair
// otherwise.
// Complexity: O(W×H) time.
func (g *Grid) Validate() error {
	if missing := g.Missing(); len(missing) > 0 {
		return &MalformedGridError{Missing: missing}
	}
	return nil
}
