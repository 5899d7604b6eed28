package stream

import (
	"sort"

	"github.com/m-saenger/metR/field"
)

// Field is a 2-D vector field: two complete scalar grids, U and V, on
// one shared lattice. It is immutable once built.
type Field struct {
	u, v *field.Grid
}

// NewField pairs the U and V component grids.
// Returns ErrGridMismatch when the grids' axes differ and
// ErrIncompleteGrid when either grid still has missing cells.
// Complexity: O(W+H) for the axis comparison, O(W×H) for validation.
func NewField(u, v *field.Grid) (*Field, error) {
	if !equalAxes(u.Xs, v.Xs) || !equalAxes(u.Ys, v.Ys) {
		return nil, ErrGridMismatch
	}
	if u.Validate() != nil || v.Validate() != nil {
		return nil, ErrIncompleteGrid
	}
	return &Field{u: u, v: v}, nil
}

func equalAxes(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Width returns the lattice width.
func (f *Field) Width() int { return f.u.Width() }

// Height returns the lattice height.
func (f *Field) Height() int { return f.u.Height() }

// XAt returns the x coordinate of column i.
func (f *Field) XAt(i int) float64 { return f.u.XAt(i) }

// YAt returns the y coordinate of row j.
func (f *Field) YAt(j int) float64 { return f.u.YAt(j) }

// At returns the vector at lattice cell (i, j).
func (f *Field) At(i, j int) Vector {
	return Vector{U: f.u.At(i, j), V: f.v.At(i, j)}
}

// Interp bilinearly interpolates the vector at data coordinate (x, y).
// The second result is false outside the lattice hull.
// Complexity: O(log W + log H).
func (f *Field) Interp(x, y float64) (Vector, bool) {
	xs, ys := f.u.Xs, f.u.Ys
	if x < xs[0] || x > xs[len(xs)-1] || y < ys[0] || y > ys[len(ys)-1] {
		return Vector{}, false
	}
	i := cellIndex(xs, x)
	j := cellIndex(ys, y)
	tx := (x - xs[i]) / (xs[i+1] - xs[i])
	ty := (y - ys[j]) / (ys[j+1] - ys[j])

	lerp2 := func(g *field.Grid) float64 {
		v00 := g.At(i, j)
		v10 := g.At(i+1, j)
		v01 := g.At(i, j+1)
		v11 := g.At(i+1, j+1)
		bottom := v00 + tx*(v10-v00)
		top := v01 + tx*(v11-v01)
		return bottom + ty*(top-bottom)
	}
	return Vector{U: lerp2(f.u), V: lerp2(f.v)}, true
}

// cellIndex locates the cell [axis[k], axis[k+1]] containing v, clamped
// so the final axis value maps into the last cell.
func cellIndex(axis []float64, v float64) int {
	k := sort.SearchFloat64s(axis, v) - 1
	if k < 0 {
		k = 0
	}
	if k > len(axis)-2 {
		k = len(axis) - 2
	}
	return k
}
