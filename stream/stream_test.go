package stream_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m-saenger/metR/field"
	"github.com/m-saenger/metR/stream"
)

// gridOf builds a w×h unit-spaced grid from a value function.
func gridOf(t *testing.T, w, h int, fn func(i, j int) float64) *field.Grid {
	t.Helper()
	rows := make([][]float64, h)
	for j := range rows {
		rows[j] = make([]float64, w)
		for i := range rows[j] {
			rows[j][i] = fn(i, j)
		}
	}
	g, err := field.FromRows(rows)
	require.NoError(t, err)
	return g
}

// TestNewField_Validation covers lattice mismatch and holes.
func TestNewField_Validation(t *testing.T) {
	u := gridOf(t, 3, 3, func(i, j int) float64 { return 1 })
	v := gridOf(t, 3, 3, func(i, j int) float64 { return 0 })
	_, err := stream.NewField(u, v)
	require.NoError(t, err)

	smaller := gridOf(t, 2, 3, func(i, j int) float64 { return 0 })
	_, err = stream.NewField(u, smaller)
	require.ErrorIs(t, err, stream.ErrGridMismatch)

	holed := u.Clone()
	holed.Values[4] = math.NaN()
	_, err = stream.NewField(holed, v)
	require.ErrorIs(t, err, stream.ErrIncompleteGrid)
}

// TestInterp_Bilinear checks exact reproduction of a linear field and
// hull clipping.
func TestInterp_Bilinear(t *testing.T) {
	u := gridOf(t, 4, 4, func(i, j int) float64 { return float64(i) })
	v := gridOf(t, 4, 4, func(i, j int) float64 { return float64(j) })
	f, err := stream.NewField(u, v)
	require.NoError(t, err)

	vec, ok := f.Interp(1.5, 2.25)
	require.True(t, ok)
	require.InDelta(t, 1.5, vec.U, 1e-12)
	require.InDelta(t, 2.25, vec.V, 1e-12)

	// Lattice corners reproduce samples exactly.
	vec, ok = f.Interp(3, 3)
	require.True(t, ok)
	require.Equal(t, 3.0, vec.U)

	_, ok = f.Interp(-0.1, 1)
	require.False(t, ok, "outside the hull")
	_, ok = f.Interp(1, 3.1)
	require.False(t, ok, "outside the hull")
}

// TestArrows_DecimationAndScale checks stride, scale, and magnitude.
func TestArrows_DecimationAndScale(t *testing.T) {
	u := gridOf(t, 4, 4, func(i, j int) float64 { return 3 })
	v := gridOf(t, 4, 4, func(i, j int) float64 { return 4 })
	f, err := stream.NewField(u, v)
	require.NoError(t, err)

	arrows := stream.Arrows(f, stream.ArrowOptions{Stride: 2, Scale: 0.5})
	require.Len(t, arrows, 4, "every 2nd sample on both axes")
	for _, a := range arrows {
		require.Equal(t, 1.5, a.DX)
		require.Equal(t, 2.0, a.DY)
		require.Equal(t, 5.0, a.Magnitude, "magnitude stays unscaled")
	}

	all := stream.Arrows(f, stream.DefaultArrowOptions())
	require.Len(t, all, 16)
}

// TestStreamlines_UniformFlow: in a uniform eastward flow the single
// seed traces a horizontal line of monotonically increasing x that
// stays inside the domain.
func TestStreamlines_UniformFlow(t *testing.T) {
	u := gridOf(t, 6, 6, func(i, j int) float64 { return 1 })
	v := gridOf(t, 6, 6, func(i, j int) float64 { return 0 })
	f, err := stream.NewField(u, v)
	require.NoError(t, err)

	opts := stream.StreamOptions{SeedStride: 10, MaxSteps: 200, MinSpeed: 1e-9}
	lines, err := stream.Streamlines(f, opts)
	require.NoError(t, err)
	require.Len(t, lines, 1, "one seed at (0,0)")

	line := lines[0]
	require.Greater(t, len(line), 2)
	lastX := math.Inf(-1)
	for _, p := range line {
		require.Greater(t, p.X, lastX, "uniform +x flow must advance monotonically")
		require.InDelta(t, 0, p.Y, 1e-9)
		require.GreaterOrEqual(t, p.X, 0.0)
		require.LessOrEqual(t, p.X, 5.0)
		lastX = p.X
	}
}

// TestStreamlines_StagnantFlow: a zero field seeds no lines.
func TestStreamlines_StagnantFlow(t *testing.T) {
	zero := gridOf(t, 4, 4, func(i, j int) float64 { return 0 })
	f, err := stream.NewField(zero, zero)
	require.NoError(t, err)

	lines, err := stream.Streamlines(f, stream.DefaultStreamOptions())
	require.NoError(t, err)
	require.Empty(t, lines)
}

// TestStreamlines_BadStep: a negative step is refused.
func TestStreamlines_BadStep(t *testing.T) {
	u := gridOf(t, 3, 3, func(i, j int) float64 { return 1 })
	f, err := stream.NewField(u, u)
	require.NoError(t, err)

	_, err = stream.Streamlines(f, stream.StreamOptions{Step: -0.5})
	require.ErrorIs(t, err, stream.ErrBadStep)
}

// TestStreamlines_Idempotence: repeated runs integrate identical lines.
func TestStreamlines_Idempotence(t *testing.T) {
	u := gridOf(t, 8, 8, func(i, j int) float64 { return float64(j) - 3.5 })
	v := gridOf(t, 8, 8, func(i, j int) float64 { return 3.5 - float64(i) })
	f, err := stream.NewField(u, v)
	require.NoError(t, err)

	a, err := stream.Streamlines(f, stream.DefaultStreamOptions())
	require.NoError(t, err)
	b, err := stream.Streamlines(f, stream.DefaultStreamOptions())
	require.NoError(t, err)
	require.Equal(t, a, b)
}
