package relief_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m-saenger/metR/field"
	"github.com/m-saenger/metR/relief"
)

// planeGrid builds a w×h unit-spaced grid from a value function.
func planeGrid(t *testing.T, w, h int, fn func(i, j int) float64) *field.Grid {
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

// TestShade_FlatGround: flat terrain shades to sin(altitude) everywhere,
// and to 1 under a zenith sun.
func TestShade_FlatGround(t *testing.T) {
	g := planeGrid(t, 5, 5, func(i, j int) float64 { return 100 })

	s, err := relief.Shade(g, relief.DefaultOptions())
	require.NoError(t, err)
	want := math.Sin(45 * math.Pi / 180)
	for _, v := range s.Values {
		require.InDelta(t, want, v, 1e-12)
	}

	zenith := relief.Options{SunAzimuth: 0, SunAltitude: 90, ZFactor: 1}
	s, err = relief.Shade(g, zenith)
	require.NoError(t, err)
	for _, v := range s.Values {
		require.InDelta(t, 1, v, 1e-12)
	}
}

// TestShade_SlopeFacingSun: a 45° slope facing a 45°-high sun head-on
// shades to 1; the opposite slope shades to 0.
func TestShade_SlopeFacingSun(t *testing.T) {
	opts := relief.Options{SunAzimuth: 0, SunAltitude: 45, ZFactor: 1}

	facing := planeGrid(t, 5, 5, func(i, j int) float64 { return -float64(j) })
	s, err := relief.Shade(facing, opts)
	require.NoError(t, err)
	for _, v := range s.Values {
		require.InDelta(t, 1, v, 1e-12)
	}

	away := planeGrid(t, 5, 5, func(i, j int) float64 { return float64(j) })
	s, err = relief.Shade(away, opts)
	require.NoError(t, err)
	for _, v := range s.Values {
		require.InDelta(t, 0, v, 1e-12)
	}
}

// TestShade_ZFactorSteepens: vertical exaggeration must change the
// shade of sloped (but not flat) terrain.
func TestShade_ZFactorSteepens(t *testing.T) {
	slope := planeGrid(t, 5, 5, func(i, j int) float64 { return float64(j) / 10 })

	flat := relief.Options{SunAzimuth: 0, SunAltitude: 45, ZFactor: 1}
	steep := relief.Options{SunAzimuth: 0, SunAltitude: 45, ZFactor: 5}

	a, err := relief.Shade(slope, flat)
	require.NoError(t, err)
	b, err := relief.Shade(slope, steep)
	require.NoError(t, err)
	require.NotEqual(t, a.Values[12], b.Values[12])
	require.Less(t, b.Values[12], a.Values[12], "exaggeration deepens the away-facing shadow")
}

// TestShade_Rejections covers the sentinels.
func TestShade_Rejections(t *testing.T) {
	g := planeGrid(t, 3, 3, func(i, j int) float64 { return 0 })

	_, err := relief.Shade(g, relief.Options{SunAltitude: 91})
	require.ErrorIs(t, err, relief.ErrBadAltitude)
	_, err = relief.Shade(g, relief.Options{SunAltitude: -1})
	require.ErrorIs(t, err, relief.ErrBadAltitude)

	holed := g.Clone()
	holed.Values[0] = math.NaN()
	_, err = relief.Shade(holed, relief.DefaultOptions())
	require.ErrorIs(t, err, relief.ErrIncompleteGrid)
}

// TestShade_PreservesLattice: the shade grid shares the input axes.
func TestShade_PreservesLattice(t *testing.T) {
	g := planeGrid(t, 4, 6, func(i, j int) float64 { return float64(i * j) })
	s, err := relief.Shade(g, relief.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, g.Xs, s.Xs)
	require.Equal(t, g.Ys, s.Ys)
	require.Len(t, s.Values, 24)
	for _, v := range s.Values {
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
}
