package impute_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/m-saenger/metR/field"
	"github.com/m-saenger/metR/impute"
)

// FillSuite exercises every missing-value policy.
type FillSuite struct {
	suite.Suite
}

// holedGrid builds a w×h grid of fill values with NaN holes at the given
// (i, j) index pairs.
func holedGrid(t *testing.T, w, h int, fill float64, holes ...[2]int) *field.Grid {
	t.Helper()
	values := make([]float64, w*h)
	for i := range values {
		values[i] = fill
	}
	for _, hole := range holes {
		values[hole[1]*w+hole[0]] = math.NaN()
	}
	xs := make([]float64, w)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys := make([]float64, h)
	for j := range ys {
		ys[j] = float64(j)
	}
	g, err := field.NewGrid(xs, ys, values)
	require.NoError(t, err)
	return g
}

// TestCompleteGridIsCloned verifies every policy is a no-op clone on a
// complete grid.
func (s *FillSuite) TestCompleteGridIsCloned() {
	g := holedGrid(s.T(), 3, 3, 5)
	for _, p := range []impute.Policy{
		impute.Reject(),
		impute.Constant(-1),
		impute.Aggregate(impute.Mean),
		impute.SplineInterpolate(),
	} {
		out, err := impute.Fill(g, p)
		require.NoError(s.T(), err)
		require.Equal(s.T(), g.Values, out.Values)
		require.NotSame(s.T(), g, out, "Fill must return a copy")
	}
}

// TestRejectSurfacesMalformedGrid verifies Reject hands back the grid's
// own validation error, naming the missing row.
func (s *FillSuite) TestRejectSurfacesMalformedGrid() {
	// Entire top row missing.
	g := holedGrid(s.T(), 4, 3, 1, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	_, err := impute.Fill(g, impute.Reject())
	require.ErrorIs(s.T(), err, field.ErrMalformedGrid)

	var mge *field.MalformedGridError
	require.ErrorAs(s.T(), err, &mge)
	require.Len(s.T(), mge.Missing, 4)
	for k, c := range mge.Missing {
		require.Equal(s.T(), field.Coord{X: float64(k), Y: 2}, c)
	}
}

// TestConstantFillsEveryHole verifies Constant(c) resolves every hole to
// exactly c and touches nothing else.
func (s *FillSuite) TestConstantFillsEveryHole() {
	g := holedGrid(s.T(), 5, 5, 3, [2]int{1, 1}, [2]int{4, 0}, [2]int{2, 4})

	out, err := impute.Fill(g, impute.Constant(-7.5))
	require.NoError(s.T(), err)
	require.NoError(s.T(), out.Validate())
	require.Equal(s.T(), -7.5, out.At(1, 1))
	require.Equal(s.T(), -7.5, out.At(4, 0))
	require.Equal(s.T(), -7.5, out.At(2, 4))
	require.Equal(s.T(), 3.0, out.At(0, 0))
	// Input untouched.
	require.True(s.T(), math.IsNaN(g.At(1, 1)))
}

// TestAggregateMeanNeighborScenario: a single hole surrounded by known
// cells of value 10 resolves to 10 under Aggregate(Mean).
func (s *FillSuite) TestAggregateMeanNeighborScenario() {
	g := holedGrid(s.T(), 11, 11, 10, [2]int{5, 5})

	out, err := impute.Fill(g, impute.Aggregate(impute.Mean))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10.0, out.At(5, 5))
	require.NoError(s.T(), out.Validate())
}

// TestAggregateUsesAllKnownValues verifies the aggregate runs once over
// the full set of known values, not a neighborhood.
func (s *FillSuite) TestAggregateUsesAllKnownValues() {
	g := holedGrid(s.T(), 2, 2, 0, [2]int{1, 1})
	g.Values[0], g.Values[1], g.Values[2] = 1, 2, 9

	out, err := impute.Fill(g, impute.Aggregate(impute.Max))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9.0, out.At(1, 1))
}

// TestSplineInterpolateUniformNeighborhood: equal-valued neighbors yield
// exactly that value.
func (s *FillSuite) TestSplineInterpolateUniformNeighborhood() {
	g := holedGrid(s.T(), 11, 11, 10, [2]int{5, 5})

	out, err := impute.Fill(g, impute.SplineInterpolate())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 10.0, out.At(5, 5), 1e-12)
}

// TestSplineInterpolateLinearField: on z = x + y the symmetric
// neighborhood reproduces the hole's true value.
func (s *FillSuite) TestSplineInterpolateLinearField() {
	w, h := 5, 5
	values := make([]float64, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			values[j*w+i] = float64(i + j)
		}
	}
	values[2*w+2] = math.NaN()
	xs := []float64{0, 1, 2, 3, 4}
	g, err := field.NewGrid(xs, xs, values)
	require.NoError(s.T(), err)

	out, err := impute.Fill(g, impute.SplineInterpolate())
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 4.0, out.At(2, 2), 1e-9)
}

// TestAllMissingIsRejected verifies data-dependent policies refuse a grid
// with no known values at all.
func (s *FillSuite) TestAllMissingIsRejected() {
	g := holedGrid(s.T(), 2, 2, 0,
		[2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})

	_, err := impute.Fill(g, impute.Aggregate(impute.Mean))
	require.ErrorIs(s.T(), err, impute.ErrAllMissing)

	_, err = impute.Fill(g, impute.SplineInterpolate())
	require.ErrorIs(s.T(), err, impute.ErrAllMissing)
}

// TestNilAggregatePanics: a nil aggregate function is a programmer error.
func (s *FillSuite) TestNilAggregatePanics() {
	require.Panics(s.T(), func() { impute.Aggregate(nil) })
}

// TestAggregateHelpers spot-checks the shipped aggregate functions.
func (s *FillSuite) TestAggregateHelpers() {
	vs := []float64{4, 1, 3, 2}
	require.Equal(s.T(), 2.5, impute.Mean(vs))
	require.Equal(s.T(), 2.5, impute.Median(vs))
	require.Equal(s.T(), 3.0, impute.Median([]float64{3, 1, 9}))
	require.Equal(s.T(), 1.0, impute.Min(vs))
	require.Equal(s.T(), 4.0, impute.Max(vs))
	require.True(s.T(), math.IsNaN(impute.Mean(nil)))
	require.True(s.T(), math.IsNaN(impute.Median(nil)))
}

// TestIdempotence: filling twice with the same policy yields identical
// grids.
func (s *FillSuite) TestIdempotence() {
	g := holedGrid(s.T(), 6, 6, 2, [2]int{3, 3}, [2]int{0, 5})

	a, err := impute.Fill(g, impute.SplineInterpolate())
	require.NoError(s.T(), err)
	b, err := impute.Fill(g, impute.SplineInterpolate())
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Values, b.Values)
}

func TestFillSuite(t *testing.T) {
	suite.Run(t, new(FillSuite))
}

// TestKindReporting checks the discriminant of each constructor without
// reaching into unexported state.
func TestKindReporting(t *testing.T) {
	cases := []struct {
		name string
		p    impute.Policy
		want impute.Kind
	}{
		{"reject", impute.Reject(), impute.KindReject},
		{"zero value", impute.Policy{}, impute.KindReject},
		{"constant", impute.Constant(1), impute.KindConstant},
		{"aggregate", impute.Aggregate(impute.Mean), impute.KindAggregate},
		{"spline", impute.SplineInterpolate(), impute.KindSplineInterpolate},
	}
	for _, tc := range cases {
		if got := tc.p.Kind(); got != tc.want {
			t.Errorf("%s: Kind() = %v; want %v", tc.name, got, tc.want)
		}
	}
}
