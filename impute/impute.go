package impute

import (
	"math"

	"github.com/m-saenger/metR/field"
)

// minNeighbors is how many known samples the interpolation window must
// contain before the weighted estimate is computed.
const minNeighbors = 4

// Fill returns a complete copy of g with every missing (NaN) cell
// resolved according to p. The input grid is never mutated; a grid that
// is already complete comes back as a plain clone under every policy.
//
// Errors:
//   - Reject on a holed grid surfaces the grid's *field.MalformedGridError.
//   - Aggregate/SplineInterpolate on a grid with no known values returns
//     ErrAllMissing.
//   - An unrecognized policy kind returns ErrUnsupportedPolicy.
//
// Complexity: see package documentation.
func Fill(g *field.Grid, p Policy) (*field.Grid, error) {
	missing := g.Missing()
	if len(missing) == 0 {
		return g.Clone(), nil
	}

	switch p.kind {
	case KindReject:
		return nil, g.Validate()

	case KindConstant:
		out := g.Clone()
		for i, v := range out.Values {
			if math.IsNaN(v) {
				out.Values[i] = p.value
			}
		}
		return out, nil

	case KindAggregate:
		known := knownValues(g)
		if len(known) == 0 {
			return nil, ErrAllMissing
		}
		fill := p.fn(known)
		out := g.Clone()
		for i, v := range out.Values {
			if math.IsNaN(v) {
				out.Values[i] = fill
			}
		}
		return out, nil

	case KindSplineInterpolate:
		return interpolate(g)

	default:
		return nil, ErrUnsupportedPolicy
	}
}

// knownValues collects every non-missing value of g in row-major order.
func knownValues(g *field.Grid) []float64 {
	known := make([]float64, 0, len(g.Values))
	for _, v := range g.Values {
		if !math.IsNaN(v) {
			known = append(known, v)
		}
	}
	return known
}

// interpolate fills each hole by inverse-distance weighting over an
// expanding square index window. The window grows until it holds at
// least minNeighbors known samples (or covers the whole grid), then
// weights each by 1/d² in coordinate space. Estimates are written into
// a fresh copy only, so holes never feed each other.
func interpolate(g *field.Grid) (*field.Grid, error) {
	w, h := g.Width(), g.Height()
	out := g.Clone()

	anyKnown := false
	for _, v := range g.Values {
		if !math.IsNaN(v) {
			anyKnown = true
			break
		}
	}
	if !anyKnown {
		return nil, ErrAllMissing
	}

	maxRadius := w
	if h > maxRadius {
		maxRadius = h
	}

	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if !math.IsNaN(g.At(i, j)) {
				continue
			}
			var num, den float64
			found := 0
			for r := 1; r <= maxRadius; r++ {
				num, den, found = weighWindow(g, i, j, r)
				if found >= minNeighbors {
					break
				}
			}
			out.Values[j*w+i] = num / den
		}
	}
	return out, nil
}

// weighWindow accumulates inverse-squared-distance weights of every
// known sample within the square window of index radius r around (i, j).
func weighWindow(g *field.Grid, i, j, r int) (num, den float64, found int) {
	w, h := g.Width(), g.Height()
	x0, y0 := g.XAt(i), g.YAt(j)

	jLo, jHi := j-r, j+r
	if jLo < 0 {
		jLo = 0
	}
	if jHi > h-1 {
		jHi = h - 1
	}
	iLo, iHi := i-r, i+r
	if iLo < 0 {
		iLo = 0
	}
	if iHi > w-1 {
		iHi = w - 1
	}

	for jj := jLo; jj <= jHi; jj++ {
		for ii := iLo; ii <= iHi; ii++ {
			z := g.At(ii, jj)
			if math.IsNaN(z) {
				continue
			}
			dx := g.XAt(ii) - x0
			dy := g.YAt(jj) - y0
			wgt := 1 / (dx*dx + dy*dy)
			num += wgt * z
			den += wgt
			found++
		}
	}
	return num, den, found
}
