package relief

import (
	"math"

	"github.com/m-saenger/metR/field"
)

// Shade hillshades a complete elevation grid and returns the shade
// field in [0, 1] on the same lattice: 0 is full shadow, 1 faces the
// light head-on. Slopes come from Horn's 3×3 weighted differences with
// edge samples clamped to the grid; the shade is the clamped dot
// product of the unit surface normal with the sun direction.
//
// Returns ErrIncompleteGrid for a grid with missing cells and
// ErrBadAltitude for a sun altitude outside [0, 90] degrees.
//
// Time: O(W×H). Memory: O(W×H).
func Shade(g *field.Grid, opts Options) (*field.Grid, error) {
	if g.Validate() != nil {
		return nil, ErrIncompleteGrid
	}
	if opts.SunAltitude < 0 || opts.SunAltitude > 90 {
		return nil, ErrBadAltitude
	}
	zf := opts.ZFactor
	if zf == 0 {
		zf = 1
	}

	az := opts.SunAzimuth * math.Pi / 180
	alt := opts.SunAltitude * math.Pi / 180
	sunX := math.Sin(az) * math.Cos(alt)
	sunY := math.Cos(az) * math.Cos(alt)
	sunZ := math.Sin(alt)

	w, h := g.Width(), g.Height()
	shade := make([]float64, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			dzdx, dzdy := hornGradient(g, i, j, zf)
			// Surface normal, then clamped illumination.
			norm := math.Sqrt(dzdx*dzdx + dzdy*dzdy + 1)
			dot := (-dzdx*sunX - dzdy*sunY + sunZ) / norm
			if dot < 0 {
				dot = 0
			}
			shade[j*w+i] = dot
		}
	}
	return field.NewGrid(g.Xs, g.Ys, shade)
}

// hornGradient computes Horn's weighted slope components at (i, j),
// clamping the 3×3 neighborhood to the grid edge.
func hornGradient(g *field.Grid, i, j int, zf float64) (dzdx, dzdy float64) {
	w, h := g.Width(), g.Height()
	il, ir := clamp(i-1, w), clamp(i+1, w)
	jl, jr := clamp(j-1, h), clamp(j+1, h)

	z := func(ii, jj int) float64 { return g.At(ii, jj) * zf }

	east := z(ir, jl) + 2*z(ir, j) + z(ir, jr)
	west := z(il, jl) + 2*z(il, j) + z(il, jr)
	north := z(il, jr) + 2*z(i, jr) + z(ir, jr)
	south := z(il, jl) + 2*z(i, jl) + z(ir, jl)

	dx := g.XAt(ir) - g.XAt(il)
	dy := g.YAt(jr) - g.YAt(jl)
	dzdx = (east - west) / (4 * dx)
	dzdy = (north - south) / (4 * dy)
	return dzdx, dzdy
}

// clamp bounds index k into [0, n-1].
func clamp(k, n int) int {
	if k < 0 {
		return 0
	}
	if k > n-1 {
		return n - 1
	}
	return k
}
