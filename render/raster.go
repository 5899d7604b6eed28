package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/m-saenger/metR/contour"
	"github.com/m-saenger/metR/field"
)

// Raster fills the primitives into an NRGBA image. Primitives draw in
// slice order, later ones on top, each filled with pal.Lookup of its
// INTERIOR value. Hole rings wind opposite to the outer ring, so the
// rasterizer leaves them untouched for the layer underneath. Data
// coordinates are fitted to the image with y flipped (data y grows up,
// image y grows down).
//
// Returns ErrBadImageSize for non-positive dimensions and
// ErrDegenerateBounds when the primitives span no area.
//
// Time: O(total vertices + Width×Height per primitive).
func Raster(prims []Primitive, pal *Palette, opts RasterOptions) (*image.NRGBA, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrBadImageSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background.A != 0 {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if len(prims) == 0 {
		return dst, nil
	}

	proj, err := fitProjection(prims, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	for _, prim := range prims {
		if len(prim.Ring) < 3 {
			continue
		}
		rast := vector.NewRasterizer(opts.Width, opts.Height)
		addRing(rast, prim.Ring, proj)
		for _, hole := range prim.Holes {
			addRing(rast, hole, proj)
		}
		src := image.NewUniform(pal.Lookup(prim.Interior))
		rast.Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst, nil
}

// projection maps data coordinates into pixel coordinates.
type projection struct {
	minX, minY     float64
	scaleX, scaleY float64
	height         float64
}

func (p projection) apply(pt contour.Point) (x, y float32) {
	x = float32((pt.X - p.minX) * p.scaleX)
	y = float32(p.height - (pt.Y-p.minY)*p.scaleY)
	return x, y
}

// fitProjection fits the primitives' bounding box onto a w×h canvas.
func fitProjection(prims []Primitive, w, h int) (projection, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, prim := range prims {
		for _, pt := range prim.Ring {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	if !(maxX > minX) || !(maxY > minY) {
		return projection{}, ErrDegenerateBounds
	}
	return projection{
		minX:   minX,
		minY:   minY,
		scaleX: float64(w) / (maxX - minX),
		scaleY: float64(h) / (maxY - minY),
		height: float64(h),
	}, nil
}

// addRing appends one closed ring to the rasterizer's path.
func addRing(rast *vector.Rasterizer, ring []contour.Point, proj projection) {
	if len(ring) < 3 {
		return
	}
	x, y := proj.apply(ring[0])
	rast.MoveTo(x, y)
	for _, pt := range ring[1:] {
		x, y = proj.apply(pt)
		rast.LineTo(x, y)
	}
	rast.ClosePath()
}

// GrayRaster renders a shade grid (values in [0, 1], the relief.Shade
// contract) into a grayscale image: each pixel samples its nearest
// lattice cell. Values outside [0, 1] are clamped.
//
// Returns ErrBadImageSize for non-positive dimensions and
// ErrIncompleteGrid for a grid with missing cells.
//
// Time: O(Width×Height × (log W + log H)).
func GrayRaster(g *field.Grid, opts RasterOptions) (*image.Gray, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrBadImageSize
	}
	if g.Validate() != nil {
		return nil, ErrIncompleteGrid
	}

	xs, ys := g.Xs, g.Ys
	spanX := xs[len(xs)-1] - xs[0]
	spanY := ys[len(ys)-1] - ys[0]

	dst := image.NewGray(image.Rect(0, 0, opts.Width, opts.Height))
	for py := 0; py < opts.Height; py++ {
		// Flip: image rows grow downward, grid rows grow upward.
		dataY := ys[0] + spanY*(float64(opts.Height-1-py)+0.5)/float64(opts.Height)
		j := nearestIndex(ys, dataY)
		for px := 0; px < opts.Width; px++ {
			dataX := xs[0] + spanX*(float64(px)+0.5)/float64(opts.Width)
			i := nearestIndex(xs, dataX)
			v := g.At(i, j)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			dst.SetGray(px, py, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return dst, nil
}

// nearestIndex finds the axis index closest to v.
func nearestIndex(axis []float64, v float64) int {
	k := sort.SearchFloat64s(axis, v)
	if k == 0 {
		return 0
	}
	if k >= len(axis) {
		return len(axis) - 1
	}
	if v-axis[k-1] <= axis[k]-v {
		return k - 1
	}
	return k
}
