// Package render defines draw primitives, options, and sentinel errors
// for the render subpackage of github.com/m-saenger/metR.
package render

import (
	"errors"
	"image/color"

	"github.com/m-saenger/metR/contour"
)

// Sentinel errors for render operations.
var (
	// ErrBadImageSize indicates non-positive raster dimensions.
	ErrBadImageSize = errors.New("render: raster dimensions must be positive")
	// ErrPaletteSize indicates a color count that does not fit the break count.
	ErrPaletteSize = errors.New("render: palette needs exactly len(breaks)+1 colors")
	// ErrDegenerateBounds indicates primitives spanning no drawable area.
	ErrDegenerateBounds = errors.New("render: primitives span no area")
	// ErrIncompleteGrid indicates a grid with missing cells.
	ErrIncompleteGrid = errors.New("render: grid has missing cells; impute first")
)

// Primitive is one polygon draw primitive: a closed outer ring, its
// hole rings, and the two scalar tags consumers key on. Fill color is
// keyed on Interior (not Level); Level identifies the bounding break.
type Primitive struct {
	Ring     []contour.Point
	Holes    [][]contour.Point
	Level    float64
	Interior float64
}

// RasterOptions tunes Raster and GrayRaster.
type RasterOptions struct {
	// Width and Height are the output dimensions in pixels.
	Width, Height int
	// Background paints the image before any primitive. The zero value
	// is fully transparent.
	Background color.NRGBA
}

// DefaultRasterOptions returns RasterOptions{Width: 800, Height: 600}
// over a transparent background.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{Width: 800, Height: 600}
}
