package render

import (
	"image/color"
	"math"

	"github.com/m-saenger/metR/contour"
)

// Palette maps scalar values through break intervals to colors. It is
// the color scale behind discrete legend strips: interval k (see
// contour.IntervalOf) gets colors[k], so a break set of n levels needs
// n+1 colors.
type Palette struct {
	breaks contour.Breaks
	colors []color.NRGBA
}

// Swatch is one legend entry: the interval [From, To) and its color.
// The outermost swatches run to ±Inf.
type Swatch struct {
	From, To float64
	Color    color.NRGBA
}

// DiscretePalette builds a palette over a validated break set.
// Returns the break set's own validation error for a malformed set and
// ErrPaletteSize unless len(colors) == len(breaks)+1.
func DiscretePalette(breaks contour.Breaks, colors []color.NRGBA) (*Palette, error) {
	if err := breaks.Validate(); err != nil {
		return nil, err
	}
	if len(colors) != len(breaks)+1 {
		return nil, ErrPaletteSize
	}
	return &Palette{
		breaks: append(contour.Breaks(nil), breaks...),
		colors: append([]color.NRGBA(nil), colors...),
	}, nil
}

// Lookup returns the color of the interval holding v. A v exactly on a
// break belongs to the higher interval, matching the contour breaker.
func (p *Palette) Lookup(v float64) color.NRGBA {
	return p.colors[contour.IntervalOf(v, p.breaks)]
}

// Swatches returns the legend strip entries in ascending order.
func (p *Palette) Swatches() []Swatch {
	swatches := make([]Swatch, len(p.colors))
	for k := range p.colors {
		from, to := math.Inf(-1), math.Inf(1)
		if k > 0 {
			from = p.breaks[k-1]
		}
		if k < len(p.breaks) {
			to = p.breaks[k]
		}
		swatches[k] = Swatch{From: from, To: to, Color: p.colors[k]}
	}
	return swatches
}
