package contour

import (
	"math"
)

// Tanaka converts contour lines into illuminated-contour segments:
// the classic relief style where contour stretches facing the light
// source draw thin and bright while stretches in shadow draw thick and
// dark. For every consecutive vertex pair the higher ground lies on the
// left (the Isolines convention), so the shade is the agreement between
// the uphill normal and the sun direction:
//
//	Shade = +1  slope faces the sun head-on (brightest, thinnest)
//	Shade =  0  slope runs parallel to the light
//	Shade = -1  slope faces away (darkest, thickest)
//
// Width interpolates linearly from opts.WidthMin at Shade=+1 to 1 at
// Shade=-1. Zero-length segments are skipped.
//
// Time: O(total vertices).
func Tanaka(lines []Line, opts TanakaOptions) []ShadedSegment {
	widthMin := opts.WidthMin
	if widthMin < 0 {
		widthMin = 0
	}
	if widthMin > 1 {
		widthMin = 1
	}
	// Sun azimuth is degrees clockwise from north (+y): the unit vector
	// pointing toward the light source.
	az := opts.SunAzimuth * math.Pi / 180
	sunX, sunY := math.Sin(az), math.Cos(az)

	var segs []ShadedSegment
	for _, ln := range lines {
		n := len(ln.Points)
		last := n - 1
		if ln.Closed {
			last = n
		}
		for k := 0; k < last; k++ {
			p := ln.Points[k]
			q := ln.Points[(k+1)%n]
			dx, dy := q.X-p.X, q.Y-p.Y
			length := math.Hypot(dx, dy)
			if length == 0 {
				continue
			}
			// Left normal of p→q points uphill.
			nx, ny := -dy/length, dx/length
			shade := nx*sunX + ny*sunY
			segs = append(segs, ShadedSegment{
				Level: ln.Level,
				From:  p,
				To:    q,
				Shade: shade,
				Width: 1 - (shade+1)/2*(1-widthMin),
			})
		}
	}
	return segs
}
