package contour

import (
	"math"
)

// Labels picks one text anchor per contour line: the vertex whose
// neighborhood turns the least, so the label sits on the flattest
// stretch of the curve. Lines with fewer than opts.MinVertices vertices
// get no label. The anchor's Angle follows the local line direction,
// folded into (-π/2, π/2] so text is never upside-down.
//
// Time: O(total vertices × Window).
func Labels(lines []Line, opts LabelOptions) []Label {
	window := opts.Window
	if window < 1 {
		window = 1
	}
	minVerts := opts.MinVertices
	if minVerts < 3 {
		minVerts = 3
	}

	var labels []Label
	for _, ln := range lines {
		n := len(ln.Points)
		if n < minVerts {
			continue
		}
		best, bestScore := -1, math.Inf(1)
		lo, hi := window, n-1-window
		if ln.Closed {
			lo, hi = 0, n-1
		}
		for k := lo; k <= hi; k++ {
			score := 0.0
			for d := -window + 1; d < window; d++ {
				score += math.Abs(turnAt(ln, k+d))
			}
			if score < bestScore {
				best, bestScore = k, score
			}
		}
		if best < 0 {
			continue
		}
		labels = append(labels, Label{
			Level: ln.Level,
			At:    ln.Points[best],
			Angle: textAngle(ln, best),
		})
	}
	return labels
}

// vertexAt resolves index k on a line, wrapping on closed lines and
// clamping on open ones.
func vertexAt(ln Line, k int) Point {
	n := len(ln.Points)
	if ln.Closed {
		return ln.Points[((k%n)+n)%n]
	}
	if k < 0 {
		k = 0
	}
	if k > n-1 {
		k = n - 1
	}
	return ln.Points[k]
}

// turnAt is the signed direction change at vertex k, in radians.
func turnAt(ln Line, k int) float64 {
	a, b, c := vertexAt(ln, k-1), vertexAt(ln, k), vertexAt(ln, k+1)
	in := math.Atan2(b.Y-a.Y, b.X-a.X)
	out := math.Atan2(c.Y-b.Y, c.X-b.X)
	d := out - in
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// textAngle is the local line direction at vertex k folded into
// (-π/2, π/2].
func textAngle(ln Line, k int) float64 {
	a, c := vertexAt(ln, k-1), vertexAt(ln, k+1)
	angle := math.Atan2(c.Y-a.Y, c.X-a.X)
	if angle > math.Pi/2 {
		angle -= math.Pi
	}
	if angle <= -math.Pi/2 {
		angle += math.Pi
	}
	return angle
}
