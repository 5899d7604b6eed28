package contour

import (
	"math"

	"github.com/m-saenger/metR/field"
)

// segment is one directed boundary piece. Direction convention: the
// region's interior (z ≥ level) lies on the LEFT of from→to, so outer
// rings stitch counter-clockwise and holes clockwise. owner is the
// row-major index of an inside sample adjacent to the segment, used to
// attribute the stitched ring to its connected component.
type segment struct {
	from, to Point
	owner    int
}

// insideMask classifies every sample against level. A sample exactly on
// the level counts as inside (ties go to the higher interval).
func insideMask(g *field.Grid, level float64) []bool {
	mask := make([]bool, len(g.Values))
	for i, v := range g.Values {
		mask[i] = v >= level
	}
	return mask
}

// crossOnEdge interpolates the level crossing on the lattice edge
// between samples (i0,j0) and (i1,j1). The endpoints are put in
// canonical (row-major) order first, so every caller sharing an edge
// computes the bit-identical point.
func crossOnEdge(g *field.Grid, level float64, i0, j0, i1, j1 int) Point {
	w := g.Width()
	if j0*w+i0 > j1*w+i1 {
		i0, j0, i1, j1 = i1, j1, i0, j0
	}
	ax, ay, az := g.XAt(i0), g.YAt(j0), g.At(i0, j0)
	bx, by, bz := g.XAt(i1), g.YAt(j1), g.At(i1, j1)
	t := (level - az) / (bz - az)
	return Point{X: ax + t*(bx-ax), Y: ay + t*(by-ay)}
}

// samplePoint returns the data coordinates of sample (i, j).
func samplePoint(g *field.Grid, i, j int) Point {
	return Point{X: g.XAt(i), Y: g.YAt(j)}
}

// cellSegments runs marching squares over every grid cell and returns
// the directed interior-on-left segments for the given level, plus the
// diagonal sample pairs joined by saddle cells whose center average
// reaches the level (those pairs belong to one component even though
// they are not orthogonally adjacent).
//
// Cells are scanned row-major (j ascending, then i), which fixes the
// discovery order of everything downstream.
func cellSegments(g *field.Grid, mask []bool, level float64) (segs []segment, saddleLinks [][2]int) {
	w, h := g.Width(), g.Height()
	for j := 0; j < h-1; j++ {
		for i := 0; i < w-1; i++ {
			bl := j*w + i
			br := j*w + i + 1
			tl := (j+1)*w + i
			tr := (j+1)*w + i + 1

			code := 0
			if mask[bl] {
				code |= 1
			}
			if mask[br] {
				code |= 2
			}
			if mask[tr] {
				code |= 4
			}
			if mask[tl] {
				code |= 8
			}
			if code == 0 || code == 15 {
				continue
			}

			// Edge crossings, computed on demand.
			pB := func() Point { return crossOnEdge(g, level, i, j, i+1, j) }
			pR := func() Point { return crossOnEdge(g, level, i+1, j, i+1, j+1) }
			pT := func() Point { return crossOnEdge(g, level, i, j+1, i+1, j+1) }
			pL := func() Point { return crossOnEdge(g, level, i, j, i, j+1) }

			switch code {
			case 1: // BL inside
				segs = append(segs, segment{from: pB(), to: pL(), owner: bl})
			case 2: // BR
				segs = append(segs, segment{from: pR(), to: pB(), owner: br})
			case 3: // bottom half
				segs = append(segs, segment{from: pR(), to: pL(), owner: bl})
			case 4: // TR
				segs = append(segs, segment{from: pT(), to: pR(), owner: tr})
			case 5: // BL+TR saddle
				if saddleInside(g, level, i, j) {
					segs = append(segs,
						segment{from: pB(), to: pR(), owner: bl},
						segment{from: pT(), to: pL(), owner: bl})
					saddleLinks = append(saddleLinks, [2]int{bl, tr})
				} else {
					segs = append(segs,
						segment{from: pB(), to: pL(), owner: bl},
						segment{from: pT(), to: pR(), owner: tr})
				}
			case 6: // right half
				segs = append(segs, segment{from: pT(), to: pB(), owner: br})
			case 7: // all but TL
				segs = append(segs, segment{from: pT(), to: pL(), owner: bl})
			case 8: // TL
				segs = append(segs, segment{from: pL(), to: pT(), owner: tl})
			case 9: // left half
				segs = append(segs, segment{from: pB(), to: pT(), owner: bl})
			case 10: // BR+TL saddle
				if saddleInside(g, level, i, j) {
					segs = append(segs,
						segment{from: pR(), to: pT(), owner: br},
						segment{from: pL(), to: pB(), owner: br})
					saddleLinks = append(saddleLinks, [2]int{br, tl})
				} else {
					segs = append(segs,
						segment{from: pR(), to: pB(), owner: br},
						segment{from: pL(), to: pT(), owner: tl})
				}
			case 11: // all but TR
				segs = append(segs, segment{from: pR(), to: pT(), owner: bl})
			case 12: // top half
				segs = append(segs, segment{from: pL(), to: pR(), owner: tl})
			case 13: // all but BR
				segs = append(segs, segment{from: pB(), to: pR(), owner: bl})
			case 14: // all but BL
				segs = append(segs, segment{from: pL(), to: pB(), owner: br})
			}
		}
	}
	return segs, saddleLinks
}

// saddleInside disambiguates the two ambiguous marching-squares cases
// by the cell's center average: when it reaches the level, the two
// inside corners connect through the cell.
func saddleInside(g *field.Grid, level float64, i, j int) bool {
	center := (g.At(i, j) + g.At(i+1, j) + g.At(i, j+1) + g.At(i+1, j+1)) / 4
	return center >= level
}

// borderSegments walks the grid boundary counter-clockwise (bottom row
// left→right, right column up, top row right→left, left column down)
// and emits the directed pieces of the boundary that belong to the
// inside set, so edge-touching regions close along the grid edge. For a
// border lattice edge p→q: both endpoints inside gives the full edge,
// one inside gives the piece between that endpoint and the level
// crossing.
func borderSegments(g *field.Grid, mask []bool, level float64) []segment {
	w, h := g.Width(), g.Height()
	var segs []segment

	emit := func(pi, pj, qi, qj int) {
		p := mask[pj*w+pi]
		q := mask[qj*w+qi]
		switch {
		case p && q:
			segs = append(segs, segment{
				from:  samplePoint(g, pi, pj),
				to:    samplePoint(g, qi, qj),
				owner: pj*w + pi,
			})
		case p:
			segs = append(segs, segment{
				from:  samplePoint(g, pi, pj),
				to:    crossOnEdge(g, level, pi, pj, qi, qj),
				owner: pj*w + pi,
			})
		case q:
			segs = append(segs, segment{
				from:  crossOnEdge(g, level, pi, pj, qi, qj),
				to:    samplePoint(g, qi, qj),
				owner: qj*w + qi,
			})
		}
	}

	for i := 0; i < w-1; i++ { // bottom, +x
		emit(i, 0, i+1, 0)
	}
	for j := 0; j < h-1; j++ { // right, +y
		emit(w-1, j, w-1, j+1)
	}
	for i := w - 1; i > 0; i-- { // top, -x
		emit(i, h-1, i-1, h-1)
	}
	for j := h - 1; j > 0; j-- { // left, -y
		emit(0, j, 0, j-1)
	}
	return segs
}

// components labels the inside samples with 4-connected component ids
// in row-major discovery order, BFS per component. saddleLinks add the
// diagonal adjacencies produced by connected saddle cells.
// Returns the per-sample component id (-1 for outside samples) and the
// component count.
func components(g *field.Grid, mask []bool, saddleLinks [][2]int) (comp []int, count int) {
	w, h := g.Width(), g.Height()
	total := w * h
	comp = make([]int, total)
	for i := range comp {
		comp[i] = -1
	}

	diag := make(map[int][]int, len(saddleLinks))
	for _, link := range saddleLinks {
		diag[link[0]] = append(diag[link[0]], link[1])
		diag[link[1]] = append(diag[link[1]], link[0])
	}
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for start := 0; start < total; start++ {
		if !mask[start] || comp[start] >= 0 {
			continue
		}
		queue := []int{start}
		comp[start] = count
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%w, u/w
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if vx < 0 || vx >= w || vy < 0 || vy >= h {
					continue
				}
				v := vy*w + vx
				if mask[v] && comp[v] < 0 {
					comp[v] = count
					queue = append(queue, v)
				}
			}
			for _, v := range diag[u] {
				if comp[v] < 0 {
					comp[v] = count
					queue = append(queue, v)
				}
			}
		}
		count++
	}
	return comp, count
}

// ring is one stitched closed loop with the component it belongs to.
type ring struct {
	pts  []Point
	comp int
}

// stitchRings joins directed segments into closed loops. Segments are
// consumed in creation order, so loop discovery is deterministic. At a
// shared vertex the earliest unused outgoing segment continues the
// loop. Zero-length segments (degenerate crossings sitting exactly on a
// sample) are dropped up front.
func stitchRings(segs []segment, comp []int) []ring {
	byStart := make(map[Point][]int, len(segs))
	kept := segs[:0]
	for _, s := range segs {
		if s.from == s.to {
			continue
		}
		kept = append(kept, s)
	}
	segs = kept
	for idx, s := range segs {
		byStart[s.from] = append(byStart[s.from], idx)
	}

	used := make([]bool, len(segs))
	var rings []ring
	for start := range segs {
		if used[start] {
			continue
		}
		var pts []Point
		owner := -1
		cur := start
		for {
			used[cur] = true
			s := segs[cur]
			pts = append(pts, s.from)
			if owner < 0 && comp[s.owner] >= 0 {
				owner = comp[s.owner]
			}
			next := -1
			for _, cand := range byStart[s.to] {
				if !used[cand] {
					next = cand
					break
				}
			}
			if next < 0 {
				break
			}
			cur = next
		}
		// A well-formed boundary always closes; an unmatched endpoint
		// would mean a degenerate ring, which we drop.
		if len(pts) >= 3 && segs[cur].to == pts[0] {
			rings = append(rings, ring{pts: pts, comp: owner})
		}
	}
	return rings
}

// signedArea is the shoelace area of a closed ring (first vertex not
// repeated): positive for counter-clockwise.
func signedArea(pts []Point) float64 {
	area := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

// interiorValues returns, per component id, the extreme (maximum) z
// over the component's samples — the representative value strictly
// inside a super-level region.
func interiorValues(g *field.Grid, comp []int, count int) []float64 {
	interiors := make([]float64, count)
	for i := range interiors {
		interiors[i] = math.Inf(-1)
	}
	for idx, c := range comp {
		if c < 0 {
			continue
		}
		if v := g.Values[idx]; v > interiors[c] {
			interiors[c] = v
		}
	}
	return interiors
}
