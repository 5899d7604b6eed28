package contour

import (
	"github.com/m-saenger/metR/field"
)

// Isolines traces the level curves of a complete grid with marching
// squares. Curves are joined into polylines: closed where the level set
// closes inside the grid, open with both ends on the grid edge
// otherwise. Along a line's direction the higher ground (z ≥ level)
// lies on the left. Output is grouped by ascending level, then
// discovery order. Levels listed in opts.Exclude are silently skipped.
//
// Returns ErrEmptyBreaks/ErrUnsortedBreaks for a malformed break set
// and ErrIncompleteGrid when the grid still has missing cells.
//
// Time: O(B×W×H). Memory: O(W×H).
func Isolines(g *field.Grid, breaks Breaks, opts LineOptions) ([]Line, error) {
	if err := breaks.Validate(); err != nil {
		return nil, err
	}
	if g.Validate() != nil {
		return nil, ErrIncompleteGrid
	}

	excluded := make(map[float64]bool, len(opts.Exclude))
	for _, lv := range opts.Exclude {
		excluded[lv] = true
	}

	var lines []Line
	for _, level := range breaks {
		if excluded[level] {
			continue
		}
		mask := insideMask(g, level)
		segs, _ := cellSegments(g, mask, level)
		lines = append(lines, stitchLines(segs, level)...)
	}
	return lines, nil
}

// stitchLines joins directed segments into polylines: open chains
// first (their start point has no incoming segment), then the closed
// loops left over. Both passes consume segments in creation order, so
// discovery order is deterministic.
func stitchLines(segs []segment, level float64) []Line {
	kept := segs[:0]
	for _, s := range segs {
		if s.from != s.to {
			kept = append(kept, s)
		}
	}
	segs = kept
	if len(segs) == 0 {
		return nil
	}

	byStart := make(map[Point][]int, len(segs))
	hasIncoming := make(map[Point]bool, len(segs))
	for idx, s := range segs {
		byStart[s.from] = append(byStart[s.from], idx)
		hasIncoming[s.to] = true
	}
	used := make([]bool, len(segs))

	walk := func(start int) []Point {
		pts := []Point{segs[start].from}
		cur := start
		for {
			used[cur] = true
			pts = append(pts, segs[cur].to)
			next := -1
			for _, cand := range byStart[segs[cur].to] {
				if !used[cand] {
					next = cand
					break
				}
			}
			if next < 0 {
				return pts
			}
			cur = next
		}
	}

	var lines []Line
	// Open chains: start where no segment arrives.
	for idx := range segs {
		if used[idx] || hasIncoming[segs[idx].from] {
			continue
		}
		lines = append(lines, Line{Level: level, Points: walk(idx)})
	}
	// Remaining segments form closed loops.
	for idx := range segs {
		if used[idx] {
			continue
		}
		pts := walk(idx)
		// The walk ends back at the start; drop the repeated vertex.
		if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		lines = append(lines, Line{Level: level, Points: pts, Closed: true})
	}
	return lines
}
