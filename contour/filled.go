package contour

import (
	"github.com/m-saenger/metR/field"
)

// FilledRegions partitions a complete grid into filled contour regions.
// For every break level L (ascending), the connected components of the
// super-level set {z ≥ L} are traced into closed rings; edge-touching
// components close along the grid edge. Each region carries:
//
//   - Level: the break bounding the region (always a member of breaks),
//   - Interior: the extreme z inside the component, disambiguating two
//     regions that share a boundary level but hold different content,
//   - Component: the row-major discovery index within the level,
//   - Ring/Holes: outer boundary (counter-clockwise) and hole
//     boundaries (clockwise).
//
// Output is grouped by ascending level, then discovery order; the
// ordering is render-only — later regions draw on top. Levels listed in
// opts.Exclude are silently skipped. Ties: a sample with z exactly on a
// break belongs to the higher interval, so it is inside the region at
// that break.
//
// Returns ErrEmptyBreaks/ErrUnsortedBreaks for a malformed break set
// and ErrIncompleteGrid when the grid still has missing cells.
//
// Time: O(B×W×H). Memory: O(W×H).
func FilledRegions(g *field.Grid, breaks Breaks, opts FilledOptions) ([]Region, error) {
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

	var regions []Region
	for _, level := range breaks {
		if excluded[level] {
			continue
		}
		regions = append(regions, regionsAtLevel(g, level)...)
	}
	return regions, nil
}

// regionsAtLevel traces every region of one super-level set.
func regionsAtLevel(g *field.Grid, level float64) []Region {
	mask := insideMask(g, level)
	any := false
	for _, in := range mask {
		if in {
			any = true
			break
		}
	}
	if !any {
		return nil
	}

	segs, saddleLinks := cellSegments(g, mask, level)
	segs = append(segs, borderSegments(g, mask, level)...)
	comp, count := components(g, mask, saddleLinks)
	rings := stitchRings(segs, comp)
	interiors := interiorValues(g, comp, count)

	byComp := make(map[int][]ring, count)
	for _, r := range rings {
		byComp[r.comp] = append(byComp[r.comp], r)
	}

	var regions []Region
	for c := 0; c < count; c++ {
		group := byComp[c]
		if len(group) == 0 {
			// Component too thin to enclose area (e.g. a lone sample
			// sitting exactly on the level): nothing to fill.
			continue
		}
		outer := 0
		for k := 1; k < len(group); k++ {
			if signedArea(group[k].pts) > signedArea(group[outer].pts) {
				outer = k
			}
		}
		reg := Region{
			Level:     level,
			Interior:  interiors[c],
			Component: c,
			Ring:      group[outer].pts,
		}
		for k, r := range group {
			if k != outer {
				reg.Holes = append(reg.Holes, r.pts)
			}
		}
		regions = append(regions, reg)
	}
	return regions
}
