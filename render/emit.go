package render

import (
	"github.com/m-saenger/metR/contour"
)

// Emit converts contour regions into polygon draw primitives, carrying
// the Level and Interior tags through untouched and preserving the
// regions' stacking order (ascending level, then discovery order).
//
// Time: O(regions).
func Emit(regions []contour.Region) []Primitive {
	prims := make([]Primitive, 0, len(regions))
	for _, reg := range regions {
		prims = append(prims, Primitive{
			Ring:     reg.Ring,
			Holes:    reg.Holes,
			Level:    reg.Level,
			Interior: reg.Interior,
		})
	}
	return prims
}
