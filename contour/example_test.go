package contour_test

import (
	"fmt"

	"github.com/m-saenger/metR/contour"
	"github.com/m-saenger/metR/field"
)

// ExampleFilledRegions traces the super-level regions of a small field
// with two separate maxima crossing the same break.
func ExampleFilledRegions() {
	g, _ := field.FromRows([][]float64{
		{100, 100, 100, 100, 100},
		{100, 180, 100, 100, 100},
		{100, 100, 100, 100, 100},
		{100, 100, 100, 220, 100},
		{100, 100, 100, 100, 100},
	})
	regs, _ := contour.FilledRegions(g, contour.Breaks{150}, contour.DefaultFilledOptions())
	for _, r := range regs {
		fmt.Printf("level=%g interior=%g component=%d vertices=%d\n",
			r.Level, r.Interior, r.Component, len(r.Ring))
	}
	// Output:
	// level=150 interior=180 component=0 vertices=4
	// level=150 interior=220 component=1 vertices=4
}

// ExampleIsolines traces one level curve across a tilted plane.
func ExampleIsolines() {
	g, _ := field.FromRows([][]float64{
		{0, 1, 2},
		{0, 1, 2},
	})
	lines, _ := contour.Isolines(g, contour.Breaks{1.5}, contour.DefaultLineOptions())
	for _, ln := range lines {
		fmt.Printf("level=%g closed=%v points=%v\n", ln.Level, ln.Closed, ln.Points)
	}
	// Output:
	// level=1.5 closed=false points=[{1.5 1} {1.5 0}]
}

// ExamplePrettyBreaks generates levels on a pretty step.
func ExamplePrettyBreaks() {
	b, _ := contour.PrettyBreaks(0, 100, 5)
	fmt.Println(b)
	// Output:
	// [0 50 100]
}
