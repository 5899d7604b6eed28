package contour

import (
	"math"
	"sort"
)

// Breaks is an ordered set of strictly increasing contour levels
// partitioning a scalar range into intervals.
type Breaks []float64

// Validate returns ErrEmptyBreaks for an empty set and
// ErrUnsortedBreaks when levels are not strictly increasing.
func (b Breaks) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBreaks
	}
	for i := 1; i < len(b); i++ {
		if b[i] <= b[i-1] {
			return ErrUnsortedBreaks
		}
	}
	return nil
}

// IntervalOf returns the interval index of z under b: the number of
// break levels that z reaches. Interval 0 lies strictly below b[0];
// interval k is [b[k-1], b[k]). A z exactly equal to a break belongs to
// the higher interval.
func IntervalOf(z float64, b Breaks) int {
	return sort.Search(len(b), func(i int) bool { return b[i] > z })
}

// EqualBreaks returns n strictly increasing levels evenly spaced over
// [min, max], endpoints included.
// Returns ErrBadBreakCount for n < 2 and ErrBadBreakSpan for max ≤ min.
func EqualBreaks(min, max float64, n int) (Breaks, error) {
	if n < 2 {
		return nil, ErrBadBreakCount
	}
	if !(max > min) {
		return nil, ErrBadBreakSpan
	}
	b := make(Breaks, n)
	step := (max - min) / float64(n-1)
	for i := range b {
		b[i] = min + float64(i)*step
	}
	b[n-1] = max
	return b, nil
}

// PrettyBreaks returns roughly n levels covering [min, max] on a
// "pretty" step — 1, 2 or 5 times a power of ten — the convention of
// statistical axis labeling. The first level is the smallest pretty
// multiple ≥ min, so every level lies inside the span.
// Returns ErrBadBreakCount for n < 2 and ErrBadBreakSpan for max ≤ min.
func PrettyBreaks(min, max float64, n int) (Breaks, error) {
	if n < 2 {
		return nil, ErrBadBreakCount
	}
	if !(max > min) {
		return nil, ErrBadBreakSpan
	}
	raw := (max - min) / float64(n-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * mag
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			step = m * mag
			break
		}
	}
	var b Breaks
	for v := math.Ceil(min/step) * step; v <= max+step*1e-9; v += step {
		b = append(b, v)
	}
	if len(b) < 2 {
		// Span narrower than one pretty step: fall back to even spacing.
		return EqualBreaks(min, max, n)
	}
	return b, nil
}
