// Package impute defines the missing-value Policy variant and sentinel
// errors for the impute subpackage of github.com/m-saenger/metR.
package impute

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for impute operations.
var (
	// ErrUnsupportedPolicy indicates an unrecognized policy kind.
	ErrUnsupportedPolicy = errors.New("impute: unsupported missing-value policy")
	// ErrAllMissing indicates the grid holds no known values to impute from.
	ErrAllMissing = errors.New("impute: grid has no known values")
)

// panic messages for programmer errors in policy constructors.
const panicNilAggregate = "impute: Aggregate: fn must be non-nil"

// Kind discriminates the closed set of missing-value policies.
type Kind int

const (
	// KindReject refuses incomplete grids.
	KindReject Kind = iota
	// KindConstant writes a fixed value into every hole.
	KindConstant
	// KindAggregate writes one aggregate of all known values into every hole.
	KindAggregate
	// KindSplineInterpolate estimates each hole from surrounding samples.
	KindSplineInterpolate
)

// Policy is a closed tagged variant selecting how missing cells are
// filled. The zero value is Reject. Construct with Reject, Constant,
// Aggregate or SplineInterpolate; Fill handles the set exhaustively and
// returns ErrUnsupportedPolicy for anything else.
type Policy struct {
	kind  Kind
	value float64
	fn    func([]float64) float64
}

// Kind reports the policy's discriminant.
func (p Policy) Kind() Kind { return p.kind }

// Reject returns the policy that refuses incomplete grids.
func Reject() Policy { return Policy{kind: KindReject} }

// Constant returns the policy writing v into every missing cell.
func Constant(v float64) Policy { return Policy{kind: KindConstant, value: v} }

// Aggregate returns the policy writing fn(known values) into every
// missing cell. Panics if fn is nil (programmer error).
func Aggregate(fn func([]float64) float64) Policy {
	if fn == nil {
		panic(panicNilAggregate)
	}
	return Policy{kind: KindAggregate, fn: fn}
}

// SplineInterpolate returns the policy estimating each missing cell by
// bivariate interpolation over the surrounding known samples.
func SplineInterpolate() Policy { return Policy{kind: KindSplineInterpolate} }

// Mean is an aggregate function: arithmetic mean of vs.
// Returns NaN for an empty slice.
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// Median is an aggregate function: middle value of vs (mean of the two
// middle values for even length). Returns NaN for an empty slice.
func Median(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), vs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Min is an aggregate function: smallest value of vs.
// Returns NaN for an empty slice.
func Min(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max is an aggregate function: largest value of vs.
// Returns NaN for an empty slice.
func Max(vs []float64) float64 {
	if len(vs) == 0 {
		return math.NaN()
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
