// Package relief defines options and sentinel errors for the relief
// subpackage of github.com/m-saenger/metR.
package relief

import (
	"errors"
)

// Sentinel errors for relief operations.
var (
	// ErrIncompleteGrid indicates an elevation grid with missing cells.
	ErrIncompleteGrid = errors.New("relief: elevation grid has missing cells; impute first")
	// ErrBadAltitude indicates a sun altitude outside [0, 90] degrees.
	ErrBadAltitude = errors.New("relief: sun altitude must lie in [0, 90] degrees")
)

// Options configures Shade.
//
// Fields:
//   - SunAzimuth  — direction the light comes from, in degrees clockwise
//     from north (+y). Cartography's conventional light is 315 (northwest).
//   - SunAltitude — light elevation above the horizon in degrees, in [0, 90].
//   - ZFactor     — vertical exaggeration applied to elevations before
//     slopes are computed. Zero falls back to 1.
type Options struct {
	SunAzimuth  float64
	SunAltitude float64
	ZFactor     float64
}

// DefaultOptions returns the conventional northwest light at 45°:
// Options{SunAzimuth: 315, SunAltitude: 45, ZFactor: 1}.
func DefaultOptions() Options {
	return Options{SunAzimuth: 315, SunAltitude: 45, ZFactor: 1}
}
