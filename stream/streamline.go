package stream

import (
	"github.com/m-saenger/metR/contour"
)

// Streamlines integrates trajectories through the field with classical
// fourth-order Runge–Kutta. A seed sits at every SeedStride-th sample;
// from each seed the trajectory is traced backward and forward and the
// two halves are joined into one polyline through the seed.
// Integration stops at the domain edge, after MaxSteps steps per
// direction, or when the local speed drops below MinSpeed. Seeds in
// stagnant flow produce no line. Seed order is row-major, so output is
// deterministic.
//
// A zero opts.Step selects the auto step (half the mean lattice
// spacing); a negative one returns ErrBadStep.
//
// Time: O(seeds × MaxSteps).
func Streamlines(f *Field, opts StreamOptions) ([]Polyline, error) {
	if opts.Step < 0 {
		return nil, ErrBadStep
	}
	step := opts.Step
	if step == 0 {
		step = autoStep(f)
	}
	stride := opts.SeedStride
	if stride < 1 {
		stride = 1
	}
	maxSteps := opts.MaxSteps
	if maxSteps < 1 {
		maxSteps = 500
	}

	var lines []Polyline
	for j := 0; j < f.Height(); j += stride {
		for i := 0; i < f.Width(); i += stride {
			seed := contour.Point{X: f.XAt(i), Y: f.YAt(j)}
			back := trace(f, seed, -step, maxSteps, opts.MinSpeed)
			fwd := trace(f, seed, step, maxSteps, opts.MinSpeed)
			if len(back) == 0 && len(fwd) == 0 {
				continue
			}
			line := make(Polyline, 0, len(back)+len(fwd)+1)
			for k := len(back) - 1; k >= 0; k-- {
				line = append(line, back[k])
			}
			line = append(line, seed)
			line = append(line, fwd...)
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// autoStep is half the mean lattice spacing over both axes.
func autoStep(f *Field) float64 {
	xs := f.u.Xs
	ys := f.u.Ys
	dx := (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	dy := (ys[len(ys)-1] - ys[0]) / float64(len(ys)-1)
	return (dx + dy) / 4
}

// trace integrates one direction from (but not including) the start
// point. A negative step runs upstream.
func trace(f *Field, start contour.Point, step float64, maxSteps int, minSpeed float64) []contour.Point {
	var pts []contour.Point
	x, y := start.X, start.Y
	for n := 0; n < maxSteps; n++ {
		nx, ny, ok := rk4Step(f, x, y, step, minSpeed)
		if !ok {
			break
		}
		pts = append(pts, contour.Point{X: nx, Y: ny})
		x, y = nx, ny
	}
	return pts
}

// rk4Step advances one classical Runge–Kutta step. The velocity is
// normalized to unit speed so the step length stays constant along the
// line; ok is false at the domain edge or in stagnant flow.
func rk4Step(f *Field, x, y, step, minSpeed float64) (nx, ny float64, ok bool) {
	dir := func(px, py float64) (float64, float64, bool) {
		vec, inside := f.Interp(px, py)
		speed := vec.Speed()
		if !inside || speed < minSpeed || speed == 0 {
			return 0, 0, false
		}
		return vec.U / speed, vec.V / speed, true
	}

	k1x, k1y, ok := dir(x, y)
	if !ok {
		return 0, 0, false
	}
	k2x, k2y, ok := dir(x+step/2*k1x, y+step/2*k1y)
	if !ok {
		return 0, 0, false
	}
	k3x, k3y, ok := dir(x+step/2*k2x, y+step/2*k2y)
	if !ok {
		return 0, 0, false
	}
	k4x, k4y, ok := dir(x+step*k3x, y+step*k3y)
	if !ok {
		return 0, 0, false
	}

	nx = x + step/6*(k1x+2*k2x+2*k3x+k4x)
	ny = y + step/6*(k1y+2*k2y+2*k3y+k4y)
	if _, inside := f.Interp(nx, ny); !inside {
		return 0, 0, false
	}
	return nx, ny, true
}
