package stream

// Arrows converts the field into renderable arrow primitives, keeping
// every Stride-th sample along both axes and scaling displacements by
// Scale. The unscaled magnitude rides along for color mapping.
// Emission order is row-major, so output is deterministic.
//
// Time: O(W×H / Stride²).
func Arrows(f *Field, opts ArrowOptions) []Arrow {
	stride := opts.Stride
	if stride < 1 {
		stride = 1
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	var arrows []Arrow
	for j := 0; j < f.Height(); j += stride {
		for i := 0; i < f.Width(); i += stride {
			vec := f.At(i, j)
			arrows = append(arrows, Arrow{
				X:         f.XAt(i),
				Y:         f.YAt(j),
				DX:        vec.U * scale,
				DY:        vec.V * scale,
				Magnitude: vec.Speed(),
			})
		}
	}
	return arrows
}
