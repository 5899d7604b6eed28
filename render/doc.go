// Package render turns contour geometry into draw primitives and, when
// an image is wanted, rasterizes them with golang.org/x/image/vector.
//
// What:
//
//   - Primitive is the minimal renderable unit: a closed polygon (outer
//     ring plus holes) tagged with its Level and Interior value. Emit
//     converts contour regions into primitives, preserving order.
//   - Palette maps a scalar through break intervals to a color;
//     DiscretePalette builds the strip used by discrete legends, and
//     Swatches exposes the interval/color pairs for legend drawing.
//   - Raster fills primitives into an NRGBA image in slice order (later
//     primitives draw on top), keying each fill on the primitive's
//     INTERIOR value, not its level — two regions sharing a boundary
//     level but holding different content get different colors.
//   - GrayRaster renders a shade grid (relief.Shade output) into a
//     grayscale image.
//
// Why:
//
//   - Keying fills on the boundary level conflates same-level regions;
//     the interior value is the honest fill key.
//   - Hole rings carry opposite winding, so the rasterizer's winding
//     accumulation leaves holes transparent for the layer below.
//
// Complexity: O(total vertices + pixels) per Raster call.
//
// Errors:
//
//   - ErrBadImageSize: non-positive raster dimensions.
//   - ErrPaletteSize: color count does not fit the break count.
//   - ErrDegenerateBounds: primitives span no area to project from.
//   - ErrIncompleteGrid: GrayRaster on a grid with missing cells.
package render
