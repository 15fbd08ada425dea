// Package fill provides the gradient paint used to fill shapes in a 2D
// rendering pipeline.
//
// # Overview
//
// A linear gradient is defined by two endpoints and an ordered list of
// color stops. Building it produces two things a renderer needs:
//
//   - a square RGBA texture holding the color ramp, always laid out
//     horizontally, clamped along U and repeated along V
//   - an affine transform from texture space to shape space that carries
//     the gradient's direction, length and position
//
// Renderers invert the transform to compute texture coordinates for each
// vertex or pixel (see Built.UV and Built.ColorAt).
//
// # Quick Start
//
//	g := fill.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, "#ff0000").
//	    AddColorStop(1, "blue")
//
//	b, err := g.Build()
//	if err != nil {
//	    return err
//	}
//
//	tex := b.Texture()   // upload, see integration/gpufill
//	m := b.Transform()   // invert before use
//	key := b.StyleKey()  // deduplicate render state
//
// # Lifecycle
//
// A Gradient is mutable until Build. Build runs once; the Built value it
// returns is immutable, and stops added afterwards are rejected with
// ErrAlreadyBuilt. Use Gradient.Clone to derive a new, unbuilt gradient.
//
// # Texture Space
//
// SpaceGlobal transforms operate in absolute shape coordinates.
// SpaceLocal transforms operate in the unit square of the shape being
// filled, so endpoints are given in [0, 1] units of the shape bounds.
//
// # Rasterization
//
// The ramp is painted through the Rasterizer interface. The default
// SoftwareRasterizer paints into a Pixmap; tests and GPU backends can
// inject their own through WithRasterizer.
package fill
