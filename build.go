package fill

import "fmt"

// rasterize paints stops into a size x size texture. The ramp always runs
// horizontally across the full width; the gradient's own direction lives
// in the transform, so one raster orientation serves every angle.
func rasterize(r Rasterizer, size int, stops []ColorStop) (*Texture, error) {
	surface, err := r.NewSurface(size, size)
	if err != nil {
		return nil, fmt.Errorf("new surface: %w", err)
	}

	ramp := surface.CreateLinearRamp(0, 0, float64(size), 0)
	for _, s := range stops {
		ramp.AddColorStop(s.Offset, s.Color)
	}

	// Paint the whole square so any V coordinate samples a valid band.
	surface.SetFill(ramp)
	surface.FillRect(0, 0, size, size)

	return NewTexture(surface.Image(), GradientTextureOptions()), nil
}

// deriveTransform maps texture space, where the ramp spans [0, size]
// along X, onto the segment start-end. Consumers invert it to get texture
// coordinates from shape coordinates. SpaceLocal adds an outer
// (size, size) scale for shapes sampled in their unit square.
func deriveTransform(start, end Point, size int, space TextureSpace) Matrix {
	dir := end.Sub(start)
	s := float64(size)

	m := Identity().
		Scaled(dir.Length()/s, 1).
		Rotated(dir.Angle()).
		Translated(start.X, start.Y)

	if space == SpaceLocal {
		m = m.Scaled(s, s)
	}
	return m
}

// invertOrCollapse inverts m. Coincident endpoints, or an axis too short
// to invert in float64, map every point onto the texture origin, i.e. the
// color at offset 0.
func invertOrCollapse(start, end Point, m Matrix) Matrix {
	if start == end {
		return Matrix{}
	}
	inv, _ := m.Invert()
	return inv
}
