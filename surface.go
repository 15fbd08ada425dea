package fill

import "image"

// Rasterizer creates drawing surfaces. Build asks it for one square
// surface per gradient.
type Rasterizer interface {
	NewSurface(width, height int) (Surface, error)
}

// Surface is the drawing capability Build needs to paint a color ramp.
type Surface interface {
	// CreateLinearRamp returns an empty ramp along (x0, y0)-(x1, y1)
	// in surface pixel coordinates.
	CreateLinearRamp(x0, y0, x1, y1 float64) Ramp

	// SetFill makes r the active fill.
	SetFill(r Ramp)

	// FillRect paints the rectangle with the active fill.
	FillRect(x, y, w, h int)

	// Image exposes the painted pixels.
	Image() image.Image
}

// SoftwareRasterizer produces CPU Pixmap surfaces.
type SoftwareRasterizer struct{}

// NewSurface implements Rasterizer.
func (SoftwareRasterizer) NewSurface(width, height int) (Surface, error) {
	return NewPixmap(width, height), nil
}
