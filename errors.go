package fill

import "errors"

// Errors returned by gradient construction and build.
var (
	// ErrNotBuilt is returned when the style key is requested from a
	// gradient that has not been built yet.
	ErrNotBuilt = errors.New("fill: gradient not built")

	// ErrAlreadyBuilt is recorded when a color stop is added to a gradient
	// after Build. The built texture never reflects such stops.
	ErrAlreadyBuilt = errors.New("fill: gradient already built")

	// ErrInvalidColor is returned when a color source cannot be normalized.
	ErrInvalidColor = errors.New("fill: invalid color")

	// ErrInvalidTextureSize is returned when the configured texture size is not positive.
	ErrInvalidTextureSize = errors.New("fill: invalid texture size")

	// ErrNilRasterizer is returned when the configured rasterizer is nil.
	ErrNilRasterizer = errors.New("fill: nil rasterizer")
)
