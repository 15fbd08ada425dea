package fill

import "log/slog"

// DefaultTextureSize is the side length, in texels, of gradient textures
// when no size is configured.
const DefaultTextureSize = 256

// Config holds the build-time configuration of a gradient.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// TextureSize is the side length of the square ramp texture.
	TextureSize int

	// Rasterizer paints the ramp. Defaults to SoftwareRasterizer.
	Rasterizer Rasterizer

	// Logger overrides the package logger for this gradient when non-nil.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		TextureSize: DefaultTextureSize,
		Rasterizer:  SoftwareRasterizer{},
	}
}

// Option configures a Gradient during creation.
//
// Example:
//
//	g := fill.NewLinearGradient(0, 0, 1, 0,
//	    fill.WithSpace(fill.SpaceLocal),
//	    fill.WithTextureSize(64))
type Option func(*gradientOptions)

// gradientOptions holds optional configuration for Gradient creation.
type gradientOptions struct {
	cfg   Config
	space TextureSpace
}

func defaultOptions() gradientOptions {
	return gradientOptions{
		cfg:   DefaultConfig(),
		space: SpaceGlobal,
	}
}

// WithSpace sets the texture space the derived transform operates in.
func WithSpace(s TextureSpace) Option {
	return func(o *gradientOptions) {
		o.space = s
	}
}

// WithTextureSize sets the side length of the ramp texture.
// Non-positive sizes make Build fail with ErrInvalidTextureSize.
func WithTextureSize(size int) Option {
	return func(o *gradientOptions) {
		o.cfg.TextureSize = size
	}
}

// WithRasterizer injects the surface factory used by Build.
// Use this to substitute a GPU-backed or recording rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(o *gradientOptions) {
		o.cfg.Rasterizer = r
	}
}

// WithLogger sets a per-gradient logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *gradientOptions) {
		o.cfg.Logger = l
	}
}

// WithConfig replaces the whole configuration. Options applied after it
// still override individual fields.
func WithConfig(cfg Config) Option {
	return func(o *gradientOptions) {
		o.cfg = cfg
	}
}
