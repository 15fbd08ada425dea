// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufill

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/fill"
	"github.com/gogpu/fill/cache"
)

// Upload errors.
var (
	// ErrNilDrawContext is returned when Upload is given a nil draw context.
	ErrNilDrawContext = errors.New("gpufill: nil draw context")

	// ErrNoTextureCreator is returned when the draw context cannot create textures.
	ErrNoTextureCreator = errors.New("gpufill: draw context has no texture creator")

	// ErrTextureCreationFailed is returned when the GPU texture cannot be created.
	ErrTextureCreationFailed = errors.New("gpufill: texture creation failed")

	// ErrUploaderClosed is returned when Upload is called after Close.
	ErrUploaderClosed = errors.New("gpufill: uploader is closed")
)

// textureDestroyer matches the Destroy method of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// createFunc creates a GPU texture from straight-alpha RGBA8 pixels.
type createFunc func(width, height int, data []byte) (gpucontext.Texture, error)

// Uploader creates one GPU texture per built gradient and reuses it for
// every draw with the same style key. Evicted textures are destroyed.
//
// Uploader is safe for concurrent use.
type Uploader struct {
	textures *cache.StyleCache[gpucontext.Texture]
	closed   atomic.Bool
}

// NewUploader creates an Uploader keeping up to capacity textures per
// cache shard. If capacity <= 0, cache.DefaultCapacity is used.
func NewUploader(capacity int) *Uploader {
	return &Uploader{
		textures: cache.New[gpucontext.Texture](capacity, func(key string, tex gpucontext.Texture) {
			fill.Logger().Debug("gpufill: releasing gradient texture", slog.String("key", key))
			if d, ok := tex.(textureDestroyer); ok {
				d.Destroy()
			}
		}),
	}
}

// Upload returns the GPU texture for b, creating it through dc on first
// use. The texture can be drawn with dc.DrawTexture.
func (u *Uploader) Upload(dc gpucontext.TextureDrawer, b *fill.Built) (gpucontext.Texture, error) {
	if dc == nil {
		return nil, ErrNilDrawContext
	}
	creator := dc.TextureCreator()
	if creator == nil {
		return nil, ErrNoTextureCreator
	}
	return u.upload(b, creator.NewTextureFromRGBA)
}

func (u *Uploader) upload(b *fill.Built, create createFunc) (gpucontext.Texture, error) {
	if u.closed.Load() {
		return nil, ErrUploaderClosed
	}
	key := b.StyleKey()
	return u.textures.GetOrCreate(key, func() (gpucontext.Texture, error) {
		tex := b.Texture()
		gpuTex, err := create(tex.Width(), tex.Height(), tex.Data())
		if err != nil {
			return nil, fmt.Errorf("%w: gradient %d: %w", ErrTextureCreationFailed, b.ID(), err)
		}

		// Close sets the flag before clearing, and clearing waits for
		// this shard.
		if u.closed.Load() {
			if d, ok := gpuTex.(textureDestroyer); ok {
				d.Destroy()
			}
			return nil, ErrUploaderClosed
		}

		// Ramp texels are straight alpha.
		if pt, ok := gpuTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}

		fill.Logger().Debug("gpufill: uploaded gradient texture",
			slog.Uint64("gradient", b.ID()),
			slog.Uint64("texture", tex.ID()),
			slog.Int("size", tex.Width()))
		return gpuTex, nil
	})
}

// Len returns the number of cached GPU textures.
func (u *Uploader) Len() int {
	return u.textures.Len()
}

// Stats returns the texture cache statistics.
func (u *Uploader) Stats() cache.Stats {
	return u.textures.Stats()
}

// Release destroys the GPU texture cached for b, if any.
func (u *Uploader) Release(b *fill.Built) bool {
	return u.textures.Delete(b.StyleKey())
}

// Close destroys every cached texture. Close is idempotent.
func (u *Uploader) Close() error {
	if !u.closed.CompareAndSwap(false, true) {
		return nil
	}
	u.textures.Clear()
	return nil
}
