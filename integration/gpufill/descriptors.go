// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufill

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/fill"
)

// TextureDescriptor describes a GPU texture that can hold tex and be
// sampled by the gradient shader.
func TextureDescriptor(tex *fill.Texture) *hal.TextureDescriptor {
	return &hal.TextureDescriptor{
		Label: textureLabel(tex),
		Size: hal.Extent3D{
			Width:              uint32(tex.Width()),
			Height:             uint32(tex.Height()),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        tex.Format(),
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// SamplerDescriptor describes the sampler for tex, carrying its per-axis
// address modes and filter.
func SamplerDescriptor(tex *fill.Texture) *hal.SamplerDescriptor {
	return &hal.SamplerDescriptor{
		Label:        textureLabel(tex) + "_sampler",
		AddressModeU: tex.AddressModeU(),
		AddressModeV: tex.AddressModeV(),
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    tex.Filter(),
		MinFilter:    tex.Filter(),
		MipmapFilter: gputypes.FilterModeLinear,
	}
}

func textureLabel(tex *fill.Texture) string {
	return fmt.Sprintf("fill_gradient_%d", tex.ID())
}
