// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufill

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/fill"
)

func buildRedToBlue(t *testing.T, size int) *fill.Built {
	t.Helper()
	b, err := fill.NewLinearGradient(0, 0, 100, 0, fill.WithTextureSize(size)).
		AddColorStop(0, "red").
		AddColorStop(1, "blue").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return b
}

func TestTextureDescriptor(t *testing.T) {
	b := buildRedToBlue(t, 16)
	desc := TextureDescriptor(b.Texture())

	if desc.Size.Width != 16 || desc.Size.Height != 16 || desc.Size.DepthOrArrayLayers != 1 {
		t.Errorf("Size = %+v, want 16x16x1", desc.Size)
	}
	if desc.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", desc.Format)
	}
	if desc.Dimension != gputypes.TextureDimension2D {
		t.Errorf("Dimension = %v, want 2D", desc.Dimension)
	}
	if desc.MipLevelCount != 1 || desc.SampleCount != 1 {
		t.Errorf("MipLevelCount, SampleCount = %d, %d; want 1, 1", desc.MipLevelCount, desc.SampleCount)
	}
	want := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	if desc.Usage != want {
		t.Errorf("Usage = %v, want %v", desc.Usage, want)
	}
	if !strings.HasPrefix(desc.Label, "fill_gradient_") {
		t.Errorf("Label = %q", desc.Label)
	}
}

func TestSamplerDescriptor(t *testing.T) {
	b := buildRedToBlue(t, 8)
	desc := SamplerDescriptor(b.Texture())

	if desc.AddressModeU != gputypes.AddressModeClampToEdge {
		t.Errorf("AddressModeU = %v, want ClampToEdge", desc.AddressModeU)
	}
	if desc.AddressModeV != gputypes.AddressModeRepeat {
		t.Errorf("AddressModeV = %v, want Repeat", desc.AddressModeV)
	}
	if desc.MagFilter != gputypes.FilterModeLinear || desc.MinFilter != gputypes.FilterModeLinear {
		t.Errorf("filters = %v/%v, want Linear", desc.MagFilter, desc.MinFilter)
	}
	if desc.Label != TextureDescriptor(b.Texture()).Label+"_sampler" {
		t.Errorf("Label = %q", desc.Label)
	}
}

func readF32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestUniforms(t *testing.T) {
	b := buildRedToBlue(t, 4)
	buf := Uniforms(b, fill.Identity(), 0.75)

	if len(buf) != UniformSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformSize)
	}

	// Column-major, 16 bytes per column.
	wantView := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	// (0,0)-(100,0) on a 4 texel ramp: u = x/100, v = y/4.
	wantUV := [3][3]float32{{0.01, 0, 0}, {0, 0.25, 0}, {0, 0, 1}}

	for c := range 3 {
		for r := range 3 {
			if got := readF32(buf, c*16+r*4); math.Abs(float64(got-wantView[c][r])) > 1e-6 {
				t.Errorf("view[%d][%d] = %v, want %v", c, r, got, wantView[c][r])
			}
			if got := readF32(buf, 48+c*16+r*4); math.Abs(float64(got-wantUV[c][r])) > 1e-6 {
				t.Errorf("uv[%d][%d] = %v, want %v", c, r, got, wantUV[c][r])
			}
		}
	}
	if got := readF32(buf, 96); got != 0.75 {
		t.Errorf("alpha = %v, want 0.75", got)
	}
	if got := readF32(buf, 100); got != 4 {
		t.Errorf("texture size = %v, want 4", got)
	}
}

func TestShaderSource(t *testing.T) {
	src := ShaderSource()
	for _, want := range []string{"fn " + VertexEntryPoint, "fn " + FragmentEntryPoint, "textureSample"} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source lacks %q", want)
		}
	}
}

func TestCompileShader(t *testing.T) {
	words, err := CompileShader()
	if err != nil {
		if msg := err.Error(); strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileShader() error = %v", err)
	}
	if len(words) == 0 {
		t.Fatal("CompileShader() returned no words")
	}
	if words[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", words[0])
	}
}

func TestSPIRVWords(t *testing.T) {
	got := spirvWords([]byte{0x03, 0x02, 0x23, 0x07, 0x01, 0x00, 0x00, 0x00, 0xff})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (trailing byte dropped)", len(got))
	}
	if got[0] != 0x07230203 || got[1] != 1 {
		t.Errorf("words = %#x", got)
	}
}
