// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufill

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/fill"
)

// UniformSize is the size in bytes of the uniform block written by Uniforms.
// Two mat3x3<f32> (48 bytes each in std140) followed by one vec4<f32>.
const UniformSize = 48 + 48 + 16

// Uniforms encodes the uniform block of the gradient shader.
//
// view maps shape space to clip space. The UV matrix is
// b.UVTransform(). alpha multiplies the sampled color.
func Uniforms(b *fill.Built, view fill.Matrix, alpha float32) []byte {
	buf := make([]byte, UniformSize)
	putMat3(buf[0:48], view)
	putMat3(buf[48:96], b.UVTransform())
	putF32(buf[96:], alpha)
	putF32(buf[100:], float32(b.TextureSize()))
	// buf[104:112] is padding.
	return buf
}

// putMat3 writes m as a column-major mat3x3<f32>; each column is padded
// to 16 bytes.
func putMat3(dst []byte, m fill.Matrix) {
	cols := [3][3]float64{
		{m.A, m.D, 0},
		{m.B, m.E, 0},
		{m.C, m.F, 1},
	}
	for c, col := range cols {
		for r, v := range col {
			putF32(dst[c*16+r*4:], float32(v))
		}
	}
}

func putF32(dst []byte, v float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
}
