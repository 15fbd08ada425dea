// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpufill

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed gradient.wgsl
var gradientShaderWGSL string

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// ShaderSource returns the WGSL source of the gradient shader.
func ShaderSource() string {
	return gradientShaderWGSL
}

// CompileShader compiles the gradient shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(gradientShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpufill: compile gradient shader: %w", err)
	}
	return spirvWords(spirvBytes), nil
}

// spirvWords converts little-endian SPIR-V bytes to 32-bit words.
// Trailing bytes that do not form a whole word are dropped.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}
