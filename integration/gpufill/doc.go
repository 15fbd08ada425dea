// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpufill bridges built gradients to a WebGPU renderer.
//
// It provides:
//   - TextureDescriptor and SamplerDescriptor: HAL descriptors for the ramp
//     texture, with the ramp axis clamped and the cross axis repeated
//   - Uniforms: the per-draw uniform block (view matrix, shape-to-UV
//     matrix, opacity) in WGSL std140 layout
//   - ShaderSource and CompileShader: the WGSL program that samples the
//     ramp, compiled to SPIR-V with naga
//   - Uploader: creates GPU textures through gpucontext and deduplicates
//     them by style key
//
// # Usage
//
//	up := gpufill.NewUploader(0)
//	defer up.Close()
//
//	b, _ := gradient.Build()
//	tex, err := up.Upload(dc, b) // dc from gogpu.Context.AsTextureDrawer()
//	if err != nil {
//	    return err
//	}
//	uniforms := gpufill.Uniforms(b, view, 1)
//
// # Coordinate Conventions
//
// fill.Built.Transform maps texture space to shape space. The uniform
// block carries its inverse (Built.UVTransform), so the vertex shader
// only multiplies shape-space positions.
package gpufill
