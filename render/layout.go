// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Byte sizes of the instance record. The model matrix is four column
// vectors, followed by the UV position, the UV scale and the color.
const (
	mat4Size = 64
	vec2Size = 8
	vec4Size = 16

	// InstanceStride is the size in bytes of one glyph instance.
	InstanceStride = mat4Size + 2*vec2Size + vec4Size

	// floatsPerInstance is InstanceStride in float32 units.
	floatsPerInstance = InstanceStride / 4
)

// Shader locations of the instance attributes. Locations below 5 are left
// for per-vertex data.
const (
	LocationModel   = 5 // 5..8, one per matrix column
	LocationUVPos   = 9
	LocationUVScale = 10
	LocationColor   = 11
)

// InstanceLayout returns the vertex buffer layout of the data produced by
// Batch.Raw, stepped once per instance.
func InstanceLayout() gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 0, 7)
	for i := range uint64(4) {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32x4,
			Offset:         i * vec4Size,
			ShaderLocation: LocationModel + uint32(i), //nolint:gosec // i < 4
		})
	}
	attrs = append(attrs,
		gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: mat4Size, ShaderLocation: LocationUVPos},
		gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: mat4Size + vec2Size, ShaderLocation: LocationUVScale},
		gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x4, Offset: mat4Size + 2*vec2Size, ShaderLocation: LocationColor},
	)
	return gputypes.VertexBufferLayout{
		ArrayStride: InstanceStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes:  attrs,
	}
}

// quadVertexStride is position (vec2) plus texture coordinate (vec2).
const quadVertexStride = 2 * vec2Size

// QuadVertices returns the two triangles of the unit quad every glyph
// instance scales, as interleaved position and texture coordinate pairs.
// The quad spans [0,1]² with y growing downward, matching atlas rows.
func QuadVertices() []float32 {
	return []float32{
		0, 0, 0, 0,
		1, 0, 1, 0,
		0, 1, 0, 1,
		1, 0, 1, 0,
		1, 1, 1, 1,
		0, 1, 0, 1,
	}
}

// QuadLayout returns the vertex buffer layout of QuadVertices:
//
//	location 0: position (vec2<f32>)
//	location 1: tex_coord (vec2<f32>)
func QuadLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: quadVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: vec2Size, ShaderLocation: 1},
		},
	}
}
