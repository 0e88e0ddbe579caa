// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestInstanceLayout(t *testing.T) {
	l := InstanceLayout()
	if l.ArrayStride != 96 || l.StepMode != gputypes.VertexStepModeInstance {
		t.Fatalf("stride %d step %v", l.ArrayStride, l.StepMode)
	}
	if len(l.Attributes) != 7 {
		t.Fatalf("len(Attributes) = %d, want 7", len(l.Attributes))
	}
	var next uint64
	for i, a := range l.Attributes {
		if a.ShaderLocation != uint32(5+i) {
			t.Errorf("attribute %d location = %d, want %d", i, a.ShaderLocation, 5+i)
		}
		if a.Offset != next {
			t.Errorf("attribute %d offset = %d, want %d", i, a.Offset, next)
		}
		next += a.Format.Size()
	}
	if next != l.ArrayStride {
		t.Errorf("attributes cover %d bytes, stride is %d", next, l.ArrayStride)
	}
}

func TestQuadLayout(t *testing.T) {
	l := QuadLayout()
	verts := QuadVertices()
	if l.StepMode != gputypes.VertexStepModeVertex || l.ArrayStride != 16 {
		t.Errorf("stride %d step %v", l.ArrayStride, l.StepMode)
	}
	if len(verts)*4%int(l.ArrayStride) != 0 || len(verts)*4/int(l.ArrayStride) != 6 {
		t.Errorf("len(QuadVertices()) = %d, want 6 vertices", len(verts))
	}
	for i := 0; i < len(verts); i += 4 {
		if verts[i] != verts[i+2] || verts[i+1] != verts[i+3] {
			t.Errorf("vertex %d: position %v != tex coord %v", i/4, verts[i:i+2], verts[i+2:i+4])
		}
	}
}
