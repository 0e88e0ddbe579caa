// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ggtext/console"
)

// RectInstance is one solid rectangle drawn as a scaled unit quad.
type RectInstance struct {
	Model mgl32.Mat4
	Color mgl32.Vec4
}

// Rects collects solid rectangles, such as console backgrounds, for one
// frame.
type Rects struct {
	instances []RectInstance
}

// Add appends the background rectangle bg.
func (r *Rects) Add(proj mgl32.Mat4, bg console.Background) {
	topLeft := bg.Center.Sub(bg.Scale.Mul(0.5))
	model := proj.
		Mul4(mgl32.Translate3D(topLeft.X(), topLeft.Y(), 0)).
		Mul4(mgl32.Scale3D(bg.Scale.X(), bg.Scale.Y(), 1))
	r.instances = append(r.instances, RectInstance{Model: model, Color: bg.Color})
}

// Draw implements Drawer for rectangle entries.
func (r *Rects) Draw(proj mgl32.Mat4, e Entry) error {
	if e.Kind != KindRect {
		return fmt.Errorf("%w: %v", ErrWrongKind, e.Kind)
	}
	r.Add(proj, e.Rect)
	return nil
}

// Instances returns the rectangles queued this frame.
func (r *Rects) Instances() []RectInstance { return r.instances }

// Reset starts a new frame.
func (r *Rects) Reset() { r.instances = r.instances[:0] }
