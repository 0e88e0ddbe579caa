// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/console"
	"github.com/gogpu/ggtext/text"
)

// MaxGlyphsPerFrame is the default number of glyph instances a Batch holds
// per frame.
const MaxGlyphsPerFrame = 8192

// GlyphInstance is one glyph drawn as a scaled unit quad.
//
// Model maps the unit quad to clip space. UVPos and UVScale select the
// glyph's region of the atlas in normalized texture coordinates.
type GlyphInstance struct {
	Model   mgl32.Mat4
	UVPos   mgl32.Vec2
	UVScale mgl32.Vec2
	Color   mgl32.Vec4
}

// glyphQuad is a glyph placed relative to the origin of its run.
type glyphQuad struct {
	offset  mgl32.Vec2
	size    mgl32.Vec2
	uvPos   mgl32.Vec2
	uvScale mgl32.Vec2
}

type lineKey struct {
	font *text.Font
	text string
}

func hashLineKey(k lineKey) uint64 {
	return cache.StringHasher(k.font.Name + "\x00" + k.text)
}

// Batch collects the glyph instances of one frame.
//
// Glyph placement of each distinct line is memoized, so redrawing an
// unchanged console only pays for the matrix products.
//
// Batch is not safe for concurrent use.
type Batch struct {
	limit     int
	cacheSize int
	instances []GlyphInstance
	lines     *cache.ShardedCache[lineKey, []glyphQuad]
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithLimit sets the per-frame instance limit. The default is
// MaxGlyphsPerFrame.
func WithLimit(n int) BatchOption {
	return func(b *Batch) {
		b.limit = n
	}
}

// WithLineCache sets how many laid-out lines are memoized. Zero disables
// memoization.
func WithLineCache(capacity int) BatchOption {
	return func(b *Batch) {
		b.cacheSize = capacity
	}
}

// NewBatch creates an empty batch.
func NewBatch(opts ...BatchOption) *Batch {
	b := &Batch{
		limit:     MaxGlyphsPerFrame,
		cacheSize: cache.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.cacheSize > 0 {
		b.lines = cache.NewSharded[lineKey, []glyphQuad](b.cacheSize, hashLineKey)
	}
	return b
}

// AddRuns appends the glyphs of runs drawn with font f and projection proj,
// and returns how many instances were added.
//
// Each run starts at its Pos; '\n' moves to the start of the next line one
// line height down. Characters without metrics are skipped.
//
// AddRuns panics if the frame would exceed the batch limit. Nothing from
// the offending call is kept.
func (b *Batch) AddRuns(f *text.Font, proj mgl32.Mat4, runs ...console.Run) int {
	start := len(b.instances)
	for _, r := range runs {
		base := proj.Mul4(mgl32.Translate3D(r.Pos.X(), r.Pos.Y(), 0))
		for _, q := range b.layout(f, r.Text) {
			model := base.
				Mul4(mgl32.Translate3D(q.offset.X(), q.offset.Y(), 0)).
				Mul4(mgl32.Scale3D(q.size.X(), q.size.Y(), 1))
			b.instances = append(b.instances, GlyphInstance{
				Model:   model,
				UVPos:   q.uvPos,
				UVScale: q.uvScale,
				Color:   r.Color,
			})
		}
	}

	added := len(b.instances) - start
	if len(b.instances) > b.limit {
		b.instances = b.instances[:start]
		panic(fmt.Sprintf("render: too many glyph instances: %d added to %d queued, limit is %d per frame",
			added, start, b.limit))
	}
	return added
}

// Draw implements Drawer for text entries.
func (b *Batch) Draw(proj mgl32.Mat4, e Entry) error {
	if e.Kind != KindText {
		return fmt.Errorf("%w: %v", ErrWrongKind, e.Kind)
	}
	if e.Font == nil {
		return ErrNoFont
	}
	b.AddRuns(e.Font, proj, e.Runs...)
	return nil
}

func (b *Batch) layout(f *text.Font, s string) []glyphQuad {
	if b.lines == nil {
		return layoutLine(f, s)
	}
	return b.lines.GetOrCreate(lineKey{font: f, text: s}, func() []glyphQuad {
		return layoutLine(f, s)
	})
}

// layoutLine places the glyphs of s with the pen starting at the origin.
// The pen advances by each glyph's advance; the glyph box sits at the pen
// plus the left bearing, with its top edge TSB above the baseline.
func layoutLine(f *text.Font, s string) []glyphQuad {
	w, h := f.AtlasSize()
	aw, ah := float32(w), float32(h)

	var (
		pen   mgl32.Vec2
		quads []glyphQuad
	)
	for _, c := range s {
		if c == '\n' {
			pen = mgl32.Vec2{0, pen.Y() + f.LineHeight()}
			continue
		}
		m, ok := f.Metrics(c)
		if !ok {
			continue
		}
		q := glyphQuad{
			offset: mgl32.Vec2{pen.X() + m.LSB, pen.Y() - m.TSB},
			size:   m.Size,
		}
		if aw > 0 && ah > 0 {
			q.uvPos = mgl32.Vec2{m.Pos.X() / aw, m.Pos.Y() / ah}
			q.uvScale = mgl32.Vec2{m.Size.X() / aw, m.Size.Y() / ah}
		}
		quads = append(quads, q)
		pen[0] += m.Advance
	}
	return quads
}

// Instances returns the instances queued this frame. The slice is valid
// until the next call that modifies the batch.
func (b *Batch) Instances() []GlyphInstance { return b.instances }

// Len returns the number of instances queued this frame.
func (b *Batch) Len() int { return len(b.instances) }

// Remaining returns how many more instances fit in this frame.
func (b *Batch) Remaining() int { return b.limit - len(b.instances) }

// Reset starts a new frame. Memoized lines are kept.
func (b *Batch) Reset() {
	b.instances = b.instances[:0]
}

// CacheStats reports line memoization statistics.
func (b *Batch) CacheStats() cache.Stats {
	if b.lines == nil {
		return cache.Stats{}
	}
	return b.lines.Stats()
}

// Raw returns the frame's instances packed as InstanceLayout describes.
func (b *Batch) Raw() []float32 {
	return b.AppendRaw(make([]float32, 0, len(b.instances)*floatsPerInstance))
}

// AppendRaw appends the packed instances to dst.
func (b *Batch) AppendRaw(dst []float32) []float32 {
	for i := range b.instances {
		in := &b.instances[i]
		dst = append(dst, in.Model[:]...)
		dst = append(dst, in.UVPos[:]...)
		dst = append(dst, in.UVScale[:]...)
		dst = append(dst, in.Color[:]...)
	}
	return dst
}
