// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/text"
)

// Texture is a font atlas the host has uploaded, or should upload, to the
// GPU.
type Texture struct {
	Font *text.Font
	Desc gputypes.TextureDescriptor

	lastUsed uint64
}

// Textures tracks atlas textures by handle and releases the ones that have
// not been used for a while.
//
// The zero Textures is ready to use. It is not safe for concurrent use.
type Textures struct {
	arena Arena[*Texture]
	frame uint64
}

// Add registers the atlas of f and returns its handle.
func (t *Textures) Add(f *text.Font) Handle {
	return t.arena.Insert(&Texture{
		Font:     f,
		Desc:     f.TextureDescriptor(),
		lastUsed: t.frame,
	})
}

// Use returns the texture h refers to and marks it used in the current
// frame.
func (t *Textures) Use(h Handle) (*Texture, bool) {
	tex, ok := t.arena.Get(h)
	if ok {
		tex.lastUsed = t.frame
	}
	return tex, ok
}

// Release drops the texture h refers to.
func (t *Textures) Release(h Handle) bool {
	return t.arena.Release(h)
}

// EndFrame advances the frame counter and releases every texture not used
// during the last maxIdle frames. It returns how many were released.
func (t *Textures) EndFrame(maxIdle uint64) int {
	t.frame++
	n := t.arena.Prune(func(_ Handle, tex *Texture) bool {
		return t.frame-tex.lastUsed <= maxIdle
	})
	if n > 0 {
		ggtext.Logger().Debug("render: released idle textures", "count", n, "live", t.arena.Len())
	}
	return n
}

// Len returns the number of live textures.
func (t *Textures) Len() int { return t.arena.Len() }

// Frame returns the current frame number.
func (t *Textures) Frame() uint64 { return t.frame }
