// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ggtext/text"
)

// testFont returns a font with two glyphs on a 100x50 atlas and a line
// height of 12.
func testFont() *text.Font {
	glyphs := map[rune]text.GlyphMetrics{
		'a': {Pos: mgl32.Vec2{10, 20}, Size: mgl32.Vec2{8, 10}, Advance: 10, LSB: 1, TSB: 9},
		'b': {Pos: mgl32.Vec2{30, 0}, Size: mgl32.Vec2{6, 6}, Advance: 7, TSB: 6},
	}
	return &text.Font{
		Table: text.NewTable(glyphs, 12, 12),
		Name:  "test-12",
		Atlas: image.NewAlpha(image.Rect(0, 0, 100, 50)),
	}
}
