package text

import "github.com/go-gl/mathgl/mgl32"

// uniformTable returns a table where every lowercase letter has a w×w box at
// zero bearing and advances by adv, and space and tab advance by adv.
func uniformTable(adv, w float32, opts ...TableOption) *Table {
	glyphs := make(map[rune]GlyphMetrics)
	for r := 'a'; r <= 'z'; r++ {
		glyphs[r] = GlyphMetrics{Size: mgl32.Vec2{w, w}, Advance: adv}
	}
	glyphs[' '] = GlyphMetrics{Advance: adv}
	glyphs['\t'] = GlyphMetrics{Advance: adv}
	return NewTable(glyphs, 10, 12, opts...)
}
