package text

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ggtext"
)

// GlyphMetrics describes one character of one font size.
//
// Pos and Size locate the glyph's box in the atlas, in pixels. Size is the
// unpadded bitmap size. Advance is the horizontal distance to the next
// character's origin. LSB is the offset from the origin to the left edge of
// the box and TSB the height of the box's top edge above the baseline.
type GlyphMetrics struct {
	Pos     mgl32.Vec2
	Size    mgl32.Vec2
	Advance float32
	LSB     float32
	TSB     float32
}

// Extent returns the visible right edge of the glyph relative to its origin.
func (m GlyphMetrics) Extent() float32 {
	return m.LSB + m.Size.X()
}

// Table maps characters to glyph metrics for one font size.
//
// A Table is immutable once built and safe to share between any number of
// readers. Clone returns an independent copy for callers that want one.
type Table struct {
	glyphs      map[rune]GlyphMetrics
	fontSize    float32
	lineHeight  float32
	fallback    rune
	hasFallback bool
	ignore      map[rune]struct{}
}

// TableOption configures a Table during creation.
type TableOption func(*Table)

// WithFallback sets the character whose glyph is drawn for characters
// missing from the table. The fallback should itself have an entry.
func WithFallback(r rune) TableOption {
	return func(t *Table) {
		t.fallback = r
		t.hasFallback = true
	}
}

// WithIgnored replaces the set of characters that are valid in text but
// render as nothing. The default set holds only '\r'.
func WithIgnored(runes ...rune) TableOption {
	return func(t *Table) {
		t.ignore = make(map[rune]struct{}, len(runes))
		for _, r := range runes {
			t.ignore[r] = struct{}{}
		}
	}
}

// NewTable creates a table from glyphs. The map is copied.
func NewTable(glyphs map[rune]GlyphMetrics, fontSize, lineHeight float32, opts ...TableOption) *Table {
	t := &Table{
		glyphs:     maps.Clone(glyphs),
		fontSize:   fontSize,
		lineHeight: lineHeight,
		ignore:     map[rune]struct{}{'\r': {}},
	}
	if t.glyphs == nil {
		t.glyphs = make(map[rune]GlyphMetrics)
	}
	for _, opt := range opts {
		opt(t)
	}
	if _, ok := t.glyphs[t.fallback]; t.hasFallback && !ok {
		ggtext.Logger().Warn("text: fallback character has no glyph", "fallback", t.fallback)
	}
	return t
}

// Metrics returns the metrics used to draw c.
//
// Ignored characters report false even if the table holds them. Otherwise
// the direct entry is returned, then the fallback entry, then false.
func (t *Table) Metrics(c rune) (GlyphMetrics, bool) {
	if _, ignored := t.ignore[c]; ignored {
		return GlyphMetrics{}, false
	}
	if m, ok := t.glyphs[c]; ok {
		return m, true
	}
	if t.hasFallback {
		m, ok := t.glyphs[t.fallback]
		return m, ok
	}
	return GlyphMetrics{}, false
}

// IsCharValid reports whether c has a glyph of its own and is not ignored.
// Characters drawn through the fallback are not valid input.
func (t *Table) IsCharValid(c rune) bool {
	if _, ignored := t.ignore[c]; ignored {
		return false
	}
	_, ok := t.glyphs[c]
	return ok
}

// FontSize returns the pixel size the glyphs were rasterized at.
func (t *Table) FontSize() float32 { return t.fontSize }

// LineHeight returns the distance between consecutive baselines.
func (t *Table) LineHeight() float32 { return t.lineHeight }

// Fallback returns the fallback character, if one is configured.
func (t *Table) Fallback() (rune, bool) { return t.fallback, t.hasFallback }

// Ignored reports whether c is in the ignore set.
func (t *Table) Ignored(c rune) bool {
	_, ok := t.ignore[c]
	return ok
}

// Len returns the number of characters with a direct entry.
func (t *Table) Len() int { return len(t.glyphs) }

// Runes returns the characters with a direct entry in ascending order.
func (t *Table) Runes() []rune {
	return slices.Sorted(maps.Keys(t.glyphs))
}

// IgnoredRunes returns the ignore set in ascending order.
func (t *Table) IgnoredRunes() []rune {
	return slices.Sorted(maps.Keys(t.ignore))
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := *t
	c.glyphs = maps.Clone(t.glyphs)
	c.ignore = maps.Clone(t.ignore)
	return &c
}
