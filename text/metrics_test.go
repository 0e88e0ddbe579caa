package text

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTableMetrics(t *testing.T) {
	glyphs := map[rune]GlyphMetrics{
		0:    {Size: mgl32.Vec2{5, 8}, Advance: 6},
		'a':  {Size: mgl32.Vec2{7, 7}, Advance: 8, LSB: 1, TSB: 7},
		'\r': {Advance: 3},
	}
	withFallback := NewTable(glyphs, 16, 16, WithFallback(0))
	plain := NewTable(glyphs, 16, 16)

	tests := []struct {
		name      string
		table     *Table
		c         rune
		wantOK    bool
		wantAdv   float32
		wantValid bool
	}{
		{"direct", plain, 'a', true, 8, true},
		{"missing", plain, 'z', false, 0, false},
		{"fallback", withFallback, 'z', true, 6, false},
		{"ignored", withFallback, '\r', false, 0, false},
		{"fallback char itself", withFallback, 0, true, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := tt.table.Metrics(tt.c)
			if ok != tt.wantOK || m.Advance != tt.wantAdv {
				t.Errorf("Metrics(%q) = %v, %v; want advance %v, %v", tt.c, m.Advance, ok, tt.wantAdv, tt.wantOK)
			}
			if got := tt.table.IsCharValid(tt.c); got != tt.wantValid {
				t.Errorf("IsCharValid(%q) = %v, want %v", tt.c, got, tt.wantValid)
			}
		})
	}
}

func TestTableAccessors(t *testing.T) {
	table := uniformTable(10, 10, WithIgnored('\r', '\v'))
	if table.FontSize() != 10 || table.LineHeight() != 12 {
		t.Errorf("FontSize, LineHeight = %v, %v; want 10, 12", table.FontSize(), table.LineHeight())
	}
	if table.Len() != 28 {
		t.Errorf("Len() = %d, want 28", table.Len())
	}
	if _, ok := table.Fallback(); ok {
		t.Error("Fallback() reported a fallback")
	}
	if got := table.IgnoredRunes(); !slices.Equal(got, []rune{'\v', '\r'}) {
		t.Errorf("IgnoredRunes() = %q", got)
	}
	runes := table.Runes()
	if !slices.IsSorted(runes) || runes[0] != '\t' {
		t.Errorf("Runes() = %q", runes)
	}
}

func TestTableClone(t *testing.T) {
	orig := uniformTable(10, 10)
	clone := orig.Clone()
	clone.glyphs['z'] = GlyphMetrics{Advance: 99}
	clone.ignore['a'] = struct{}{}

	if m, _ := orig.Metrics('z'); m.Advance != 10 {
		t.Errorf("original 'z' advance = %v after clone edit", m.Advance)
	}
	if !orig.IsCharValid('a') {
		t.Error("original 'a' became ignored after clone edit")
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	glyphs := map[rune]GlyphMetrics{'a': {Advance: 1}}
	table := NewTable(glyphs, 1, 1)
	glyphs['b'] = GlyphMetrics{Advance: 2}
	if table.IsCharValid('b') {
		t.Error("table sees entries added to the input map")
	}
}

func TestTextWidth(t *testing.T) {
	table := NewTable(map[rune]GlyphMetrics{
		'a': {Size: mgl32.Vec2{8, 8}, Advance: 10, LSB: 1},
		'b': {Size: mgl32.Vec2{8, 8}, Advance: 10, LSB: 1},
		' ': {Advance: 10},
	}, 10, 10)

	tests := []struct {
		in   string
		want float32
	}{
		{"", 0},
		{"a", 9},
		{"ab", 19},
		{"ab\nabab", 39},
		{"abab\nab", 39},
		{"a?b", 19},
		{"a ", 10},
		{"  a", 29},
	}
	for _, tt := range tests {
		if got := TextWidth(table, tt.in); got != tt.want {
			t.Errorf("TextWidth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
