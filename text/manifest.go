package text

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Manifest is the decoded form of a font metrics manifest: a table plus the
// size of the atlas image it was baked against.
type Manifest struct {
	Name        string
	AtlasWidth  int
	AtlasHeight int
	Table       *Table
}

type manifestGlyph struct {
	X       float32 `json:"x"`
	Y       float32 `json:"y"`
	W       float32 `json:"w"`
	H       float32 `json:"h"`
	Advance float32 `json:"advance"`
	LSB     float32 `json:"lsb"`
	TSB     float32 `json:"tsb"`
}

// MarshalManifest encodes the font's metrics as JSON.
//
// Glyphs are keyed by decimal code point:
//
//	{"name":"Go-16","font_size":16,"line_height":16,"fallback":0,
//	 "ignore":[13],"atlas":{"width":128,"height":120},
//	 "glyphs":{"65":{"x":0,"y":0,"w":9,"h":12,"advance":9.8,"lsb":0,"tsb":12}}}
func MarshalManifest(f *Font) ([]byte, error) {
	w, h := f.AtlasSize()
	data := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, path, v)
	}

	set("name", f.Name)
	set("font_size", f.FontSize())
	set("line_height", f.LineHeight())
	if r, ok := f.Fallback(); ok {
		set("fallback", r)
	}
	set("ignore", f.IgnoredRunes())
	set("atlas.width", w)
	set("atlas.height", h)
	set("glyphs", map[string]any{})
	for _, r := range f.Runes() {
		m := f.glyphs[r]
		set("glyphs.:"+strconv.Itoa(int(r)), manifestGlyph{
			X: m.Pos.X(), Y: m.Pos.Y(),
			W: m.Size.X(), H: m.Size.Y(),
			Advance: m.Advance, LSB: m.LSB, TSB: m.TSB,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("text: encode manifest: %w", err)
	}
	return data, nil
}

// UnmarshalManifest decodes a manifest written by MarshalManifest.
func UnmarshalManifest(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidManifest
	}
	root := gjson.ParseBytes(data)
	glyphs := root.Get("glyphs")
	if !glyphs.IsObject() {
		return nil, fmt.Errorf("%w: missing glyphs", ErrInvalidManifest)
	}

	entries := make(map[rune]GlyphMetrics)
	var bad string
	glyphs.ForEach(func(key, value gjson.Result) bool {
		cp, err := strconv.ParseInt(key.String(), 10, 32)
		if err != nil || cp < 0 {
			bad = key.String()
			return false
		}
		entries[rune(cp)] = GlyphMetrics{
			Pos:     mgl32.Vec2{float32(value.Get("x").Float()), float32(value.Get("y").Float())},
			Size:    mgl32.Vec2{float32(value.Get("w").Float()), float32(value.Get("h").Float())},
			Advance: float32(value.Get("advance").Float()),
			LSB:     float32(value.Get("lsb").Float()),
			TSB:     float32(value.Get("tsb").Float()),
		}
		return true
	})
	if bad != "" {
		return nil, fmt.Errorf("%w: bad code point %q", ErrInvalidManifest, bad)
	}

	var opts []TableOption
	if fb := root.Get("fallback"); fb.Exists() {
		opts = append(opts, WithFallback(rune(fb.Int())))
	}
	if ig := root.Get("ignore"); ig.IsArray() {
		var runes []rune
		for _, v := range ig.Array() {
			runes = append(runes, rune(v.Int()))
		}
		opts = append(opts, WithIgnored(runes...))
	}

	return &Manifest{
		Name:        root.Get("name").String(),
		AtlasWidth:  int(root.Get("atlas.width").Int()),
		AtlasHeight: int(root.Get("atlas.height").Int()),
		Table: NewTable(entries,
			float32(root.Get("font_size").Float()),
			float32(root.Get("line_height").Float()),
			opts...),
	}, nil
}
