package text

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// RasterMetrics holds the placement of a rasterized glyph.
//
// Bounds is relative to the glyph origin on the baseline, with y growing
// downward, so Bounds.Min.Y is negative for glyphs above the baseline.
type RasterMetrics struct {
	Advance float32
	Bounds  image.Rectangle
}

// GlyphBitmap is a single-channel coverage bitmap of one character.
// Coverage is row-major with Width bytes per row.
type GlyphBitmap struct {
	Char     rune
	Width    int
	Height   int
	Coverage []byte
	Metrics  RasterMetrics
}

// Source rasterizes the glyphs of one font.
//
// Outlines come from golang.org/x/image/font/opentype. Character coverage
// and the family name come from go-text/typesetting.
type Source struct {
	font   *opentype.Font
	face   *font.Face
	family string
}

// NewSource parses TrueType or OpenType font data.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	family := face.Describe().Family
	if family == "" {
		if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
			family = name
		}
	}
	return &Source{font: f, face: face, family: family}, nil
}

// Family returns the font family name, or "" if the font has none.
func (s *Source) Family() string { return s.family }

// Covers reports whether the font maps r to a glyph of its own.
func (s *Source) Covers(r rune) bool {
	_, ok := s.face.NominalGlyph(r)
	return ok
}

// Rasterize renders chars at size pixels per em.
//
// Characters the font lacks are drawn with its .notdef glyph. The result
// holds one bitmap per character, in order.
func (s *Source) Rasterize(chars []rune, size float64) ([]GlyphBitmap, error) {
	if !validSize(size) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	out := make([]GlyphBitmap, 0, len(chars))
	for _, c := range chars {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, c)
		if !ok {
			out = append(out, GlyphBitmap{Char: c})
			continue
		}
		bm := GlyphBitmap{
			Char:   c,
			Width:  dr.Dx(),
			Height: dr.Dy(),
			Metrics: RasterMetrics{
				Advance: fixedToFloat(advance),
				Bounds:  dr,
			},
		}
		if bm.Width > 0 && bm.Height > 0 {
			dst := image.NewAlpha(image.Rect(0, 0, bm.Width, bm.Height))
			draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)
			bm.Coverage = dst.Pix
		} else {
			bm.Width, bm.Height = 0, 0
		}
		out = append(out, bm)
	}
	return out, nil
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
