package text

import (
	"context"
	"fmt"
	"image"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/atlas"
)

// glyphPadding is added to each glyph's width and height before packing so
// neighbouring glyphs never bleed into each other when sampled.
const glyphPadding = 1

// Font is one baked font size: its metrics table and the atlas the table's
// positions refer to.
type Font struct {
	*Table

	// Name identifies the font, by default "<family>-<size>".
	Name string

	// Atlas holds the coverage of every glyph at its packed position.
	Atlas *image.Alpha
}

// AtlasSize returns the atlas width and height in pixels.
func (f *Font) AtlasSize() (int, int) {
	b := f.Atlas.Bounds()
	return b.Dx(), b.Dy()
}

// TextureDescriptor describes the texture a renderer should allocate for
// the atlas.
func (f *Font) TextureDescriptor() gputypes.TextureDescriptor {
	w, h := f.AtlasSize()
	return atlas.TextureDescriptor(f.Name, w, h)
}

type buildOptions struct {
	fallback    rune
	hasFallback bool
	name        string
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithFallbackChar rasterizes r alongside the requested characters and
// makes it the fallback of every built table.
func WithFallbackChar(r rune) BuildOption {
	return func(o *buildOptions) {
		o.fallback = r
		o.hasFallback = true
	}
}

// WithName sets the name prefix of built fonts. The size is appended.
func WithName(name string) BuildOption {
	return func(o *buildOptions) {
		o.name = name
	}
}

// Build rasterizes chars from the font data at each size and packs every
// size into its own atlas.
//
// Duplicate characters are rasterized once. A packing failure aborts the
// whole build; no partial fonts are returned.
func Build(data []byte, sizes []float64, chars []rune, opts ...BuildOption) ([]*Font, error) {
	return build(context.Background(), data, sizes, chars, opts)
}

// BuildResult is delivered by BuildAsync.
type BuildResult struct {
	Fonts []*Font
	Err   error
}

// BuildAsync runs Build on its own goroutine. The returned channel receives
// exactly one result and is then closed. Cancelling ctx stops the build
// between sizes.
func BuildAsync(ctx context.Context, data []byte, sizes []float64, chars []rune, opts ...BuildOption) <-chan BuildResult {
	ch := make(chan BuildResult, 1)
	go func() {
		defer close(ch)
		fonts, err := build(ctx, data, sizes, chars, opts)
		ch <- BuildResult{Fonts: fonts, Err: err}
	}()
	return ch
}

func build(ctx context.Context, data []byte, sizes []float64, chars []rune, opts []BuildOption) ([]*Font, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	for _, size := range sizes {
		if !validSize(size) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
		}
	}

	src, err := NewSource(data)
	if err != nil {
		return nil, err
	}
	if o.name == "" {
		o.name = src.Family()
	}

	set := uniqueRunes(chars, o)
	log := ggtext.Logger()
	log.Debug("text: building fonts", "family", src.Family(), "sizes", len(sizes), "chars", len(set))

	fonts := make([]*Font, 0, len(sizes))
	for _, size := range sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := buildSize(src, set, size, o)
		if err != nil {
			return nil, err
		}
		w, h := f.AtlasSize()
		log.Info("text: font baked", "name", f.Name, "glyphs", f.Len(), "width", w, "height", h)
		fonts = append(fonts, f)
	}
	return fonts, nil
}

func buildSize(src *Source, chars []rune, size float64, o buildOptions) (*Font, error) {
	name := o.name + "-" + strconv.FormatFloat(size, 'g', -1, 64)

	glyphs, err := src.Rasterize(chars, size)
	if err != nil {
		return nil, fmt.Errorf("text: font %s: %w", name, err)
	}

	rects := make([]atlas.Rect[rune], len(glyphs))
	bitmaps := make([]atlas.Bitmap[rune], len(glyphs))
	for i, g := range glyphs {
		rects[i] = atlas.Rect[rune]{Key: g.Char, Width: g.Width + glyphPadding, Height: g.Height + glyphPadding}
		bitmaps[i] = atlas.Bitmap[rune]{Key: g.Char, Width: g.Width, Height: g.Height, Pix: g.Coverage}
	}
	packing, err := atlas.Pack(rects)
	if err != nil {
		return nil, fmt.Errorf("text: pack font %s: %w", name, err)
	}
	img, err := atlas.Bake(packing, bitmaps)
	if err != nil {
		return nil, fmt.Errorf("text: bake font %s: %w", name, err)
	}

	entries := make(map[rune]GlyphMetrics, len(glyphs))
	for _, g := range glyphs {
		pos, _ := packing.Pos(g.Char)
		entries[g.Char] = GlyphMetrics{
			Pos:     mgl32.Vec2{float32(pos.X), float32(pos.Y)},
			Size:    mgl32.Vec2{float32(g.Width), float32(g.Height)},
			Advance: g.Metrics.Advance,
			LSB:     float32(g.Metrics.Bounds.Min.X),
			TSB:     float32(-g.Metrics.Bounds.Min.Y),
		}
	}

	var topts []TableOption
	if o.hasFallback {
		topts = append(topts, WithFallback(o.fallback))
	}
	return &Font{
		Table: NewTable(entries, float32(size), float32(size), topts...),
		Name:  name,
		Atlas: img,
	}, nil
}

// uniqueRunes returns chars plus the fallback with duplicates removed,
// keeping the first occurrence of each.
func uniqueRunes(chars []rune, o buildOptions) []rune {
	seen := make(map[rune]struct{}, len(chars)+1)
	out := make([]rune, 0, len(chars)+1)
	add := func(r rune) {
		if _, ok := seen[r]; ok {
			return
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	for _, r := range chars {
		add(r)
	}
	if o.hasFallback {
		add(o.fallback)
	}
	return out
}

func validSize(size float64) bool {
	return size > 0 && !math.IsInf(size, 0) && !math.IsNaN(size)
}
