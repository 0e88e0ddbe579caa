package text

import (
	"context"
	"errors"
	"image"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/font/gofont/goregular"
)

func TestBuild(t *testing.T) {
	chars := append(DefaultCharacters(), 'A', 'B')
	fonts, err := Build(goregular.TTF, []float64{12, 24}, chars, WithFallbackChar('?'))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(fonts) != 2 {
		t.Fatalf("len(fonts) = %d, want 2", len(fonts))
	}

	for i, size := range []float64{12, 24} {
		f := fonts[i]
		if f.FontSize() != float32(size) || f.LineHeight() != float32(size) {
			t.Errorf("font %d: size %v line height %v, want %v", i, f.FontSize(), f.LineHeight(), size)
		}
		if f.Len() != 96 {
			t.Errorf("font %d: Len() = %d, want 96", i, f.Len())
		}
		if !strings.HasPrefix(f.Name, "Go-") {
			t.Errorf("font %d: Name = %q", i, f.Name)
		}
		if r, ok := f.Fallback(); !ok || r != '?' {
			t.Errorf("font %d: Fallback() = %q, %v", i, r, ok)
		}
		if f.IsCharValid('\r') {
			t.Errorf("font %d: '\\r' is valid", i)
		}

		w, h := f.AtlasSize()
		atlasRect := image.Rect(0, 0, w, h)
		var boxes []image.Rectangle
		for _, r := range f.Runes() {
			m, _ := f.Metrics(r)
			box := image.Rect(int(m.Pos.X()), int(m.Pos.Y()), int(m.Pos.X()+m.Size.X())+glyphPadding, int(m.Pos.Y()+m.Size.Y())+glyphPadding)
			if !box.In(atlasRect) {
				t.Errorf("font %d: %q at %v outside atlas %v", i, r, box, atlasRect)
			}
			for _, other := range boxes {
				if box.Overlaps(other) {
					t.Errorf("font %d: %q at %v overlaps %v", i, r, box, other)
				}
			}
			boxes = append(boxes, box)
		}

		a, _ := f.Metrics('A')
		if a.Size.X() <= 0 || a.TSB <= 0 || a.Advance <= 0 {
			t.Errorf("font %d: 'A' metrics = %+v", i, a)
		}
		var ink int
		for y := int(a.Pos.Y()); y < int(a.Pos.Y()+a.Size.Y()); y++ {
			for x := int(a.Pos.X()); x < int(a.Pos.X()+a.Size.X()); x++ {
				ink += int(f.Atlas.AlphaAt(x, y).A)
			}
		}
		if ink == 0 {
			t.Errorf("font %d: 'A' region of the atlas is blank", i)
		}

		desc := f.TextureDescriptor()
		if desc.Format != gputypes.TextureFormatR8Unorm || int(desc.Size.Width) != w || int(desc.Size.Height) != h {
			t.Errorf("font %d: TextureDescriptor() = %+v", i, desc)
		}
	}

	if fonts[1].LineHeight() <= fonts[0].LineHeight() {
		t.Error("larger size did not produce a larger line height")
	}
}

func TestBuildWithName(t *testing.T) {
	fonts, err := Build(goregular.TTF, []float64{16}, []rune("abc"), WithName("ui"))
	if err != nil {
		t.Fatal(err)
	}
	if fonts[0].Name != "ui-16" {
		t.Errorf("Name = %q, want %q", fonts[0].Name, "ui-16")
	}
	if _, ok := fonts[0].Fallback(); ok {
		t.Error("font has a fallback without WithFallbackChar")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		sizes []float64
		want  error
	}{
		{"empty data", nil, []float64{12}, ErrEmptyFontData},
		{"zero size", goregular.TTF, []float64{12, 0}, ErrInvalidSize},
		{"negative size", goregular.TTF, []float64{-1}, ErrInvalidSize},
		{"NaN size", goregular.TTF, []float64{math.NaN()}, ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fonts, err := Build(tt.data, tt.sizes, DefaultCharacters())
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
			if fonts != nil {
				t.Errorf("Build() returned %d fonts on error", len(fonts))
			}
		})
	}
}

func TestBuildNoSizes(t *testing.T) {
	fonts, err := Build(goregular.TTF, nil, DefaultCharacters())
	if err != nil || len(fonts) != 0 {
		t.Errorf("Build(no sizes) = %d fonts, %v", len(fonts), err)
	}
}

func TestBuildAsync(t *testing.T) {
	res, ok := <-BuildAsync(context.Background(), goregular.TTF, []float64{14}, []rune("hello"))
	if !ok {
		t.Fatal("channel closed without a result")
	}
	if res.Err != nil || len(res.Fonts) != 1 {
		t.Fatalf("BuildAsync() = %d fonts, %v", len(res.Fonts), res.Err)
	}
	if !res.Fonts[0].IsCharValid('h') {
		t.Error("'h' missing from async build")
	}
}

func TestBuildAsyncCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := BuildAsync(ctx, goregular.TTF, []float64{14}, []rune("hello"))
	res := <-ch
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("BuildAsync(canceled) error = %v", res.Err)
	}
	if _, ok := <-ch; ok {
		t.Error("channel delivered a second result")
	}
}
