package atlas

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gogpu/gputypes"
)

// Bitmap is a single-channel coverage buffer for one packed rectangle.
// Pix holds Width*Height bytes in row-major order. The bitmap is the
// unpadded glyph; its packed rectangle may be larger.
type Bitmap[K comparable] struct {
	Key           K
	Width, Height int
	Pix           []byte
}

// Bake copies each bitmap into a new atlas image at the position recorded
// in p. Pixels not covered by any bitmap, including padding, stay zero.
func Bake[K comparable](p *Packing[K], bitmaps []Bitmap[K]) (*image.Alpha, error) {
	img := image.NewAlpha(image.Rect(0, 0, p.Width, p.Height))
	for _, b := range bitmaps {
		if len(b.Pix) != b.Width*b.Height {
			return nil, fmt.Errorf("atlas: bitmap %v: %w", b.Key, ErrSizeMismatch)
		}
		pos, ok := p.Pos(b.Key)
		if !ok {
			return nil, fmt.Errorf("atlas: bitmap %v has no placement", b.Key)
		}
		if b.Width == 0 || b.Height == 0 {
			continue
		}
		if pos.X+b.Width > p.Width || pos.Y+b.Height > p.Height {
			return nil, &PackError{Key: b.Key, Width: b.Width, Height: b.Height, Err: ErrSizeMismatch}
		}
		for y := 0; y < b.Height; y++ {
			dst := img.Pix[(pos.Y+y)*img.Stride+pos.X:]
			copy(dst[:b.Width], b.Pix[y*b.Width:(y+1)*b.Width])
		}
	}
	return img, nil
}

// TextureDescriptor describes the GPU texture a renderer should allocate
// for a baked atlas: a single-channel 2D texture that is sampled and
// filled by a copy.
func TextureDescriptor(label string, width, height int) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label:         label,
		Size:          gputypes.NewExtent2D(uint32(width), uint32(height)), //nolint:gosec // bounded by MaxDimension
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatR8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// EncodePNG writes the atlas as a grayscale PNG.
func EncodePNG(w io.Writer, img *image.Alpha) error {
	gray := image.NewGray(img.Rect)
	copy(gray.Pix, img.Pix)
	if err := png.Encode(w, gray); err != nil {
		return fmt.Errorf("atlas: encode png: %w", err)
	}
	return nil
}
