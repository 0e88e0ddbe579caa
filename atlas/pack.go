package atlas

import (
	"image"
	"slices"
	"sort"
)

// MaxDimension is the largest width or height, in pixels, of a single
// rectangle or of a packed atlas. It matches the largest 2D texture size
// every WebGPU adapter must support.
const MaxDimension = 8192

// Rect is a rectangle to be packed, identified by Key.
// Width and Height are expected to already include any padding.
type Rect[K comparable] struct {
	Key           K
	Width, Height int
}

func (r Rect[K]) empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Placement is the packed position of one rectangle.
type Placement[K comparable] struct {
	Key K
	// Rect is the placed rectangle in atlas pixel coordinates.
	Rect image.Rectangle
}

// Packing maps every key to the top-left corner of its rectangle and
// records the tight atlas size.
//
// No two placements overlap and every placement lies inside
// [0, Width) × [0, Height).
type Packing[K comparable] struct {
	Width, Height int

	positions  map[K]image.Point
	placements []Placement[K]
	usedArea   int
}

// Pos returns the top-left position of key.
func (p *Packing[K]) Pos(key K) (image.Point, bool) {
	pt, ok := p.positions[key]
	return pt, ok
}

// Placements returns the placements in packing order.
// The returned slice must not be modified.
func (p *Packing[K]) Placements() []Placement[K] {
	return p.placements
}

// Len returns the number of placed rectangles.
func (p *Packing[K]) Len() int {
	return len(p.placements)
}

// Utilization returns the fraction of the atlas covered by rectangles.
func (p *Packing[K]) Utilization() float64 {
	if p.Width <= 0 || p.Height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.Width*p.Height)
}

// Pack places every rectangle without overlap and returns the tight atlas
// bounds of the layout.
//
// The result is deterministic for identical input order: rectangles are
// stable-sorted by decreasing height and laid out on shelves, and the shelf
// width is the smallest one for which the layout is at least as wide as it
// is tall, which keeps the atlas close to square.
//
// Rectangles with zero width or height take no space and are placed at the
// origin.
//
// Pack fails when a key repeats, when a rectangle is larger than
// MaxDimension (or has a negative size), or when the whole set cannot fit in
// MaxDimension×MaxDimension.
func Pack[K comparable](rects []Rect[K]) (*Packing[K], error) {
	sumW, maxW := 0, 0
	seen := make(map[K]struct{}, len(rects))
	for _, r := range rects {
		if r.Width < 0 || r.Height < 0 || r.Width > MaxDimension || r.Height > MaxDimension {
			return nil, &PackError{Key: r.Key, Width: r.Width, Height: r.Height, Err: ErrGlyphTooLarge}
		}
		if _, dup := seen[r.Key]; dup {
			return nil, &PackError{Key: r.Key, Width: r.Width, Height: r.Height, Err: ErrDuplicateKey}
		}
		seen[r.Key] = struct{}{}
		if r.empty() {
			continue
		}
		sumW += r.Width
		maxW = max(maxW, r.Width)
	}

	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return rects[b].Height - rects[a].Height
	})

	hi := min(max(sumW, maxW), MaxDimension)
	width := maxW
	if hi > maxW {
		// Smallest shelf width whose layout is at least as wide as tall.
		width = maxW + sort.Search(hi-maxW+1, func(i int) bool {
			w, h, ok := layoutBounds(rects, order, maxW+i)
			return ok && w >= h
		})
		if width > hi {
			width = hi
		}
	}

	alloc := NewShelfAllocator(width, MaxDimension)
	p := &Packing[K]{
		positions:  make(map[K]image.Point, len(rects)),
		placements: make([]Placement[K], 0, len(rects)),
	}
	for _, i := range order {
		r := rects[i]
		if r.empty() {
			p.positions[r.Key] = image.Point{}
			p.placements = append(p.placements, Placement[K]{Key: r.Key})
			continue
		}
		x, y, ok := alloc.Allocate(r.Width, r.Height)
		if !ok {
			return nil, &PackError{Key: r.Key, Width: r.Width, Height: r.Height, Err: ErrAtlasTooLarge}
		}
		p.positions[r.Key] = image.Pt(x, y)
		p.placements = append(p.placements, Placement[K]{
			Key:  r.Key,
			Rect: image.Rect(x, y, x+r.Width, y+r.Height),
		})
	}
	p.Width, p.Height = alloc.Bounds()
	p.usedArea = alloc.UsedArea()
	return p, nil
}

// layoutBounds runs a trial layout at the given shelf width.
func layoutBounds[K comparable](rects []Rect[K], order []int, width int) (w, h int, ok bool) {
	alloc := NewShelfAllocator(width, MaxDimension)
	for _, i := range order {
		if rects[i].empty() {
			continue
		}
		if _, _, ok := alloc.Allocate(rects[i].Width, rects[i].Height); !ok {
			return 0, 0, false
		}
	}
	w, h = alloc.Bounds()
	return w, h, true
}
