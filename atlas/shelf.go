package atlas

// ShelfAllocator implements shelf-based rectangle packing.
//
// Rectangles are placed left-to-right on horizontal shelves. A shelf is as
// tall as the first rectangle that opened it; a rectangle goes on the first
// shelf that still has horizontal room and is tall enough, otherwise a new
// shelf is opened below the last one. Feeding rectangles in decreasing
// height order keeps the wasted space per shelf small.
//
// Unlike a texture-cache allocator the width is fixed but the height only
// needs an upper bound: Bounds reports the tight extent actually used.
type ShelfAllocator struct {
	width     int
	maxHeight int
	shelves   []shelf

	usedArea int
	usedW    int
	usedH    int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // top of the shelf
	height int // fixed when the shelf is opened
	x      int // next free column
}

// NewShelfAllocator creates an allocator for shelves of the given width.
// maxHeight bounds how far down new shelves may be opened.
func NewShelfAllocator(width, maxHeight int) *ShelfAllocator {
	return &ShelfAllocator{
		width:     width,
		maxHeight: maxHeight,
		shelves:   make([]shelf, 0, 16),
	}
}

// Allocate finds space for a w×h rectangle.
// Returns the top-left position and true, or -1, -1, false if it does not fit.
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	if w > a.width || h > a.maxHeight {
		return -1, -1, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+w > a.width || h > s.height {
			continue
		}
		x, y = s.x, s.y
		s.x += w
		a.record(x, y, w, h)
		return x, y, true
	}

	newY := a.nextShelfY()
	if newY+h > a.maxHeight {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: w})
	a.record(0, newY, w, h)
	return 0, newY, true
}

func (a *ShelfAllocator) record(x, y, w, h int) {
	a.usedArea += w * h
	a.usedW = max(a.usedW, x+w)
	a.usedH = max(a.usedH, y+h)
}

func (a *ShelfAllocator) nextShelfY() int {
	if len(a.shelves) == 0 {
		return 0
	}
	last := a.shelves[len(a.shelves)-1]
	return last.y + last.height
}

// CanFit reports whether a w×h rectangle could be allocated right now,
// without allocating it.
func (a *ShelfAllocator) CanFit(w, h int) bool {
	if w > a.width || h > a.maxHeight {
		return false
	}
	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+w <= a.width && h <= s.height {
			return true
		}
	}
	return a.nextShelfY()+h <= a.maxHeight
}

// Bounds returns the tight width and height covered by allocations so far.
func (a *ShelfAllocator) Bounds() (width, height int) {
	return a.usedW, a.usedH
}

// Reset clears all allocations, allowing the allocator to be reused.
func (a *ShelfAllocator) Reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
	a.usedW = 0
	a.usedH = 0
}

// Utilization returns the fraction of the used bounds covered by rectangles.
func (a *ShelfAllocator) Utilization() float64 {
	if a.usedW <= 0 || a.usedH <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.usedW*a.usedH)
}

// UsedArea returns the total area of allocated rectangles.
func (a *ShelfAllocator) UsedArea() int {
	return a.usedArea
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}
