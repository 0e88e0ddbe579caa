package atlas

import "testing"

func TestShelfAllocatorAllocate(t *testing.T) {
	a := NewShelfAllocator(20, 30)

	steps := []struct {
		w, h   int
		x, y   int
		ok     bool
		shelfs int
	}{
		{10, 10, 0, 0, true, 1},
		{10, 8, 10, 0, true, 1},   // fills first shelf
		{5, 5, 0, 10, true, 2},    // new shelf, height 5
		{15, 5, 5, 10, true, 2},   // same shelf
		{5, 6, 0, 15, true, 3},    // too tall for shelf two
		{21, 1, -1, -1, false, 3}, // wider than allocator
		{5, 20, -1, -1, false, 3}, // no vertical room
	}

	for i, s := range steps {
		x, y, ok := a.Allocate(s.w, s.h)
		if x != s.x || y != s.y || ok != s.ok {
			t.Errorf("step %d: Allocate(%d, %d) = (%d, %d, %v), want (%d, %d, %v)",
				i, s.w, s.h, x, y, ok, s.x, s.y, s.ok)
		}
		if got := a.ShelfCount(); got != s.shelfs {
			t.Errorf("step %d: ShelfCount() = %d, want %d", i, got, s.shelfs)
		}
	}

	if w, h := a.Bounds(); w != 20 || h != 21 {
		t.Errorf("Bounds() = %d, %d, want 20, 21", w, h)
	}
	if got, want := a.UsedArea(), 100+80+25+75+30; got != want {
		t.Errorf("UsedArea() = %d, want %d", got, want)
	}
}

func TestShelfAllocatorCanFit(t *testing.T) {
	a := NewShelfAllocator(10, 10)
	if !a.CanFit(10, 10) {
		t.Error("CanFit(10, 10) on empty allocator = false")
	}
	if a.CanFit(11, 1) {
		t.Error("CanFit(11, 1) = true, want false")
	}
	a.Allocate(10, 6)
	if a.CanFit(1, 5) {
		t.Error("CanFit(1, 5) = true with 4 rows left")
	}
	if !a.CanFit(1, 4) {
		t.Error("CanFit(1, 4) = false with 4 rows left")
	}
}

func TestShelfAllocatorReset(t *testing.T) {
	a := NewShelfAllocator(16, 16)
	a.Allocate(8, 8)
	a.Allocate(8, 8)
	if u := a.Utilization(); u != 1 {
		t.Errorf("Utilization() = %v, want 1", u)
	}
	a.Reset()
	if a.ShelfCount() != 0 || a.UsedArea() != 0 || a.Utilization() != 0 {
		t.Errorf("after Reset: shelves=%d area=%d util=%v", a.ShelfCount(), a.UsedArea(), a.Utilization())
	}
	if w, h := a.Bounds(); w != 0 || h != 0 {
		t.Errorf("after Reset: Bounds() = %d, %d", w, h)
	}
	if x, y, ok := a.Allocate(4, 4); !ok || x != 0 || y != 0 {
		t.Errorf("Allocate after Reset = (%d, %d, %v)", x, y, ok)
	}
}
