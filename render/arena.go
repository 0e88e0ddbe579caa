// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "iter"

// Handle refers to a value in an Arena. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

type arenaSlot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena stores values in reusable slots addressed by Handle.
//
// Every slot carries a generation that is bumped when its value is
// released, so a handle to a released value stays invalid even after the
// slot is reused. The zero Arena is ready to use.
type Arena[T any] struct {
	slots []arenaSlot[T]
	free  []uint32
	live  int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.live = true
		a.live++
		return Handle{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, arenaSlot[T]{value: v, gen: 1, live: true})
	a.live++
	return Handle{index: uint32(len(a.slots) - 1), gen: 1} //nolint:gosec // slot count stays far below 2^32
}

func (a *Arena[T]) slot(h Handle) *arenaSlot[T] {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s
}

// Get returns the value h refers to, or false if h was released.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	if s := a.slot(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Release frees the value h refers to. It reports whether h was live.
func (a *Arena[T]) Release(h Handle) bool {
	s := a.slot(h)
	if s == nil {
		return false
	}
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Prune releases every value for which keep returns false and returns how
// many were released.
func (a *Arena[T]) Prune(keep func(Handle, T) bool) int {
	n := 0
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		h := Handle{index: uint32(i), gen: s.gen} //nolint:gosec // see Insert
		if !keep(h, s.value) {
			a.Release(h)
			n++
		}
	}
	return n
}

// All yields every live handle and value in slot order.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if s.live && !yield(Handle{index: uint32(i), gen: s.gen}, s.value) { //nolint:gosec // see Insert
				return
			}
		}
	}
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.live }
