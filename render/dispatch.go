// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/ggtext/console"
	"github.com/gogpu/ggtext/text"
)

// Kind tags the variant held by an Entry.
type Kind uint8

const (
	// KindText draws runs of text with a font.
	KindText Kind = iota + 1
	// KindRect draws a solid rectangle.
	KindRect
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindRect:
		return "Rect"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Entry is one draw record. Only the fields of its Kind are meaningful.
type Entry struct {
	Kind Kind

	// KindText.
	Font *text.Font
	Runs []console.Run

	// KindRect.
	Rect console.Background
}

// TextEntry returns an entry drawing runs with f.
func TextEntry(f *text.Font, runs ...console.Run) Entry {
	return Entry{Kind: KindText, Font: f, Runs: runs}
}

// RectEntry returns an entry drawing bg.
func RectEntry(bg console.Background) Entry {
	return Entry{Kind: KindRect, Rect: bg}
}

// ConsoleEntries projects c into its background and text entries, in
// drawing order.
func ConsoleEntries(f *text.Font, c *console.Console) []Entry {
	bg, runs := c.Render()
	return []Entry{RectEntry(bg), TextEntry(f, runs...)}
}

// Drawer consumes entries of one kind.
type Drawer interface {
	Draw(proj mgl32.Mat4, e Entry) error
}

// Dispatcher routes entries to the Drawer registered for their kind.
//
// Register is meant to be called during setup; a Dispatcher is not safe for
// concurrent registration and dispatch.
type Dispatcher struct {
	drawers map[Kind]Drawer
}

// NewDispatcher returns a dispatcher with no drawers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{drawers: make(map[Kind]Drawer)}
}

// Register sets the drawer for kind.
//
// Register panics if d is nil or a drawer is already registered for kind.
func (d *Dispatcher) Register(kind Kind, drawer Drawer) {
	if drawer == nil {
		panic("render: Register drawer is nil")
	}
	if _, dup := d.drawers[kind]; dup {
		panic("render: Register called twice for " + kind.String())
	}
	d.drawers[kind] = drawer
}

// Dispatch draws entries in order. It stops at the first entry whose kind
// has no drawer or whose drawer fails.
func (d *Dispatcher) Dispatch(proj mgl32.Mat4, entries ...Entry) error {
	for i, e := range entries {
		drawer, ok := d.drawers[e.Kind]
		if !ok {
			return fmt.Errorf("%w: entry %d is %v", ErrNoDrawer, i, e.Kind)
		}
		if err := drawer.Draw(proj, e); err != nil {
			return fmt.Errorf("render: entry %d: %w", i, err)
		}
	}
	return nil
}

// Kinds returns the registered kinds in ascending order.
func (d *Dispatcher) Kinds() []Kind {
	kinds := make([]Kind, 0, len(d.drawers))
	for k := range d.drawers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
