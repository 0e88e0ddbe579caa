// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrNoDrawer is returned when an entry's kind has no registered Drawer.
	ErrNoDrawer = errors.New("render: no drawer for entry kind")

	// ErrNoFont is returned when a text entry carries no font.
	ErrNoFont = errors.New("render: text entry has no font")

	// ErrWrongKind is returned when a Drawer receives an entry it cannot draw.
	ErrWrongKind = errors.New("render: wrong entry kind for drawer")
)
