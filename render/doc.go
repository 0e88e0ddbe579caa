// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns console draw data into GPU-ready instance data.
//
// The package never owns a GPU device. It shapes per-glyph instances from
// text runs, describes the buffer layouts a pipeline needs to consume them,
// and tracks atlas textures by handle. Uploading and drawing is left to the
// host application.
//
// # Glyph instances
//
// A Batch walks each run's characters with the same advance and bearing
// model as text.TextWidth and emits one GlyphInstance per visible glyph:
//
//	batch := render.NewBatch()
//	bg, runs := con.Render()
//	batch.AddRuns(font, proj, runs...)
//	upload(batch.Raw())
//
// Instances are drawn over a unit quad (see QuadVertices and QuadLayout)
// and read through InstanceLayout. A frame may hold at most
// MaxGlyphsPerFrame instances; exceeding it is a programming error and
// panics. Reset starts the next frame.
//
// # Dispatch
//
// Entry is a tagged draw record (text or rectangle). A Dispatcher routes
// each entry to the Drawer registered for its kind.
//
// # Handles
//
// Arena stores values behind generation-checked handles, so a stale handle
// is detected instead of aliasing a reused slot. Textures uses it to track
// atlas textures and to sweep the ones no longer drawn.
package render
