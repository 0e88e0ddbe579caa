// Package ggtext lays out and packs text for real-time rendering.
//
// The module is split into small packages that form a pipeline:
//
//	text.Source -> atlas.Pack -> (atlas image, text.Table) -> text.SplitLines -> console.Console -> render.Batch
//
//   - [github.com/gogpu/ggtext/atlas] packs padded glyph rectangles into a
//     near-square texture atlas and bakes the coverage bitmap.
//   - [github.com/gogpu/ggtext/text] rasterizes a font, builds the immutable
//     per-character metrics table, and wraps strings to a maximum width.
//   - [github.com/gogpu/ggtext/console] keeps a bounded, scrollable line
//     history with a typed-input buffer and produces draw-ready runs.
//   - [github.com/gogpu/ggtext/render] turns runs into per-glyph GPU
//     instances and describes the buffer layouts a renderer needs.
//
// Everything is single-threaded and synchronous. A [text.Table] is read-only
// once built and may be shared freely; a [console.Console] belongs to one
// caller.
//
// This root package only carries the shared logger. See [SetLogger].
package ggtext
