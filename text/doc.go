// Package text turns fonts into glyph metrics and lays strings out in
// width-constrained lines.
//
// A Source rasterizes characters of one font. Build rasterizes a character
// set at several sizes and packs each size into an atlas, producing a Font
// whose Table maps characters to atlas positions and placement metrics.
//
// SplitLines wraps a string greedily at a pixel width using a Table:
//
//	lines := text.SplitLines(font.Table, "hello world", 80).Collect()
//
// TextWidth measures the widest line of a string.
package text
