// Package atlas packs glyph rectangles into a single texture atlas.
//
// Pack is a pure function over rectangle sizes: it never looks at pixels.
// Callers pad each glyph (usually by one pixel on the right and bottom) so
// that neighbouring glyphs do not bleed into each other when the atlas is
// sampled with linear filtering. Bake then copies the unpadded coverage
// bitmaps into an *image.Alpha at the packed positions.
//
// Packing is deterministic for identical input order, so atlas coordinates
// baked into texture UVs are reproducible across runs and can be cached.
//
//	rects := []atlas.Rect[rune]{{Key: 'a', Width: 9, Height: 12}, {Key: 'b', Width: 9, Height: 14}}
//	p, err := atlas.Pack(rects)
//	if err != nil {
//	    return err
//	}
//	img, err := atlas.Bake(p, bitmaps)
package atlas
