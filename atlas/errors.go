package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrGlyphTooLarge is returned when a single rectangle exceeds MaxDimension
	// or has a negative size.
	ErrGlyphTooLarge = errors.New("atlas: glyph exceeds maximum dimension")

	// ErrAtlasTooLarge is returned when the packed atlas would exceed MaxDimension.
	ErrAtlasTooLarge = errors.New("atlas: packed atlas exceeds maximum dimension")

	// ErrDuplicateKey is returned when two rectangles share a key.
	ErrDuplicateKey = errors.New("atlas: duplicate key")

	// ErrSizeMismatch is returned when a coverage buffer does not match its
	// declared width and height.
	ErrSizeMismatch = errors.New("atlas: coverage buffer size mismatch")
)

// PackError reports which rectangle could not be placed.
type PackError struct {
	Key           any
	Width, Height int
	Err           error
}

func (e *PackError) Error() string {
	return fmt.Sprintf("atlas: cannot place %v (%dx%d): %v", e.Key, e.Width, e.Height, e.Err)
}

func (e *PackError) Unwrap() error { return e.Err }
