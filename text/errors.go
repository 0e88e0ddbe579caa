package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned for a NaN, infinite, or non-positive font size.
	ErrInvalidSize = errors.New("text: invalid font size")

	// ErrInvalidManifest is returned when a metrics manifest is not valid JSON
	// or lacks required fields.
	ErrInvalidManifest = errors.New("text: invalid manifest")
)
