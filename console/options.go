package console

import "math"

// Option configures a Console during creation.
type Option func(*Console)

// WithWidth sets the wrap width in pixels. The default is DefaultWidth.
func WithWidth(w float32) Option {
	return func(c *Console) {
		c.width = w
	}
}

// WithVisibleLines sets how many wrapped lines are shown. The default is 0;
// hosts usually call Resize once the window size is known.
func WithVisibleLines(n int) Option {
	return func(c *Console) {
		c.visibleLines = n
	}
}

// WithScrollSpeed sets the fraction of a scroll pixel that counts as one
// line. The default is DefaultScrollSpeed.
func WithScrollSpeed(s float32) Option {
	return func(c *Console) {
		c.scrollSpeed = s
	}
}

// WithClipboard lets Ctrl+V key events paste from cb.
func WithClipboard(cb Clipboard) Option {
	return func(c *Console) {
		c.clipboard = cb
	}
}

func validate(c *Console) error {
	switch {
	case c.historyLength < 0:
		return &ConfigError{Field: "history length", Value: c.historyLength}
	case !(c.lineHeight >= 0) || isInf(c.lineHeight):
		return &ConfigError{Field: "line height", Value: c.lineHeight}
	case !(c.width >= 0):
		return &ConfigError{Field: "width", Value: c.width}
	case c.visibleLines < 0:
		return &ConfigError{Field: "visible lines", Value: c.visibleLines}
	case !(c.scrollSpeed > 0) || isInf(c.scrollSpeed):
		return &ConfigError{Field: "scroll speed", Value: c.scrollSpeed}
	}
	return nil
}

func isInf(f float32) bool {
	return math.IsInf(float64(f), 0)
}
