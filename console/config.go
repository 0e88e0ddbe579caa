package console

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/ini.v1"

	"github.com/gogpu/ggtext/text"
)

// Config holds the console parameters that are usually read from a file.
type Config struct {
	HistoryLength int     `ini:"history_length"`
	LineHeight    float32 `ini:"line_height"`
	Width         float32 `ini:"width"`
	VisibleLines  int     `ini:"visible_lines"`
	ScrollSpeed   float32 `ini:"scroll_speed"`
}

// configSection is the INI section read by LoadConfig.
const configSection = "console"

var defaultConfig = []byte(`[console]
history_length = 200
line_height    = 16
width          = 800
visible_lines  = 12
scroll_speed   = 0.05
`)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		HistoryLength: 200,
		LineHeight:    16,
		Width:         DefaultWidth,
		VisibleLines:  12,
		ScrollSpeed:   DefaultScrollSpeed,
	}
}

// Validate checks every field against the same rules New applies.
func (c Config) Validate() error {
	return validate(&Console{
		historyLength: c.HistoryLength,
		lineHeight:    c.LineHeight,
		width:         c.Width,
		visibleLines:  c.VisibleLines,
		scrollSpeed:   c.ScrollSpeed,
	})
}

// Options returns the options that apply c's width, visible lines and
// scroll speed.
func (c Config) Options() []Option {
	return []Option{
		WithWidth(c.Width),
		WithVisibleLines(c.VisibleLines),
		WithScrollSpeed(c.ScrollSpeed),
	}
}

// New creates a console from c.
func (c Config) New(table *text.Table, opts ...Option) (*Console, error) {
	return New(table, c.LineHeight, c.HistoryLength, append(c.Options(), opts...)...)
}

// LoadConfig reads the [console] section of an INI file over the built-in
// defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	options := ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}

	sources := []any{path}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		sources = nil
	}
	f, err := ini.LoadSources(options, defaultConfig, sources...)
	if err != nil {
		return Config{}, fmt.Errorf("console: failed to read config: %w", err)
	}
	return parseConfig(f)
}

// ParseConfig reads the [console] section of INI data over the built-in
// defaults.
func ParseConfig(data []byte) (Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{SkipUnrecognizableLines: true}, defaultConfig, data)
	if err != nil {
		return Config{}, fmt.Errorf("console: failed to read config: %w", err)
	}
	return parseConfig(f)
}

func parseConfig(f *ini.File) (Config, error) {
	var c Config
	if err := f.Section(configSection).StrictMapTo(&c); err != nil {
		return Config{}, fmt.Errorf("console: failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WriteTo writes c as an INI [console] section.
func (c Config) WriteTo(w io.Writer) (int64, error) {
	f := ini.Empty()
	if err := f.Section(configSection).ReflectFrom(&c); err != nil {
		return 0, fmt.Errorf("console: failed to encode config: %w", err)
	}
	return f.WriteTo(w)
}
