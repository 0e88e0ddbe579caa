// Package console implements a scrollable, bounded history of text lines
// with an input line, wrapped to a pixel width with a text.Table.
//
// A Console is owned by one caller, typically the UI layer of a frame loop:
// it is mutated by input events and Update, and projected into draw data by
// Render. It is not safe for concurrent use.
package console

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/text"
)

// Timing, in seconds.
const (
	// BlinkPeriod is the caret blink period. The caret is drawn during the
	// second half of each period.
	BlinkPeriod = 0.6

	// FadeStart is how long an unfocused console stays opaque after its
	// last change.
	FadeStart = 3.0

	// FadeDuration is how long the fade to transparent takes.
	FadeDuration = 1.0
)

// Defaults for New.
const (
	DefaultWidth       = 800
	DefaultScrollSpeed = 0.05
)

// Console is a bounded history of lines wrapped into a scrollable window,
// plus an input buffer.
type Console struct {
	table         *text.Table
	lineHeight    float32
	historyLength int
	visibleLines  int
	width         float32
	height        float32
	clipboard     Clipboard

	history []string
	split   []string
	typing  string

	scroll      int
	maxScroll   int
	scrollFloat float32
	scrollSpeed float32

	focused      bool
	flickerTimer float32
	fadeTimer    float32
}

// New creates a console that wraps with table, spaces lines lineHeight
// pixels apart and keeps at most historyLength logical lines.
//
// The console starts unfocused and fully faded.
func New(table *text.Table, lineHeight float32, historyLength int, opts ...Option) (*Console, error) {
	c := &Console{
		table:         table,
		lineHeight:    lineHeight,
		historyLength: historyLength,
		width:         DefaultWidth,
		scrollSpeed:   DefaultScrollSpeed,
		fadeTimer:     math.MaxFloat32,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	c.height = c.backgroundHeight()
	c.recompute()
	return c, nil
}

// AppendLine adds text to the history. Text containing newlines becomes
// several history lines. The oldest lines are evicted to stay within the
// history length, and the console becomes fully opaque.
func (c *Console) AppendLine(s string) {
	ggtext.Logger().Debug("console: println", "line", s)

	add := text.SplitLines(c.table, s, text.Unbounded).Collect()
	if len(add) > c.historyLength {
		add = add[len(add)-c.historyLength:]
	}
	if drop := len(c.history) + len(add) - c.historyLength; drop > 0 {
		c.history = c.history[drop:]
	}
	c.history = append(c.history, add...)

	c.recompute()
	c.fadeTimer = 0
}

// Println is AppendLine.
func (c *Console) Println(s string) { c.AppendLine(s) }

// Resize sets the wrap width and the number of visible lines. Negative
// values are treated as zero.
func (c *Console) Resize(width float32, visibleLines int) {
	c.width = max(width, 0)
	c.visibleLines = max(visibleLines, 0)
	c.height = c.backgroundHeight()
	c.recompute()
}

// SetScroll scrolls to n lines above the most recent line, clamped to
// [0, MaxScroll], and discards any partial scroll.
func (c *Console) SetScroll(n int) {
	c.scroll = min(max(n, 0), c.maxScroll)
	c.scrollFloat = 0
	c.recompute()
}

// ProcessScroll accumulates a scroll of dy pixels. Positive values reveal
// older lines. Whole lines are applied at once; the remainder carries over
// to the next call.
func (c *Console) ProcessScroll(dy float32) {
	c.scrollFloat += dy
	c.recompute()
}

// recompute applies pending scroll, re-wraps the whole history and selects
// the visible window.
func (c *Console) recompute() {
	step := int(math.Round(float64(c.scrollFloat * c.scrollSpeed)))
	c.scrollFloat -= float32(step) / c.scrollSpeed
	c.scroll += step

	wrapped := text.SplitLines(c.table, strings.Join(c.history, "\n"), c.width).Collect()
	n := len(wrapped)
	c.maxScroll = max(0, n-c.visibleLines)
	c.scroll = clamp(c.scroll, 0, c.maxScroll)

	pos := clamp(n-c.visibleLines-c.scroll, 0, clamp(n-c.visibleLines, 0, n))
	end := clamp(pos+c.visibleLines, 0, n)
	c.split = wrapped[pos:end]
}

func (c *Console) backgroundHeight() float32 {
	return float32(c.visibleLines)*c.lineHeight + c.lineHeight/4
}

// PushChar appends r to the input buffer.
func (c *Console) PushChar(r rune) {
	c.typing += string(r)
}

// AppendTyping appends s to the input buffer as is.
func (c *Console) AppendTyping(s string) {
	c.typing += s
}

// PopChar removes up to n characters from the end of the input buffer.
func (c *Console) PopChar(n int) {
	for ; n > 0 && c.typing != ""; n-- {
		_, size := utf8.DecodeLastRuneInString(c.typing)
		c.typing = c.typing[:len(c.typing)-size]
	}
}

// ClearTyping empties the input buffer.
func (c *Console) ClearTyping() {
	c.typing = ""
}

// Update advances the console's clocks by dt seconds.
func (c *Console) Update(dt float32) {
	c.fadeTimer += dt
	if c.focused {
		c.flickerTimer += dt
		for c.flickerTimer > BlinkPeriod {
			c.flickerTimer -= BlinkPeriod
		}
	}
}

func (c *Console) setFocused(focused bool) {
	c.focused = focused
	c.flickerTimer = 0
	c.fadeTimer = 0
}

// Focus shows the input line, restarts the caret blink and scrolls to the
// most recent line.
func (c *Console) Focus() {
	c.setFocused(true)
	c.SetScroll(0)
}

// Unfocus hides the input line.
func (c *Console) Unfocus() {
	c.setFocused(false)
}

// Commit clears the input buffer and returns what it held. It does not
// change focus.
func (c *Console) Commit() string {
	s := c.typing
	c.typing = ""
	return s
}

// History returns the logical lines, oldest first. The slice must not be
// modified.
func (c *Console) History() []string { return c.history }

// Visible returns the wrapped lines in the visible window, oldest first.
// The slice must not be modified.
func (c *Console) Visible() []string { return c.split }

// Typing returns the input buffer.
func (c *Console) Typing() string { return c.typing }

// Scroll returns how many lines the window is scrolled above the most
// recent line.
func (c *Console) Scroll() int { return c.scroll }

// MaxScroll returns the largest valid scroll.
func (c *Console) MaxScroll() int { return c.maxScroll }

func (c *Console) Width() float32      { return c.width }
func (c *Console) VisibleLines() int   { return c.visibleLines }
func (c *Console) LineHeight() float32 { return c.lineHeight }
func (c *Console) Focused() bool       { return c.focused }
func (c *Console) ScrollSpeed() float32 {
	return c.scrollSpeed
}

// SetScrollSpeed changes the scroll speed. It must be positive.
func (c *Console) SetScrollSpeed(s float32) error {
	if !(s > 0) || isInf(s) {
		return &ConfigError{Field: "scroll speed", Value: s}
	}
	c.scrollSpeed = s
	return nil
}

// Table returns the metrics table the console wraps with.
func (c *Console) Table() *text.Table { return c.table }

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
