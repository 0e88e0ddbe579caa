package console

// Key identifies a key press the console reacts to.
type Key int

const (
	// KeyOther is any key without a console binding. It is consumed.
	KeyOther Key = iota
	KeyEscape
	KeyEnter
	// KeyRune is a printable key; the rune is in KeyEvent.Rune.
	KeyRune
)

// Event is an input event delivered to a focused console.
type Event interface {
	event()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Ctrl bool
}

// CharEvent is a character produced by the keyboard. '\b' is backspace.
type CharEvent struct {
	Rune rune
}

// ScrollEvent is a mouse wheel movement. When Lines is set DY counts lines,
// otherwise pixels.
type ScrollEvent struct {
	DY    float32
	Lines bool
}

// PasteEvent carries clipboard contents, or the error from reading them.
type PasteEvent struct {
	Text string
	Err  error
}

func (KeyEvent) event()    {}
func (CharEvent) event()   {}
func (ScrollEvent) event() {}
func (PasteEvent) event()  {}

// PixelsPerLine converts line-based scroll deltas to pixels.
const PixelsPerLine = 32

// Clipboard reads the system clipboard.
type Clipboard interface {
	Contents() (string, error)
}

// ResultKind classifies how the console handled an event.
type ResultKind int

const (
	// ResultIgnored means the host should handle the event.
	ResultIgnored ResultKind = iota
	// ResultConsumed means the console handled the event.
	ResultConsumed
	// ResultRelinquish means the console gave up focus.
	ResultRelinquish
	// ResultCommand means the user committed a line; see Result.Command.
	ResultCommand
)

// Result is the outcome of HandleEvent.
type Result struct {
	Kind    ResultKind
	command string
}

// Consumed reports whether the console used the event.
func (r Result) Consumed() bool { return r.Kind != ResultIgnored }

// Relinquished reports whether the console gave up focus.
func (r Result) Relinquished() bool { return r.Kind == ResultRelinquish }

// Command returns the committed line, if any. It is delivered verbatim.
func (r Result) Command() (string, bool) {
	return r.command, r.Kind == ResultCommand
}

// HandleEvent applies an input event to a focused console.
//
// Escape, and Enter on an empty buffer, unfocus the console. Enter on a
// non-empty buffer commits it as a command. Characters the table has no
// glyph for are ignored.
func (c *Console) HandleEvent(ev Event) Result {
	switch ev := ev.(type) {
	case KeyEvent:
		return c.handleKey(ev)
	case CharEvent:
		switch {
		case ev.Rune == '\b':
			c.PopChar(1)
		case !c.table.IsCharValid(ev.Rune):
			return Result{Kind: ResultIgnored}
		default:
			c.PushChar(ev.Rune)
		}
		return Result{Kind: ResultConsumed}
	case ScrollEvent:
		dy := ev.DY
		if ev.Lines {
			dy *= PixelsPerLine
		}
		c.ProcessScroll(dy)
		return Result{Kind: ResultConsumed}
	case PasteEvent:
		c.paste(ev.Text, ev.Err)
		return Result{Kind: ResultConsumed}
	}
	return Result{Kind: ResultIgnored}
}

func (c *Console) handleKey(ev KeyEvent) Result {
	switch ev.Key {
	case KeyEscape:
		c.Unfocus()
		return Result{Kind: ResultRelinquish}
	case KeyEnter:
		if c.typing == "" {
			c.Unfocus()
			return Result{Kind: ResultRelinquish}
		}
		return Result{Kind: ResultCommand, command: c.Commit()}
	case KeyRune:
		if ev.Ctrl && (ev.Rune == 'v' || ev.Rune == 'V') && c.clipboard != nil {
			c.paste(c.clipboard.Contents())
		}
	}
	return Result{Kind: ResultConsumed}
}

func (c *Console) paste(s string, err error) {
	if err != nil {
		c.AppendLine("Error pasting: " + err.Error())
		return
	}
	c.AppendTyping(s)
}
