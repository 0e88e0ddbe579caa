package text

import (
	"iter"
	"math"
	"strings"
	"unicode/utf8"
)

// Unbounded disables wrapping when passed as a maximum width.
const Unbounded float32 = math.MaxFloat32

// Lines is a lazy iterator over the wrapped lines of a string.
//
// Lines are produced greedily one at a time. Whitespace is appended to a
// line while it fits; the first blank that does not fit ends the line and
// the rest of its run is dropped, along with a '\n' right after it. A word
// that does not fit is moved whole to the next line, unless the line is
// empty, in which case it is split at the first character that overflows. A character that is wider than the line on
// its own is emitted alone so every call makes progress. Characters without
// metrics take no space and are left out of the output.
//
// Lines is not safe for concurrent use.
type Lines struct {
	table    *Table
	text     string
	maxWidth float32

	off     int
	pending string
}

// SplitLines returns an iterator over text wrapped at maxWidth pixels. Use
// Unbounded to break only at '\n'.
func SplitLines(t *Table, text string, maxWidth float32) *Lines {
	return &Lines{table: t, text: text, maxWidth: maxWidth}
}

// Reset rewinds the iterator to the start of the text.
func (l *Lines) Reset() {
	l.off = 0
	l.pending = ""
}

func (l *Lines) token() (string, bool) {
	if l.pending != "" {
		tok := l.pending
		l.pending = ""
		return tok, true
	}
	if l.off >= len(l.text) {
		return "", false
	}
	var tok string
	tok, l.off = nextToken(l.text, l.off)
	return tok, true
}

// skipNewline consumes a '\n' that directly follows the current token. A
// blank run that overflows has already ended the line, so the break is
// spent.
func (l *Lines) skipNewline() {
	if l.pending != "" {
		return
	}
	if tok, next := nextToken(l.text, l.off); tok == "\n" {
		l.off = next
	}
}

// Next returns the next line. It returns false once the text is exhausted;
// empty text yields no lines.
func (l *Lines) Next() (string, bool) {
	var (
		line    strings.Builder
		lineAdv float32
		started bool
	)
	for {
		word, ok := l.token()
		if !ok {
			break
		}
		started = true
		if word == "\n" {
			return line.String(), true
		}

		var (
			build    strings.Builder
			buildAdv float32
		)
		for i, c := range word {
			m, ok := l.table.Metrics(c)
			if !ok {
				continue
			}
			if isBlank(c) {
				if lineAdv+buildAdv+m.Advance > l.maxWidth {
					l.skipNewline()
					return line.String(), true
				}
			} else if lineAdv+buildAdv+m.Extent() > l.maxWidth {
				switch {
				case line.Len() > 0:
					l.pending = word
					return line.String(), true
				case build.Len() == 0:
					l.pending = word[i+utf8.RuneLen(c):]
					return string(c), true
				default:
					l.pending = word[i:]
					return build.String(), true
				}
			}
			buildAdv += m.Advance
			build.WriteRune(c)
		}
		lineAdv += buildAdv
		line.WriteString(build.String())
	}
	if !started {
		return "", false
	}
	return line.String(), true
}

// All returns an iterator over the remaining lines.
func (l *Lines) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, ok := l.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

// Collect drains the remaining lines into a slice.
func (l *Lines) Collect() []string {
	var out []string
	for line := range l.All() {
		out = append(out, line)
	}
	return out
}
