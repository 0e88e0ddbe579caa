package text

import (
	"iter"
	"unicode/utf8"
)

// isBlank reports whether r joins a whitespace run. '\n' is a token of its
// own and is not blank.
func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}

// nextToken returns the token starting at byte offset i of s and the offset
// just past it. A token is a maximal run of blanks, a maximal run of
// non-blank characters, or a single '\n'. At the end of s it returns "", i.
func nextToken(s string, i int) (string, int) {
	if i >= len(s) {
		return "", i
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == '\n' {
		return s[i : i+size], i + size
	}
	blank := isBlank(r)
	j := i + size
	for j < len(s) {
		r, size = utf8.DecodeRuneInString(s[j:])
		if r == '\n' || isBlank(r) != blank {
			break
		}
		j += size
	}
	return s[i:j], j
}

// Tokens yields the tokens of s in order. Concatenating them gives back s.
func Tokens(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(s); {
			var tok string
			tok, i = nextToken(s, i)
			if !yield(tok) {
				return
			}
		}
	}
}
