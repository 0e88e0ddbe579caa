package text

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	table := uniformTable(10, 10)
	tests := []struct {
		name  string
		text  string
		width float32
		want  []string
	}{
		{"greedy width 30", "abcdefghij", 30, []string{"abc", "def", "ghi", "j"}},
		{"greedy width 25", "abcdefghij", 25, []string{"ab", "cd", "ef", "gh", "ij"}},
		{"newline unbounded", "hello\nworld", Unbounded, []string{"hello", "world"}},
		{"empty", "", 100, nil},
		{"blank line kept", "a\n\nb", Unbounded, []string{"a", "", "b"}},
		{"trailing newline", "a\n", Unbounded, []string{"a"}},
		{"overflowing space dropped", "hello world", 50, []string{"hello", "world"}},
		{"word deferred keeps fitting space", "ab cd", 40, []string{"ab ", "cd"}},
		{"rest of blank run dropped", "ab    cd", 40, []string{"ab", "cd"}},
		{"tab is blank", "ab\tcd", 20, []string{"ab", "cd"}},
		{"oversized char alone", "ab", 5, []string{"a", "b"}},
		{"unknown chars skipped", "a\x01b", Unbounded, []string{"ab"}},
		{"carriage return ignored", "ab\r\ncd", Unbounded, []string{"ab", "cd"}},
		{"fits exactly", "abc", 30, []string{"abc"}},
		{"overflowing space before newline", "ab \ncd", 20, []string{"ab", "cd"}},
		{"overflowing tab run before newline", "ab\t\t\ncd", 20, []string{"ab", "cd"}},
		{"fitting space before newline", "ab \ncd", 30, []string{"ab ", "cd"}},
		{"overflow then blank line", "ab \n\ncd", 20, []string{"ab", "", "cd"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(table, tt.text, tt.width).Collect()
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitLines(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestSplitLinesReset(t *testing.T) {
	table := uniformTable(10, 10)
	lines := SplitLines(table, "the quick brown fox", 60)
	first := lines.Collect()
	if _, ok := lines.Next(); ok {
		t.Fatal("Next after Collect returned a line")
	}
	lines.Reset()
	second := lines.Collect()
	if !slices.Equal(first, second) {
		t.Errorf("after Reset got %q, want %q", second, first)
	}
}

func TestSplitLinesAllStopsEarly(t *testing.T) {
	table := uniformTable(10, 10)
	lines := SplitLines(table, "a\nb\nc", Unbounded)
	for line := range lines.All() {
		if line != "a" {
			t.Errorf("first line = %q, want %q", line, "a")
		}
		break
	}
	rest := lines.Collect()
	if !slices.Equal(rest, []string{"b", "c"}) {
		t.Errorf("remaining lines = %q", rest)
	}
}

func TestSplitLinesFixedPoint(t *testing.T) {
	table := uniformTable(10, 10)
	const text = "the quick brown fox jumps over the lazy dog"
	for width := float32(60); width <= 200; width += 10 {
		lines := SplitLines(table, text, width).Collect()
		trimmed := make([]string, len(lines))
		for i, l := range lines {
			trimmed[i] = strings.TrimRight(l, " ")
			if w := TextWidth(table, trimmed[i]); w > width {
				t.Errorf("width %v: line %q is %v wide", width, trimmed[i], w)
			}
		}
		joined := strings.Join(trimmed, " ")
		if joined != text {
			t.Errorf("width %v: rejoined %q, want %q", width, joined, text)
		}
		again := SplitLines(table, joined, width).Collect()
		if !slices.Equal(again, lines) {
			t.Errorf("width %v: rewrap %q, want %q", width, again, lines)
		}
	}
}

func TestSplitLinesProgress(t *testing.T) {
	table := uniformTable(10, 10)
	rng := rand.New(rand.NewPCG(1, 2))
	const alphabet = "abcdefg  \t\n"
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' {
				return -1
			}
			return r
		}, s)
	}

	for range 200 {
		var sb strings.Builder
		for range rng.IntN(60) {
			sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		text := sb.String()
		width := float32(rng.IntN(80))

		lines := SplitLines(table, text, width)
		var got []string
		for line := range lines.All() {
			got = append(got, line)
			if len(got) > len(text)+1 {
				t.Fatalf("SplitLines(%q, %v) did not terminate", text, width)
			}
		}
		if a, b := strip(strings.Join(got, "")), strip(text); a != b {
			t.Errorf("SplitLines(%q, %v) lost characters: %q vs %q", text, width, a, b)
		}
		for _, l := range got {
			if w := TextWidth(table, l); w > width && len([]rune(strings.TrimSpace(l))) > 1 {
				t.Errorf("SplitLines(%q, %v): line %q is %v wide", text, width, l, w)
			}
		}
	}
}

func BenchmarkSplitLines(b *testing.B) {
	table := uniformTable(10, 10)
	text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	for b.Loop() {
		_ = SplitLines(table, text, 300).Collect()
	}
}
