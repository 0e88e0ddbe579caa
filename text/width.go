package text

// TextWidth returns the width of the widest line of s, in pixels.
//
// A character ends at its origin plus its left bearing plus its box width,
// so trailing advance is not counted. '\n' starts a new line. Characters
// without metrics are skipped.
func TextWidth(t *Table, s string) float32 {
	var widest, cur float32
	for _, c := range s {
		if c == '\n' {
			cur = 0
			continue
		}
		m, ok := t.Metrics(c)
		if !ok {
			continue
		}
		widest = max(widest, cur+m.Extent())
		cur += m.Advance
	}
	return widest
}
