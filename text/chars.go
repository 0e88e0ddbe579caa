package text

// DefaultCharacters returns NUL followed by printable ASCII.
// NUL is conventionally used as the fallback character.
func DefaultCharacters() []rune {
	out := make([]rune, 0, 96)
	out = append(out, 0)
	for r := rune(32); r < 127; r++ {
		out = append(out, r)
	}
	return out
}

// japaneseRanges are half-open ranges over the CJK punctuation, Hiragana
// and Katakana block, the halfwidth and fullwidth forms, and the common CJK
// ideographs.
var japaneseRanges = [][2]rune{
	{0x3000, 0x30ff},
	{0xff00, 0xffef},
	{0x4e00, 0x9faf},
}

// DefaultAndJapanese returns DefaultCharacters plus the Japanese ranges.
func DefaultAndJapanese() []rune {
	out := DefaultCharacters()
	for _, rg := range japaneseRanges {
		for r := rg[0]; r < rg[1]; r++ {
			out = append(out, r)
		}
	}
	return out
}
