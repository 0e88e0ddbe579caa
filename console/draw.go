package console

import "github.com/go-gl/mathgl/mgl32"

// Background is the console's backdrop rectangle, given by its center and
// its full size.
type Background struct {
	Center mgl32.Vec2
	Scale  mgl32.Vec2
	Color  mgl32.Vec4
}

// Run is one line of text to draw. Pos is the origin of the line's first
// character on its baseline.
type Run struct {
	Text  string
	Pos   mgl32.Vec2
	Color mgl32.Vec4
}

var (
	textColor       = mgl32.Vec4{1, 1, 1, 1}
	backgroundColor = mgl32.Vec4{0, 0, 0, 0.6}
)

// Opacity returns the current fade factor in [0, 1]. A focused console is
// always opaque.
func (c *Console) Opacity() float32 {
	if c.focused || c.fadeTimer <= FadeStart {
		return 1
	}
	return mgl32.Clamp(1-(c.fadeTimer-FadeStart)/FadeDuration, 0, 1)
}

// Render projects the console into draw data. It does not modify the
// console.
//
// History lines are bottom-aligned in the visible window. When focused, the
// input line follows them as "> " plus the buffer, with a "|" caret during
// the on half of the blink period.
func (c *Console) Render() (Background, []Run) {
	fade := c.Opacity()
	color := textColor.Mul(fade)

	height := c.height
	if c.focused {
		height += c.lineHeight
	}
	bg := Background{
		Center: mgl32.Vec2{c.width / 2, height / 2},
		Scale:  mgl32.Vec2{c.width, height},
		Color:  backgroundColor.Mul(fade),
	}

	empty := max(0, c.visibleLines-len(c.split))
	pos := mgl32.Vec2{0, c.lineHeight * float32(empty+1)}
	runs := make([]Run, 0, len(c.split)+1)
	for _, line := range c.split {
		runs = append(runs, Run{Text: line, Pos: pos, Color: color})
		pos = pos.Add(mgl32.Vec2{0, c.lineHeight})
	}

	if c.focused {
		line := "> " + c.typing
		if c.flickerTimer > BlinkPeriod/2 {
			line += "|"
		}
		runs = append(runs, Run{Text: line, Pos: pos, Color: color})
	}
	return bg, runs
}
