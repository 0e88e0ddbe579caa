package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/width"

	"github.com/gogpu/ggtext/console"
	"github.com/gogpu/ggtext/render"
	"github.com/gogpu/ggtext/text"
)

var errNothingYanked = errors.New("nothing to paste")

// yankBuffer is the clipboard of the demo: the last committed command.
type yankBuffer struct {
	last string
}

func (y *yankBuffer) Contents() (string, error) {
	if y.last == "" {
		return "", errNothingYanked
	}
	return y.last, nil
}

// host owns the terminal, the console and the GPU-side batches the console
// would be drawn with. The batches are built every frame and summarized in
// the status line.
type host struct {
	screen tcell.Screen
	font   *text.Font
	con    *console.Console
	lua    *interpreter
	yank   *yankBuffer

	cellWidth float32
	pasting   strings.Builder
	inPaste   bool

	batch    *render.Batch
	rects    *render.Rects
	dispatch *render.Dispatcher
	textures render.Textures
	texture  render.Handle
}

func newHost(screen tcell.Screen, f *text.Font, cfg console.Config) (*host, error) {
	yank := &yankBuffer{}
	con, err := cfg.New(f.Table, console.WithClipboard(yank))
	if err != nil {
		return nil, err
	}
	h := &host{
		screen:   screen,
		font:     f,
		con:      con,
		yank:     yank,
		batch:    render.NewBatch(),
		rects:    &render.Rects{},
		dispatch: render.NewDispatcher(),
	}
	h.lua = newInterpreter(con)
	h.dispatch.Register(render.KindText, h.batch)
	h.dispatch.Register(render.KindRect, h.rects)
	h.texture = h.textures.Add(f)

	h.cellWidth = f.LineHeight() / 2
	if m, ok := f.Metrics('M'); ok && m.Advance > 0 {
		h.cellWidth = m.Advance
	}
	h.resize()
	con.AppendLine(fmt.Sprintf("font %s, %d glyphs", f.Name, f.Len()))
	con.AppendLine("press Enter to type, /lua to script, Esc to quit")
	return h, nil
}

func (h *host) Close() { h.lua.Close() }

func (h *host) resize() {
	cols, rows := h.screen.Size()
	visible := max(1, min(h.con.VisibleLines(), rows-2))
	h.con.Resize(float32(cols)*h.cellWidth, visible)
}

// Loop runs until the user quits.
func (h *host) Loop() {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pump(h.screen.PollEvent, events, done)

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-events:
			if h.handle(ev) {
				return
			}
		case now := <-ticker.C:
			h.con.Update(float32(now.Sub(last).Seconds()))
			last = now
			h.draw()
		}
	}
}

// pump forwards polled events until poll returns nil or done is closed.
func pump(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle applies ev and reports whether the demo should quit.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
		return false
	case *tcell.EventPaste:
		if ev.Start() {
			h.inPaste = true
			h.pasting.Reset()
			return false
		}
		h.inPaste = false
		if h.con.Focused() {
			h.con.HandleEvent(console.PasteEvent{Text: h.pasting.String()})
		}
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if h.inPaste {
			if ev.Key() == tcell.KeyRune {
				h.pasting.WriteRune(ev.Rune())
			}
			return false
		}
		if !h.con.Focused() {
			switch {
			case ev.Key() == tcell.KeyEscape:
				return true
			case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == 't':
				h.con.Focus()
			}
			return false
		}
	case *tcell.EventMouse:
		if !h.con.Focused() {
			return false
		}
	}

	for _, cev := range translate(ev) {
		res := h.con.HandleEvent(cev)
		if cmd, ok := res.Command(); ok {
			h.yank.last = cmd
			h.lua.Exec(h.con, cmd)
		}
	}
	return false
}

// translate maps a terminal event to console events.
func translate(ev tcell.Event) []console.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return []console.Event{console.KeyEvent{Key: console.KeyEscape}}
		case tcell.KeyEnter:
			return []console.Event{console.KeyEvent{Key: console.KeyEnter}}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return []console.Event{console.CharEvent{Rune: '\b'}}
		case tcell.KeyCtrlV:
			return []console.Event{console.KeyEvent{Key: console.KeyRune, Rune: 'v', Ctrl: true}}
		case tcell.KeyRune:
			return []console.Event{
				console.KeyEvent{Key: console.KeyRune, Rune: ev.Rune(), Ctrl: ev.Modifiers()&tcell.ModCtrl != 0},
				console.CharEvent{Rune: ev.Rune()},
			}
		case tcell.KeyPgUp:
			return []console.Event{console.ScrollEvent{DY: 3, Lines: true}}
		case tcell.KeyPgDn:
			return []console.Event{console.ScrollEvent{DY: -3, Lines: true}}
		}
		return []console.Event{console.KeyEvent{Key: console.KeyOther}}
	case *tcell.EventMouse:
		switch b := ev.Buttons(); {
		case b&tcell.WheelUp != 0:
			return []console.Event{console.ScrollEvent{DY: 1, Lines: true}}
		case b&tcell.WheelDown != 0:
			return []console.Event{console.ScrollEvent{DY: -1, Lines: true}}
		}
	}
	return nil
}

func (h *host) draw() {
	h.screen.Clear()
	cols, rows := h.screen.Size()
	lineHeight := h.con.LineHeight()

	bg, runs := h.con.Render()
	shade := int32(255 * bg.Color.W())
	bgStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(shade/6, shade/6, shade/4))
	bgRows := int(bg.Scale.Y() / lineHeight)
	for y := 0; y < min(bgRows, rows-1); y++ {
		for x := 0; x < cols; x++ {
			h.screen.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	for _, r := range runs {
		y := int(r.Pos.Y()/lineHeight) - 1
		if y < 0 || y >= rows-1 {
			continue
		}
		v := int32(255 * r.Color.W())
		style := bgStyle.Foreground(tcell.NewRGBColor(v, v, v))
		x := int(r.Pos.X() / h.cellWidth)
		for _, c := range r.Text {
			if x >= cols {
				break
			}
			h.screen.SetContent(x, y, c, nil, style)
			x += cells(c)
		}
	}

	h.drawStatus(cols, rows)
	h.screen.Show()
}

// drawStatus builds the frame's instance batches and reports their size on
// the last row.
func (h *host) drawStatus(cols, rows int) {
	h.batch.Reset()
	h.rects.Reset()
	w, ht := h.con.Width(), float32(rows)*h.con.LineHeight()
	proj := mgl32.Ortho2D(0, w, ht, 0)

	status := ""
	if _, ok := h.textures.Use(h.texture); !ok {
		status = "atlas released"
	} else if err := h.dispatch.Dispatch(proj, render.ConsoleEntries(h.font, h.con)...); err != nil {
		status = err.Error()
	} else {
		st := h.batch.CacheStats()
		status = fmt.Sprintf("glyphs %d  rects %d  line cache %d/%d hit %.0f%%  scroll %d/%d",
			h.batch.Len(), len(h.rects.Instances()), st.Len, st.Capacity, st.HitRate*100,
			h.con.Scroll(), h.con.MaxScroll())
	}
	h.textures.EndFrame(60)

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, c := range status {
		if x >= cols {
			break
		}
		h.screen.SetContent(x, rows-1, c, nil, style)
		x += cells(c)
	}
}

// cells returns how many terminal columns r occupies.
func cells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
