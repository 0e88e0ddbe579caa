package main

import (
	"errors"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/ggtext/console"
)

// interpreter runs committed console commands as Lua chunks.
type interpreter struct {
	l *lua.LState
}

func newInterpreter(c *console.Console) *interpreter {
	l := lua.NewState()
	l.Register("print", func(l *lua.LState) int {
		n := l.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, l.ToStringMeta(l.Get(i)).String())
		}
		c.AppendLine(strings.Join(parts, "\t"))
		return 0
	})
	l.Register("scroll", func(l *lua.LState) int {
		c.SetScroll(l.CheckInt(1))
		l.Push(lua.LNumber(c.Scroll()))
		return 1
	})
	l.Register("scrollspeed", func(l *lua.LState) int {
		if l.GetTop() > 0 {
			if err := c.SetScrollSpeed(float32(l.CheckNumber(1))); err != nil {
				l.RaiseError("%v", err)
				return 0
			}
		}
		l.Push(lua.LNumber(c.ScrollSpeed()))
		return 1
	})
	return &interpreter{l: l}
}

// Exec runs cmd. Lines starting with '/' are Lua; anything else is echoed
// as chat.
func (in *interpreter) Exec(c *console.Console, cmd string) {
	code, ok := strings.CutPrefix(cmd, "/")
	if !ok {
		c.AppendLine("> " + cmd)
		return
	}
	if err := in.l.DoString(code); err != nil {
		c.AppendLine("error: " + luaMessage(err))
	}
}

// luaMessage returns the message of a Lua error without its traceback.
func luaMessage(err error) string {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		return strings.TrimSpace(apiErr.Object.String())
	}
	return err.Error()
}

func (in *interpreter) Close() { in.l.Close() }
