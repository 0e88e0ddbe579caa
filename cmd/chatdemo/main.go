// Command chatdemo hosts a history console in a terminal.
//
// Press Enter or 't' to focus the console, type, and press Enter to commit.
// Lines starting with '/' run as Lua, e.g. /print(scroll(3)). Escape while
// unfocused quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/console"
	"github.com/gogpu/ggtext/internal/fontfile"
	"github.com/gogpu/ggtext/text"
)

func main() {
	var (
		configPath = flag.String("config", "chatdemo.ini", "console configuration file")
		fontName   = flag.String("font", "", "font file name or path (default: built-in Go Regular)")
		logPath    = flag.String("log", "", "write debug log to this file")
		writeConf  = flag.Bool("write-config", false, "print the effective configuration and exit")
	)
	flag.Parse()

	if err := run(*configPath, *fontName, *logPath, *writeConf); err != nil {
		fmt.Fprintln(os.Stderr, "chatdemo:", err)
		os.Exit(1)
	}
}

func run(configPath, fontName, logPath string, writeConf bool) error {
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		ggtext.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := console.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if writeConf {
		_, err := cfg.WriteTo(os.Stdout)
		return err
	}

	data, err := fontfile.Load(fontName)
	if err != nil {
		return err
	}
	fonts, err := text.Build(data, []float64{float64(cfg.LineHeight)}, text.DefaultCharacters())
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnablePaste()

	h, err := newHost(screen, fonts[0], cfg)
	if err != nil {
		return err
	}
	defer h.Close()
	h.Loop()
	return nil
}

const frameTime = time.Second / 30
