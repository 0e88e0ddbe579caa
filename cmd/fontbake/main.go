// Command fontbake rasterizes a font into glyph atlases, one per size, and
// writes each atlas as a PNG next to a JSON metrics manifest.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/gogpu/ggtext"
	"github.com/gogpu/ggtext/atlas"
	"github.com/gogpu/ggtext/internal/fontfile"
	"github.com/gogpu/ggtext/text"
)

func main() {
	var (
		fontName = flag.String("font", "", "font file name or path (default: built-in Go Regular)")
		sizeList = flag.String("sizes", "12,16,24", "comma separated pixel sizes")
		charset  = flag.String("chars", "ascii", "character set: ascii or japanese")
		outDir   = flag.String("out", ".", "output directory")
		verbose  = flag.Bool("v", false, "log packing progress")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*fontName, *sizeList, *charset, *outDir); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(fontName, sizeList, charset, outDir string) error {
	data, err := fontfile.Load(fontName)
	if err != nil {
		return err
	}
	sizes, err := parseSizes(sizeList)
	if err != nil {
		return err
	}
	chars, err := characters(charset)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("baking %d sizes", len(sizes)))
	res := <-text.BuildAsync(ctx, data, sizes, chars)
	if res.Err != nil {
		spinner.Fail(res.Err.Error())
		return res.Err
	}
	spinner.Success("baked")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	rows := [][]string{{"Font", "Glyphs", "Atlas", "Line height", "PNG", "Manifest"}}
	for _, f := range res.Fonts {
		png, manifest, err := write(f, outDir)
		if err != nil {
			return err
		}
		w, h := f.AtlasSize()
		rows = append(rows, []string{
			f.Name,
			strconv.Itoa(f.Len()),
			fmt.Sprintf("%dx%d", w, h),
			strconv.FormatFloat(float64(f.LineHeight()), 'g', -1, 32),
			png,
			manifest,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %d atlases to %s", len(res.Fonts), outDir)
	return nil
}

func write(f *text.Font, dir string) (string, string, error) {
	var buf bytes.Buffer
	if err := atlas.EncodePNG(&buf, f.Atlas); err != nil {
		return "", "", fmt.Errorf("%s: %w", f.Name, err)
	}
	png := filepath.Join(dir, f.Name+".png")
	if err := os.WriteFile(png, buf.Bytes(), 0o644); err != nil {
		return "", "", err
	}

	data, err := text.MarshalManifest(f)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", f.Name, err)
	}
	manifest := filepath.Join(dir, f.Name+".json")
	if err := os.WriteFile(manifest, data, 0o644); err != nil {
		return "", "", err
	}
	return png, manifest, nil
}

func parseSizes(s string) ([]float64, error) {
	var sizes []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", field, err)
		}
		sizes = append(sizes, v)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}

func characters(set string) ([]rune, error) {
	switch set {
	case "ascii":
		return text.DefaultCharacters(), nil
	case "japanese":
		return text.DefaultAndJapanese(), nil
	}
	return nil, fmt.Errorf("unknown character set %q", set)
}
