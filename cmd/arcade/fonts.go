package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/assets"
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

var (
	flagFontOut   string
	flagFontCheck string
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Dump or check bitmap font glyph tables",
	Long: `Print the glyph table of the built-in font as YAML. With --out the atlas
image and the table are written to a directory, ready to be edited and
loaded back.

With --check a glyph table is loaded together with its atlas and a summary
is printed.

Examples:
  arcade fonts
  arcade fonts --out ./myfont
  arcade fonts --check ./myfont/font.yaml`,
	Args: cobra.NoArgs,
	RunE: runFonts,
}

func init() {
	fontsCmd.Flags().StringVar(&flagFontOut, "out", "", "Directory to write font.png and font.yaml to")
	fontsCmd.Flags().StringVar(&flagFontCheck, "check", "", "Glyph table to load and summarise")
}

func runFonts(_ *cobra.Command, _ []string) error {
	if flagFontCheck != "" {
		return checkFont(flagFontCheck)
	}

	f := assets.DefaultFont()
	table := assets.FontTable(f, "font.png")
	data, err := table.Marshal()
	if err != nil {
		return err
	}

	if flagFontOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(flagFontOut, 0o755); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(flagFontOut, table.Atlas), f.Atlas()); err != nil {
		return err
	}
	tablePath := filepath.Join(flagFontOut, "font.yaml")
	if err := os.WriteFile(tablePath, data, 0o644); err != nil {
		return err
	}
	logger.Info("font written", "table", tablePath, "glyphs", len(table.Glyphs))
	return nil
}

func checkFont(path string) error {
	table, err := config.LoadFont(path)
	if err != nil {
		logger.Fatal("cannot read glyph table", "error", err)
	}
	f, err := assets.LoadFont(table)
	if err != nil {
		logger.Fatal("cannot load font", "error", err)
	}

	atlas := f.Atlas()
	fmt.Printf("%s: %d glyphs, atlas %dx%d, line height %.0f\n",
		path, len(f.Glyphs()), atlas.Width(), atlas.Height(), f.LineHeight())
	fmt.Printf("\"Hello, world!\" measures %.0f px\n", f.Measure("Hello, world!"))
	return nil
}

func writePNG(path string, tex *core.Texture) error {
	img := &image.NRGBA{
		Pix:    tex.Pix(),
		Stride: tex.Width() * core.Depth,
		Rect:   image.Rect(0, 0, tex.Width(), tex.Height()),
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
