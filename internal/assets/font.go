// Package assets builds the textures and fonts shared by the games: a glyph
// atlas rasterised from the built-in basic font, fonts loaded from glyph
// tables, and small procedurally drawn sprite sheets.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/text"
)

// First and last characters rasterised into the default atlas.
const (
	firstChar = ' '
	lastChar  = '~'
)

var (
	defaultFontOnce sync.Once
	defaultFont     *text.Font
)

// DefaultFont returns the shared white 7x13 font.
func DefaultFont() *text.Font {
	defaultFontOnce.Do(func() {
		defaultFont = NewBasicFont(core.ColorWhite)
	})
	return defaultFont
}

// NewBasicFont rasterises printable ASCII from basicfont.Face7x13 in color c.
// Glyph cells are transparent outside the strokes, so the font blends over
// whatever is behind it.
func NewBasicFont(c core.Color) *text.Font {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	n := int(lastChar-firstChar) + 1

	img := image.NewNRGBA(image.Rect(0, 0, cellW*n, cellH))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}),
		Face: face,
	}

	glyphs := make([]text.Glyph, 0, n)
	for i := 0; i < n; i++ {
		r := firstChar + rune(i)
		d.Dot = fixed.P(i*cellW, face.Ascent)
		d.DrawString(string(r))
		glyphs = append(glyphs, text.Glyph{
			Char: r,
			Src:  core.NewRect(float32(i*cellW), 0, float32(cellW), float32(cellH)),
		})
	}

	f := text.NewFont(core.NewTexture(img), glyphs)
	f.Composite = core.CompositeAlpha
	return f
}

// LoadFont loads an atlas image and builds a font from a glyph table.
func LoadFont(cfg config.FontConfig) (*text.Font, error) {
	atlas, err := core.LoadTexture(cfg.Atlas)
	if err != nil {
		return nil, fmt.Errorf("assets: font atlas: %w", err)
	}

	glyphs := make([]text.Glyph, 0, len(cfg.Glyphs))
	for _, g := range cfg.Glyphs {
		glyphs = append(glyphs, text.Glyph{
			Char: g.Rune(),
			Src:  core.NewRect(float32(g.X), float32(g.Y), float32(g.W), float32(g.H)),
		})
	}

	f := text.NewFont(atlas, glyphs)
	f.Composite = core.CompositeAlpha
	return f, nil
}

// FontTable describes f as a glyph table that LoadFont can read back,
// given the atlas saved at atlasPath.
func FontTable(f *text.Font, atlasPath string) config.FontConfig {
	cfg := config.FontConfig{Atlas: atlasPath}
	for _, g := range f.Glyphs() {
		cfg.Glyphs = append(cfg.Glyphs, config.GlyphSpec{
			Char: string(g.Char),
			X:    int(g.Src.X),
			Y:    int(g.Src.Y),
			W:    int(g.Src.W),
			H:    int(g.Src.H),
		})
	}
	return cfg
}
