// Package text draws strings from a glyph atlas and lays out paragraphs with
// word wrap and resumable pagination.
package text

import "github.com/vovakirdan/pixel-arcade/internal/core"

// Glyph maps a character to its source rectangle on the atlas.
type Glyph struct {
	Char rune
	Src  core.Rect
}

// Font is an immutable glyph table over a shared atlas texture.
// Glyph widths may differ; the cursor advances by each glyph's own width.
type Font struct {
	// Composite selects how glyphs are blitted. Set it before the font is
	// shared; the default overwrites destination pixels.
	Composite core.Composite

	atlas      *core.Texture
	glyphs     []Glyph
	index      map[rune]int
	lineHeight float32
}

// NewFont builds a font from an ordered glyph table. When a character appears
// more than once the last entry wins the lookup.
func NewFont(atlas *core.Texture, glyphs []Glyph) *Font {
	f := &Font{
		atlas:  atlas,
		glyphs: make([]Glyph, len(glyphs)),
		index:  make(map[rune]int, len(glyphs)),
	}
	copy(f.glyphs, glyphs)
	for i, g := range f.glyphs {
		f.index[g.Char] = i
		if g.Src.H > f.lineHeight {
			f.lineHeight = g.Src.H
		}
	}
	return f
}

// Glyph returns the atlas rectangle for r.
func (f *Font) Glyph(r rune) (core.Rect, bool) {
	i, ok := f.index[r]
	if !ok {
		return core.Rect{}, false
	}
	return f.glyphs[i].Src, true
}

// Advance returns how far the cursor moves after drawing r. Unknown
// characters do not move it.
func (f *Font) Advance(r rune) float32 {
	src, ok := f.Glyph(r)
	if !ok {
		return 0
	}
	return src.W
}

// Measure returns the width of s drawn on a single line.
func (f *Font) Measure(s string) float32 {
	var w float32
	for _, r := range s {
		w += f.Advance(r)
	}
	return w
}

// LineHeight returns the height of the tallest glyph.
func (f *Font) LineHeight() float32 {
	return f.lineHeight
}

// Glyphs returns a copy of the glyph table in its original order.
func (f *Font) Glyphs() []Glyph {
	out := make([]Glyph, len(f.glyphs))
	copy(out, f.glyphs)
	return out
}

// Atlas returns the shared glyph texture.
func (f *Font) Atlas() *core.Texture {
	return f.atlas
}

// DrawTextAtPos draws s on one line starting at pos and returns the cursor
// position after the last glyph. Characters missing from the font are
// skipped without advancing.
func DrawTextAtPos(dst *core.Screen, s string, pos core.Vec2, f *Font) core.Vec2 {
	cursor := pos
	for _, r := range s {
		src, ok := f.Glyph(r)
		if !ok {
			continue
		}
		dst.BlitWith(f.atlas, src, cursor, f.Composite)
		cursor.X += src.W
	}
	return cursor
}
