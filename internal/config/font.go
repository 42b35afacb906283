package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// FontConfig describes a bitmap font: an atlas image and the glyph table
// mapping characters to rectangles on it.
type FontConfig struct {
	Atlas  string      `yaml:"atlas"` // Image path, relative to the font file
	Glyphs []GlyphSpec `yaml:"glyphs"`
}

// GlyphSpec is one glyph table row.
type GlyphSpec struct {
	Char string `yaml:"char"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// Rune returns the glyph's character.
func (g GlyphSpec) Rune() rune {
	r, _ := utf8.DecodeRuneInString(g.Char)
	return r
}

// LoadFont reads a glyph table. A relative atlas path is resolved against
// the directory of the font file.
func LoadFont(path string) (FontConfig, error) {
	var cfg FontConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read font %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse font %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: font %s: %w", path, err)
	}

	if cfg.Atlas != "" && !filepath.IsAbs(cfg.Atlas) {
		cfg.Atlas = filepath.Join(filepath.Dir(path), cfg.Atlas)
	}
	return cfg, nil
}

// Validate checks every glyph names exactly one character and has a size.
func (c FontConfig) Validate() error {
	if c.Atlas == "" {
		return fmt.Errorf("missing atlas")
	}
	for i, g := range c.Glyphs {
		if utf8.RuneCountInString(g.Char) != 1 {
			return fmt.Errorf("glyph %d: char %q must be a single character", i, g.Char)
		}
		if g.W <= 0 || g.H <= 0 {
			return fmt.Errorf("glyph %d (%q): empty size %dx%d", i, g.Char, g.W, g.H)
		}
	}
	return nil
}

// Marshal encodes the glyph table as YAML.
func (c FontConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
