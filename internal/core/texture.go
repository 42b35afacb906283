package core

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"
)

// Texture is a decoded RGBA8888 image with straight (non-premultiplied)
// alpha. Textures are created once at load
// time and shared by pointer between sprites and fonts; nothing may modify
// the pixels after construction.
type Texture struct {
	pix    []byte
	width  int
	height int
}

// LoadTexture decodes the image file at path into a Texture.
// A missing or malformed file is an error the caller should treat as fatal.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: cannot open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("core: cannot decode texture %s: %w", path, err)
	}
	return NewTexture(img), nil
}

// NewTexture converts any image into an RGBA8888 Texture.
// The pixel data is copied, so later changes to img do not affect the texture.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	return &Texture{
		pix:    nrgba.Pix,
		width:  b.Dx(),
		height: b.Dy(),
	}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Bounds returns the full texture area as a source rectangle.
func (t *Texture) Bounds() Rect {
	return NewRect(0, 0, float32(t.width), float32(t.height))
}

// Pix returns the underlying pixel data. Callers must not modify it.
func (t *Texture) Pix() []byte {
	return t.pix
}

// At returns the pixel at (x, y), or transparent black when out of bounds.
func (t *Texture) At(x, y int) Color {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return ColorTransparent
	}
	i := (y*t.width + x) * Depth
	return Color{R: t.pix[i], G: t.pix[i+1], B: t.pix[i+2], A: t.pix[i+3]}
}
