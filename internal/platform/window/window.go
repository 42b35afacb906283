// Package window presents arcade games in a desktop window through Ebiten.
// The windowed build requires the ebiten build tag; without it Run reports
// ErrUnsupported.
package window

import (
	"errors"
	"os"
)

// ErrUnsupported is returned by Run in builds without the ebiten tag.
var ErrUnsupported = errors.New("window: built without the ebiten tag")

// DefaultScale is the window pixels per framebuffer pixel.
const DefaultScale = 3

// playerName is the name scores are saved under.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// premultiply copies the straight-alpha RGBA pixels of src into dst with
// each color channel scaled by its alpha, as Ebiten expects for uploads.
// dst must be at least as long as src.
func premultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		dst[i] = uint8((uint32(src[i])*a + 127) / 255)
		dst[i+1] = uint8((uint32(src[i+1])*a + 127) / 255)
		dst[i+2] = uint8((uint32(src[i+2])*a + 127) / 255)
		dst[i+3] = src[i+3]
	}
}
