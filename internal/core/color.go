package core

// Color is a single RGBA8888 pixel value.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements image/color.Color so a Color can be handed to encoders.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return r, g, b, a
}

// Predefined colors for game elements.
var (
	ColorTransparent = Color{}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorWhite       = Color{255, 255, 255, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorYellow      = Color{255, 255, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorCyan        = Color{0, 255, 255, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorMagenta     = Color{255, 0, 255, 255}
	ColorOrange      = Color{255, 165, 0, 255}
	ColorGray        = Color{128, 128, 128, 255}
	ColorSky         = Color{135, 206, 250, 255}
)

// Palette is the rotating obstacle palette used by the prototypes.
var Palette = []Color{
	ColorRed,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}
