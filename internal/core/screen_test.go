package core

import (
	"image"
	"image/color"
	"math"
	"testing"
	"time"
)

// newTestScreen allocates a buffer for a w x h screen plus guard bytes after it.
func newTestScreen(w, h, guard int) (*Screen, []byte) {
	buf := make([]byte, w*h*Depth+guard)
	for i := w * h * Depth; i < len(buf); i++ {
		buf[i] = 0xAB
	}
	return Wrap(buf[:w*h*Depth], w, h, Depth), buf
}

// newTestTexture builds a texture whose pixels come from fn.
func newTestTexture(w, h int, fn func(x, y int) Color) *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := fn(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return NewTexture(img)
}

func countColor(s *Screen, c Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestWrap(t *testing.T) {
	s := Wrap(make([]byte, 8*6*Depth), 8, 6, Depth)

	if s.Width() != 8 {
		t.Errorf("Width() = %d, expected 8", s.Width())
	}
	if s.Height() != 6 {
		t.Errorf("Height() = %d, expected 6", s.Height())
	}

	// Check that it starts with the caller's contents
	if countColor(s, ColorTransparent) != 48 {
		t.Error("Wrap should not modify the borrowed buffer")
	}
}

func TestWrapShortBuffer(t *testing.T) {
	// Room for two full rows and half of a third
	s := Wrap(make([]byte, 10*Depth), 4, 4, Depth)

	if s.Height() != 2 {
		t.Errorf("Height() = %d, expected 2 for a short buffer", s.Height())
	}

	s.Clear(ColorRed) // Should not panic
	s.FilledRect(V(0, 0), V(4, 4), ColorBlue)
}

func TestWrapUnsupportedDepth(t *testing.T) {
	buf := make([]byte, 4*4*3)
	s := Wrap(buf, 4, 4, 3)

	s.Clear(ColorRed)
	s.Set(1, 1, ColorRed)
	s.FilledCircle(V(2, 2), 3, ColorRed)

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d modified on an unsupported depth screen", i)
		}
	}
}

func TestScreenSetAt(t *testing.T) {
	s, _ := newTestScreen(10, 10, 0)

	s.Set(5, 5, ColorRed)
	if s.At(5, 5) != ColorRed {
		t.Errorf("At(5, 5) = %v, expected red", s.At(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, ColorRed)  // Should not panic
	s.Set(100, 0, ColorRed) // Should not panic
	s.Set(0, -1, ColorRed)  // Should not panic
	s.Set(0, 100, ColorRed) // Should not panic

	if s.At(-1, 0) != ColorTransparent {
		t.Error("Out of bounds At should return transparent")
	}
	if countColor(s, ColorRed) != 1 {
		t.Errorf("expected exactly one red pixel, got %d", countColor(s, ColorRed))
	}
}

func TestScreenClear(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {16, 9}} {
		s, _ := newTestScreen(size[0], size[1], 0)
		s.Clear(ColorSky)

		if got := countColor(s, ColorSky); got != size[0]*size[1] {
			t.Errorf("Clear on %dx%d: %d sky pixels, expected %d", size[0], size[1], got, size[0]*size[1])
		}
	}
}

func TestFilledRectPartiallyOffscreen(t *testing.T) {
	s, _ := newTestScreen(4, 4, 0)
	s.Clear(ColorBlack)

	s.FilledRect(V(-2, -2), V(4, 4), ColorRed)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := ColorBlack
			if x < 2 && y < 2 {
				want = ColorRed
			}
			if got := s.At(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestFilledRect(t *testing.T) {
	s, _ := newTestScreen(10, 10, 0)
	s.FilledRect(V(2, 3), V(3, 2), ColorGreen)

	if got := countColor(s, ColorGreen); got != 6 {
		t.Errorf("FilledRect painted %d pixels, expected 6", got)
	}
	for y := 3; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.At(x, y) != ColorGreen {
				t.Errorf("FilledRect: expected green at (%d, %d)", x, y)
			}
		}
	}

	// Zero and negative sizes draw nothing
	s.FilledRect(V(0, 0), V(0, 5), ColorRed)
	s.FilledRect(V(0, 0), V(5, -1), ColorRed)
	if countColor(s, ColorRed) != 0 {
		t.Error("FilledRect with empty size should not draw")
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Vec2
		pixels [][2]int
	}{
		{
			name:   "horizontal",
			p0:     V(1, 2),
			p1:     V(4, 2),
			pixels: [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}},
		},
		{
			name:   "vertical reversed",
			p0:     V(3, 4),
			p1:     V(3, 1),
			pixels: [][2]int{{3, 1}, {3, 2}, {3, 3}, {3, 4}},
		},
		{
			name:   "diagonal",
			p0:     V(0, 0),
			p1:     V(3, 3),
			pixels: [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name:   "single point",
			p0:     V(2, 2),
			p1:     V(2, 2),
			pixels: [][2]int{{2, 2}},
		},
		{
			name:   "clipped at left edge",
			p0:     V(-3, 0),
			p1:     V(1, 0),
			pixels: [][2]int{{0, 0}, {1, 0}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestScreen(6, 6, 0)
			s.DrawLine(tc.p0, tc.p1, ColorWhite)

			if got := countColor(s, ColorWhite); got != len(tc.pixels) {
				t.Errorf("DrawLine painted %d pixels, expected %d", got, len(tc.pixels))
			}
			for _, p := range tc.pixels {
				if s.At(p[0], p[1]) != ColorWhite {
					t.Errorf("DrawLine: expected pixel at (%d, %d)", p[0], p[1])
				}
			}
		})
	}
}

func TestRectOutline(t *testing.T) {
	s, _ := newTestScreen(10, 10, 0)
	s.RectOutline(NewRect(1, 1, 5, 4), ColorYellow)

	// Perimeter of a 5x4 box
	if got := countColor(s, ColorYellow); got != 14 {
		t.Errorf("RectOutline painted %d pixels, expected 14", got)
	}

	corners := [][2]int{{1, 1}, {5, 1}, {1, 4}, {5, 4}}
	for _, p := range corners {
		if s.At(p[0], p[1]) != ColorYellow {
			t.Errorf("RectOutline: expected corner at (%d, %d)", p[0], p[1])
		}
	}

	// Interior untouched
	if s.At(3, 2) != ColorTransparent {
		t.Error("RectOutline should not fill the interior")
	}
}

func TestFilledCircle(t *testing.T) {
	s, _ := newTestScreen(11, 11, 0)
	s.FilledCircle(V(5, 5), 2, ColorCyan)

	tests := []struct {
		x, y int
		lit  bool
	}{
		{5, 5, true},  // center
		{6, 6, true},  // distance 1.41
		{6, 5, true},  // distance 1
		{7, 5, false}, // distance exactly 2 (strict)
		{7, 6, false}, // distance 2.24
		{5, 3, false}, // distance exactly 2
	}

	for _, tc := range tests {
		got := s.At(tc.x, tc.y) == ColorCyan
		if got != tc.lit {
			t.Errorf("pixel (%d, %d) lit = %v, expected %v", tc.x, tc.y, got, tc.lit)
		}
	}
}

func TestBlitClipsSourceAndDestination(t *testing.T) {
	tex := newTestTexture(3, 3, func(x, y int) Color {
		return RGBA(uint8(x*10), uint8(y*10), 0, 255)
	})
	s, _ := newTestScreen(4, 4, 0)

	// Destination starts above and left of the screen
	s.Blit(tex, tex.Bounds(), V(-1, -1))

	if got := s.At(0, 0); got != tex.At(1, 1) {
		t.Errorf("At(0, 0) = %v, expected texel (1, 1) %v", got, tex.At(1, 1))
	}
	if got := s.At(1, 1); got != tex.At(2, 2) {
		t.Errorf("At(1, 1) = %v, expected texel (2, 2) %v", got, tex.At(2, 2))
	}
	if s.At(2, 2) != ColorTransparent {
		t.Error("Blit wrote outside the clipped destination")
	}

	// Source rect extending past the texture is clipped to the texture
	s.Clear(ColorBlack)
	s.Blit(tex, NewRect(2, 2, 5, 5), V(0, 0))
	if s.At(0, 0) != tex.At(2, 2) {
		t.Errorf("At(0, 0) = %v, expected texel (2, 2)", s.At(0, 0))
	}
	if s.At(1, 0) != ColorBlack || s.At(0, 1) != ColorBlack {
		t.Error("Blit copied texels from outside the texture")
	}
}

func TestBlitOverwritesAlpha(t *testing.T) {
	tex := newTestTexture(2, 1, func(x, y int) Color {
		if x == 0 {
			return ColorTransparent
		}
		return RGBA(0, 0, 255, 128)
	})
	s, _ := newTestScreen(2, 1, 0)
	s.Clear(ColorRed)

	s.Blit(tex, tex.Bounds(), V(0, 0))

	if s.At(0, 0) != ColorTransparent {
		t.Errorf("copy blit should overwrite with transparent, got %v", s.At(0, 0))
	}
	if s.At(1, 0) != RGBA(0, 0, 255, 128) {
		t.Errorf("copy blit should copy straight, got %v", s.At(1, 0))
	}
}

func TestBlitAlphaComposite(t *testing.T) {
	tex := newTestTexture(3, 1, func(x, y int) Color {
		switch x {
		case 0:
			return ColorTransparent
		case 1:
			return RGBA(0, 0, 255, 255)
		default:
			return RGBA(0, 0, 255, 128)
		}
	})
	s, _ := newTestScreen(3, 1, 0)
	s.Clear(ColorRed)

	s.BlitWith(tex, tex.Bounds(), V(0, 0), CompositeAlpha)

	if s.At(0, 0) != ColorRed {
		t.Errorf("transparent texel should keep destination, got %v", s.At(0, 0))
	}
	if s.At(1, 0) != RGBA(0, 0, 255, 255) {
		t.Errorf("opaque texel should replace destination, got %v", s.At(1, 0))
	}
	half := s.At(2, 0)
	if half.R != 127 || half.B != 128 || half.A != 255 {
		t.Errorf("half alpha blend = %v, expected (127, 0, 128, 255)", half)
	}
}

func TestDrawingNeverWritesOutsideBuffer(t *testing.T) {
	const guard = 64
	s, buf := newTestScreen(8, 8, guard)
	tex := newTestTexture(16, 16, func(x, y int) Color { return ColorWhite })

	s.FilledRect(V(-100, -100), V(1000, 1000), ColorRed)
	s.FilledRect(V(6, 6), V(50, 50), ColorRed)
	s.RectOutline(NewRect(-5, -5, 30, 30), ColorRed)
	s.DrawLine(V(-50, 3), V(50, 5), ColorRed)
	s.DrawLine(V(7, 7), V(200, 300), ColorRed)
	s.FilledCircle(V(7, 7), 40, ColorRed)
	s.FilledCircle(V(-20, -20), 3, ColorRed)
	s.Blit(tex, tex.Bounds(), V(4, 4))
	s.Blit(tex, NewRect(-8, -8, 64, 64), V(-3, 5))
	s.BlitWith(tex, tex.Bounds(), V(7, -7), CompositeAlpha)

	for i := 8 * 8 * Depth; i < len(buf); i++ {
		if buf[i] != 0xAB {
			t.Fatalf("guard byte %d was overwritten", i)
		}
	}
}

// finishes fails the test when fn does not return within a second.
func finishes(t *testing.T, name string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("%s did not return", name)
	}
}

func TestDrawLineFarEndpoints(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	t.Run("horizontal span", func(t *testing.T) {
		s, _ := newTestScreen(8, 8, 0)
		finishes(t, "DrawLine", func() { s.DrawLine(V(-1e9, 3), V(1e9, 3), ColorWhite) })
		if got := countColor(s, ColorWhite); got != 8 {
			t.Errorf("DrawLine painted %d pixels, expected 8", got)
		}
		for x := 0; x < 8; x++ {
			if s.At(x, 3) != ColorWhite {
				t.Errorf("DrawLine: expected pixel at (%d, 3)", x)
			}
		}
	})

	t.Run("shallow span", func(t *testing.T) {
		s, _ := newTestScreen(8, 8, 0)
		finishes(t, "DrawLine", func() { s.DrawLine(V(-1e9, 3), V(1e9, 4), ColorWhite) })
		for x := 0; x < 8; x++ {
			lit := 0
			for y := 0; y < 8; y++ {
				if s.At(x, y) == ColorWhite {
					if y != 3 && y != 4 {
						t.Errorf("DrawLine lit (%d, %d), expected rows 3-4 only", x, y)
					}
					lit++
				}
			}
			if lit != 1 {
				t.Errorf("column %d has %d lit pixels, expected 1", x, lit)
			}
		}
	})

	t.Run("vertical span", func(t *testing.T) {
		s, _ := newTestScreen(8, 8, 0)
		finishes(t, "DrawLine", func() { s.DrawLine(V(2, 1e9), V(2, -1e9), ColorWhite) })
		if got := countColor(s, ColorWhite); got != 8 {
			t.Errorf("DrawLine painted %d pixels, expected 8", got)
		}
	})

	t.Run("one endpoint inside", func(t *testing.T) {
		s, _ := newTestScreen(8, 8, 0)
		finishes(t, "DrawLine", func() { s.DrawLine(V(5, 5), V(5, 1e9), ColorWhite) })
		for y := 5; y < 8; y++ {
			if s.At(5, y) != ColorWhite {
				t.Errorf("DrawLine: expected pixel at (5, %d)", y)
			}
		}
		if got := countColor(s, ColorWhite); got != 3 {
			t.Errorf("DrawLine painted %d pixels, expected 3", got)
		}
	})

	t.Run("missing the screen", func(t *testing.T) {
		s, _ := newTestScreen(8, 8, 0)
		finishes(t, "DrawLine", func() { s.DrawLine(V(-1e9, -5), V(1e9, -3), ColorWhite) })
		if got := countColor(s, ColorWhite); got != 0 {
			t.Errorf("DrawLine painted %d pixels, expected 0", got)
		}
	})

	nonFinite := []struct {
		name   string
		p0, p1 Vec2
	}{
		{"negative infinity", V(-inf, 3), V(5, 4)},
		{"positive infinity", V(2, 2), V(2, inf)},
		{"NaN", V(nan, 1), V(4, 4)},
	}
	for _, tc := range nonFinite {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestScreen(8, 8, 0)
			finishes(t, "DrawLine", func() { s.DrawLine(tc.p0, tc.p1, ColorWhite) })
			if got := countColor(s, ColorWhite); got != 0 {
				t.Errorf("DrawLine painted %d pixels, expected 0", got)
			}
		})
	}
}

func TestRectOutlineFarEdges(t *testing.T) {
	s, _ := newTestScreen(8, 8, 0)
	finishes(t, "RectOutline", func() { s.RectOutline(NewRect(-1e9, 2, 2e9, 3), ColorYellow) })

	// Only the top and bottom edges cross the screen
	for x := 0; x < 8; x++ {
		if s.At(x, 2) != ColorYellow || s.At(x, 4) != ColorYellow {
			t.Errorf("RectOutline: expected column %d lit in rows 2 and 4", x)
		}
	}
	if got := countColor(s, ColorYellow); got != 16 {
		t.Errorf("RectOutline painted %d pixels, expected 16", got)
	}

	inf := float32(math.Inf(1))
	finishes(t, "RectOutline", func() { s.RectOutline(NewRect(0, 0, inf, 3), ColorRed) })
	if got := countColor(s, ColorRed); got != 0 {
		t.Errorf("RectOutline with infinite width painted %d pixels, expected 0", got)
	}
}

func TestDrawingFarCoordinatesIsBounded(t *testing.T) {
	const guard = 64
	s, buf := newTestScreen(8, 8, guard)
	tex := newTestTexture(4, 4, func(x, y int) Color { return ColorWhite })
	inf := float32(math.Inf(1))

	finishes(t, "FilledRect", func() { s.FilledRect(V(-1e30, -1e30), V(2e30, 2e30), ColorRed) })
	if got := countColor(s, ColorRed); got != 64 {
		t.Errorf("FilledRect covering the screen painted %d pixels, expected 64", got)
	}

	finishes(t, "FilledCircle", func() { s.FilledCircle(V(3, 3), 1e30, ColorGreen) })
	if got := countColor(s, ColorGreen); got != 64 {
		t.Errorf("FilledCircle covering the screen painted %d pixels, expected 64", got)
	}

	finishes(t, "edge cases", func() {
		s.FilledRect(V(inf, 0), V(4, 4), ColorBlue)
		s.FilledCircle(V(-inf, 0), 3, ColorBlue)
		s.FilledCircle(V(1e30, 1e30), 3, ColorBlue)
		s.Blit(tex, tex.Bounds(), V(inf, 0))
		s.Blit(tex, tex.Bounds(), V(-1e30, 2))
		s.Blit(tex, NewRect(-1e30, 0, 1e30, 4), V(0, 0))
	})
	if got := countColor(s, ColorBlue); got != 0 {
		t.Errorf("off-screen draws painted %d pixels, expected 0", got)
	}
	if s.At(0, 0) != ColorGreen {
		t.Errorf("Blit from far outside the texture changed pixel (0, 0) to %v", s.At(0, 0))
	}

	for i := 8 * 8 * Depth; i < len(buf); i++ {
		if buf[i] != 0xAB {
			t.Fatalf("guard byte %d was overwritten", i)
		}
	}
}

func TestScreenImageSharesBuffer(t *testing.T) {
	s, _ := newTestScreen(3, 2, 0)
	img := s.Image()

	s.Set(2, 1, ColorMagenta)

	r, g, b, a := img.At(2, 1).RGBA()
	if r>>8 != 255 || g != 0 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("Image() does not reflect screen writes: %v %v %v %v", r, g, b, a)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("Image() bounds = %v, expected 3x2", img.Bounds())
	}
}
