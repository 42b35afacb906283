package core

import (
	"image"
	"math"
)

// Depth is the number of bytes per pixel of every buffer the renderer draws into.
const Depth = 4

// Composite selects how blitted pixels combine with the destination.
type Composite int

const (
	// CompositeCopy overwrites destination pixels with the source pixels.
	CompositeCopy Composite = iota
	// CompositeAlpha composites the source over the destination using straight alpha.
	CompositeAlpha
)

// Screen draws primitives into a caller-owned RGBA8888 pixel buffer.
// A Screen borrows its buffer for a single frame: the presenter wraps a new
// Screen around the (possibly resized) buffer every frame and the Screen
// never resizes or retains it.
//
// No drawing operation fails. Coordinates outside [0,width)x[0,height) are
// skipped, so a draw call never touches memory outside the buffer.
type Screen struct {
	pix    []byte
	width  int
	height int
	stride int
}

// Wrap borrows buf as a width x height framebuffer with depth bytes per pixel.
// Only a depth of 4 (RGBA8888) is supported; any other depth yields a Screen on
// which every operation is a no-op. A buffer shorter than width*height*4 is
// treated as holding only the rows it can fully contain.
func Wrap(buf []byte, width, height, depth int) *Screen {
	if width <= 0 || height <= 0 || depth != Depth {
		return &Screen{}
	}
	stride := width * Depth
	if rows := len(buf) / stride; rows < height {
		height = rows
	}
	return &Screen{
		pix:    buf[:height*stride],
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Pix returns the borrowed pixel buffer.
func (s *Screen) Pix() []byte {
	return s.pix
}

// Image returns an image view that shares the borrowed buffer.
func (s *Screen) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    s.pix,
		Stride: s.stride,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// inBounds reports whether (x, y) addresses a pixel of the buffer.
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set writes a single pixel. Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	i := y*s.stride + x*Depth
	s.pix[i] = c.R
	s.pix[i+1] = c.G
	s.pix[i+2] = c.B
	s.pix[i+3] = c.A
}

// At returns the pixel at (x, y), or transparent black when out of bounds.
func (s *Screen) At(x, y int) Color {
	if !s.inBounds(x, y) {
		return ColorTransparent
	}
	i := y*s.stride + x*Depth
	return Color{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// Clear overwrites every pixel with c.
func (s *Screen) Clear(c Color) {
	if len(s.pix) == 0 {
		return
	}
	px := [Depth]byte{c.R, c.G, c.B, c.A}
	copy(s.pix, px[:])
	// Double the filled prefix until the whole buffer is covered.
	for filled := Depth; filled < len(s.pix); filled *= 2 {
		copy(s.pix[filled:], s.pix[:filled])
	}
}

// DrawLine rasterizes a line from p0 to p1, both endpoints inclusive, using
// Bresenham's algorithm. Samples outside the screen are skipped. A segment
// reaching off screen is clipped first, so the work is bounded by the screen
// size; non-finite endpoints draw nothing.
func (s *Screen) DrawLine(p0, p1 Vec2, c Color) {
	x0, y0 := trunc64(p0.X), trunc64(p0.Y)
	x1, y1 := trunc64(p1.X), trunc64(p1.Y)
	if !finite(x0, y0, x1, y1) || len(s.pix) == 0 {
		return
	}
	var ok bool
	if x0, y0, x1, y1, ok = s.clip(x0, y0, x1, y1); !ok {
		return
	}
	s.line(int(x0), int(y0), int(x1), int(y1), c)
}

// clip cuts the segment to the pixel box [0,w-1]x[0,h-1] (Liang-Barsky) and
// snaps the new endpoints to pixels. It reports false when nothing is left.
func (s *Screen) clip(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	xMax := float64(s.width - 1)
	yMax := float64(s.height - 1)
	if x0 >= 0 && x0 <= xMax && y0 >= 0 && y0 <= yMax &&
		x1 >= 0 && x1 <= xMax && y1 >= 0 && y1 <= yMax {
		return x0, y0, x1, y1, true
	}

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, xMax - x0},
		{-dy, y0},
		{dy, yMax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return snap(x0+t0*dx, xMax), snap(y0+t0*dy, yMax),
		snap(x0+t1*dx, xMax), snap(y0+t1*dy, yMax), true
}

// snap truncates a clipped coordinate into [0, hi]. Points computed on a
// box edge may land a hair below the integer; the epsilon keeps them on it.
func snap(v, hi float64) float64 {
	return clamp64(math.Floor(v+1e-6), 0, hi)
}

func trunc64(v float32) float64 {
	return math.Trunc(float64(v))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp64(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func (s *Screen) line(x0, y0, x1, y1 int, c Color) {
	// Both endpoints beyond the same edge: nothing can land on screen.
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= s.width && x1 >= s.width) || (y0 >= s.height && y1 >= s.height) {
		return
	}

	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FilledRect fills [pos.X, pos.X+size.X) x [pos.Y, pos.Y+size.Y) with c,
// one horizontal line per row.
func (s *Screen) FilledRect(pos, size Vec2, c Color) {
	x, y := trunc64(pos.X), trunc64(pos.Y)
	w, h := trunc64(size.X), trunc64(size.Y)
	if !finite(x, y, w, h) || w <= 0 || h <= 0 {
		return
	}

	// Rows and columns off screen contribute nothing; trimming them keeps the
	// loop bounded by the screen size rather than the rectangle size.
	y0 := int(clamp64(y, 0, float64(s.height)))
	y1 := int(clamp64(y+h, 0, float64(s.height)))
	x0 := int(clamp64(x, -1, float64(s.width)))
	x1 := int(clamp64(x+w-1, -1, float64(s.width)))

	for row := y0; row < y1; row++ {
		s.line(x0, row, x1, row, c)
	}
}

// RectOutline draws the one pixel border of r. Edges are clipped like
// DrawLine, so a huge rectangle costs no more than one covering the screen.
func (s *Screen) RectOutline(r Rect, c Color) {
	x, y := trunc64(r.X), trunc64(r.Y)
	w, h := trunc64(r.W), trunc64(r.H)
	if !finite(x, y, w, h) || w <= 0 || h <= 0 {
		return
	}
	right := float32(x + w - 1)
	bottom := float32(y + h - 1)
	left, top := float32(x), float32(y)

	s.DrawLine(V(left, top), V(right, top), c)
	s.DrawLine(V(left, bottom), V(right, bottom), c)
	s.DrawLine(V(left, top), V(left, bottom), c)
	s.DrawLine(V(right, top), V(right, bottom), c)
}

// FilledCircle lights every pixel whose distance to center is strictly less
// than radius. Only on-screen pixels are visited.
func (s *Screen) FilledCircle(center Vec2, radius float32, c Color) {
	cx, cy := trunc64(center.X), trunc64(center.Y)
	r := float64(radius)
	if !finite(cx, cy, r) || r <= 0 {
		return
	}

	xMin := int(clamp64(cx-r-1, 0, float64(s.width)))
	xMax := int(clamp64(cx+r+2, 0, float64(s.width)))
	yMin := int(clamp64(cy-r-1, 0, float64(s.height)))
	yMax := int(clamp64(cy+r+2, 0, float64(s.height)))

	for j := yMin; j < yMax; j++ {
		dy := float64(j) - cy
		for i := xMin; i < xMax; i++ {
			dx := float64(i) - cx
			if float32(math.Sqrt(dx*dx+dy*dy)) < radius {
				s.Set(i, j, c)
			}
		}
	}
}

// Blit copies the src sub-rectangle of tex to dst, overwriting destination
// pixels including their alpha.
func (s *Screen) Blit(tex *Texture, src Rect, dst Vec2) {
	s.BlitWith(tex, src, dst, CompositeCopy)
}

// BlitWith copies the src sub-rectangle of tex to dst using the given
// compositing mode. The source is clipped to the texture and the
// destination to the screen.
func (s *Screen) BlitWith(tex *Texture, src Rect, dst Vec2, mode Composite) {
	if tex == nil || len(s.pix) == 0 {
		return
	}
	// A destination this far out cannot overlap the screen with any part of tex.
	dx, dy := float64(dst.X), float64(dst.Y)
	if !finite(dx, dy, float64(src.X), float64(src.Y), float64(src.W), float64(src.H)) ||
		math.Abs(dx) > float64(s.width+tex.width) || math.Abs(dy) > float64(s.height+tex.height) {
		return
	}
	// Source edges past this limit clip to the same result, so clamp them
	// before converting to int.
	limit := float64(2 * (tex.width + tex.height + s.width + s.height))
	sx0, sy0 := trunc64(src.X), trunc64(src.Y)
	sx1, sy1 := sx0+trunc64(src.W), sy0+trunc64(src.H)
	srcX := int(clamp64(sx0, -limit, limit))
	srcY := int(clamp64(sy0, -limit, limit))
	srcW := int(clamp64(sx1, -limit, limit)) - srcX
	srcH := int(clamp64(sy1, -limit, limit)) - srcY
	dstX, dstY := dst.Trunc()

	// Clip source region to texture bounds
	if srcX < 0 {
		srcW += srcX
		dstX -= srcX
		srcX = 0
	}
	if srcY < 0 {
		srcH += srcY
		dstY -= srcY
		srcY = 0
	}
	if srcX+srcW > tex.width {
		srcW = tex.width - srcX
	}
	if srcY+srcH > tex.height {
		srcH = tex.height - srcY
	}

	// Clip destination against screen edges
	if dstX < 0 {
		srcX -= dstX
		srcW += dstX
		dstX = 0
	}
	if dstY < 0 {
		srcY -= dstY
		srcH += dstY
		dstY = 0
	}
	if dstX+srcW > s.width {
		srcW = s.width - dstX
	}
	if dstY+srcH > s.height {
		srcH = s.height - dstY
	}

	if srcW <= 0 || srcH <= 0 {
		return
	}

	texStride := tex.width * Depth
	rowBytes := srcW * Depth
	for row := 0; row < srcH; row++ {
		dOff := (dstY+row)*s.stride + dstX*Depth
		sOff := (srcY+row)*texStride + srcX*Depth
		dRow := s.pix[dOff : dOff+rowBytes]
		sRow := tex.pix[sOff : sOff+rowBytes]

		if mode == CompositeCopy {
			copy(dRow, sRow)
			continue
		}
		blendRow(dRow, sRow)
	}
}

// blendRow composites src over dst, both straight (non-premultiplied) RGBA.
func blendRow(dst, src []byte) {
	for i := 0; i < len(src); i += Depth {
		a := uint32(src[i+3])
		switch a {
		case 0:
			continue
		case 255:
			copy(dst[i:i+Depth], src[i:i+Depth])
			continue
		}
		inv := 255 - a
		for ch := 0; ch < 3; ch++ {
			v := uint32(src[i+ch])*a + uint32(dst[i+ch])*inv
			dst[i+ch] = uint8((v + 127) / 255)
		}
		dst[i+3] = uint8(a + (uint32(dst[i+3])*inv+127)/255)
	}
}
