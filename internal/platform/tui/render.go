package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// halfBlock shows the top pixel in the foreground and the bottom pixel in
// the background of one terminal cell.
const halfBlock = "▀"

// cell is the pixel pair shown by one terminal cell.
type cell struct {
	top, bottom core.Color
}

// PixelSize returns the framebuffer size for a terminal of cols x rows cells.
// The last row is kept for the help footer and every other row holds two
// pixel rows.
func PixelSize(cols, rows int) (w, h int) {
	return max(cols, 1), max((rows-1)*2, 2)
}

// RenderFrame converts an RGBA8888 buffer of w x h pixels to half-block
// terminal rows using the default lipgloss renderer.
func RenderFrame(pix []byte, w, h int) string {
	return RenderFrameWith(lipgloss.DefaultRenderer(), pix, w, h)
}

// RenderFrameWith is RenderFrame for a specific renderer, so SSH sessions
// get colors matching the client terminal.
// Alpha is ignored. An odd last row is drawn over black.
func RenderFrameWith(r *lipgloss.Renderer, pix []byte, w, h int) string {
	screen := core.Wrap(pix, w, h, core.Depth)
	w, h = screen.Width(), screen.Height()
	if w == 0 || h == 0 {
		return ""
	}

	styles := make(map[cell]lipgloss.Style)
	style := func(c cell) lipgloss.Style {
		if s, ok := styles[c]; ok {
			return s
		}
		s := r.NewStyle().Foreground(hex(c.top)).Background(hex(c.bottom))
		styles[c] = s
		return s
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(w * (h/2 + 1) * 8)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < w {
			start := cellAt(screen, x, y)
			n := 0
			for x < w && cellAt(screen, x, y) == start {
				n++
				x++
			}
			sb.WriteString(style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func cellAt(s *core.Screen, x, y int) cell {
	c := cell{top: s.At(x, y), bottom: s.At(x, y+1)}
	c.top.A = 255
	c.bottom.A = 255
	return c
}

func hex(c core.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
