package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

func TestPixelSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       int
	}{
		{80, 24, 80, 46},
		{120, 41, 120, 80},
		{1, 1, 1, 2},
		{0, 0, 1, 2},
	}

	for _, tt := range tests {
		w, h := PixelSize(tt.cols, tt.rows)
		if w != tt.w || h != tt.h {
			t.Errorf("PixelSize(%d, %d) = (%d, %d), expected (%d, %d)", tt.cols, tt.rows, w, h, tt.w, tt.h)
		}
	}
}

func TestRenderFrameDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		rows int
	}{
		{"even height", 10, 8, 4},
		{"odd height", 7, 5, 3},
		{"single row", 3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := make([]byte, tt.w*tt.h*core.Depth)
			s := core.Wrap(pix, tt.w, tt.h, core.Depth)
			s.Clear(core.ColorBlue)
			s.Set(0, 0, core.ColorRed)

			out := RenderFrame(pix, tt.w, tt.h)
			lines := strings.Split(out, "\n")
			if len(lines) != tt.rows {
				t.Fatalf("RenderFrame() has %d lines, expected %d", len(lines), tt.rows)
			}
			for i, line := range lines {
				if got := lipgloss.Width(line); got != tt.w {
					t.Errorf("line %d width = %d, expected %d", i, got, tt.w)
				}
				if got := strings.Count(line, halfBlock); got != tt.w {
					t.Errorf("line %d has %d half blocks, expected %d", i, got, tt.w)
				}
			}
		})
	}
}

func TestRenderFrameEmpty(t *testing.T) {
	if got := RenderFrame(nil, 0, 0); got != "" {
		t.Errorf("RenderFrame(nil) = %q, expected empty", got)
	}
	// Buffer too short for even one row
	if got := RenderFrame(make([]byte, 4), 10, 10); got != "" {
		t.Errorf("RenderFrame(short) = %q, expected empty", got)
	}
}

func TestCellAt(t *testing.T) {
	pix := make([]byte, 2*3*core.Depth)
	s := core.Wrap(pix, 2, 3, core.Depth)
	s.Set(1, 0, core.RGBA(10, 20, 30, 128))
	s.Set(1, 1, core.ColorGreen)

	c := cellAt(s, 1, 0)
	if c.top != core.RGBA(10, 20, 30, 255) {
		t.Errorf("top = %v, expected opaque (10,20,30)", c.top)
	}
	if c.bottom != core.ColorGreen {
		t.Errorf("bottom = %v, expected green", c.bottom)
	}

	// Row below the last pixel row is black
	c = cellAt(s, 0, 2)
	if c.bottom != core.ColorBlack {
		t.Errorf("bottom of odd row = %v, expected black", c.bottom)
	}
}

func TestHex(t *testing.T) {
	if got := hex(core.RGBA(255, 8, 171, 255)); got != lipgloss.Color("#ff08ab") {
		t.Errorf("hex() = %q, expected #ff08ab", got)
	}
}
