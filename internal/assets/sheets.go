package assets

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Sheet is a texture with its frames laid out left to right.
type Sheet struct {
	Texture *core.Texture
	Frames  []core.Rect
}

// FrameSize returns the size of the first frame.
func (s Sheet) FrameSize() core.Vec2 {
	if len(s.Frames) == 0 {
		return core.Vec2{}
	}
	return s.Frames[0].Size()
}

// Sprite sheet colors.
var (
	colorBeak  = core.ColorOrange
	colorEye   = core.ColorBlack
	colorWing  = core.RGBA(230, 200, 40, 255)
	colorSkin  = core.RGBA(90, 180, 90, 255)
	colorWhale = core.RGBA(70, 110, 170, 255)
	colorBelly = core.RGBA(190, 210, 230, 255)
)

// drawSheet renders n frames of w x h pixels side by side, calling frame once
// per frame with a screen over the sheet and the frame's left edge.
func drawSheet(n, w, h int, frame func(s *core.Screen, i int, x float32)) Sheet {
	buf := make([]byte, n*w*h*core.Depth)
	screen := core.Wrap(buf, n*w, h, core.Depth)

	frames := make([]core.Rect, n)
	for i := 0; i < n; i++ {
		x := float32(i * w)
		frame(screen, i, x)
		frames[i] = core.NewRect(x, 0, float32(w), float32(h))
	}
	return Sheet{Texture: core.NewTexture(screen.Image()), Frames: frames}
}

var (
	birdOnce   sync.Once
	bird       Sheet
	runnerOnce sync.Once
	runner     Sheet
	fishOnce   sync.Once
	fish       Sheet
)

// BirdSheet returns the 12x12 flap cycle: wing up, level, down.
func BirdSheet() Sheet {
	birdOnce.Do(func() {
		bird = drawSheet(3, 12, 12, func(s *core.Screen, i int, x float32) {
			s.FilledCircle(core.V(x+6, 6), 5, core.ColorYellow)
			s.FilledRect(core.V(x+10, 5), core.V(2, 2), colorBeak)
			s.Set(int(x)+8, 4, colorEye)

			wingY := []float32{2, 5, 8}[i]
			s.DrawLine(core.V(x+1, 6), core.V(x+5, wingY), colorWing)
			s.DrawLine(core.V(x+2, 6), core.V(x+6, wingY), colorWing)
		})
	})
	return bird
}

// RunnerSheet returns the 16x16 runner: two stride frames and a jump pose.
func RunnerSheet() Sheet {
	runnerOnce.Do(func() {
		runner = drawSheet(3, 16, 16, func(s *core.Screen, i int, x float32) {
			// Head and body
			s.FilledRect(core.V(x+8, 0), core.V(7, 5), colorSkin)
			s.Set(int(x)+12, 1, colorEye)
			s.FilledRect(core.V(x+3, 5), core.V(9, 6), colorSkin)
			s.DrawLine(core.V(x, 4), core.V(x+3, 7), colorSkin) // Tail

			switch i {
			case 0:
				s.DrawLine(core.V(x+5, 11), core.V(x+4, 15), colorSkin)
				s.DrawLine(core.V(x+10, 11), core.V(x+11, 13), colorSkin)
			case 1:
				s.DrawLine(core.V(x+5, 11), core.V(x+6, 13), colorSkin)
				s.DrawLine(core.V(x+10, 11), core.V(x+9, 15), colorSkin)
			default:
				s.DrawLine(core.V(x+5, 11), core.V(x+3, 13), colorSkin)
				s.DrawLine(core.V(x+10, 11), core.V(x+12, 13), colorSkin)
			}
		})
	})
	return runner
}

// FishSheet returns the 24x16 whale portrait with its tail up and down.
func FishSheet() Sheet {
	fishOnce.Do(func() {
		fish = drawSheet(2, 24, 16, func(s *core.Screen, i int, x float32) {
			s.FilledCircle(core.V(x+10, 8), 7, colorWhale)
			s.FilledRect(core.V(x+5, 10), core.V(10, 3), colorBelly)
			s.Set(int(x)+6, 6, colorEye)

			tailY := []float32{3, 13}[i]
			s.DrawLine(core.V(x+16, 8), core.V(x+22, tailY), colorWhale)
			s.DrawLine(core.V(x+16, 9), core.V(x+23, tailY), colorWhale)
			s.DrawLine(core.V(x+17, 8), core.V(x+23, tailY+1), colorWhale)
		})
	})
	return fish
}

// LoadSheet loads a portrait image and cuts it into frames of the configured
// size, left to right along the top row.
func LoadSheet(cfg config.PortraitSheet) (Sheet, error) {
	tex, err := core.LoadTexture(cfg.Image)
	if err != nil {
		return Sheet{}, fmt.Errorf("assets: portrait %q: %w", cfg.Speaker, err)
	}

	fit := 0
	if cfg.FrameWidth > 0 && cfg.FrameHeight <= tex.Height() {
		fit = tex.Width() / cfg.FrameWidth
	}
	n := cfg.Frames
	if n == 0 {
		n = fit
	}
	if n <= 0 || n > fit {
		return Sheet{}, fmt.Errorf("assets: portrait %q: %dx%d image holds %d frames of %dx%d, need %d",
			cfg.Speaker, tex.Width(), tex.Height(), fit, cfg.FrameWidth, cfg.FrameHeight, max(n, 1))
	}

	frames := make([]core.Rect, n)
	for i := range frames {
		frames[i] = core.NewRect(float32(i*cfg.FrameWidth), 0, float32(cfg.FrameWidth), float32(cfg.FrameHeight))
	}
	return Sheet{Texture: tex, Frames: frames}, nil
}
