// Package reader implements a paged dialogue reader. Passages are word
// wrapped into a text box at the bottom of the screen and read one page at
// a time, with an animated portrait of the speaker beside the text.
package reader

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/pixel-arcade/internal/assets"
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/sprite"
	"github.com/vovakirdan/pixel-arcade/internal/text"
)

type mode int

const (
	modeTitle mode = iota
	modeRead
	modeEnd
)

const portraitTicks = 20 // Ticks per portrait frame

// Colors for rendering
var (
	colorDeep    = core.RGBA(10, 30, 60, 255)
	colorShallow = core.RGBA(40, 110, 150, 255)
	colorBubble  = core.RGBA(170, 220, 240, 255)
	colorBox     = core.RGBA(15, 20, 35, 255)
	colorBorder  = core.ColorWhite
	colorHint    = core.ColorGray
)

// page is one screenful of a passage. Start is the byte offset in the
// passage text where the page begins.
type page struct {
	passage int
	start   int
}

// Game implements the Reader.
type Game struct {
	settings registry.Settings
	cfg      config.ReaderConfig
	runtime  core.RuntimeConfig
	font     *text.Font
	hintFont *text.Font

	box      core.Rect // Final text box position
	textRect core.Rect
	pages    []page
	current  int
	maxRead  int // Highest page index shown so far

	mode      mode
	slide     *gween.Tween // Box Y while sliding in
	boxY      float32
	portraits map[string]*sprite.Sprite
	sheets    map[string]assets.Sheet // Loaded from the config's portraits
	loaded    bool
	paused    bool
	tickCount int
}

// New creates a new Reader instance.
func New(s registry.Settings) *Game {
	return &Game{settings: s}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "reader"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Reader"
}

// Load reads the config and the portrait sheets it names.
func (g *Game) Load() error {
	cfg, err := config.LoadReader(g.settings.ConfigPath)
	if err != nil {
		return fmt.Errorf("reader: %w", err)
	}
	sheets := make(map[string]assets.Sheet, len(cfg.Portraits))
	for _, p := range cfg.Portraits {
		sheet, err := assets.LoadSheet(p)
		if err != nil {
			return fmt.Errorf("reader: %w", err)
		}
		sheets[p.Speaker] = sheet
	}
	g.sheets = sheets
	g.loaded = true
	return nil
}

// Reset loads the passages and paginates them for the screen size.
// Without a prior Load, a portrait that fails to load keeps the built-in art.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.loaded {
		if err := g.Load(); err != nil {
			g.sheets = nil
		}
		g.loaded = true
	}

	cfg, err := config.LoadReader(g.settings.ConfigPath)
	if err != nil {
		cfg = config.DefaultReaderConfig()
	}
	g.cfg = cfg
	g.font = assets.DefaultFont()
	g.hintFont = assets.NewBasicFont(colorHint)

	g.portraits = map[string]*sprite.Sprite{
		"whale": newPortrait(assets.FishSheet()),
		"gull":  newPortrait(assets.BirdSheet()),
	}
	for speaker, sheet := range g.sheets {
		g.portraits[speaker] = newPortrait(sheet)
	}
	g.layout()

	g.current = 0
	g.maxRead = 0
	g.mode = modeTitle
	g.slide = nil
	g.boxY = float32(runtime.ScreenH)
	g.paused = false
	g.tickCount = 0
}

// newPortrait builds a looping speaker animation over every frame of sheet.
func newPortrait(sheet assets.Sheet) *sprite.Sprite {
	frames := make([]sprite.Frame, len(sheet.Frames))
	for i, src := range sheet.Frames {
		frames[i] = sprite.Frame{Src: src, Ticks: portraitTicks}
	}
	s := sprite.NewSprite(sheet.Texture, sprite.NewAnimation(sprite.MustClip(frames, true)), core.Vec2{})
	s.Composite = core.CompositeAlpha
	return s
}

// layout sizes the text box and splits every passage into pages.
func (g *Game) layout() {
	w := float32(g.runtime.ScreenW)
	h := float32(g.runtime.ScreenH)
	pad := float32(g.cfg.Box.Padding)
	lh := g.font.LineHeight()

	boxH := float32(g.cfg.Box.Height) * h
	if minH := lh + 2*pad + 2; boxH < minH {
		boxH = minH
	}
	g.box = core.NewRect(2, h-boxH-2, w-4, boxH)

	portraitW := g.portraitWidth()
	g.textRect = core.NewRect(
		g.box.X+pad+portraitW+pad,
		g.box.Y+pad,
		g.box.W-3*pad-portraitW,
		g.box.H-2*pad,
	)

	g.pages = g.pages[:0]
	for i, p := range g.cfg.Passages {
		for _, pg := range text.Paginate(p.Text, g.textRect, g.font) {
			start := 0
			if len(pg.Lines) > 0 {
				start = pg.Lines[0].Start
			}
			g.pages = append(g.pages, page{passage: i, start: start})
		}
	}
}

// portraitWidth is the widest frame of any portrait, so text never moves
// when the speaker changes.
func (g *Game) portraitWidth() float32 {
	var w float32
	for _, p := range g.portraits {
		if fw := p.Bounds().W; fw > w {
			w = fw
		}
	}
	return w
}

// Step advances the reader by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.mode == modeEnd {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	advance := in.Has(core.ActionConfirm) || in.Has(core.ActionJump)

	switch g.mode {
	case modeTitle:
		if advance {
			g.startReading()
		}
	case modeRead:
		if g.slide != nil {
			y, done := g.slide.Update(1)
			g.boxY = y
			if done {
				g.slide = nil
			}
			// A key press finishes the slide instead of turning the page
			if advance {
				g.boxY = g.box.Y
				g.slide = nil
			}
			break
		}
		for _, p := range g.portraits {
			p.Update(1)
		}
		switch {
		case advance, in.Has(core.ActionDown):
			g.nextPage()
		case in.Has(core.ActionUp):
			g.prevPage()
		}
	}

	return core.StepResult{State: g.State()}
}

// startReading leaves the title screen and slides the text box in.
func (g *Game) startReading() {
	g.mode = modeRead
	if len(g.pages) == 0 {
		g.mode = modeEnd
		return
	}
	g.boxY = float32(g.runtime.ScreenH)
	g.slide = gween.New(g.boxY, g.box.Y, float32(g.cfg.Box.SlideTicks), ease.OutCubic)
}

func (g *Game) nextPage() {
	if g.current+1 >= len(g.pages) {
		g.mode = modeEnd
		return
	}
	g.current++
	if g.current > g.maxRead {
		g.maxRead = g.current
	}
}

func (g *Game) prevPage() {
	if g.current > 0 {
		g.current--
	}
}

// pageText returns the passage text from the start of the current page on.
func (g *Game) pageText() (config.Passage, string) {
	pg := g.pages[g.current]
	p := g.cfg.Passages[pg.passage]
	return p, p.Text[pg.start:]
}

// Render draws the current reader state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.drawSea(dst)

	switch g.mode {
	case modeTitle:
		g.drawCentered(dst, g.cfg.Title, float32(dst.Height())/3, g.font)
		g.drawCentered(dst, g.cfg.Subtitle, float32(dst.Height())/3+2*g.font.LineHeight(), g.hintFont)
	case modeRead:
		g.drawBox(dst)
	case modeEnd:
		g.drawCentered(dst, "the end", float32(dst.Height())/3, g.font)
		g.drawCentered(dst, fmt.Sprintf("%d pages read. press r", g.State().Score),
			float32(dst.Height())/3+2*g.font.LineHeight(), g.hintFont)
	}

	if g.paused {
		g.drawCentered(dst, "paused", 4, g.font)
	}
}

// drawSea fills the background with a vertical gradient and rising bubbles.
func (g *Game) drawSea(dst *core.Screen) {
	h := dst.Height()
	w := float32(dst.Width())
	if h == 0 || w == 0 {
		return
	}
	for y := 0; y < h; y++ {
		t := float32(y) / float32(h)
		c := core.RGBA(
			lerp(colorShallow.R, colorDeep.R, t),
			lerp(colorShallow.G, colorDeep.G, t),
			lerp(colorShallow.B, colorDeep.B, t),
			255,
		)
		dst.DrawLine(core.V(0, float32(y)), core.V(w-1, float32(y)), c)
	}

	for i := 0; i < 5; i++ {
		x := float32((i*37 + 11) % dst.Width())
		rise := (g.tickCount/2 + i*23) % (h + 8)
		dst.FilledCircle(core.V(x, float32(h-rise)), float32(1+i%2), colorBubble)
	}
}

func lerp(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t)
}

// drawBox draws the text box at its current slide position.
func (g *Game) drawBox(dst *core.Screen) {
	offset := g.boxY - g.box.Y
	box := g.box.Translate(core.V(0, offset))

	dst.FilledRect(box.Pos(), box.Size(), colorBox)
	dst.RectOutline(box, colorBorder)
	if g.slide != nil {
		return
	}

	passage, body := g.pageText()
	pad := float32(g.cfg.Box.Padding)

	if p, ok := g.portraits[passage.Speaker]; ok {
		p.Pos = core.V(box.X+pad, box.Y+pad)
		p.Draw(dst)
	}
	if passage.Speaker != "" {
		label := core.NewRect(box.X, box.Y-g.font.LineHeight()-3, g.font.Measure(passage.Speaker)+6, g.font.LineHeight()+3)
		dst.FilledRect(label.Pos(), label.Size(), colorBox)
		dst.RectOutline(label, colorBorder)
		text.DrawTextAtPos(dst, passage.Speaker, core.V(label.X+3, label.Y+2), g.font)
	}

	text.DrawTextInRect(dst, body, g.textRect.Translate(core.V(0, offset)), g.font, false)

	// Page indicator in the bottom-right corner
	mark := fmt.Sprintf("%d/%d", g.current+1, len(g.pages))
	text.DrawTextAtPos(dst, mark, core.V(box.Right()-g.font.Measure(mark)-2, box.Bottom()-g.font.LineHeight()), g.font)
}

// drawCentered draws a single line of text centered horizontally at y.
func (g *Game) drawCentered(dst *core.Screen, s string, y float32, f *text.Font) {
	x := (float32(dst.Width()) - f.Measure(s)) / 2
	text.DrawTextAtPos(dst, s, core.V(x, y), f)
}

// State returns the current reader state. The score is the number of
// pages seen.
func (g *Game) State() core.GameState {
	score := 0
	if g.mode != modeTitle {
		score = core.Clamp(g.maxRead+1, 0, len(g.pages))
	}
	return core.GameState{
		Score:    score,
		GameOver: g.mode == modeEnd,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("reader", func(s registry.Settings) registry.Game {
		return New(s)
	})
}
