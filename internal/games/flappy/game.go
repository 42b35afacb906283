// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through obstacle pairs scrolling in from the right.
package flappy

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/pixel-arcade/internal/assets"
	"github.com/vovakirdan/pixel-arcade/internal/collision"
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/sprite"
	"github.com/vovakirdan/pixel-arcade/internal/text"
)

const (
	groundHeight = 8  // Ground band height in pixels
	bobHeight    = 4  // Ready-state bob amplitude
	bobTicks     = 30 // Ticks per half bob
	flapTicks    = 5  // Ticks per wing frame
)

// Colors for rendering
var (
	colorSky     = core.ColorSky
	colorGround  = core.RGBA(90, 160, 60, 255)
	colorDirt    = core.RGBA(150, 110, 60, 255)
	colorOutline = core.RGBA(20, 40, 20, 255)
	colorPanel   = core.RGBA(20, 20, 40, 255)
)

// Game implements the Flappy game logic.
type Game struct {
	settings   registry.Settings
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	bird    core.MovingRect
	sprite  *sprite.Sprite
	spawner *Spawner
	font    *text.Font

	ready     bool         // Waiting for the first flap
	readyY    float32      // Rest height during the ready bob
	bob       *gween.Tween // Ready-state bob offset
	bobUp     bool
	score     int
	gameOver  bool
	paused    bool
	tickCount int
	hit       []collision.Contact // Contacts that ended the run
}

// New creates a new Flappy game instance.
func New(s registry.Settings) *Game {
	return &Game{settings: s}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlappy(g.settings.ConfigPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, g.settings.Preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	size := core.V(float32(cfg.Player.Width), float32(cfg.Player.Height))
	g.readyY = (float32(runtime.ScreenH)-size.Y)/2 - groundHeight/2
	g.bird = core.NewMovingRect(core.V(float32(cfg.Player.X), g.readyY), size, core.Vec2{})

	sheet := assets.BirdSheet()
	clip := sprite.MustClip([]sprite.Frame{
		{Src: sheet.Frames[0], Ticks: flapTicks},
		{Src: sheet.Frames[1], Ticks: flapTicks},
		{Src: sheet.Frames[2], Ticks: flapTicks},
		{Src: sheet.Frames[1], Ticks: flapTicks},
	}, true)
	g.sprite = sprite.NewSprite(sheet.Texture, sprite.NewAnimation(clip), g.spritePos())
	g.sprite.Composite = core.CompositeAlpha
	g.font = assets.DefaultFont()

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, cfg.Obstacles.Pairs)
	} else {
		g.spawner.table = cfg.Obstacles.Pairs
		g.spawner.Reset(runtime.Seed)
	}

	g.ready = true
	g.bob = gween.New(0, -bobHeight, bobTicks, ease.InOutSine)
	g.bobUp = true
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.hit = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sprite.Update(1)

	if g.ready {
		if !in.Has(core.ActionJump) {
			g.stepBob()
			return core.StepResult{State: g.State()}
		}
		g.ready = false
	}

	g.tickCount++

	if in.Has(core.ActionJump) {
		g.bird.Vel.Y = float32(g.cfg.Physics.FlapImpulse)
	}
	g.bird.Vel.Y += float32(g.cfg.Physics.Gravity)
	if maxFall := float32(g.cfg.Physics.MaxFallSpeed); g.bird.Vel.Y > maxFall {
		g.bird.Vel.Y = maxFall
	}
	g.bird.Integrate(1)

	speed := g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, g.score, g.tickCount)
	interval := g.difficulty.Spacing(g.cfg.Obstacles.SpawnInterval, g.cfg.Obstacles.MinInterval, g.score, g.tickCount)
	g.score += g.spawner.Update(g.bird.X, float32(speed), interval,
		float32(g.runtime.ScreenW), float32(g.runtime.ScreenH), g.groundY())

	g.checkCollisions()
	g.sprite.Pos = g.spritePos()

	return core.StepResult{State: g.State()}
}

// stepBob moves the waiting bird up and down.
func (g *Game) stepBob() {
	offset, done := g.bob.Update(1)
	if done {
		if g.bobUp {
			g.bob = gween.New(-bobHeight, 0, bobTicks, ease.InOutSine)
		} else {
			g.bob = gween.New(0, -bobHeight, bobTicks, ease.InOutSine)
		}
		g.bobUp = !g.bobUp
	}
	g.bird.Y = g.readyY + offset
	g.sprite.Pos = g.spritePos()
}

// checkCollisions ends the run on contact with an obstacle, the ceiling or
// the ground.
func (g *Game) checkCollisions() {
	for _, c := range collision.GatherContacts(g.bird, g.spawner.Obstacles()) {
		a, b := c.IDs()
		if a.Kind == collision.KindPlayer && b.Kind == collision.KindObstacle {
			g.hit = append(g.hit, c)
			g.gameOver = true
		}
	}

	if g.bird.Y < 0 {
		g.bird.Y = 0
		g.gameOver = true
	}
	if ground := g.groundY(); g.bird.Bottom() >= ground {
		g.bird.Y = ground - g.bird.H
		g.gameOver = true
	}
}

// groundY returns the top of the ground band.
func (g *Game) groundY() float32 {
	return float32(g.runtime.ScreenH - groundHeight)
}

// spritePos centers the bird sprite on its hitbox.
func (g *Game) spritePos() core.Vec2 {
	size := assets.BirdSheet().FrameSize()
	c := g.bird.Center()
	return core.V(c.X-size.X/2, c.Y-size.Y/2)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear(colorSky)

	for _, p := range g.spawner.Pairs() {
		drawObstacle(dst, p.Top.Bounds(), p.Color)
		drawObstacle(dst, p.Bottom.Bounds(), p.Color)
	}

	// Draw ground
	groundY := g.groundY()
	dst.FilledRect(core.V(0, groundY), core.V(float32(dst.Width()), groundHeight), colorDirt)
	dst.FilledRect(core.V(0, groundY), core.V(float32(dst.Width()), 2), colorGround)

	g.sprite.Draw(dst)

	// Draw HUD
	text.DrawTextAtPos(dst, fmt.Sprintf("score %d", g.score), core.V(4, 4), g.font)

	switch {
	case g.gameOver:
		g.drawMessage(dst, fmt.Sprintf("game over. you passed %d. press r to restart", g.score))
	case g.paused:
		g.drawMessage(dst, "paused. press p to resume")
	case g.ready:
		g.drawMessage(dst, "press space to flap")
	}
}

// drawObstacle draws one obstacle with a dark outline.
func drawObstacle(dst *core.Screen, r core.Rect, c core.Color) {
	dst.FilledRect(r.Pos(), r.Size(), c)
	dst.RectOutline(r, colorOutline)
}

// drawMessage draws a word-wrapped message box in the lower half of the screen.
func (g *Game) drawMessage(dst *core.Screen, msg string) {
	w := float32(dst.Width())
	h := float32(dst.Height())
	box := core.NewRect(8, h/2, w-16, 3*g.font.LineHeight()+8)

	dst.FilledRect(box.Pos(), box.Size(), colorPanel)
	dst.RectOutline(box, core.ColorWhite)
	inner := core.NewRect(box.X+4, box.Y+4, box.W-8, box.H-8)
	text.DrawTextInRect(dst, msg, inner, g.font, false)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func(s registry.Settings) registry.Game {
		return New(s)
	})
}
