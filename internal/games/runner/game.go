// Package runner implements a Chrome Dino-style endless runner game.
// The player must jump over cacti while running automatically.
package runner

import (
	"fmt"

	"github.com/vovakirdan/pixel-arcade/internal/assets"
	"github.com/vovakirdan/pixel-arcade/internal/collision"
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/sprite"
	"github.com/vovakirdan/pixel-arcade/internal/text"
)

const (
	strideTicks = 6 // Ticks per running frame
	hitInset    = 3 // Horizontal gap between sprite edge and hitbox
	hitTop      = 1 // Rows above the hitbox inside the sprite
)

// Colors for rendering
var (
	colorBackground = core.RGBA(245, 240, 225, 255)
	colorGround     = core.RGBA(90, 80, 70, 255)
	colorCactus     = core.RGBA(40, 130, 60, 255)
	colorCactusEdge = core.RGBA(20, 70, 30, 255)
	colorPanel      = core.RGBA(40, 40, 40, 255)
)

// Game implements the Runner game logic.
type Game struct {
	settings   registry.Settings
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	player     core.MovingRect // Hitbox; Y grows downward
	isGrounded bool
	obstacles  *ObstacleManager
	sprite     *sprite.Sprite
	runClip    *sprite.Clip
	jumpClip   *sprite.Clip
	font       *text.Font

	score     int // Distance traveled in ticks
	gameOver  bool
	paused    bool
	tickCount int
	groundY   float32 // Y position of the ground line
}

// New creates a new Runner game instance.
func New(s registry.Settings) *Game {
	return &Game{settings: s}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Runner"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(g.settings.ConfigPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	config.ApplyPreset(&cfg.Difficulty, g.settings.Preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.groundY = float32(runtime.ScreenH - cfg.Player.GroundOffset)

	sheet := assets.RunnerSheet()
	frame := sheet.FrameSize()
	size := core.V(frame.X-2*hitInset, frame.Y-hitTop)
	g.player = core.NewMovingRect(core.V(float32(cfg.Player.X)+hitInset, g.groundY-size.Y), size, core.Vec2{})
	g.isGrounded = true

	g.runClip = sprite.MustClip([]sprite.Frame{
		{Src: sheet.Frames[0], Ticks: strideTicks},
		{Src: sheet.Frames[1], Ticks: strideTicks},
	}, true)
	g.jumpClip = sprite.MustClip([]sprite.Frame{{Src: sheet.Frames[2], Ticks: 1}}, false)
	g.sprite = sprite.NewSprite(sheet.Texture, sprite.NewAnimation(g.runClip), g.spritePos())
	g.sprite.Composite = core.CompositeAlpha
	g.font = assets.DefaultFont()

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, runtime.ScreenW, &g.cfg, g.difficulty)
	} else {
		g.obstacles.UpdateConfig(&g.cfg, g.difficulty)
		g.obstacles.UpdateScreenSize(runtime.ScreenW)
		g.obstacles.Reset(runtime.Seed)
	}
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

	g.tickCount++

	// Jump only from the ground
	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && g.isGrounded {
		g.player.Vel.Y = float32(g.cfg.Physics.JumpImpulse)
		g.isGrounded = false
	}

	if !g.isGrounded {
		g.player.Vel.Y += float32(g.cfg.Physics.Gravity)
		if maxFall := float32(g.cfg.Physics.MaxFallSpeed); g.player.Vel.Y > maxFall {
			g.player.Vel.Y = maxFall
		}
		g.player.Integrate(1)

		if g.player.Bottom() >= g.groundY {
			g.player.Y = g.groundY - g.player.H
			g.player.Vel.Y = 0
			g.isGrounded = true
		}
	}

	if g.isGrounded {
		g.sprite.Animation().SetClip(g.runClip)
	} else {
		g.sprite.Animation().SetClip(g.jumpClip)
	}
	g.sprite.Update(1)
	g.sprite.Pos = g.spritePos()

	g.obstacles.Update(g.groundY, g.score, g.tickCount)
	g.score++

	for _, c := range collision.GatherContacts(g.player, g.obstacles.Cacti()) {
		if c.Involves(collision.Player) {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// spritePos places the sprite around the hitbox.
func (g *Game) spritePos() core.Vec2 {
	return core.V(g.player.X-hitInset, g.player.Y-hitTop)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear(colorBackground)

	// Draw ground
	w := float32(dst.Width())
	dst.DrawLine(core.V(0, g.groundY), core.V(w-1, g.groundY), colorGround)

	for _, c := range g.obstacles.Cacti() {
		drawCactus(dst, c.Bounds())
	}

	g.sprite.Draw(dst)

	// Draw HUD
	text.DrawTextAtPos(dst, fmt.Sprintf("score %d", g.score), core.V(4, 4), g.font)
	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tickCount)
		label := fmt.Sprintf("spd %.1f", speed)
		text.DrawTextAtPos(dst, label, core.V(w-g.font.Measure(label)-4, 4), g.font)
	}

	if g.paused {
		g.drawMessage(dst, "paused. press p to resume")
	}
	if g.gameOver {
		g.drawMessage(dst, fmt.Sprintf("game over. score %d. press r to restart", g.score))
	}
}

// drawCactus draws a cactus with a trunk outline and small arms.
func drawCactus(dst *core.Screen, r core.Rect) {
	dst.FilledRect(r.Pos(), r.Size(), colorCactus)
	dst.RectOutline(r, colorCactusEdge)
	if r.H > 6 {
		armY := r.Y + r.H/3
		dst.DrawLine(core.V(r.X-2, armY), core.V(r.X-1, armY), colorCactus)
		dst.DrawLine(core.V(r.Right(), armY+2), core.V(r.Right()+1, armY+2), colorCactus)
	}
}

// drawMessage draws a word-wrapped message box near the top of the screen.
func (g *Game) drawMessage(dst *core.Screen, msg string) {
	w := float32(dst.Width())
	box := core.NewRect(8, 4+g.font.LineHeight()+4, w-16, 2*g.font.LineHeight()+8)

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
	registry.Register("runner", func(s registry.Settings) registry.Game {
		return New(s)
	})
}
