package runner

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  200,
		ScreenH:  80,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New(registry.Settings{})
	g.Reset(testConfig(seed))
	return g
}

func render(g *Game) []byte {
	cfg := g.runtime
	buf := make([]byte, cfg.BufferSize())
	g.Render(core.Wrap(buf, cfg.ScreenW, cfg.ScreenH, core.Depth))
	return buf
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%40 == 0 {
			inputSequence[i].Set(core.ActionJump)
		}
	}

	run := func() (*Game, core.GameState) {
		g := newTestGame(12345)
		var state core.GameState
		for _, in := range inputSequence {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return g, state
	}

	g1, state1 := run()
	g2, state2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if len(g1.obstacles.Cacti()) != len(g2.obstacles.Cacti()) {
		t.Error("Determinism failed: obstacle counts differ")
	}
	if !bytes.Equal(render(g1), render(g2)) {
		t.Error("Determinism failed: rendered frames differ")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(testConfig(42))

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if !g.isGrounded {
		t.Error("Reset should put the player on the ground")
	}
	if len(g.obstacles.Cacti()) != 0 {
		t.Errorf("Reset should clear obstacles, got %d", len(g.obstacles.Cacti()))
	}
	if g.player.Bottom() != g.groundY {
		t.Errorf("player bottom = %v, expected ground at %v", g.player.Bottom(), g.groundY)
	}
}

func TestGameJump(t *testing.T) {
	g := newTestGame(1)
	groundTop := g.player.Y

	g.Step(core.InputOf(core.ActionJump))

	if g.isGrounded {
		t.Error("player should leave the ground after jumping")
	}
	if g.player.Y >= groundTop {
		t.Errorf("Jump should move player up, was %f, now %f", groundTop, g.player.Y)
	}
	if g.sprite.Animation().Clip() != g.jumpClip {
		t.Error("airborne player should show the jump pose")
	}

	// Jumping again in the air has no effect
	vel := g.player.Vel.Y
	g.Step(core.InputOf(core.ActionJump))
	if g.player.Vel.Y < vel {
		t.Errorf("double jump changed velocity from %f to %f", vel, g.player.Vel.Y)
	}
}

func TestGameLanding(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.InputOf(core.ActionJump))

	landed := false
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
		if g.isGrounded {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("player never landed")
	}
	if g.player.Bottom() != g.groundY {
		t.Errorf("player bottom = %v after landing, expected %v", g.player.Bottom(), g.groundY)
	}
	if g.player.Vel.Y != 0 {
		t.Errorf("landing should stop vertical motion, got %v", g.player.Vel.Y)
	}
	if g.sprite.Animation().Clip() != g.runClip {
		t.Error("grounded player should show the running clip")
	}
}

func TestGameRunAnimation(t *testing.T) {
	g := newTestGame(1)

	g.Step(core.NewInputFrame())
	if idx := g.sprite.Animation().Index(); idx != 0 {
		t.Errorf("frame after 1 tick = %d, expected 0", idx)
	}
	for i := 1; i < strideTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if idx := g.sprite.Animation().Index(); idx != 1 {
		t.Errorf("frame after %d ticks = %d, expected 1", strideTicks, idx)
	}
}

func TestGameScore(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.score != 10 {
		t.Errorf("score = %d after 10 ticks, expected 10", g.score)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)

	g.Step(core.InputOf(core.ActionPause))
	if !g.paused {
		t.Error("Game should be paused")
	}

	score := g.score
	g.Step(core.InputOf(core.ActionJump))
	if g.score != score || !g.isGrounded {
		t.Error("paused game should not advance")
	}

	g.Step(core.InputOf(core.ActionPause))
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestCactusCollision(t *testing.T) {
	g := newTestGame(1)

	// Cactus right on top of the player
	g.obstacles.cacti = append(g.obstacles.cacti, core.NewMovingRect(
		core.V(g.player.X, g.groundY-10), core.V(6, 10), core.Vec2{}))

	result := g.Step(core.NewInputFrame())
	if !result.State.GameOver {
		t.Error("Game should be over when player hits a cactus")
	}

	// Further steps are ignored
	score := g.score
	g.Step(core.NewInputFrame())
	if g.score != score {
		t.Error("finished run should not change")
	}
}

func TestJumpClearsCactus(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.InputOf(core.ActionJump))

	// Let the player reach a safe height, then put a short cactus below
	for i := 0; i < 8; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.player.Bottom() >= g.groundY-8 {
		t.Fatalf("player too low for the test: bottom %v", g.player.Bottom())
	}
	g.obstacles.cacti = append(g.obstacles.cacti[:0], core.NewMovingRect(
		core.V(g.player.X, g.groundY-4), core.V(4, 4), core.Vec2{}))

	if g.Step(core.NewInputFrame()).State.GameOver {
		t.Error("player above a cactus should not collide")
	}
}

func TestObstacleSpawning(t *testing.T) {
	g := newTestGame(3)

	for i := 0; i < 400; i++ {
		g.obstacles.Update(g.groundY, 0, i)
	}

	cacti := g.obstacles.Cacti()
	if len(cacti) == 0 {
		t.Fatal("expected cacti after 400 ticks")
	}

	obs := g.cfg.Obstacles
	for i, c := range cacti {
		if c.Bottom() != g.groundY {
			t.Errorf("cactus %d bottom = %v, expected ground %v", i, c.Bottom(), g.groundY)
		}
		if int(c.W) < obs.MinWidth || int(c.W) > obs.MaxWidth {
			t.Errorf("cactus %d width %v outside [%d, %d]", i, c.W, obs.MinWidth, obs.MaxWidth)
		}
		if int(c.H) < obs.MinHeight || int(c.H) > obs.MaxHeight {
			t.Errorf("cactus %d height %v outside [%d, %d]", i, c.H, obs.MinHeight, obs.MaxHeight)
		}
		if i > 0 {
			gap := c.X - cacti[i-1].Right()
			if gap < float32(obs.MinSpacing)-0.01 {
				t.Errorf("gap before cactus %d = %v, expected at least %d", i, gap, obs.MinSpacing)
			}
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	cfg := g.runtime
	buf := make([]byte, cfg.BufferSize())
	screen := core.Wrap(buf, cfg.ScreenW, cfg.ScreenH, core.Depth)

	g.Render(screen)

	if got := screen.At(cfg.ScreenW/2, int(g.groundY)); got != colorGround {
		t.Errorf("ground pixel = %v, expected %v", got, colorGround)
	}
	if got := screen.At(cfg.ScreenW/2, cfg.ScreenH/2); got != colorBackground {
		t.Errorf("background pixel = %v, expected %v", got, colorBackground)
	}

	// Some part of the runner is drawn inside its hitbox
	hit := false
	b := g.player.Bounds()
	for y := int(b.Y); y < int(b.Bottom()); y++ {
		for x := int(b.X); x < int(b.Right()); x++ {
			if screen.At(x, y) != colorBackground {
				hit = true
			}
		}
	}
	if !hit {
		t.Error("runner sprite should be drawn over its hitbox")
	}
}
