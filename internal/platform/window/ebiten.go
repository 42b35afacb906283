//go:build ebiten

package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// keyActions maps keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:     core.ActionJump,
	ebiten.KeyArrowUp:   core.ActionUp,
	ebiten.KeyW:         core.ActionUp,
	ebiten.KeyArrowDown: core.ActionDown,
	ebiten.KeyS:         core.ActionDown,
	ebiten.KeyEnter:     core.ActionConfirm,
	ebiten.KeyB:         core.ActionBack,
	ebiten.KeyP:         core.ActionPause,
	ebiten.KeyR:         core.ActionRestart,
}

// app adapts a registry.Game to the ebiten.Game interface.
type app struct {
	game       registry.Game
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	pix        []byte // Straight alpha, as games draw it
	upload     []byte // Premultiplied copy of pix
	input      core.InputFrame
	state      core.GameState
	scoreSaved bool
}

// Update runs one simulation tick with the keys pressed since the last one.
func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.input.Clear()
	for k, action := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			a.input.Set(action)
		}
	}

	if a.input.Has(core.ActionRestart) && a.state.GameOver {
		a.config.Seed = time.Now().UnixNano()
		a.game.Reset(a.config)
		a.state = a.game.State()
		a.scoreSaved = false
		return nil
	}

	a.state = a.game.Step(a.input).State

	if a.state.GameOver && !a.scoreSaved && a.state.Score > 0 {
		if a.store != nil {
			if _, err := a.store.SaveScore(a.game.ID(), playerName(), a.state.Score); err != nil {
				a.logger.Warn("could not save score", "game", a.game.ID(), "error", err)
			}
		}
		a.scoreSaved = true
	}
	return nil
}

// Draw renders the game into the framebuffer and uploads it.
func (a *app) Draw(screen *ebiten.Image) {
	a.game.Render(core.Wrap(a.pix, a.config.ScreenW, a.config.ScreenH, core.Depth))
	premultiply(a.upload, a.pix)
	screen.WritePixels(a.upload)
}

// Layout keeps the logical screen at the framebuffer size; Ebiten scales it
// to the window.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.ScreenW, a.config.ScreenH
}

// Run opens a window of cfg.ScreenW x cfg.ScreenH pixels times scale and
// plays game until the window closes or q is pressed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, scale int, logger *log.Logger) error {
	if scale < 1 {
		scale = DefaultScale
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	a := &app{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		pix:    make([]byte, cfg.BufferSize()),
		upload: make([]byte, cfg.BufferSize()),
		input:  core.NewInputFrame(),
	}
	game.Reset(cfg)

	ebiten.SetWindowTitle("arcade - " + game.Title())
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cfg.ScreenW*scale, cfg.ScreenH*scale)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
