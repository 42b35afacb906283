package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/platform/tui"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game. Without a game, a picker menu opens
and you return to it after every game.

Every terminal cell shows two pixels, so the framebuffer is as wide as the
terminal and twice as tall (minus the help line).

Controls:
  Space        - Jump/Flap
  Up/Down      - Move, previous/next page
  Enter        - Confirm, next page
  P            - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play
  arcade play flappy
  arcade play runner --difficulty hard
  arcade play reader --config ./my-story.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags every command that creates games shares.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// gameSettings builds the factory settings from --config and --difficulty.
func gameSettings() (registry.Settings, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Settings{}, err
	}
	return registry.Settings{ConfigPath: flagConfig, Preset: preset}, nil
}

// checkGame fails with a hint when id is not registered.
func checkGame(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", id)
	}
	return nil
}

// terminalSize returns the terminal size in cells, or 80x24 when stdout is
// not a terminal.
func terminalSize() (cols, rows int) {
	cols, rows = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	return cols, rows
}

// openStore opens the score database. Games still work without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := gameSettings()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := checkGame(args[0]); err != nil {
			return err
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cols, rows := terminalSize()
	w, h := tui.PixelSize(cols, rows)
	cfg := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if len(args) == 1 {
		return playGame(args[0], settings, store, cfg)
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(cols)
		if err != nil {
			return err
		}
		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			if err := tui.RunScoreboard(store, "", cols, rows); err != nil {
				return err
			}
		default:
			if err := playGame(result.GameID, settings, store, cfg); err != nil {
				logger.Error("game failed", "game", result.GameID, "error", err)
			}
		}
	}
}

// createGame creates a game and loads the files its config names. A missing
// or broken file stops the program.
func createGame(id string, settings registry.Settings) (registry.Game, error) {
	game, err := registry.Create(id, settings)
	if err != nil {
		return nil, err
	}
	if err := registry.Load(game); err != nil {
		logger.Fatal("cannot load game assets", "game", id, "error", err)
	}
	return game, nil
}

func playGame(id string, settings registry.Settings, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := createGame(id, settings)
	if err != nil {
		return err
	}
	logger.Debug("starting game", "game", id, "width", cfg.ScreenW, "height", cfg.ScreenH)
	return tui.Run(game, store, cfg, logger)
}
