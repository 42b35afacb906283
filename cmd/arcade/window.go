package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/platform/window"
)

var (
	flagScale  int
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the game in a desktop window, each framebuffer pixel drawn as a
scale x scale square.

The window presenter is only compiled into builds made with the ebiten tag:
  go build -tags ebiten ./cmd/arcade

Examples:
  arcade window flappy
  arcade window runner --scale 4
  arcade window reader --width 320 --height 180 --scale 2`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	def := core.DefaultConfig()
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", window.DefaultScale, "Window pixels per framebuffer pixel")
	windowCmd.Flags().IntVar(&flagWidth, "width", def.ScreenW, "Framebuffer width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", def.ScreenH, "Framebuffer height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) error {
	if err := checkGame(args[0]); err != nil {
		return err
	}
	settings, err := gameSettings()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.ScreenW, cfg.ScreenH)
	}

	game, err := createGame(args[0], settings)
	if err != nil {
		return err
	}
	return window.Run(game, store, cfg, flagScale, logger)
}
