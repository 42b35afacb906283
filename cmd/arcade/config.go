package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/config"
)

var flagConfigInstall bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default tuning YAML of a game",
	Long: `Print the built-in default configuration of a game. Copy it, change the
values you want and pass it with --config, or install it with --install to
~/.arcade/configs/<game>.yaml where it is picked up automatically.

Examples:
  arcade config flappy > flappy.yaml
  arcade config runner --install`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInstall, "install", false, "Write to ~/.arcade/configs instead of stdout")
}

func runConfig(_ *cobra.Command, args []string) error {
	data, err := config.DefaultYAML(args[0])
	if err != nil {
		return err
	}
	if !flagConfigInstall {
		_, err = os.Stdout.Write(data)
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, args[0]+".yaml")
	if _, err := os.Stat(path); err == nil {
		logger.Warn("overwriting existing config", "path", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Info("config installed", "path", path)
	return nil
}
