// arcade runs small pixel games in the terminal, over SSH or in a window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (menu when no game is given)
//	arcade window <game>     - Play a game in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade fonts             - Dump the built-in glyph table
//	arcade config <game>     - Print a game's default YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--profile <kind>     - Write a cpu or mem profile to the working directory
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pixel-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/reader"
	_ "github.com/vovakirdan/pixel-arcade/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagProfile  string
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "arcade"})
	stopper interface{ Stop() }
)

func main() {
	err := rootCmd.Execute()
	if stopper != nil {
		stopper.Stop()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pixel Arcade - small pixel games for terminals and windows",
	Long: `Pixel Arcade draws its games into a pixel framebuffer and shows them
in your terminal with half-block characters, over SSH, or in a window.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  fonts    - Dump the built-in glyph table
  config   - Print a game's default tuning YAML

Examples:
  arcade list
  arcade play flappy
  arcade play
  arcade window runner --scale 4
  arcade serve --ssh :2222 --game reader
  arcade scores flappy`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)

		switch flagProfile {
		case "":
		case "cpu":
			stopper = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		case "mem":
			stopper = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
		default:
			return fmt.Errorf("invalid --profile %q (use cpu or mem)", flagProfile)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Write a profile: cpu or mem")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(configCmd)
}
