package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/reader.yaml
var defaultReaderYAML []byte

// DefaultFlappyConfig returns the built-in Flappy configuration used when no
// YAML source can be read.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.08,
			FlapImpulse:  -1.6,
			MaxFallSpeed: 3.0,
			ScrollSpeed:  0.6,
		},
		Obstacles: FlappyObstacles{
			SpawnInterval: 150,
			MinInterval:   90,
			Pairs: []ObstaclePair{
				{Width: 20, Top: 0.22, Bottom: 0.22, Frequency: 1},
				{Width: 20, Top: 0.28, Bottom: 0.17, Frequency: 3},
			},
		},
		Player: FlappyPlayer{
			X:      30,
			Width:  12,
			Height: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 60,
			},
		},
	}
}

// DefaultRunnerConfig returns the built-in Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:      0.35,
			JumpImpulse:  -5.5,
			MaxFallSpeed: 8.0,
			BaseSpeed:    1.5,
		},
		Obstacles: RunnerObstacles{
			MinWidth:   4,
			MaxWidth:   10,
			MinHeight:  8,
			MaxHeight:  16,
			MinSpacing: 70,
			MaxSpacing: 130,
		},
		Player: RunnerPlayer{
			X:            16,
			GroundOffset: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  2.0,
				SpacingReduction: 30,
			},
		},
	}
}

// DefaultReaderConfig returns the built-in Reader configuration.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Title:    "whale songs",
		Subtitle: "press space",
		Passages: []Passage{
			{Speaker: "whale", Text: "the sea is wide and the song is long"},
		},
		Box: ReaderBox{
			Height:     0.4,
			Padding:    4,
			SlideTicks: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) ([]byte, error) {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML, nil
	case "runner":
		return defaultRunnerYAML, nil
	case "reader":
		return defaultReaderYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}
}
