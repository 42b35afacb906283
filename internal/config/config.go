// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownGame is returned when no configuration exists for a game ID.
var ErrUnknownGame = errors.New("config: unknown game")

// FlappyConfig contains all configuration for the Flappy game.
// Distances are in pixels and velocities in pixels per tick.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// FlappyObstacles defines how obstacle pairs are spawned.
type FlappyObstacles struct {
	SpawnInterval int            `yaml:"spawn_interval"` // Ticks between pairs
	MinInterval   int            `yaml:"min_interval"`   // Floor for the interval at max difficulty
	Pairs         []ObstaclePair `yaml:"pairs"`
}

// ObstaclePair is one entry of the weighted spawn table. Heights are
// fractions of the screen height so the same table works at any size.
type ObstaclePair struct {
	Width     float64 `yaml:"width"`
	Top       float64 `yaml:"top"`
	Bottom    float64 `yaml:"bottom"`
	Frequency int     `yaml:"frequency"`
}

// FlappyPlayer defines player parameters for Flappy.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerConfig contains all configuration for the Runner game.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Player     RunnerPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines physics parameters for Runner.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// RunnerObstacles defines cactus sizes and spacing for Runner.
type RunnerObstacles struct {
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
}

// RunnerPlayer defines player parameters for Runner.
type RunnerPlayer struct {
	X            int `yaml:"x"`
	GroundOffset int `yaml:"ground_offset"`
}

// ReaderConfig contains the passages shown by the Reader game.
type ReaderConfig struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Passages []Passage `yaml:"passages"`
	Box      ReaderBox `yaml:"box"`

	// Portraits replaces the built-in art for the named speakers.
	Portraits []PortraitSheet `yaml:"portraits"`
}

// PortraitSheet is a PNG with the speaker's animation frames side by side.
// A relative Image is resolved against the directory of the config file.
type PortraitSheet struct {
	Speaker     string `yaml:"speaker"`
	Image       string `yaml:"image"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	Frames      int    `yaml:"frames"` // 0 uses every frame that fits across the image
}

// Passage is one block of text, optionally attributed to a speaker.
type Passage struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// ReaderBox positions the text box.
type ReaderBox struct {
	Height     float64 `yaml:"height"` // Fraction of the screen height
	Padding    int     `yaml:"padding"`
	SlideTicks int     `yaml:"slide_ticks"` // Duration of the box slide-in
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing/interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "use the
// configured default" and is accepted.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies a difficulty section based on a preset.
// An empty preset leaves it untouched.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Enabled = false
	default:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}
