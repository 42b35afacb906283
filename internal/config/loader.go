package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load fills a config for gameID. YAML is decoded on top of the hard-coded
// defaults, so a file only has to name the values it changes.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadFlappy loads Flappy configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, err := load("flappy", customPath, defaultFlappyYAML, DefaultFlappyConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadRunner loads Runner configuration.
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner", customPath, defaultRunnerYAML, DefaultRunnerConfig)
}

// LoadReader loads Reader configuration.
func LoadReader(customPath string) (ReaderConfig, error) {
	cfg, err := load("reader", customPath, defaultReaderYAML, DefaultReaderConfig)
	if err != nil {
		return cfg, err
	}
	if len(cfg.Passages) == 0 {
		return cfg, fmt.Errorf("config: reader has no passages")
	}
	for i, p := range cfg.Portraits {
		switch {
		case p.Speaker == "":
			return cfg, fmt.Errorf("config: portrait %d has no speaker", i)
		case p.Image == "":
			return cfg, fmt.Errorf("config: portrait %q has no image", p.Speaker)
		case p.FrameWidth <= 0 || p.FrameHeight <= 0:
			return cfg, fmt.Errorf("config: portrait %q has no frame size", p.Speaker)
		case p.Frames < 0:
			return cfg, fmt.Errorf("config: portrait %q has negative frames", p.Speaker)
		}
		if customPath != "" && !filepath.IsAbs(p.Image) {
			cfg.Portraits[i].Image = filepath.Join(filepath.Dir(customPath), p.Image)
		}
	}
	return cfg, nil
}

// Validate checks that the obstacle table can be sampled.
func (c FlappyConfig) Validate() error {
	total := 0
	for i, p := range c.Obstacles.Pairs {
		if p.Frequency < 0 {
			return fmt.Errorf("config: obstacle pair %d has negative frequency", i)
		}
		if p.Width <= 0 {
			return fmt.Errorf("config: obstacle pair %d has no width", i)
		}
		total += p.Frequency
	}
	if total == 0 {
		return fmt.Errorf("config: obstacle table has no weight")
	}
	return nil
}
