package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the framebuffer size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Framebuffer width in pixels
	ScreenH  int   // Framebuffer height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  240,
		ScreenH:  360,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// BufferSize returns the number of bytes a framebuffer for this config needs.
func (c RuntimeConfig) BufferSize() int {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 0
	}
	return c.ScreenW * c.ScreenH * Depth
}

// DT returns the duration of one tick in seconds.
func (c RuntimeConfig) DT() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float32(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
