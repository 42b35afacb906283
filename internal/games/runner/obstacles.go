package runner

import (
	"math/rand"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// ObstacleManager handles spawning, movement, and removal of cacti.
type ObstacleManager struct {
	cacti      []core.MovingRect
	rng        *rand.Rand
	screenW    float32
	nextSpawnX float32 // X position where the next cactus will spawn
	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, screenW int, cfg *config.RunnerConfig, diff *config.DifficultyManager) *ObstacleManager {
	om := &ObstacleManager{
		cacti:      make([]core.MovingRect, 0, 8),
		screenW:    float32(screenW),
		cfg:        cfg,
		difficulty: diff,
	}
	om.Reset(seed)
	return om
}

// UpdateConfig updates the configuration.
func (om *ObstacleManager) UpdateConfig(cfg *config.RunnerConfig, diff *config.DifficultyManager) {
	om.cfg = cfg
	om.difficulty = diff
}

// UpdateScreenSize updates the screen width.
func (om *ObstacleManager) UpdateScreenSize(screenW int) {
	om.screenW = float32(screenW)
}

// Reset clears all obstacles and resets the RNG.
func (om *ObstacleManager) Reset(seed int64) {
	om.cacti = om.cacti[:0]
	om.rng = rand.New(rand.NewSource(seed))
	om.nextSpawnX = om.screenW + float32(om.cfg.Obstacles.MinSpacing) // First cactus spawns off-screen
}

// Update moves cacti left and spawns new ones as needed.
func (om *ObstacleManager) Update(groundY float32, score, ticks int) {
	speed := float32(om.difficulty.Speed(om.cfg.Physics.BaseSpeed, score, ticks))

	kept := om.cacti[:0]
	for _, c := range om.cacti {
		c.Vel.X = -speed
		c.Integrate(1)
		if c.Right() > 0 {
			kept = append(kept, c)
		}
	}
	om.cacti = kept

	om.nextSpawnX -= speed
	if om.nextSpawnX <= om.screenW {
		om.spawnCactus(groundY, score, ticks)
	}
}

// spawnCactus creates a new cactus standing on the ground at the spawn position.
func (om *ObstacleManager) spawnCactus(groundY float32, score, ticks int) {
	obs := om.cfg.Obstacles
	width := om.between(obs.MinWidth, obs.MaxWidth)
	height := om.between(obs.MinHeight, obs.MaxHeight)

	om.cacti = append(om.cacti, core.NewMovingRect(
		core.V(om.nextSpawnX, groundY-float32(height)),
		core.V(float32(width), float32(height)),
		core.Vec2{},
	))

	// Gaps shrink toward MinSpacing as difficulty rises
	spacing := om.difficulty.Spacing(obs.MaxSpacing, obs.MinSpacing, score, ticks)
	om.nextSpawnX += float32(width + om.between(obs.MinSpacing, spacing))
}

// between returns a random int in [lo, hi], or lo when the range is empty.
func (om *ObstacleManager) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + om.rng.Intn(hi-lo+1)
}

// Cacti returns the current list of obstacles.
func (om *ObstacleManager) Cacti() []core.MovingRect {
	return om.cacti
}
