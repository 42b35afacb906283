package flappy

import (
	"math/rand"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Pair is a top and bottom obstacle moving left together.
type Pair struct {
	Top    core.MovingRect
	Bottom core.MovingRect
	Color  core.Color
	Passed bool // Whether the player has passed this pair (for scoring)
}

// Right returns the x coordinate of the pair's trailing edge.
func (p Pair) Right() float32 {
	return p.Top.Right()
}

// Spawner picks obstacle pairs from a weighted table on a tick interval.
type Spawner struct {
	pairs   []Pair
	table   []config.ObstaclePair
	rng     *rand.Rand
	timer   int // Ticks until the next spawn
	spawned int
}

// NewSpawner creates a spawner over a validated table.
func NewSpawner(seed int64, table []config.ObstaclePair) *Spawner {
	s := &Spawner{
		pairs: make([]Pair, 0, 8),
		table: table,
	}
	s.Reset(seed)
	return s
}

// Reset clears all pairs and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.pairs = s.pairs[:0]
	s.rng = rand.New(rand.NewSource(seed))
	s.timer = 0
	s.spawned = 0
}

// Pick draws a table index with probability proportional to its frequency.
func (s *Spawner) Pick() int {
	total := 0
	for _, p := range s.table {
		total += p.Frequency
	}
	if total <= 0 {
		return 0
	}

	x := s.rng.Intn(total)
	for i, p := range s.table {
		x -= p.Frequency
		if x < 0 {
			return i
		}
	}
	return len(s.table) - 1
}

// Update moves every pair left by speed, spawns a new pair at the right edge
// when the interval has elapsed and drops pairs that left the screen.
// Returns how many pairs the player passed this tick.
func (s *Spawner) Update(playerX, speed float32, interval int, screenW, screenH, groundY float32) int {
	passed := 0

	kept := s.pairs[:0]
	for _, p := range s.pairs {
		p.Top.Vel.X = -speed
		p.Bottom.Vel.X = -speed
		p.Top.Integrate(1)
		p.Bottom.Integrate(1)

		if !p.Passed && p.Right() < playerX {
			p.Passed = true
			passed++
		}
		if p.Right() >= 0 {
			kept = append(kept, p)
		}
	}
	s.pairs = kept

	s.timer--
	if s.timer <= 0 {
		s.spawn(screenW, screenH, groundY)
		s.timer = interval
	}

	return passed
}

// spawn adds a pair picked from the table just beyond the right edge.
func (s *Spawner) spawn(screenW, screenH, groundY float32) {
	def := s.table[s.Pick()]
	w := float32(def.Width)
	topH := float32(def.Top) * screenH
	botH := float32(def.Bottom) * screenH

	s.pairs = append(s.pairs, Pair{
		Top:    core.NewMovingRect(core.V(screenW, 0), core.V(w, topH), core.Vec2{}),
		Bottom: core.NewMovingRect(core.V(screenW, groundY-botH), core.V(w, botH), core.Vec2{}),
		Color:  core.Palette[s.spawned%len(core.Palette)],
	})
	s.spawned++
}

// Pairs returns the live pairs, oldest first.
func (s *Spawner) Pairs() []Pair {
	return s.pairs
}

// Obstacles flattens the pairs for collision tests. Obstacle 2i is the top of
// pair i and 2i+1 its bottom.
func (s *Spawner) Obstacles() []core.MovingRect {
	out := make([]core.MovingRect, 0, 2*len(s.pairs))
	for _, p := range s.pairs {
		out = append(out, p.Top, p.Bottom)
	}
	return out
}
