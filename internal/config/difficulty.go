package config

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// DifficultyManager derives forward speed and obstacle density from the
// configured level and the distance run so far.
type DifficultyManager struct {
	cfg   DifficultyConfig
	speed RunnerSpeed
	spawn RunnerSpawn
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg RunnerConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg.Difficulty,
		speed: cfg.Speed,
		spawn: cfg.Spawn,
	}
}

// Level returns the obstacle level.
func (d *DifficultyManager) Level() int {
	return d.cfg.Level
}

// IsRamping reports whether speed grows with distance.
func (d *DifficultyManager) IsRamping() bool {
	return d.cfg.Ramp && d.speed.Increment > 0
}

// Speed returns the forward speed per tick at the given distance, before
// the user's speed knob is applied.
func (d *DifficultyManager) Speed(distance float64) float64 {
	if !d.IsRamping() {
		return d.speed.Base
	}
	return math.Min(d.speed.Base+distance*d.speed.Increment, d.speed.Max)
}

// Advance returns the distance covered in one tick at the given distance.
func (d *DifficultyManager) Advance(distance float64) float64 {
	return d.Speed(distance) * d.speed.Multiplier()
}

// ObstacleChance returns the probability that a segment carries an obstacle.
func (d *DifficultyManager) ObstacleChance() float64 {
	return core.ClampF(d.spawn.ObstacleBase+float64(d.cfg.Level)*d.spawn.ObstaclePerLevel, 0, 1)
}
