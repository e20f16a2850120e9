package config

import (
	"math"
	"time"
)

// minMoveInterval keeps the snake controllable at maximum difficulty.
const minMoveInterval = 50 * time.Millisecond

// DifficultyManager derives the snake speed from progress in the round.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// destroyed counts gems removed this round; ticks counts simulation ticks.
func (d *DifficultyManager) Level(destroyed, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(destroyed) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveInterval shortens the base step interval as difficulty rises.
func (d *DifficultyManager) MoveInterval(base time.Duration, destroyed, ticks int) time.Duration {
	speed := 1.0 + d.Level(destroyed, ticks)*d.cfg.Scaling.SpeedMultiplier
	iv := time.Duration(float64(base) / speed)
	if iv < minMoveInterval {
		iv = minMoveInterval
	}
	return iv
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
