// Package config provides YAML-based configuration loading and
// difficulty presets for Gem Snake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GemSnakeConfig contains all tunables for a round.
type GemSnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Snake      SnakeConfig      `yaml:"snake"`
	Cascade    CascadeConfig    `yaml:"cascade"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the gem grid.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Kinds  int `yaml:"kinds"`
}

// SnakeConfig defines the agent.
type SnakeConfig struct {
	StartLength      int `yaml:"start_length"`
	MoveIntervalMS   int `yaml:"move_interval_ms"`
	GrowthIntervalMS int `yaml:"growth_interval_ms"`
}

// CascadeConfig defines match resolution and refill timing.
type CascadeConfig struct {
	WaveDelayMS       int     `yaml:"wave_delay_ms"`
	FallSpeed         float64 `yaml:"fall_speed"` // cells per second
	SpawnStaggerMS    int     `yaml:"spawn_stagger_ms"`
	MaxRerollAttempts int     `yaml:"max_reroll_attempts"`
	FlashMS           int     `yaml:"flash_ms"`
}

// DifficultyConfig defines how the snake speeds up as gems are destroyed.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty up.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // gems destroyed or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // extra speed at max difficulty
}

// MoveInterval returns the base snake step interval.
func (c GemSnakeConfig) MoveInterval() time.Duration {
	return time.Duration(c.Snake.MoveIntervalMS) * time.Millisecond
}

// GrowthInterval returns the time between growth events.
func (c GemSnakeConfig) GrowthInterval() time.Duration {
	return time.Duration(c.Snake.GrowthIntervalMS) * time.Millisecond
}

// WaveDelay returns the pause between two removal waves.
func (c GemSnakeConfig) WaveDelay() time.Duration {
	return time.Duration(c.Cascade.WaveDelayMS) * time.Millisecond
}

// SpawnStagger returns the entry delay per spawn rank.
func (c GemSnakeConfig) SpawnStagger() time.Duration {
	return time.Duration(c.Cascade.SpawnStaggerMS) * time.Millisecond
}

// Flash returns how long matched gems stay highlighted.
func (c GemSnakeConfig) Flash() time.Duration {
	return time.Duration(c.Cascade.FlashMS) * time.Millisecond
}

// MaxKinds is the number of distinct gem glyphs the renderer has.
const MaxKinds = 8

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values a round cannot run with.
func (c GemSnakeConfig) Validate() error {
	switch {
	case c.Board.Width < 4 || c.Board.Height < 4:
		return fmt.Errorf("config: board %dx%d is smaller than 4x4: %w", c.Board.Width, c.Board.Height, ErrInvalidConfig)
	case c.Board.Kinds < 3 || c.Board.Kinds > MaxKinds:
		return fmt.Errorf("config: %d gem kinds, need 3 to %d: %w", c.Board.Kinds, MaxKinds, ErrInvalidConfig)
	case c.Snake.StartLength < 2 || c.Snake.StartLength > min(c.Board.Width, c.Board.Height):
		return fmt.Errorf("config: start length %d does not fit the board: %w", c.Snake.StartLength, ErrInvalidConfig)
	case c.Snake.MoveIntervalMS <= 0 || c.Snake.GrowthIntervalMS <= 0:
		return fmt.Errorf("config: snake intervals must be positive: %w", ErrInvalidConfig)
	case c.Cascade.WaveDelayMS <= 0 || c.Cascade.FallSpeed <= 0:
		return fmt.Errorf("config: cascade timing must be positive: %w", ErrInvalidConfig)
	case c.Cascade.SpawnStaggerMS < 0 || c.Cascade.FlashMS < 0:
		return fmt.Errorf("config: negative cascade delay: %w", ErrInvalidConfig)
	case c.Cascade.MaxRerollAttempts <= 0:
		return fmt.Errorf("config: max_reroll_attempts must be positive: %w", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
