package config

import (
	_ "embed"
)

//go:embed defaults/gemsnake.yaml
var defaultGemSnakeYAML []byte

// DefaultGemSnakeConfig returns the hard-coded configuration used when
// neither a file nor the embedded default can be parsed.
func DefaultGemSnakeConfig() GemSnakeConfig {
	return GemSnakeConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 10,
			Kinds:  5,
		},
		Snake: SnakeConfig{
			StartLength:      4,
			MoveIntervalMS:   150,
			GrowthIntervalMS: 5000,
		},
		Cascade: CascadeConfig{
			WaveDelayMS:       250,
			FallSpeed:         8,
			SpawnStaggerMS:    60,
			MaxRerollAttempts: 100,
			FlashMS:           200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGemSnakeYAML
}
