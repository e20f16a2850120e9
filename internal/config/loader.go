package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "gemsnake.yaml"

// LoadGemSnake loads the round configuration.
// Search order: customPath -> ~/.gemsnake/configs/gemsnake.yaml -> ./configs/gemsnake.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadGemSnake(customPath string) (GemSnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GemSnakeConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GemSnakeConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return GemSnakeConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken files in the search path are skipped, not fatal.
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultGemSnakeYAML)
	if err != nil {
		return DefaultGemSnakeConfig(), nil
	}
	return cfg, nil
}

func parse(data []byte) (GemSnakeConfig, error) {
	cfg := DefaultGemSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GemSnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gemsnake", "configs", filename)
}

// ApplyGemSnakePreset modifies the config based on a difficulty preset.
func ApplyGemSnakePreset(cfg *GemSnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Fewer kinds means more runs, which makes the board more dangerous.
	switch preset {
	case DifficultyEasy:
		cfg.Board.Kinds = 6
		cfg.Snake.MoveIntervalMS = 180
		cfg.Cascade.WaveDelayMS = 300
	case DifficultyHard:
		cfg.Board.Kinds = 4
		cfg.Snake.MoveIntervalMS = 110
		cfg.Cascade.WaveDelayMS = 180
	}
}
