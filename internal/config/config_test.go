package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultGemSnakeConfig() {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", cfg, DefaultGemSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	cfg, err := LoadGemSnake("")
	if err != nil {
		t.Fatalf("LoadGemSnake() error: %v", err)
	}
	if cfg.Board.Width != 10 {
		t.Errorf("without files the embedded default should load, width = %d", cfg.Board.Width)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join("configs", configFile), "board:\n  width: 12\n")
	cfg, _ = LoadGemSnake("")
	if cfg.Board.Width != 12 {
		t.Errorf("local config should be used, width = %d", cfg.Board.Width)
	}
	if cfg.Board.Height != 10 {
		t.Errorf("missing fields should keep defaults, height = %d", cfg.Board.Height)
	}

	userDir := filepath.Join(home, ".gemsnake", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(userDir, configFile), "board:\n  width: 14\n")
	cfg, _ = LoadGemSnake("")
	if cfg.Board.Width != 14 {
		t.Errorf("user config should win over local, width = %d", cfg.Board.Width)
	}
}

func TestLoadSkipsInvalidSearchPathFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join("configs", configFile), "board:\n  kinds: 1\n")

	cfg, err := LoadGemSnake("")
	if err != nil {
		t.Fatalf("LoadGemSnake() error: %v", err)
	}
	if cfg.Board.Kinds != 5 {
		t.Errorf("invalid local file should fall through to defaults, kinds = %d", cfg.Board.Kinds)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"valid", "snake:\n  move_interval_ms: 120\n", nil},
		{"too few kinds", "board:\n  kinds: 2\n", ErrInvalidConfig},
		{"tiny board", "board:\n  width: 3\n", ErrInvalidConfig},
		{"zero wave delay", "cascade:\n  wave_delay_ms: 0\n", ErrInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			writeFile(t, path, tc.content)

			cfg, err := LoadGemSnake(path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.MoveInterval() != 120*time.Millisecond {
				t.Errorf("MoveInterval() = %v", cfg.MoveInterval())
			}
		})
	}

	if _, err := LoadGemSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
	writeFile(t, filepath.Join(dir, "broken.yaml"), "board: [")
	if _, err := LoadGemSnake(filepath.Join(dir, "broken.yaml")); err == nil {
		t.Error("malformed custom file should be an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		kinds     int
		enabled   bool
		initLevel float64
	}{
		{DifficultyEasy, 6, true, 0.0},
		{DifficultyNormal, 5, true, 0.3},
		{DifficultyHard, 4, true, 0.7},
		{DifficultyFixed, 5, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGemSnakeConfig()
			ApplyGemSnakePreset(&cfg, tc.preset)

			if cfg.Board.Kinds != tc.kinds {
				t.Errorf("kinds = %d, want %d", cfg.Board.Kinds, tc.kinds)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initLevel {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tc.initLevel)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestDifficultyMoveInterval(t *testing.T) {
	cfg := DefaultGemSnakeConfig().Difficulty
	d := NewDifficultyManager(cfg)
	base := 150 * time.Millisecond

	if got := d.MoveInterval(base, 0, 0); got != base {
		t.Errorf("at level 0 interval = %v, want %v", got, base)
	}
	if got := d.MoveInterval(base, cfg.Progression.MaxAt, 0); got != 100*time.Millisecond {
		t.Errorf("at max level interval = %v, want 100ms", got)
	}
	if d.MoveInterval(base, 10*cfg.Progression.MaxAt, 0) != d.MoveInterval(base, cfg.Progression.MaxAt, 0) {
		t.Error("progress beyond max_at should be clamped")
	}

	cfg.Enabled = false
	fixed := NewDifficultyManager(cfg)
	if got := fixed.MoveInterval(base, 1000, 1000); got != base {
		t.Errorf("disabled progression changed interval to %v", got)
	}

	fast := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 100},
	})
	if got := fast.MoveInterval(base, 0, 10); got != minMoveInterval {
		t.Errorf("interval should not drop below %v, got %v", minMoveInterval, got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GemSnakeConfig)
	}{
		{"tiny board", func(c *GemSnakeConfig) { c.Board.Width = 3 }},
		{"two kinds", func(c *GemSnakeConfig) { c.Board.Kinds = 2 }},
		{"too many kinds", func(c *GemSnakeConfig) { c.Board.Kinds = MaxKinds + 1 }},
		{"snake longer than board", func(c *GemSnakeConfig) { c.Snake.StartLength = c.Board.Width + 1 }},
		{"zero move interval", func(c *GemSnakeConfig) { c.Snake.MoveIntervalMS = 0 }},
		{"zero fall speed", func(c *GemSnakeConfig) { c.Cascade.FallSpeed = 0 }},
		{"negative flash", func(c *GemSnakeConfig) { c.Cascade.FlashMS = -1 }},
		{"no rerolls", func(c *GemSnakeConfig) { c.Cascade.MaxRerollAttempts = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGemSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
