package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemsnake/internal/config"
	"github.com/vovakirdan/gemsnake/internal/games/gemsnake"
	"github.com/vovakirdan/gemsnake/internal/platform/tui"
	"github.com/vovakirdan/gemsnake/internal/registry"
	"github.com/vovakirdan/gemsnake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a round directly, without the menu.

Controls:
  A/Left     - Turn left
  D/Right    - Turn right
  P/Space    - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More gem kinds, slow snake
  normal - Config values, speeds up as gems explode
  hard   - Fewer gem kinds, fast snake, quick waves
  fixed  - No speed-up

Examples:
  gemsnake play
  gemsnake play --difficulty hard
  gemsnake play --seed 42
  gemsnake play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gemsnake.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'gemsnake list' to see available games", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	gemsnake.SetConfigPath(flagConfig)
	gemsnake.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting round", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openStore opens the score database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
