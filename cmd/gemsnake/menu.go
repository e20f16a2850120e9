package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemsnake/internal/platform/tui"
	"github.com/vovakirdan/gemsnake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Pick a game, then a difficulty. After a round you can go back to the
menu with Esc (while paused or after game over).

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  gemsnake menu
  gemsnake menu --fps 30
  gemsnake menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		preset, err := tui.RunDifficultySelector(cfg)
		if err != nil {
			return err
		}
		if preset == nil {
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}
		if ds, ok := game.(registry.DifficultySetter); ok {
			ds.SetDifficulty(string(*preset))
		}

		// Fresh seed per round unless --seed pinned one.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting round", "game", menuResult.GameID, "difficulty", *preset)
		back, err := tui.RunFromMenu(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
