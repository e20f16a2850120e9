package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemsnake/internal/games/gemsnake"
	"github.com/vovakirdan/gemsnake/internal/registry"
	"github.com/vovakirdan/gemsnake/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 scores (gems destroyed in a round) and overall stats.

Examples:
  gemsnake scores
  gemsnake scores --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

// gameArg resolves the optional game argument.
func gameArg(args []string) (string, error) {
	id := gemsnake.ID
	if len(args) == 1 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q, run 'gemsnake list' to see available games", id)
	}
	return id, nil
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gemsnake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Gems", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.1f  Rounds: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	fmt.Printf("Longest chain: %d  Longest snake: %d\n", stats.BiggestChain, stats.LongestSnake)
	return nil
}
