package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gemsnake/internal/storage"
)

var flagRoundsLimit int

var roundsCmd = &cobra.Command{
	Use:   "rounds [game]",
	Short: "Show recent rounds",
	Long: `Display the most recent finished rounds and the best round on record.
The best round has the longest chain, ties broken by gems destroyed.

Examples:
  gemsnake rounds
  gemsnake rounds --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&flagRoundsLimit, "limit", 10, "Number of rounds to show")
}

func runRounds(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(gameID, flagRoundsLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Println("Recent Rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %5s  %5s  %6s  %s\n", "Date", "Gems", "Chain", "Length", "Lost to")
	fmt.Printf("  %-16s  %5s  %5s  %6s  %s\n", "----", "----", "-----", "------", "-------")
	for _, r := range rounds {
		printRound(r)
	}

	best, err := store.BestRound(gameID)
	if err != nil {
		return fmt.Errorf("retrieving best round: %w", err)
	}
	if best != nil {
		fmt.Println()
		fmt.Println("Best round:")
		printRound(*best)
	}
	return nil
}

func printRound(r storage.RoundEntry) {
	fmt.Printf("  %-16s  %5d  %5d  %6d  %s\n",
		r.CreatedAt.Format("2006-01-02 15:04"), r.Destroyed, r.BiggestChain, r.Length, r.Reason)
}
