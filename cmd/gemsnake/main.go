// gemsnake is a terminal game: a snake crawls over a match-3 board and
// sets off gem cascades by swapping its tail.
//
// Usage:
//
//	gemsnake list              - List available games
//	gemsnake play [game]       - Play a game (default: gemsnake)
//	gemsnake menu              - Start menu to pick games interactively
//	gemsnake serve             - Start SSH server for remote play
//	gemsnake scores [game]     - Show high scores
//	gemsnake rounds [game]     - Show recent rounds and the best one
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.gemsnake/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination (default: ~/.gemsnake/gemsnake.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gemsnake/internal/core"
	"github.com/vovakirdan/gemsnake/internal/games/gemsnake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger  = log.New(os.Stderr)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemsnake",
	Short: "Gem Snake - a snake on a match-3 board",
	Long: `Gem Snake puts a snake on a board of gems. The snake never eats:
each move swaps the gem under its tail, and any run of three or more
gems explodes and cascades. Let an explosion reach the snake and the
round is over.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Interactive menu with difficulty and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  rounds   - View recent rounds

Examples:
  gemsnake play
  gemsnake play --difficulty hard
  gemsnake menu
  gemsnake serve --ssh :2222
  gemsnake rounds`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.gemsnake/gemsnake.log", "Log file (the TUI owns the terminal)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(roundsCmd)
}

// setupLogging opens the log file and routes game logging into it.
// The alt-screen TUI owns stderr, so logs never go to the terminal.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "gemsnake",
	})
	gemsnake.SetLogger(logger)
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
