package core

// RuntimeConfig is passed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Gems destroyed this round
	GameOver bool // The round is lost and waits for a restart
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RoundSummary describes a finished round for score history.
type RoundSummary struct {
	Destroyed    int    // Gems removed during the round
	BiggestChain int    // Largest number of gems removed by one resolution
	Length       int    // Snake length when the round ended
	RecordLength int    // Longest snake seen in this process
	Reason       string // Why the round was lost
	Ticks        uint64
}
