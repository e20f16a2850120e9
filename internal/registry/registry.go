// Package registry maps game IDs to factories.
// Games register themselves in init(), so the platform can create them
// by ID without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gemsnake/internal/core"
)

// Game is what the platform drives: fixed-rate Step, Render into a screen buffer.
// Implementations contain no Bubble Tea code.
type Game interface {
	// ID returns the identifier used by the CLI and the score table.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh round. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Summarizer is implemented by games that can describe a finished round
// beyond a single score.
type Summarizer interface {
	Summary() core.RoundSummary
}

// Recorder is implemented by games that carry a personal best into new rounds.
// The platform seeds it from score history before the first Reset.
type Recorder interface {
	SetRecord(n int)
}

// DifficultySetter is implemented by games with difficulty presets.
// The preset applies on the next Reset.
type DifficultySetter interface {
	SetDifficulty(preset string)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
