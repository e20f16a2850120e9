// Package gemsnake is a snake that crawls over a match-3 board. Runs of three
// or more gems near the snake explode in waves, the columns refill from the
// top, and the round is lost when the snake bites itself or a wave explodes
// under it.
package gemsnake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemsnake/internal/config"
	"github.com/vovakirdan/gemsnake/internal/core"
	"github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"
	"github.com/vovakirdan/gemsnake/internal/registry"
)

// ID is the registry and score table identifier.
const ID = "gemsnake"

var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied by the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger routes round logging. nil discards it.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a Round to the platform's fixed-step game interface.
type Game struct {
	cfg    config.GemSnakeConfig
	round  *Round
	tiles  *TileLayer
	rng    *rand.Rand
	logger *log.Logger
	err    error

	dt       time.Duration
	tick     uint64
	screenW  int
	screenH  int
	tooSmall bool

	preset  string
	record  int
	flashes map[board.Pos]int // matched cell -> wave, until the wave is removed
	lost    *RoundLostEvent
	swaps   int
}

// New creates a Gem Snake game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Gem Snake" }

// SetDifficulty selects a preset for this game only, overriding SetDifficultyPreset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = preset
}

// SetRecord raises the record length carried into new rounds.
func (g *Game) SetRecord(n int) {
	if n > g.record {
		g.record = n
	}
}

// Reset loads the configuration and starts a new round.
// The record length survives resets.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.logger = logger.With("game", ID)
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.err = nil

	g.cfg = g.loadConfig()
	g.checkSize()
	g.startRound()
}

func (g *Game) loadConfig() config.GemSnakeConfig {
	cfg, err := config.LoadGemSnake(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultGemSnakeConfig()
	}
	name := difficultyPreset
	if g.preset != "" {
		name = g.preset
	}
	preset, err := config.ParsePreset(name)
	if err != nil {
		g.logger.Warn("ignoring difficulty", "err", err)
		preset = config.DifficultyNormal
	}
	config.ApplyGemSnakePreset(&cfg, preset)
	return cfg
}

func (g *Game) startRound() {
	g.tiles = NewTileLayer(g.cfg.Board.Height, g.cfg.Cascade.FallSpeed, g.cfg.SpawnStagger())
	g.flashes = make(map[board.Pos]int)
	g.lost = nil
	g.swaps = 0

	round, err := NewRound(g.cfg, g.rng, g.record, WithPresenter(g.tiles), WithLogger(g.logger))
	if err != nil {
		g.logger.Error("cannot start round", "err", err)
		g.err = err
		g.round = nil
		return
	}
	g.round = round
}

func (g *Game) restart() {
	g.flashes = make(map[board.Pos]int)
	g.lost = nil
	g.swaps = 0
	if err := g.round.Restart(); err != nil {
		g.logger.Error("cannot restart round", "err", err)
		g.err = err
		g.round = nil
	}
}

// Step advances the round by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.round == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.round.Phase() == PhaseLost {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	var ri Input
	switch {
	case in.Has(core.ActionLeft):
		ri.Turn = TurnLeft
	case in.Has(core.ActionRight):
		ri.Turn = TurnRight
	}
	ri.Pause = in.Has(core.ActionPause)

	if g.round.Phase() != PhasePaused {
		g.tiles.Advance(g.dt)
	}
	g.round.Tick(g.dt, ri)
	g.consume(g.round.DrainEvents())

	if rec := g.round.Stats().RecordLength; rec > g.record {
		g.record = rec
	}
	return core.StepResult{State: g.State()}
}

// consume updates presentation state from round events.
func (g *Game) consume(events []Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case CellMatchedEvent:
			g.flashes[e.Pos] = e.Wave
		case WaveRevealedEvent:
			for p, w := range g.flashes {
				if w <= e.Wave {
					delete(g.flashes, p)
				}
			}
		case HandleMissingEvent:
			delete(g.flashes, e.Pos)
		case SwapCommittedEvent:
			g.swaps++
		case RoundLostEvent:
			lost := e
			g.lost = &lost
		case PhaseChangedEvent:
			if e.To == PhaseWaiting || e.To == PhasePlaying {
				clear(g.flashes)
			}
		}
	}
}

// State returns the platform view of the round.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.round.Stats().ExplosionsTotal,
		GameOver: g.round.Phase() == PhaseLost,
		Paused:   g.round.Phase() == PhasePaused,
	}
}

// Summary describes the current round for score history.
func (g *Game) Summary() core.RoundSummary {
	if g.round == nil {
		return core.RoundSummary{}
	}
	stats := g.round.Stats()
	return core.RoundSummary{
		Destroyed:    stats.ExplosionsTotal,
		BiggestChain: stats.BiggestChain,
		Length:       stats.AgentLength,
		RecordLength: stats.RecordLength,
		Reason:       string(g.round.Reason()),
		Ticks:        uint64(g.round.Ticks()),
	}
}

// Round exposes the underlying round, mainly for tests and snapshots.
func (g *Game) Round() *Round {
	return g.round
}
