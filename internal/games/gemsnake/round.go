package gemsnake

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemsnake/internal/config"
	"github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"
)

// ErrNoQuietBoard is returned when no randomized board left the snake's
// starting neighborhood free of matches within the reroll budget.
var ErrNoQuietBoard = errors.New("gemsnake: no match-free starting board")

// Random is the random source a round draws from. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Input is the player intent for one tick.
type Input struct {
	Turn  Turn
	Pause bool
}

// Round is one game from spawn to loss. It is driven by Tick from a
// single goroutine.
type Round struct {
	cfg        config.GemSnakeConfig
	board      *board.Board
	snake      *Snake
	phase      *PhaseController
	advisor    board.SwapAdvisor
	difficulty *config.DifficultyManager
	rng        Random
	pres       Presenter
	logger     *log.Logger

	moveTimer   Timer
	growthTimer Timer
	ticks       int
	events      []Event
}

// Option configures a Round.
type Option func(*Round)

// WithPresenter sets the presentation layer. The default places and
// removes tiles instantly.
func WithPresenter(p Presenter) Option {
	return func(r *Round) { r.pres = p }
}

// WithLogger sets the round logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(r *Round) { r.logger = l }
}

// NewRound spawns a snake, randomizes a board that is quiet around it and
// enters Playing. record is the longest snake seen in earlier rounds.
func NewRound(cfg config.GemSnakeConfig, rng Random, record int, opts ...Option) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Round{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.pres == nil {
		r.pres = newInstantPresenter()
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}

	r.phase = NewPhaseController(cfg.WaveDelay(), cfg.Snake.StartLength, record)
	if err := r.setup(); err != nil {
		return nil, err
	}
	return r, nil
}

// setup places a fresh snake and board and resets the timers.
func (r *Round) setup() error {
	w, h := r.cfg.Board.Width, r.cfg.Board.Height
	r.board = board.New(w, h, r.cfg.Board.Kinds)
	r.snake = SpawnSnake(r.rng, w, h, r.cfg.Snake.StartLength)
	r.advisor.Reset()
	r.moveTimer = NewTimer(r.cfg.MoveInterval(), true)
	r.growthTimer = NewTimer(r.cfg.GrowthInterval(), true)
	r.ticks = 0

	seeds := r.neighborhood()
	attempts := 0
	for {
		if attempts == r.cfg.Cascade.MaxRerollAttempts {
			r.logger.Error("board reroll budget exhausted", "attempts", attempts)
			return fmt.Errorf("%w after %d attempts", ErrNoQuietBoard, attempts)
		}
		attempts++
		r.board.Randomize(r.rng)
		if !r.board.AnyMatch(seeds...) {
			break
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := board.P(x, y)
			r.board.SetHandle(p, r.pres.Spawn(p, r.board.Get(p), 0))
		}
	}

	r.logger.Debug("round started",
		"head", r.snake.Head().Pos,
		"heading", r.snake.Head().Heading,
		"rerolls", attempts-1)
	return nil
}

// Restart begins a new round on the same random source, keeping the record.
func (r *Round) Restart() error {
	for y := 0; y < r.board.H; y++ {
		for x := 0; x < r.board.W; x++ {
			if h := r.board.Cell(board.P(x, y)).Handle; h != board.NoHandle {
				r.pres.Despawn(h)
			}
		}
	}
	before := r.phase.Phase()
	r.phase.Restart(r.cfg.Snake.StartLength)
	if err := r.setup(); err != nil {
		return err
	}
	r.events = nil
	if before != PhasePlaying {
		r.emit(PhaseChangedEvent{From: before, To: PhasePlaying})
	}
	return nil
}

// neighborhood is the snake's cells plus every cell around them.
// It seeds both the start check and the per-tick match check.
func (r *Round) neighborhood() []board.Pos {
	cells := r.snake.Cells()
	return append(cells, r.board.Surroundings(cells)...)
}

// Tick advances the round by dt. Systems run in a fixed order: input,
// movement, growth, collision, match detection, tail swap. Phases other
// than Playing skip the systems they gate.
func (r *Round) Tick(dt time.Duration, in Input) {
	r.ticks++
	before := r.phase.Phase()

	if in.Pause {
		if err := r.phase.TogglePause(); err != nil {
			r.logger.Debug("pause ignored", "err", err)
		}
	}

	switch r.phase.Phase() {
	case PhasePlaying:
		r.play(dt, in)
	case PhaseExploding:
		r.explode(dt)
	case PhaseWaiting:
		if _, err := r.phase.Settle(r.pres.Falling()); err != nil {
			r.logger.Error("settle", "err", err)
		}
	}

	if after := r.phase.Phase(); after != before {
		r.logger.Debug("phase changed", "from", before, "to", after)
		r.emit(PhaseChangedEvent{From: before, To: after})
	}
}

func (r *Round) play(dt time.Duration, in Input) {
	if in.Turn != TurnStraight {
		r.snake.Steer(in.Turn)
	}

	stats := r.phase.Stats()
	r.moveTimer.SetDuration(r.difficulty.MoveInterval(r.cfg.MoveInterval(), stats.ExplosionsTotal, r.ticks))
	var (
		vacated board.Pos
		freed   bool
	)
	if r.moveTimer.Tick(dt) {
		vacated, freed = r.snake.Advance()
		r.phase.SetLength(r.snake.Len())
	}

	if r.growthTimer.Tick(dt) {
		r.snake.Grow()
	}

	if r.snake.SelfIntersects() {
		r.lose(ReasonSelfCollision, r.snake.Head().Pos)
		return
	}

	res := board.Resolve(r.board, r.neighborhood())
	if res.Any() {
		if err := r.phase.BeginExplosion(res); err != nil {
			r.logger.Error("begin explosion", "err", err)
			return
		}
		for _, p := range res.Matched() {
			r.emit(CellMatchedEvent{Pos: p, Wave: res.Tag(p)})
		}
		r.logger.Debug("match found", "cells", res.Total(), "waves", res.Waves(), "passes", res.Passes())
		return
	}

	if freed {
		if partner, ok := r.advisor.Vacated(r.board, vacated, r.snake.Tail()); ok {
			r.pres.Place(r.board.Cell(vacated).Handle, vacated)
			r.pres.Place(r.board.Cell(partner).Handle, partner)
			r.emit(SwapCommittedEvent{Vacated: vacated, Partner: partner})
			r.logger.Debug("tail swap", "vacated", vacated, "partner", partner)
		}
	}
}

func (r *Round) explode(dt time.Duration) {
	wave, cells, ok := r.phase.NextWave(dt)
	if ok {
		removed := make([]board.Pos, 0, len(cells))
		for _, p := range cells {
			c := r.board.Cell(p)
			if c.Handle == board.NoHandle || !r.pres.Despawn(c.Handle) {
				r.logger.Warn("matched cell has no tile", "pos", p, "handle", c.Handle)
				r.emit(HandleMissingEvent{Pos: p})
				continue
			}
			r.board.Remove(p)
			removed = append(removed, p)
		}
		r.phase.RecordRemoved(len(removed))
		r.emit(WaveRevealedEvent{Wave: wave, Removed: removed})

		for _, p := range removed {
			if r.snake.Occupies(p) {
				r.lose(ReasonMatchOnSnake, p)
				return
			}
		}
	}

	if !r.phase.WavesDone() {
		return
	}

	res := r.phase.Resolution()
	fill := r.board.Refill(res, r.rng)
	for _, m := range fill.Moves {
		r.pres.Drop(m.Handle, m.From, m.To)
		r.emit(TileMovedEvent{From: m.From, To: m.To, Handle: m.Handle})
	}
	for _, s := range fill.Spawns {
		h := r.pres.Spawn(s.At, s.Kind, s.Rank)
		r.board.SetHandle(s.At, h)
		r.emit(TileSpawnedEvent{At: s.At, Kind: s.Kind, Rank: s.Rank, Handle: h})
	}
	if err := r.phase.FinishExplosion(); err != nil {
		r.logger.Error("finish explosion", "err", err)
	}
}

func (r *Round) lose(reason LoseReason, at board.Pos) {
	if err := r.phase.Lose(reason); err != nil {
		r.logger.Error("lose", "err", err)
		return
	}
	stats := r.phase.Stats()
	r.logger.Info("round lost",
		"reason", string(reason),
		"at", at,
		"length", stats.AgentLength,
		"destroyed", stats.ExplosionsTotal)
	r.emit(RoundLostEvent{Reason: reason, At: at})
}

func (r *Round) emit(e Event) {
	r.events = append(r.events, e)
}

// DrainEvents returns and clears the events collected since the last call.
func (r *Round) DrainEvents() []Event {
	out := r.events
	r.events = nil
	return out
}

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase.Phase() }

// Stats returns a copy of the round counters.
func (r *Round) Stats() RoundStats { return r.phase.Stats() }

// Reason returns why the round was lost, if it was.
func (r *Round) Reason() LoseReason { return r.phase.Reason() }

// Board returns the live board. Callers must not mutate it.
func (r *Round) Board() *board.Board { return r.board }

// Snake returns the live snake. Callers must not mutate it.
func (r *Round) Snake() *Snake { return r.snake }

// Ticks returns how many ticks the round has run.
func (r *Round) Ticks() int { return r.ticks }

// GrowthIn returns the time until the snake grows next.
func (r *Round) GrowthIn() time.Duration { return r.growthTimer.Remaining() }
