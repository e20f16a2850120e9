package gemsnake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"
)

// Phase gates which systems run on a tick.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseExploding
	PhaseWaiting
	PhasePaused
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseExploding:
		return "exploding"
	case PhaseWaiting:
		return "waiting"
	case PhasePaused:
		return "paused"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// LoseReason explains a terminal Lost phase.
type LoseReason string

const (
	ReasonSelfCollision LoseReason = "snake bit itself"
	ReasonMatchOnSnake  LoseReason = "gems exploded under the snake"
)

// ErrInvalidTransition is returned when a phase change is not allowed
// from the current phase.
var ErrInvalidTransition = errors.New("gemsnake: invalid phase transition")

// PhaseController is the round state machine. It owns the active
// resolution while gems are exploding and the round statistics.
type PhaseController struct {
	phase     Phase
	stats     RoundStats
	reason    LoseReason
	res       *board.Resolution
	nextWave  int
	waveTimer Timer
}

// NewPhaseController starts in Playing with a snake of the given length.
func NewPhaseController(waveDelay time.Duration, length, record int) *PhaseController {
	c := &PhaseController{
		waveTimer: NewTimer(waveDelay, true),
	}
	c.stats.RecordLength = record
	c.stats.setLength(length)
	return c
}

func (c *PhaseController) Phase() Phase       { return c.phase }
func (c *PhaseController) Stats() RoundStats  { return c.stats }
func (c *PhaseController) Reason() LoseReason { return c.reason }

// Resolution returns the resolution being exploded, or nil.
func (c *PhaseController) Resolution() *board.Resolution {
	return c.res
}

func (c *PhaseController) invalid(to Phase) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.phase, to)
}

// TogglePause switches between Playing and Paused.
func (c *PhaseController) TogglePause() error {
	switch c.phase {
	case PhasePlaying:
		c.phase = PhasePaused
	case PhasePaused:
		c.phase = PhasePlaying
	default:
		return c.invalid(PhasePaused)
	}
	return nil
}

// BeginExplosion enters Exploding with a resolution that found matches.
func (c *PhaseController) BeginExplosion(res *board.Resolution) error {
	if c.phase != PhasePlaying || res == nil || !res.Any() {
		return c.invalid(PhaseExploding)
	}
	c.phase = PhaseExploding
	c.res = res
	c.nextWave = 1
	c.waveTimer.Reset()
	c.stats.ExplosionsThisWave = 0
	return nil
}

// NextWave advances the wave delay. When it elapses it returns the next
// non-empty wave and its cells.
func (c *PhaseController) NextWave(dt time.Duration) (int, []board.Pos, bool) {
	if c.phase != PhaseExploding || c.WavesDone() {
		return 0, nil, false
	}
	if !c.waveTimer.Tick(dt) {
		return 0, nil, false
	}
	for c.nextWave <= c.res.Waves() {
		w := c.nextWave
		c.nextWave++
		if cells := c.res.Wave(w); len(cells) > 0 {
			return w, cells, true
		}
	}
	return 0, nil, false
}

// WavesDone reports whether every wave of the active resolution was handed out.
func (c *PhaseController) WavesDone() bool {
	return c.res == nil || c.nextWave > c.res.Waves()
}

// RecordRemoved counts gems actually removed from the board.
func (c *PhaseController) RecordRemoved(n int) {
	c.stats.removed(n)
}

// SetLength updates the snake length and the record.
func (c *PhaseController) SetLength(n int) {
	c.stats.setLength(n)
}

// FinishExplosion moves from Exploding to Waiting once every wave is gone.
func (c *PhaseController) FinishExplosion() error {
	if c.phase != PhaseExploding || !c.WavesDone() {
		return c.invalid(PhaseWaiting)
	}
	c.phase = PhaseWaiting
	c.res = nil
	return nil
}

// Settle returns to Playing from Waiting when nothing is falling.
// It reports whether the phase changed.
func (c *PhaseController) Settle(anyFalling bool) (bool, error) {
	if c.phase != PhaseWaiting {
		return false, c.invalid(PhasePlaying)
	}
	if anyFalling {
		return false, nil
	}
	c.phase = PhasePlaying
	return true, nil
}

// Lose ends the round. Lost is terminal until Restart.
func (c *PhaseController) Lose(reason LoseReason) error {
	if c.phase == PhaseLost {
		return c.invalid(PhaseLost)
	}
	c.phase = PhaseLost
	c.reason = reason
	c.res = nil
	return nil
}

// Restart resets everything but the record length and enters Playing.
func (c *PhaseController) Restart(length int) {
	record := c.stats.RecordLength
	c.stats = RoundStats{RecordLength: record}
	c.stats.setLength(length)
	c.phase = PhasePlaying
	c.reason = ""
	c.res = nil
	c.nextWave = 0
	c.waveTimer.Reset()
}
