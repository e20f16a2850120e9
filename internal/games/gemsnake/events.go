package gemsnake

import "github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"

// Event is something the round reports to the presentation layer.
// Events are collected during Tick and drained with Round.DrainEvents.
type Event interface {
	roundEvent()
}

// CellMatchedEvent is emitted for every cell of a new resolution.
type CellMatchedEvent struct {
	Pos  board.Pos
	Wave int
}

func (CellMatchedEvent) roundEvent() {}

// WaveRevealedEvent is emitted when a wave is removed from the board.
type WaveRevealedEvent struct {
	Wave    int
	Removed []board.Pos
}

func (WaveRevealedEvent) roundEvent() {}

// TileSpawnedEvent is emitted for each refill spawn.
type TileSpawnedEvent struct {
	At     board.Pos
	Kind   board.Kind
	Rank   int
	Handle board.Handle
}

func (TileSpawnedEvent) roundEvent() {}

// TileMovedEvent is emitted when gravity moves a tile down.
type TileMovedEvent struct {
	From   board.Pos
	To     board.Pos
	Handle board.Handle
}

func (TileMovedEvent) roundEvent() {}

// SwapCommittedEvent is emitted when the tail swap changes the board.
type SwapCommittedEvent struct {
	Vacated board.Pos
	Partner board.Pos
}

func (SwapCommittedEvent) roundEvent() {}

// PhaseChangedEvent is emitted once per tick in which the phase changed.
type PhaseChangedEvent struct {
	From Phase
	To   Phase
}

func (PhaseChangedEvent) roundEvent() {}

// RoundLostEvent is emitted when the round enters Lost.
type RoundLostEvent struct {
	Reason LoseReason
	At     board.Pos
}

func (RoundLostEvent) roundEvent() {}

// HandleMissingEvent reports a matched cell that had no presentation object.
// The cell is left on the board.
type HandleMissingEvent struct {
	Pos board.Pos
}

func (HandleMissingEvent) roundEvent() {}
