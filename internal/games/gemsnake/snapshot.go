package gemsnake

import "github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"

// Snapshot captures the round state for determinism tests and debugging.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Head    board.Pos
	Heading Heading
	Length  int
	Stats   RoundStats
	Reason  LoseReason
	Swaps   int
	Board   []board.Kind // row-major, row 0 first
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{Tick: g.tick}
	}
	b := g.round.Board()
	kinds := make([]board.Kind, 0, b.W*b.H)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			kinds = append(kinds, b.Get(board.P(x, y)))
		}
	}
	head := g.round.Snake().Head()
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.round.Phase(),
		Head:    head.Pos,
		Heading: head.Heading,
		Length:  g.round.Snake().Len(),
		Stats:   g.round.Stats(),
		Reason:  g.round.Reason(),
		Swaps:   g.swaps,
		Board:   kinds,
	}
}
