package gemsnake

import "github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"

// Presenter owns the visual objects behind board handles. The round calls
// it whenever a tile appears, moves or disappears and asks it whether
// anything is still falling before play resumes.
type Presenter interface {
	// Spawn creates an object for a new tile. Rank 0 places it directly;
	// a positive rank makes it enter from above after a rank-based delay.
	Spawn(at board.Pos, kind board.Kind, rank int) board.Handle
	// Drop moves an object down to a new cell.
	Drop(h board.Handle, from, to board.Pos)
	// Place relocates an object instantly.
	Place(h board.Handle, at board.Pos)
	// Despawn removes an object. It returns false for unknown handles.
	Despawn(h board.Handle) bool
	// Falling reports whether any object has not reached its cell.
	Falling() bool
}

// instantPresenter tracks handles without animation. Nothing ever falls.
type instantPresenter struct {
	next  board.Handle
	alive map[board.Handle]board.Pos
}

func newInstantPresenter() *instantPresenter {
	return &instantPresenter{alive: make(map[board.Handle]board.Pos)}
}

func (p *instantPresenter) Spawn(at board.Pos, _ board.Kind, _ int) board.Handle {
	p.next++
	p.alive[p.next] = at
	return p.next
}

func (p *instantPresenter) Drop(h board.Handle, _, to board.Pos) {
	p.alive[h] = to
}

func (p *instantPresenter) Place(h board.Handle, at board.Pos) {
	p.alive[h] = at
}

func (p *instantPresenter) Despawn(h board.Handle) bool {
	if _, ok := p.alive[h]; !ok {
		return false
	}
	delete(p.alive, h)
	return true
}

func (p *instantPresenter) Falling() bool {
	return false
}
