package gemsnake

import (
	"math"
	"sort"
	"time"

	"github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"
)

// tile is the visual state of one gem. y is the row it is drawn at and
// lags behind pos.Y while the gem is falling.
type tile struct {
	kind  board.Kind
	pos   board.Pos
	y     float64
	delay time.Duration
}

// TileLayer animates gems falling into place. It implements Presenter.
type TileLayer struct {
	tiles     map[board.Handle]*tile
	next      board.Handle
	height    int
	fallSpeed float64 // rows per second
	stagger   time.Duration
}

// NewTileLayer creates an empty layer for a board of the given height.
func NewTileLayer(height int, fallSpeed float64, stagger time.Duration) *TileLayer {
	return &TileLayer{
		tiles:     make(map[board.Handle]*tile),
		height:    height,
		fallSpeed: fallSpeed,
		stagger:   stagger,
	}
}

// Spawn creates a gem. Ranked spawns start stacked above the board and
// wait (rank-1)*stagger before falling, so rank 1 lands first.
func (l *TileLayer) Spawn(at board.Pos, kind board.Kind, rank int) board.Handle {
	l.next++
	t := &tile{kind: kind, pos: at, y: float64(at.Y)}
	if rank > 0 {
		t.y = float64(l.height + rank - 1)
		t.delay = time.Duration(rank-1) * l.stagger
	}
	l.tiles[l.next] = t
	return l.next
}

// Drop retargets a gem. It keeps falling from wherever it is drawn now.
func (l *TileLayer) Drop(h board.Handle, _, to board.Pos) {
	if t, ok := l.tiles[h]; ok {
		t.pos = to
	}
}

// Place moves a gem without animation.
func (l *TileLayer) Place(h board.Handle, at board.Pos) {
	if t, ok := l.tiles[h]; ok {
		t.pos = at
		t.y = float64(at.Y)
		t.delay = 0
	}
}

// Despawn removes a gem.
func (l *TileLayer) Despawn(h board.Handle) bool {
	if _, ok := l.tiles[h]; !ok {
		return false
	}
	delete(l.tiles, h)
	return true
}

// Falling reports whether any gem is above its cell.
func (l *TileLayer) Falling() bool {
	for _, t := range l.tiles {
		if t.y > float64(t.pos.Y) {
			return true
		}
	}
	return false
}

// Advance moves falling gems down by dt worth of fall speed.
func (l *TileLayer) Advance(dt time.Duration) {
	for _, t := range l.tiles {
		if t.delay > 0 {
			t.delay -= dt
			if t.delay > 0 {
				continue
			}
			t.delay = 0
		}
		target := float64(t.pos.Y)
		if t.y <= target {
			continue
		}
		t.y = math.Max(target, t.y-l.fallSpeed*dt.Seconds())
	}
}

// Sprite is a gem as it should be drawn.
type Sprite struct {
	Kind board.Kind
	X    int
	Row  int // visual row, may be >= board height while entering
	Home board.Pos
}

// Sprites returns every gem with its current visual row, bottom row first.
func (l *TileLayer) Sprites() []Sprite {
	out := make([]Sprite, 0, len(l.tiles))
	for _, t := range l.tiles {
		out = append(out, Sprite{
			Kind: t.kind,
			X:    t.pos.X,
			Row:  int(math.Round(t.y)),
			Home: t.pos,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].X < out[j].X
	})
	return out
}

// Len returns the number of live gems.
func (l *TileLayer) Len() int {
	return len(l.tiles)
}
