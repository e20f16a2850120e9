// Package board implements the gem grid: tile storage, the match predicate,
// cascade resolution, gravity refill and the tail swap heuristic.
// It has no rendering or timing concerns; callers drive it once per tick.
package board

import "fmt"

// Kind identifies the gem category held by a cell.
// Empty is only observed between a removal and the following refill.
type Kind uint8

// Empty marks a vacated cell.
const Empty Kind = 0

// Handle is an opaque reference to a presentation object owned by the caller.
type Handle uint64

// NoHandle means the cell has no presentation object attached.
const NoHandle Handle = 0

// Pos is a board coordinate. Row 0 is the bottom row.
type Pos struct {
	X, Y int
}

// P is shorthand for constructing a Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the position offset by (dx, dy).
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is a single board slot.
type Cell struct {
	Kind   Kind
	Handle Handle
}

// Source is the random source used for tile kinds. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Board is a fixed W×H grid of cells stored in row-major order.
type Board struct {
	W     int
	H     int
	Kinds int // number of gem kinds, kinds are 1..Kinds
	cells []Cell
}

// New creates an empty board. All cells start as Empty.
func New(w, h, kinds int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("board: invalid size %dx%d", w, h))
	}
	if kinds <= 0 {
		panic(fmt.Sprintf("board: invalid kind count %d", kinds))
	}
	return &Board{
		W:     w,
		H:     h,
		Kinds: kinds,
		cells: make([]Cell, w*h),
	}
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// index converts a position to a flat index, panicking on out-of-range input.
func (b *Board) index(p Pos) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("board: position %v out of bounds %dx%d", p, b.W, b.H))
	}
	return p.Y*b.W + p.X
}

// Get returns the kind at p.
func (b *Board) Get(p Pos) Kind {
	return b.cells[b.index(p)].Kind
}

// Set changes the kind at p, keeping its handle.
func (b *Board) Set(p Pos, k Kind) {
	b.cells[b.index(p)].Kind = k
}

// Cell returns the full cell at p.
func (b *Board) Cell(p Pos) Cell {
	return b.cells[b.index(p)]
}

// SetCell replaces the cell at p.
func (b *Board) SetCell(p Pos, c Cell) {
	b.cells[b.index(p)] = c
}

// SetHandle attaches a presentation handle to the cell at p.
func (b *Board) SetHandle(p Pos, h Handle) {
	b.cells[b.index(p)].Handle = h
}

// Remove empties the cell at p and returns what it held.
func (b *Board) Remove(p Pos) Cell {
	i := b.index(p)
	old := b.cells[i]
	b.cells[i] = Cell{}
	return old
}

// RandomKind draws a uniformly distributed kind in 1..Kinds.
func (b *Board) RandomKind(rng Source) Kind {
	return Kind(rng.Intn(b.Kinds) + 1)
}

// Randomize assigns an independent random kind to every cell.
// Handles are left untouched.
func (b *Board) Randomize(rng Source) {
	for i := range b.cells {
		b.cells[i].Kind = b.RandomKind(rng)
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		W:     b.W,
		H:     b.H,
		Kinds: b.Kinds,
		cells: cells,
	}
}

// Swap exchanges the kinds and handles of two cells.
func (b *Board) Swap(p, q Pos) {
	i, j := b.index(p), b.index(q)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Neighbors returns the in-bounds cells at Chebyshev distance 1 from p.
// The order is fixed: dx from -1 to 1, and for each dx, dy from -1 to 1.
func (b *Board) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := p.Add(dx, dy)
			if b.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Surroundings returns the union of the neighborhoods of the given cells,
// excluding nothing: a cell in the input may appear if it neighbors another.
// Positions are returned in row-major order without duplicates.
func (b *Board) Surroundings(cells []Pos) []Pos {
	seen := make([]bool, b.W*b.H)
	for _, c := range cells {
		for _, n := range b.Neighbors(c) {
			seen[b.index(n)] = true
		}
	}
	return b.collect(seen)
}

// collect turns a membership grid into a row-major position list.
func (b *Board) collect(mask []bool) []Pos {
	var out []Pos
	for i, ok := range mask {
		if ok {
			out = append(out, Pos{X: i % b.W, Y: i / b.W})
		}
	}
	return out
}

// Full reports whether no cell is Empty.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c.Kind == Empty {
			return false
		}
	}
	return true
}
