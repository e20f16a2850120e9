package board

// Move records a tile relocated by gravity. The handle travels with the tile.
type Move struct {
	From   Pos
	To     Pos
	Handle Handle
}

// Spawn records a tile created at the top of a column.
// Rank 1 is the spawned tile nearest the compacted stack.
type Spawn struct {
	At   Pos
	Kind Kind
	Rank int
}

// RefillResult lists everything a refill changed, column by column.
type RefillResult struct {
	Moves  []Move
	Spawns []Spawn
}

// Empty reports whether the refill changed nothing.
func (r RefillResult) Empty() bool {
	return len(r.Moves) == 0 && len(r.Spawns) == 0
}

// RefillColumn compacts column x toward row 0 and spawns fresh tiles in
// the rows left open at the top. Every occupied cell moves at most once,
// down by the number of vacancies below it. Spawned cells have no handle.
func (b *Board) RefillColumn(x int, rng Source) RefillResult {
	var res RefillResult

	vacancy := 0
	for y := 0; y < b.H; y++ {
		p := Pos{X: x, Y: y}
		c := b.Cell(p)
		if c.Kind == Empty {
			vacancy++
			continue
		}
		if vacancy == 0 {
			continue
		}
		to := Pos{X: x, Y: y - vacancy}
		b.SetCell(to, c)
		b.SetCell(p, Cell{})
		res.Moves = append(res.Moves, Move{From: p, To: to, Handle: c.Handle})
	}

	for rank := 1; rank <= vacancy; rank++ {
		p := Pos{X: x, Y: b.H - vacancy + rank - 1}
		k := b.RandomKind(rng)
		b.SetCell(p, Cell{Kind: k})
		res.Spawns = append(res.Spawns, Spawn{At: p, Kind: k, Rank: rank})
	}
	return res
}

// Refill applies gravity to every column after a resolution. It is a no-op
// when the resolution found nothing. Columns are processed left to right.
func (b *Board) Refill(r *Resolution, rng Source) RefillResult {
	var res RefillResult
	if r == nil || !r.Any() {
		return res
	}
	for x := 0; x < b.W; x++ {
		col := b.RefillColumn(x, rng)
		res.Moves = append(res.Moves, col.Moves...)
		res.Spawns = append(res.Spawns, col.Spawns...)
	}
	return res
}
