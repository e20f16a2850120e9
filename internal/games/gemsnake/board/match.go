package board

// minRun is the shortest run that counts as a match.
const minRun = 3

// span counts consecutive cells of kind k starting next to p and moving by (dx, dy).
// The pivot itself is not counted.
func (b *Board) span(p Pos, k Kind, dx, dy int) int {
	n := 0
	for q := p.Add(dx, dy); b.InBounds(q) && b.Get(q) == k; q = q.Add(dx, dy) {
		n++
	}
	return n
}

// MatchAt evaluates the match predicate with p as pivot and returns every
// matched cell, p included. The horizontal and vertical axes are scored
// independently: an axis matches when left+right+1 >= 3.
// Empty cells never match.
func (b *Board) MatchAt(p Pos) []Pos {
	k := b.Get(p)
	if k == Empty {
		return nil
	}

	var out []Pos
	pivot := false

	left, right := b.span(p, k, -1, 0), b.span(p, k, 1, 0)
	if left+right+1 >= minRun {
		pivot = true
		for i := 1; i <= left; i++ {
			out = append(out, p.Add(-i, 0))
		}
		for i := 1; i <= right; i++ {
			out = append(out, p.Add(i, 0))
		}
	}

	down, up := b.span(p, k, 0, -1), b.span(p, k, 0, 1)
	if down+up+1 >= minRun {
		pivot = true
		for i := 1; i <= down; i++ {
			out = append(out, p.Add(0, -i))
		}
		for i := 1; i <= up; i++ {
			out = append(out, p.Add(0, i))
		}
	}

	if pivot {
		out = append(out, p)
	}
	return out
}

// Matches reports whether the predicate matches with p as pivot.
func (b *Board) Matches(p Pos) bool {
	k := b.Get(p)
	if k == Empty {
		return false
	}
	if b.span(p, k, -1, 0)+b.span(p, k, 1, 0)+1 >= minRun {
		return true
	}
	return b.span(p, k, 0, -1)+b.span(p, k, 0, 1)+1 >= minRun
}

// AnyMatch runs a single predicate pass over the seeds and reports whether
// any of them matches. Unlike a Resolution it does not expand to neighbors.
func (b *Board) AnyMatch(seeds ...Pos) bool {
	for _, s := range seeds {
		if b.Matches(s) {
			return true
		}
	}
	return false
}
