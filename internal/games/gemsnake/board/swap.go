package board

// SwapAdvisor manufactures a match at the cell a trailing segment just left
// by swapping it with one neighbor. Each vacated position is evaluated once.
type SwapAdvisor struct {
	last    Pos
	checked bool
}

// Reset forgets the last evaluated position.
func (a *SwapAdvisor) Reset() {
	a.checked = false
	a.last = Pos{}
}

// Vacated is called when the tail leaves p and now sits at tail.
// It returns the committed swap partner and true when the live board was changed.
func (a *SwapAdvisor) Vacated(b *Board, p, tail Pos) (Pos, bool) {
	if a.checked && a.last == p {
		return Pos{}, false
	}
	a.checked = true
	a.last = p

	// p already matches on its own; leave it alone.
	if b.Matches(p) {
		return Pos{}, false
	}

	for _, t := range b.Neighbors(p) {
		if t == tail || b.Matches(t) {
			continue
		}
		trial := b.Clone()
		trial.Swap(p, t)
		if trial.AnyMatch(p, t) {
			b.Swap(p, t)
			return t, true
		}
	}
	return Pos{}, false
}
