package board

// Resolution holds the state of one cascade run: which cells have been
// evaluated as pivots and the wave in which each matched cell was found.
// It never mutates the board it inspects.
type Resolution struct {
	w, h    int
	checked []bool
	tags    []int // 0 = unmatched, otherwise the wave index
	waves   int
	passes  int
	counts  []int // counts[i] = cells tagged with wave i+1
}

// NewResolution creates an empty resolution for a w×h board.
func NewResolution(w, h int) *Resolution {
	return &Resolution{
		w:       w,
		h:       h,
		checked: make([]bool, w*h),
		tags:    make([]int, w*h),
	}
}

// Resolve runs a full cascade on b from the given seeds.
func Resolve(b *Board, seeds []Pos) *Resolution {
	r := NewResolution(b.W, b.H)
	r.Run(b, seeds)
	return r
}

// Run expands match detection in waves from seeds until a pass finds
// nothing new. Each pass evaluates the predicate at every unchecked seed;
// the next seeds are the 8-neighborhoods of the cells matched in this pass.
// It returns whether any match was found.
func (r *Resolution) Run(b *Board, seeds []Pos) bool {
	if b.W != r.w || b.H != r.h {
		panic("board: resolution size does not match board")
	}

	pass := 0
	for {
		// A pass only counts when it has something left to evaluate, so the
		// number of passes never exceeds the number of cells.
		pending := seeds[:0:0]
		for _, s := range seeds {
			if !r.checked[b.index(s)] {
				pending = append(pending, s)
			}
		}
		if len(pending) == 0 {
			break
		}
		pass++
		r.passes++

		found := make([]bool, r.w*r.h)
		fresh := false
		for _, s := range pending {
			i := b.index(s)
			if r.checked[i] {
				continue
			}
			r.checked[i] = true

			for _, m := range b.MatchAt(s) {
				j := b.index(m)
				found[j] = true
				fresh = true
				if r.tags[j] == 0 {
					r.tags[j] = pass
					r.record(pass)
				}
			}
		}

		if !fresh {
			break
		}
		seeds = b.Surroundings(b.collect(found))
	}
	return r.Any()
}

// record counts a newly tagged cell in wave w.
func (r *Resolution) record(w int) {
	for len(r.counts) < w {
		r.counts = append(r.counts, 0)
	}
	r.counts[w-1]++
	if w > r.waves {
		r.waves = w
	}
}

// Any reports whether any cell was matched.
func (r *Resolution) Any() bool {
	return r.waves > 0
}

// Waves returns the highest wave index that tagged at least one cell.
func (r *Resolution) Waves() int {
	return r.waves
}

// Passes returns how many predicate passes were executed.
func (r *Resolution) Passes() int {
	return r.passes
}

// Tag returns the wave index of p, or 0 if p is unmatched.
func (r *Resolution) Tag(p Pos) int {
	if p.X < 0 || p.X >= r.w || p.Y < 0 || p.Y >= r.h {
		panic("board: wave tag position out of bounds")
	}
	return r.tags[p.Y*r.w+p.X]
}

// Wave returns the cells first tagged in wave w, in row-major order.
func (r *Resolution) Wave(w int) []Pos {
	var out []Pos
	for i, t := range r.tags {
		if t == w {
			out = append(out, Pos{X: i % r.w, Y: i / r.w})
		}
	}
	return out
}

// Matched returns every tagged cell in row-major order.
func (r *Resolution) Matched() []Pos {
	var out []Pos
	for i, t := range r.tags {
		if t > 0 {
			out = append(out, Pos{X: i % r.w, Y: i / r.w})
		}
	}
	return out
}

// Total returns the number of tagged cells.
func (r *Resolution) Total() int {
	n := 0
	for _, c := range r.counts {
		n += c
	}
	return n
}
