package gemsnake

import (
	"github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"
)

// Heading is an absolute movement direction on the board. Values are in
// clockwise order so a right turn is +1.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingRight
	HeadingDown
	HeadingLeft
)

// Delta returns the board offset of one step. Up increases y.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, 1
	case HeadingRight:
		return 1, 0
	case HeadingDown:
		return 0, -1
	default:
		return -1, 0
	}
}

// Apply returns the heading after a relative turn.
func (h Heading) Apply(t Turn) Heading {
	switch t {
	case TurnLeft:
		return (h + 3) % 4
	case TurnRight:
		return (h + 1) % 4
	default:
		return h
	}
}

func (h Heading) String() string {
	return [...]string{"up", "right", "down", "left"}[h]
}

// Turn is a steering intent relative to the current heading.
type Turn int

const (
	TurnStraight Turn = iota
	TurnLeft
	TurnRight
)

// Segment is one body cell with the heading it last moved in.
type Segment struct {
	Pos     board.Pos
	Heading Heading
}

// Snake is the agent: an ordered body, head first, on a toroidal board.
type Snake struct {
	segs    []Segment
	intent  Turn
	pending int // segments to add on the next moves
	w, h    int
}

// NewSnake builds a snake from explicit segments, head first.
func NewSnake(w, h int, segs []Segment) *Snake {
	out := make([]Segment, len(segs))
	copy(out, segs)
	return &Snake{segs: out, w: w, h: h}
}

// SpawnSnake places a straight snake of the given length at a random cell
// with a random heading. The body trails behind the head and wraps.
func SpawnSnake(rng board.Source, w, h, length int) *Snake {
	head := board.P(rng.Intn(w), rng.Intn(h))
	heading := Heading(rng.Intn(4))
	dx, dy := heading.Delta()

	segs := make([]Segment, length)
	for i := range segs {
		segs[i] = Segment{
			Pos:     Wrap(head.Add(-dx*i, -dy*i), w, h),
			Heading: heading,
		}
	}
	return &Snake{segs: segs, w: w, h: h}
}

// Wrap maps p onto a w×h torus.
func Wrap(p board.Pos, w, h int) board.Pos {
	return board.P(((p.X%w)+w)%w, ((p.Y%h)+h)%h)
}

// Steer records a turn intent consumed by the next head move.
// A later call in the same step replaces an earlier one.
func (s *Snake) Steer(t Turn) {
	s.intent = t
}

// Grow schedules one extra segment. It appears on the next move at the
// cell the tail leaves, which therefore stays occupied.
func (s *Snake) Grow() {
	s.pending++
}

// Advance moves the whole body one cell. Segments are processed from the
// tail forward; each takes the heading the segment ahead of it recorded
// on its previous move and steps along it, which puts it where that
// segment was. The head applies the turn intent.
// It returns the cell the tail left, or false when growth kept it occupied.
func (s *Snake) Advance() (board.Pos, bool) {
	last := len(s.segs) - 1
	oldTail := s.segs[last]

	for i := last; i > 0; i-- {
		s.segs[i].Heading = s.segs[i-1].Heading
		s.segs[i].Pos = s.step(s.segs[i])
	}
	s.segs[0].Heading = s.segs[0].Heading.Apply(s.intent)
	s.segs[0].Pos = s.step(s.segs[0])
	s.intent = TurnStraight

	if s.pending > 0 {
		s.pending--
		s.segs = append(s.segs, oldTail)
		return board.Pos{}, false
	}
	return oldTail.Pos, true
}

func (s *Snake) step(seg Segment) board.Pos {
	dx, dy := seg.Heading.Delta()
	return Wrap(seg.Pos.Add(dx, dy), s.w, s.h)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segs)
}

// Head returns the first segment.
func (s *Snake) Head() Segment {
	return s.segs[0]
}

// Tail returns the position of the last segment.
func (s *Snake) Tail() board.Pos {
	return s.segs[len(s.segs)-1].Pos
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segs))
	copy(out, s.segs)
	return out
}

// Cells returns the occupied positions, head first. A cell shared by
// several segments appears once per segment.
func (s *Snake) Cells() []board.Pos {
	out := make([]board.Pos, len(s.segs))
	for i, seg := range s.segs {
		out[i] = seg.Pos
	}
	return out
}

// Occupancy counts segments per cell.
func (s *Snake) Occupancy() map[board.Pos]int {
	occ := make(map[board.Pos]int, len(s.segs))
	for _, seg := range s.segs {
		occ[seg.Pos]++
	}
	return occ
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p board.Pos) bool {
	for _, seg := range s.segs {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// Collisions returns the cells held by more than one segment.
func (s *Snake) Collisions() []board.Pos {
	var out []board.Pos
	for p, n := range s.Occupancy() {
		if n > 1 {
			out = append(out, p)
		}
	}
	return out
}

// SelfIntersects reports whether two segments share a cell.
func (s *Snake) SelfIntersects() bool {
	seen := make(map[board.Pos]struct{}, len(s.segs))
	for _, seg := range s.segs {
		if _, ok := seen[seg.Pos]; ok {
			return true
		}
		seen[seg.Pos] = struct{}{}
	}
	return false
}
