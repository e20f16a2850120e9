package gemsnake

import (
	"testing"
	"time"

	"github.com/vovakirdan/gemsnake/internal/games/gemsnake/board"
)

func rowOf(l *TileLayer, home board.Pos) int {
	for _, s := range l.Sprites() {
		if s.Home == home {
			return s.Row
		}
	}
	return -1
}

func TestPlacedTilesDoNotFall(t *testing.T) {
	l := NewTileLayer(10, 10, 100*time.Millisecond)
	l.Spawn(board.P(3, 4), 2, 0)

	if l.Falling() {
		t.Error("rank 0 tile should be in place")
	}
	if row := rowOf(l, board.P(3, 4)); row != 4 {
		t.Errorf("row = %d, want 4", row)
	}
}

func TestSpawnedTilesLandInRankOrder(t *testing.T) {
	l := NewTileLayer(10, 10, 100*time.Millisecond)
	first := board.P(0, 8)
	second := board.P(0, 9)
	l.Spawn(first, 1, 1)
	l.Spawn(second, 2, 2)

	if !l.Falling() {
		t.Fatal("ranked spawns should start above the board")
	}
	if rowOf(l, first) < 10 || rowOf(l, second) < 10 {
		t.Fatalf("spawns should start hidden, rows %d %d", rowOf(l, first), rowOf(l, second))
	}

	landed := map[board.Pos]int{}
	for i := 1; i <= 100 && l.Falling(); i++ {
		l.Advance(16 * time.Millisecond)
		for _, p := range []board.Pos{first, second} {
			if _, ok := landed[p]; !ok && rowOf(l, p) == p.Y {
				landed[p] = i
			}
		}
	}

	if l.Falling() {
		t.Fatal("tiles never landed")
	}
	if landed[first] >= landed[second] {
		t.Errorf("rank 1 landed at tick %d, rank 2 at %d", landed[first], landed[second])
	}
}

func TestDropAnimatesAndPlaceSnaps(t *testing.T) {
	l := NewTileLayer(10, 10, 0)
	h := l.Spawn(board.P(1, 5), 3, 0)

	l.Drop(h, board.P(1, 5), board.P(1, 2))
	if !l.Falling() {
		t.Fatal("dropped tile should fall")
	}
	l.Advance(100 * time.Millisecond)
	if row := rowOf(l, board.P(1, 2)); row != 4 {
		t.Errorf("row after 100ms = %d, want 4", row)
	}
	l.Advance(time.Second)
	if l.Falling() || rowOf(l, board.P(1, 2)) != 2 {
		t.Errorf("tile should rest on row 2")
	}

	l.Place(h, board.P(4, 7))
	if l.Falling() || rowOf(l, board.P(4, 7)) != 7 {
		t.Error("Place should move without animation")
	}
}

func TestDespawn(t *testing.T) {
	l := NewTileLayer(10, 10, 0)
	h := l.Spawn(board.P(0, 0), 1, 0)

	if !l.Despawn(h) {
		t.Fatal("Despawn of a live tile failed")
	}
	if l.Despawn(h) || l.Despawn(board.NoHandle) {
		t.Error("Despawn of an unknown handle should report false")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}
