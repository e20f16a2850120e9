package board

import "testing"

// pendingRun places A at (2,3) and (2,4) so that an A at (2,2) completes a run.
func pendingRun() *Board {
	b := quietBoard(5, 5)
	b.Set(P(2, 3), kindA)
	b.Set(P(2, 4), kindA)
	return b
}

func TestSwapAdvisorCompletesPendingRun(t *testing.T) {
	b := pendingRun()
	b.SetCell(P(1, 1), Cell{Kind: kindA, Handle: 7})
	b.SetHandle(P(2, 2), 9)
	before := b.Clone()

	var a SwapAdvisor
	partner, ok := a.Vacated(b, P(2, 2), P(3, 2))

	if !ok {
		t.Fatal("expected a swap to be committed")
	}
	if partner != P(1, 1) {
		t.Fatalf("swap partner = %v, want (1,1)", partner)
	}
	if c := b.Cell(P(2, 2)); c.Kind != kindA || c.Handle != 7 {
		t.Errorf("vacated cell = %+v, want kind A handle 7", c)
	}
	if c := b.Cell(P(1, 1)); c != before.Cell(P(2, 2)) {
		t.Errorf("partner cell = %+v, want %+v", c, before.Cell(P(2, 2)))
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := P(x, y)
			if p == P(2, 2) || p == P(1, 1) {
				continue
			}
			if b.Cell(p) != before.Cell(p) {
				t.Errorf("cell %v changed", p)
			}
		}
	}
	if !b.Matches(P(2, 2)) {
		t.Error("vacated cell should now be part of a run")
	}
}

func TestSwapAdvisorSkipsTailPosition(t *testing.T) {
	b := pendingRun()
	b.Set(P(3, 2), kindA) // only candidate, but the tail sits there
	before := b.Clone()

	var a SwapAdvisor
	if _, ok := a.Vacated(b, P(2, 2), P(3, 2)); ok {
		t.Fatal("swap with the tail position must not happen")
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Cell(P(x, y)) != before.Cell(P(x, y)) {
				t.Fatalf("board changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestSwapAdvisorLeavesExistingMatch(t *testing.T) {
	b := pendingRun()
	b.Set(P(2, 2), kindA) // already a run of three
	b.Set(P(1, 1), kindA)

	var a SwapAdvisor
	if _, ok := a.Vacated(b, P(2, 2), P(3, 2)); ok {
		t.Error("advisor should not touch a cell that already matches")
	}
	if b.Get(P(1, 1)) != kindA {
		t.Error("neighbor should be unchanged")
	}
}

func TestSwapAdvisorSkipsMatchingNeighbor(t *testing.T) {
	b := quietBoard(6, 6)
	// (1,1) is already part of a vertical run, so it must not be used.
	b.Set(P(1, 0), kindA)
	b.Set(P(1, 1), kindA)
	b.Set(P(1, 2), kindA)
	b.Set(P(3, 2), kindA)
	b.Set(P(4, 2), kindA)

	var a SwapAdvisor
	partner, ok := a.Vacated(b, P(2, 2), P(2, 3))
	if ok && partner == P(1, 1) {
		t.Fatal("advisor used a neighbor that already matched")
	}
	if b.Get(P(1, 1)) != kindA {
		t.Error("matching neighbor was modified")
	}
}

func TestSwapAdvisorMemoizesPosition(t *testing.T) {
	b := pendingRun()

	var a SwapAdvisor
	if _, ok := a.Vacated(b, P(2, 2), P(3, 2)); ok {
		t.Fatal("no neighbor holds A yet, nothing to swap")
	}

	b.Set(P(1, 1), kindA)
	if _, ok := a.Vacated(b, P(2, 2), P(3, 2)); ok {
		t.Fatal("same vacated position must not be evaluated twice")
	}

	a.Vacated(b, P(0, 0), P(1, 0))
	if _, ok := a.Vacated(b, P(2, 2), P(3, 2)); !ok {
		t.Fatal("position should be evaluated again after a different one")
	}
}

func TestSwapAdvisorNoCandidate(t *testing.T) {
	b := quietBoard(5, 5)
	before := b.Clone()

	var a SwapAdvisor
	if _, ok := a.Vacated(b, P(2, 2), P(2, 1)); ok {
		t.Fatal("quiet board offers no swap")
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Cell(P(x, y)) != before.Cell(P(x, y)) {
				t.Fatalf("board changed at (%d,%d)", x, y)
			}
		}
	}
}
