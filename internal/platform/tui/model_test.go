package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gemsnake/internal/core"
	"github.com/vovakirdan/gemsnake/internal/storage"
)

// fakeGame reports whatever state the test sets.
type fakeGame struct {
	state   core.GameState
	summary core.RoundSummary
	record  int
	resets  int
	inputs  []core.InputFrame
}

func (g *fakeGame) ID() string                { return "fake" }
func (g *fakeGame) Title() string             { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)  { g.resets++ }
func (g *fakeGame) Render(*core.Screen)       {}
func (g *fakeGame) State() core.GameState     { return g.state }
func (g *fakeGame) Summary() core.RoundSummary { return g.summary }
func (g *fakeGame) SetRecord(n int)           { g.record = n }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{State: g.state}
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameOverIsRecordedOnce(t *testing.T) {
	store := testStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, store, core.DefaultConfig(), nil)
	m.Init()

	g.state = core.GameState{Score: 12, GameOver: true}
	g.summary = core.RoundSummary{Destroyed: 12, BiggestChain: 5, Length: 6, Reason: "snake bit itself"}
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	scores, _ := store.TopScores("fake", 10)
	rounds, _ := store.RecentRounds("fake", 10)
	if len(scores) != 1 || scores[0].Score != 12 {
		t.Fatalf("scores = %+v", scores)
	}
	if len(rounds) != 1 || rounds[0].BiggestChain != 5 {
		t.Fatalf("rounds = %+v", rounds)
	}

	// Restart inside the game, then lose again.
	g.state = core.GameState{}
	m = step(t, m, TickMsg{})
	g.state = core.GameState{Score: 3, GameOver: true}
	step(t, m, TickMsg{})

	if rounds, _ = store.RecentRounds("fake", 10); len(rounds) != 2 {
		t.Errorf("second loss should be recorded, got %d rounds", len(rounds))
	}
	if g.resets != 1 {
		t.Errorf("model should not reset the game itself, resets = %d", g.resets)
	}
}

func TestInitSeedsRecordFromHistory(t *testing.T) {
	store := testStore(t)
	store.SaveRound("fake", core.RoundSummary{Length: 7, RecordLength: 9})

	g := &fakeGame{}
	m := NewGameModel(g, store, core.DefaultConfig(), nil)
	m.Init()

	if g.record != 9 {
		t.Errorf("record = %d, want 9", g.record)
	}
}

func TestKeysReachTheGame(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, core.DefaultConfig(), nil)
	m.Init()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, TickMsg{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	step(t, m, TickMsg{})

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || g.inputs[0].Has(core.ActionRestart) {
		t.Errorf("first frame = %v", g.inputs[0].Actions)
	}
	if !g.inputs[1].Has(core.ActionRestart) || g.inputs[1].Has(core.ActionLeft) {
		t.Errorf("input should be cleared between ticks, second frame = %v", g.inputs[1].Actions)
	}
}

func TestBackOnlyWhenStopped(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, core.DefaultConfig(), nil)
	m.Init()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = step(t, m, TickMsg{})
	if step(t, m, esc).BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.state.Paused = true
	m = step(t, m, TickMsg{})
	if !step(t, m, esc).BackToMenu() {
		t.Error("back should work while paused")
	}
}
