package gemsnake

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/gemsnake/internal/config"
	"github.com/vovakirdan/gemsnake/internal/core"
	"github.com/vovakirdan/gemsnake/internal/registry"
)

var _ registry.Summarizer = (*Game)(nil)

// isolate keeps user and working-directory configs out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func newGame(t *testing.T, rc core.RuntimeConfig) *Game {
	t.Helper()
	isolate(t)
	g := New()
	g.Reset(rc)
	if g.Round() == nil {
		t.Fatalf("round did not start: %v", g.err)
	}
	return g
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
	g1 := newGame(t, cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch i {
		case 30, 150:
			input.Set(core.ActionLeft)
		case 90, 400:
			input.Set(core.ActionRight)
		case 200, 220:
			input.Set(core.ActionPause)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
}

func TestRecordSurvivesRestart(t *testing.T) {
	rc := core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24}
	g := newGame(t, rc)

	g.Round().phase.SetLength(9)
	g.Round().phase.Lose(ReasonSelfCollision)
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("state should report game over")
	}
	if sum := g.Summary(); sum.Reason != string(ReasonSelfCollision) || sum.RecordLength != 9 {
		t.Errorf("summary = %+v", sum)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.Round().Phase() != PhasePlaying {
		t.Fatalf("phase = %v after restart", g.Round().Phase())
	}
	if rec := g.Round().Stats().RecordLength; rec != 9 {
		t.Errorf("record after restart = %d, want 9", rec)
	}

	g.Reset(rc)
	if rec := g.Round().Stats().RecordLength; rec != 9 {
		t.Errorf("record after reset = %d, want 9", rec)
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newGame(t, core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24})
	round := g.Round()
	head := round.Snake().Head().Pos

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if round.Ticks() != 1 || g.Round().Snake().Head().Pos != head {
		t.Error("restart should only apply to a lost round")
	}
}

func TestPauseInput(t *testing.T) {
	g := newGame(t, core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24})

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if res := g.Step(in); !res.State.Paused {
		t.Fatal("pause input should pause the round")
	}
	if res := g.Step(in); res.State.Paused {
		t.Error("second pause input should resume")
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, core.RuntimeConfig{Seed: 11, ScreenW: 80, ScreenH: 24})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Length: 4", "Longest chain: 0", "@", "o"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.Round().phase.Lose(ReasonMatchOnSnake)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("lost round should show the game over overlay")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newGame(t, core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	g.Step(core.NewInputFrame())
	if g.Round().Ticks() != 0 {
		t.Error("round should not run on a screen that cannot show it")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too small overlay")
	}

	screen.Resize(80, 24)
	g.Render(screen)
	g.Step(core.NewInputFrame())
	if g.Round().Ticks() != 1 {
		t.Error("round should resume once the screen is large enough")
	}
}

func TestSetRecordOnlyRaises(t *testing.T) {
	isolate(t)
	g := New()
	g.SetRecord(12)
	g.SetRecord(5)
	g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24})

	if got := g.Summary().RecordLength; got != 12 {
		t.Errorf("RecordLength = %d, want 12", got)
	}
}

func TestSetDifficulty(t *testing.T) {
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	tests := []struct {
		preset    string
		wantKinds int
	}{
		{"", 6}, // package preset applies
		{"hard", 4},
		{"nightmare", config.DefaultGemSnakeConfig().Board.Kinds}, // falls back to normal
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			isolate(t)
			g := New()
			g.SetDifficulty(tc.preset)
			g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24})
			if g.cfg.Board.Kinds != tc.wantKinds {
				t.Errorf("kinds = %d, want %d", g.cfg.Board.Kinds, tc.wantKinds)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
