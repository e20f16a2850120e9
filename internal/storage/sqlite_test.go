package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gemsnake/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("gemsnake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("gemsnake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("test")
	if err != nil || len(all) != 5 {
		t.Errorf("AllScores() = %d entries, err %v", len(all), err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("gemsnake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("gemsnake", 100)
	store.SaveScore("gemsnake", 300)
	store.SaveScore("gemsnake", 200)

	if high, _ = store.HighScore("gemsnake"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []core.RoundSummary{
		{Destroyed: 12, BiggestChain: 6, Length: 7, RecordLength: 7, Reason: "snake bit itself", Ticks: 900},
		{Destroyed: 30, BiggestChain: 9, Length: 5, RecordLength: 8, Reason: "gems exploded under the snake", Ticks: 2400},
		{Destroyed: 3, BiggestChain: 3, Length: 4, RecordLength: 8, Reason: "snake bit itself", Ticks: 300},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound("gemsnake", r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	store.SaveRound("other", core.RoundSummary{BiggestChain: 50, Length: 40})

	recent, err := store.RecentRounds("gemsnake", 2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(recent))
	}
	if recent[0].Destroyed != 3 || recent[1].Destroyed != 30 {
		t.Errorf("Rounds not newest first: %+v", recent)
	}
	if recent[1].Ticks != 2400 || recent[1].Reason != "gems exploded under the snake" {
		t.Errorf("Round fields not preserved: %+v", recent[1])
	}

	best, err := store.BestRound("gemsnake")
	if err != nil {
		t.Fatalf("BestRound() failed: %v", err)
	}
	if best == nil || best.BiggestChain != 9 {
		t.Errorf("BestRound() = %+v, want chain 9", best)
	}

	longest, err := store.LongestSnake("gemsnake")
	if err != nil {
		t.Fatalf("LongestSnake() failed: %v", err)
	}
	if longest != 8 {
		t.Errorf("LongestSnake() = %d, want 8", longest)
	}
}

func TestStoreEmptyRounds(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRound("gemsnake")
	if err != nil || best != nil {
		t.Errorf("BestRound() on empty table = %+v, %v", best, err)
	}
	longest, err := store.LongestSnake("gemsnake")
	if err != nil || longest != 0 {
		t.Errorf("LongestSnake() on empty table = %d, %v", longest, err)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("gemsnake", 100)
	store.SaveRound("gemsnake", core.RoundSummary{Destroyed: 100, BiggestChain: 4})
	store.SaveScore("other", 300)

	if err := store.ClearScores("gemsnake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("gemsnake", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if rounds, _ := store.RecentRounds("gemsnake", 10); len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("gemsnake", 10)
	store.SaveScore("gemsnake", 30)
	store.SaveRound("gemsnake", core.RoundSummary{Destroyed: 10, BiggestChain: 4, Length: 6, RecordLength: 6})
	store.SaveRound("gemsnake", core.RoundSummary{Destroyed: 30, BiggestChain: 7, Length: 5, RecordLength: 6})

	stats, err := store.GetGameStats("gemsnake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("score stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.BiggestChain != 7 || stats.LongestSnake != 6 {
		t.Errorf("round stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
