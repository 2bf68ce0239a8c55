package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	v, err := store.LoadHighScore(1)
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("Expected 0 for missing record, got %d", v)
	}

	if err := store.SaveHighScore(1, 700); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := store.SaveHighScore(1, 1500); err != nil {
		t.Fatalf("SaveHighScore() overwrite failed: %v", err)
	}
	if err := store.SaveHighScore(2, 42); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	if v, _ := store.LoadHighScore(1); v != 1500 {
		t.Errorf("Expected 1500, got %d", v)
	}
	if v, _ := store.LoadHighScore(2); v != 42 {
		t.Errorf("Expected 42, got %d", v)
	}
}

func TestHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(1, 300); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, _ := store.LoadHighScore(1); v != 300 {
		t.Errorf("Expected 300 after reopen, got %d", v)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("normal", s, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("hard", 500, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}

	all, err := store.TopScores("", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 2 || all[0].Mode != "hard" || all[0].Level != 2 {
		t.Errorf("Unexpected cross-mode top scores: %+v", all)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("normal", 100, 1)
	store.SaveScore("easy", 300, 1)
	store.SaveHighScore(1, 300)

	if err := store.ClearScores("normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("normal", 10); len(scores) != 0 {
		t.Errorf("Expected normal history cleared, got %d entries", len(scores))
	}
	if scores, _ := store.TopScores("easy", 10); len(scores) != 1 {
		t.Errorf("Easy history should be untouched, got %d entries", len(scores))
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(all) failed: %v", err)
	}
	if scores, _ := store.TopScores("", 10); len(scores) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(scores))
	}
	if v, _ := store.LoadHighScore(1); v != 300 {
		t.Errorf("High score should survive history clear, got %d", v)
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats("")
	if err != nil {
		t.Fatalf("GetStats() on empty store failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty store: %+v", stats)
	}

	store.SaveScore("normal", 100, 1)
	store.SaveScore("normal", 300, 2)

	stats, err = store.GetStats("normal")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.BestScore != 300 || stats.BestLevel != 2 {
		t.Errorf("Unexpected best: score %d level %d", stats.BestScore, stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg 200, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
	}
}
