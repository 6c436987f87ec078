package storage

import (
	"os"
	"path/filepath"
	"strings"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	games := []GameResult{
		{GameID: "tetris", Score: 100, Level: 1, Lines: 1},
		{GameID: "tetris", Score: 50, Level: 1, Lines: 0},
		{GameID: "tetris", Score: 1800, Level: 4, Lines: 9},
		{GameID: "other", Score: 500, Level: 1, Lines: 2},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 1800 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].Level != 4 || scores[0].Lines != 9 {
		t.Errorf("Level/lines not stored: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveGame(GameResult{GameID: "tetris", Score: (i + 1) * 100, Level: 1})
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to ten
	all, err := store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveGame(GameResult{GameID: "tetris", Score: 300})
	store.SaveGame(GameResult{GameID: "tetris", Score: 200})

	high, _ = store.HighScore("tetris")
	if high != 300 {
		t.Errorf("Expected high score of 300 from history, got %d", high)
	}

	// A best recorded mid-game counts before the game is finished
	if err := store.SetHighScore("tetris", 700); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	high, _ = store.HighScore("tetris")
	if high != 700 {
		t.Errorf("Expected high score of 700, got %d", high)
	}
}

func TestStoreSetHighScoreKeepsBest(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		set  int
		want int
	}{
		{set: 400, want: 400},
		{set: 100, want: 400},
		{set: 1500, want: 1500},
		{set: 1500, want: 1500},
	}

	for _, s := range steps {
		if err := store.SetHighScore("tetris", s.set); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", s.set, err)
		}
		got, err := store.HighScore("tetris")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if got != s.want {
			t.Errorf("after SetHighScore(%d): HighScore() = %d, want %d", s.set, got, s.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(GameResult{GameID: "tetris", Score: 100})
	store.SetHighScore("tetris", 900)
	store.SaveGame(GameResult{GameID: "other", Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("tetris"); high != 0 {
		t.Errorf("Expected high score reset, got %d", high)
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other games should not be affected by clearing tetris")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveGame(GameResult{GameID: "tetris", Score: 100, Level: 1, Lines: 1})
	store.SaveGame(GameResult{GameID: "tetris", Score: 700, Level: 2, Lines: 5})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 700 || stats.AvgScore != 400 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.TotalLines != 6 || stats.BestLevel != 2 {
		t.Errorf("Unexpected line/level stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreOpenFailsOnDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(dir)
	if err == nil {
		t.Fatal("Open() on a directory should fail")
	}
	if !strings.HasPrefix(err.Error(), "storage:") {
		t.Errorf("error %q should carry the storage prefix", err)
	}
}
