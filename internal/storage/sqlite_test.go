package storage

import (
	"errors"
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

func save(t *testing.T, s *Store, board string, score int) ScoreEntry {
	t.Helper()
	e, err := s.SaveScore(ScoreEntry{Board: board, Player: "tester", Score: score, Level: 1 + score/1000})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return e
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

	first := save(t, store, "normal", 100)
	save(t, store, "normal", 50)
	save(t, store, "normal", 2200)
	save(t, store, "hard", 500)

	if first.RunID == "" || first.ID == 0 {
		t.Errorf("SaveScore should assign RunID and ID, got %+v", first)
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 2200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}
	if scores[0].Level != 3 || scores[0].Player != "tester" {
		t.Errorf("fields not stored: %+v", scores[0])
	}
	if scores[1].RunID != first.RunID {
		t.Errorf("RunID = %q, expected %q", scores[1].RunID, first.RunID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	hard, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreRunIDsUnique(t *testing.T) {
	store := openTestStore(t)

	e := save(t, store, "normal", 10)
	if _, err := store.SaveScore(ScoreEntry{RunID: e.RunID, Board: "normal", Score: 20}); err == nil {
		t.Error("duplicate RunID should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "test", (i+1)*100)
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
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	save(t, store, "normal", 100)
	save(t, store, "normal", 300)
	save(t, store, "normal", 200)

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "normal", 100)
	save(t, store, "normal", 200)
	save(t, store, "easy", 300)

	if err := store.ClearScores("normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	normal, _ := store.TopScores("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(normal))
	}
	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 1 {
		t.Errorf("Easy scores should not be affected by clearing normal")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "normal", 100)
	save(t, store, "normal", 1300)
	save(t, store, "hard", 40)

	st, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.HighScore != 1300 || st.BestLevel != 2 || st.TotalScore != 1400 || st.AvgScore != 700 {
		t.Errorf("stats = %+v", st)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["hard"].HighScore != 40 {
		t.Errorf("AllStats() = %+v", all)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun(SimRun{Board: "normal", Seed: 42, Ticks: 9000, Score: 1230, Level: 2, State: "GameOver", Hash: "00ff"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.RunID == "" {
		t.Fatal("SaveRun should assign a RunID")
	}
	if _, err := store.SaveRun(SimRun{Board: "normal", Seed: 42, Ticks: 9000, Score: 1230, Level: 2, State: "GameOver", Hash: "00ff"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Ticks != 9000 || got.Hash != "00ff" || got.State != "GameOver" {
		t.Errorf("RunByID() = %+v", got)
	}

	if _, err := store.RunByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(missing) error = %v, expected ErrNotFound", err)
	}

	runs, err := store.RunsBySeed(42)
	if err != nil {
		t.Fatalf("RunsBySeed() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].RunID != run.RunID {
		t.Errorf("RunsBySeed() = %+v", runs)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
