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

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "match3", 120)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected 120 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entry := ScoreEntry{GameID: "match3_moves", Player: "ann", Score: 340, Swaps: 30, BestChain: 4}
	id, err := store.SaveScore(entry)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	save(t, store, "match3_moves", 90)
	save(t, store, "match3_moves", 500)
	save(t, store, "match3", 1000)

	scores, err := store.TopScores("match3_moves", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{500, 340, 90}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, s.Score, want[i])
		}
	}

	got := scores[1]
	if got.ID != id || got.Player != "ann" || got.Swaps != 30 || got.BestChain != 4 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRejectsEmptyGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("Expected error for empty game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		save(t, store, "match3", (i+1)*100)
	}

	scores, err := store.TopScores("match3", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	for range 10 {
		save(t, store, "match3", 10)
	}
	scores, err = store.TopScores("match3", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreTopScoresTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	for _, p := range []string{"a", "b", "c"} {
		if _, err := store.SaveScore(ScoreEntry{GameID: "match3", Player: p, Score: 50}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	for i, p := range []string{"a", "b", "c"} {
		if scores[i].Player != p {
			t.Errorf("scores[%d].Player = %q, want %q", i, scores[i].Player, p)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "match3", 100)
	save(t, store, "match3", 300)
	save(t, store, "match3", 200)

	high, err = store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "match3", 100)
	save(t, store, "match3", 200)
	save(t, store, "match3_moves", 300)

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("match3", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	moves, _ := store.TopScores("match3_moves", 10)
	if len(moves) != 1 {
		t.Errorf("Moves scores should not be affected by clearing classic")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		save(t, store, "match3", i*10)
	}

	scores, err := store.AllScores("match3")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected best score first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	entries := []ScoreEntry{
		{GameID: "match3", Score: 100, Swaps: 5, BestChain: 1},
		{GameID: "match3", Score: 300, Swaps: 12, BestChain: 3},
		{GameID: "match3_moves", Score: 250, Swaps: 30, BestChain: 2},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.TotalSwaps != 17 || stats.BestChain != 3 {
		t.Errorf("Unexpected swap stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["match3_moves"].HighScore != 250 || all["match3_moves"].TotalSwaps != 30 {
		t.Errorf("Unexpected moves stats: %+v", all["match3_moves"])
	}
}
