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

// saveScore records a run that carries only a score.
func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveRun(RunRecord{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
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
		saveScore(t, store, "runner", score)
	}
	saveScore(t, store, "runner_classic", 500)

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	classic, err := store.TopScores("runner_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveRun(RunRecord{GameID: "runner", Score: 1234, Coins: 7, Distance: 88.5})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	b, err := store.SaveRun(RunRecord{GameID: "runner", Score: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("run ids should be unique and non-empty: %q %q", a.RunID, b.RunID)
	}

	top, err := store.TopScores("runner", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	got := top[0]
	if got.Score != 1234 || got.Coins != 7 || got.Distance != 88.5 || got.RunID != a.RunID {
		t.Errorf("stored run = %+v", got)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "test", (i+1)*100)
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

func TestStoreBestScoreOnlyIncreases(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("runner")
	if err != nil || best != 0 {
		t.Fatalf("BestScore() on empty = %d, %v", best, err)
	}

	tests := []struct {
		score   int
		changed bool
		best    int
	}{
		{500, true, 500},
		{300, false, 500},
		{500, false, 500},
		{800, true, 800},
	}

	for _, tc := range tests {
		changed, err := store.SetBestScore("runner", tc.score)
		if err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", tc.score, err)
		}
		if changed != tc.changed {
			t.Errorf("SetBestScore(%d) changed = %v, expected %v", tc.score, changed, tc.changed)
		}
		best, _ := store.BestScore("runner")
		if best != tc.best {
			t.Errorf("after SetBestScore(%d) best = %d, expected %d", tc.score, best, tc.best)
		}
	}

	if other, _ := store.BestScore("runner_classic"); other != 0 {
		t.Errorf("best scores should be per variant, got %d", other)
	}
}

func TestStoreCoinTotals(t *testing.T) {
	store := openTestStore(t)

	if err := store.AddCoins("runner", 12); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	if err := store.AddCoins("runner", 8); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}
	if err := store.AddCoins("runner", 0); err != nil {
		t.Fatalf("AddCoins(0) failed: %v", err)
	}

	total, err := store.TotalCoins("runner")
	if err != nil {
		t.Fatalf("TotalCoins() failed: %v", err)
	}
	if total != 20 {
		t.Errorf("TotalCoins() = %d, expected 20", total)
	}
}

func TestStoreRecordsView(t *testing.T) {
	store := openTestStore(t)
	rec := store.RecordsFor("runner_classic")

	if err := rec.SetBestScore(420); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if err := rec.AddCoins(3); err != nil {
		t.Fatalf("AddCoins() failed: %v", err)
	}

	best, _ := rec.BestScore()
	if best != 420 {
		t.Errorf("BestScore() = %d, expected 420", best)
	}
	if total, _ := store.TotalCoins("runner_classic"); total != 3 {
		t.Errorf("TotalCoins() = %d, expected 3", total)
	}
	if other, _ := store.BestScore("runner"); other != 0 {
		t.Error("records view leaked into another game")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "runner", 100)
	saveScore(t, store, "runner", 200)
	store.SetBestScore("runner", 200)
	store.AddCoins("runner", 5)
	saveScore(t, store, "runner_classic", 300)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("runner", 10); len(scores) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestScore("runner"); best != 0 {
		t.Errorf("best score should be cleared, got %d", best)
	}
	if total, _ := store.TotalCoins("runner"); total != 0 {
		t.Errorf("coin total should be cleared, got %d", total)
	}
	if classic, _ := store.TopScores("runner_classic", 10); len(classic) != 1 {
		t.Errorf("Classic scores should not be affected by clearing runner")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "runner", Score: 100, Distance: 10})
	store.SaveRun(RunRecord{GameID: "runner", Score: 300, Distance: 30})
	store.AddCoins("runner", 9)
	store.SaveRun(RunRecord{GameID: "runner_classic", Score: 50, Distance: 5})

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.TotalDistance != 40 || stats.TotalCoins != 9 {
		t.Errorf("distance/coins = %f/%d, expected 40/9", stats.TotalDistance, stats.TotalCoins)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["runner"].TotalCoins != 9 || all["runner_classic"].TotalCoins != 0 {
		t.Errorf("coin totals not joined: %+v %+v", all["runner"], all["runner_classic"])
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
