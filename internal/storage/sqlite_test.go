package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{LevelID: "warmup", Outcome: OutcomeWin, Score: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("warmup")
	if err != nil || high != 3 {
		t.Errorf("HighScore() = %d, %v; want 3", high, err)
	}
}

func TestSaveRunValidates(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		run  RunRecord
	}{
		{"no level", RunRecord{Outcome: OutcomeWin}},
		{"bad outcome", RunRecord{LevelID: "warmup", Outcome: "quit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.SaveRun(tt.run); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTopRunsOrdering(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{LevelID: "lost-coins", Outcome: OutcomeGameOver, Score: 20, Coins: 10, PlayTime: 40 * time.Second, DeathCause: "enemy"},
		{LevelID: "lost-coins", Outcome: OutcomeWin, Score: 20, Coins: 15, PlayTime: 70 * time.Second},
		{LevelID: "lost-coins", Outcome: OutcomeWin, Score: 25, Coins: 15, PlayTime: 90 * time.Second, Player: "ana"},
		{LevelID: "lost-coins", Outcome: OutcomeWin, Score: 20, Coins: 15, PlayTime: 55 * time.Second},
		{LevelID: "warmup", Outcome: OutcomeWin, Score: 99, PlayTime: 10 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("lost-coins", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	want := []struct {
		score int
		won   bool
		time  time.Duration
	}{
		{25, true, 90 * time.Second},
		{20, true, 55 * time.Second},
		{20, true, 70 * time.Second},
		{20, false, 40 * time.Second},
	}
	for i, w := range want {
		if top[i].Score != w.score || top[i].Won() != w.won || top[i].PlayTime != w.time {
			t.Errorf("run %d = %+v, want score %d won %v time %v", i, top[i], w.score, w.won, w.time)
		}
	}
	if top[0].Player != "ana" {
		t.Errorf("player = %q, want ana", top[0].Player)
	}
	if top[3].DeathCause != "enemy" {
		t.Errorf("death cause = %q", top[3].DeathCause)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}

	limited, err := store.TopRuns("lost-coins", 2)
	if err != nil || len(limited) != 2 {
		t.Errorf("TopRuns(limit 2) = %d runs, %v", len(limited), err)
	}
}

func TestBestTimeAndFastestClears(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestTime("warmup"); err != nil || ok {
		t.Fatalf("BestTime() on empty store = ok %v, err %v", ok, err)
	}

	for _, r := range []RunRecord{
		{LevelID: "warmup", Outcome: OutcomeGameOver, Score: 1, PlayTime: 5 * time.Second},
		{LevelID: "warmup", Outcome: OutcomeWin, Score: 6, PlayTime: 31500 * time.Millisecond},
		{LevelID: "warmup", Outcome: OutcomeWin, Score: 4, PlayTime: 28250 * time.Millisecond},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, ok, err := store.BestTime("warmup")
	if err != nil || !ok {
		t.Fatalf("BestTime() = ok %v, err %v", ok, err)
	}
	if best != 28250*time.Millisecond {
		t.Errorf("BestTime() = %v, want 28.25s", best)
	}

	clears, err := store.FastestClears("warmup", 5)
	if err != nil {
		t.Fatalf("FastestClears() failed: %v", err)
	}
	if len(clears) != 2 || clears[0].Score != 4 {
		t.Errorf("FastestClears() = %+v", clears)
	}
}

func TestLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("warmup")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestTime != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []RunRecord{
		{LevelID: "warmup", Outcome: OutcomeGameOver, Score: 2, Coins: 2},
		{LevelID: "warmup", Outcome: OutcomeWin, Score: 10, Coins: 6, PlayTime: 20 * time.Second},
		{LevelID: "lost-coins", Outcome: OutcomeWin, Score: 30, Coins: 15, PlayTime: 80 * time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetLevelStats("warmup")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Clears != 1 || stats.HighScore != 10 || stats.AvgScore != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestTime != 20*time.Second || stats.MostCoins != 6 {
		t.Errorf("best time %v / most coins %d", stats.BestTime, stats.MostCoins)
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all["lost-coins"].HighScore != 30 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	for _, lvl := range []string{"warmup", "warmup", "lost-coins"} {
		if _, err := store.SaveRun(RunRecord{LevelID: lvl, Outcome: OutcomeGameOver, Score: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	if err := store.ClearRuns("warmup"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.AllRuns("warmup")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	others, err := store.AllRuns("lost-coins")
	if err != nil || len(others) != 1 {
		t.Errorf("other level affected: %d runs, %v", len(others), err)
	}
}
