package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-memory/internal/memory"
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
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parents were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Put("k", []byte("v1")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	v, ok, err := store.Get("k")
	if err != nil || !ok || string(v) != "v1" {
		t.Errorf("Get() = %q, %v, %v; want v1", v, ok, err)
	}
}

func TestKVGetPut(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Put("a", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("a", []byte("2")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("b", []byte("3")); err != nil {
		t.Fatal(err)
	}

	v, ok, err := store.Get("a")
	if err != nil || !ok || string(v) != "2" {
		t.Errorf("Get(a) = %q, %v, %v; want overwritten value 2", v, ok, err)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v", keys)
	}

	if err := store.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := store.Get("a"); ok {
		t.Error("key still present after Delete")
	}
	if err := store.Delete("a"); err != nil {
		t.Errorf("deleting a missing key: %v", err)
	}
}

func TestDeleteStats(t *testing.T) {
	store := openTestStore(t)
	for _, k := range []string{"memoryGameStats", "memoryGameStats:alice", "memoryGameStats:bob", "memoryGameStatsOld", "other"} {
		if err := store.Put(k, []byte("{}")); err != nil {
			t.Fatal(err)
		}
	}

	n, err := store.DeleteStats("memoryGameStats")
	if err != nil {
		t.Fatalf("DeleteStats failed: %v", err)
	}
	if n != 3 {
		t.Errorf("DeleteStats removed %d records, want 3", n)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "memoryGameStatsOld" || keys[1] != "other" {
		t.Errorf("Keys() after DeleteStats = %v", keys)
	}
}

func TestClearAllGames(t *testing.T) {
	store := openTestStore(t)
	for _, p := range []string{"alice", "bob"} {
		if _, err := store.SaveGame(GameRecord{Player: p, Difficulty: memory.Easy, Theme: "space", Seconds: 30, Moves: 8, Pairs: 6}); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.ClearAllGames(); err != nil {
		t.Fatalf("ClearAllGames failed: %v", err)
	}
	for _, p := range []string{"alice", "bob"} {
		if games, _ := store.RecentGames(p, 10); len(games) != 0 {
			t.Errorf("%s still has %d games", p, len(games))
		}
	}
}

func TestStatsRepoOnSQLite(t *testing.T) {
	store := openTestStore(t)
	repo := memory.NewStatsRepo(store, "")

	stats := memory.DefaultStats()
	stats.Record(memory.Completion{
		Difficulty: memory.Medium,
		Theme:      "space",
		Elapsed:    40 * time.Second,
		Moves:      11,
		TotalPairs: 8,
	}, memory.AchievementRules{SpeedDemon: memory.DefaultSpeedDemon})

	if err := repo.Save(stats); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, found, err := repo.Load()
	if err != nil || !found {
		t.Fatalf("Load() found=%v err=%v", found, err)
	}
	if got.GamesPlayed != 1 || got.BestTimes[memory.Medium] != memory.BestOf(40) || got.BestMoves[memory.Medium] != memory.BestOf(11) {
		t.Errorf("Load() = %+v", got)
	}
	if got.BestTimes[memory.Easy].Set {
		t.Error("unset best came back set")
	}
}

func TestSaveAndRetrieveGames(t *testing.T) {
	store := openTestStore(t)

	games := []GameRecord{
		{Player: "alice", Difficulty: memory.Easy, Theme: "space", Seconds: 40, Moves: 9, Pairs: 6, Accuracy: 66},
		{Player: "alice", Difficulty: memory.Easy, Theme: "fruits", Seconds: 25, Moves: 8, Pairs: 6, Accuracy: 75},
		{Player: "alice", Difficulty: memory.Easy, Theme: "tools", Seconds: 25, Moves: 6, Pairs: 6, Accuracy: 100},
		{Player: "alice", Difficulty: memory.Hard, Theme: "space", Seconds: 90, Moves: 20, Pairs: 10, Accuracy: 50},
		{Player: "bob", Difficulty: memory.Easy, Theme: "space", Seconds: 10, Moves: 6, Pairs: 6, Accuracy: 100},
	}

	var ids []string
	for _, g := range games {
		id, err := store.SaveGame(g)
		if err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
		if id == "" {
			t.Fatal("SaveGame() returned empty ID")
		}
		ids = append(ids, id)
	}
	if ids[0] == ids[1] {
		t.Error("generated IDs should be unique")
	}

	top, err := store.TopGames("alice", memory.Easy, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}
	// Fastest first, fewer moves breaks the tie
	if top[0].Seconds != 25 || top[0].Moves != 6 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].Seconds != 25 || top[1].Moves != 8 {
		t.Errorf("top[1] = %+v", top[1])
	}
	if top[2].Seconds != 40 {
		t.Errorf("top[2] = %+v", top[2])
	}

	limited, _ := store.TopGames("alice", memory.Easy, 1)
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d", len(limited))
	}

	recent, err := store.RecentGames("alice", 0)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 4 || recent[0].ID != ids[3] {
		t.Errorf("RecentGames() = %d games, first %v", len(recent), recent)
	}
	if recent[0].Difficulty != memory.Hard || recent[0].CreatedAt.IsZero() {
		t.Errorf("recent[0] = %+v", recent[0])
	}

	g, err := store.GameByID(ids[4])
	if err != nil || g == nil || g.Player != "bob" {
		t.Errorf("GameByID() = %+v, %v", g, err)
	}
	if g, err := store.GameByID("nope"); g != nil || err != nil {
		t.Errorf("GameByID(nope) = %+v, %v", g, err)
	}
}

func TestSummary(t *testing.T) {
	store := openTestStore(t)

	for _, g := range []GameRecord{
		{Player: "p", Difficulty: memory.Medium, Theme: "a", Seconds: 50, Moves: 12, Pairs: 8, Accuracy: 66},
		{Player: "p", Difficulty: memory.Medium, Theme: "b", Seconds: 35, Moves: 14, Pairs: 8, Accuracy: 57},
		{Player: "q", Difficulty: memory.Medium, Theme: "a", Seconds: 5, Moves: 8, Pairs: 8, Accuracy: 100},
	} {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatal(err)
		}
	}

	summary, err := store.Summary("p")
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if len(summary) != 1 {
		t.Fatalf("Summary() has %d difficulties, want 1", len(summary))
	}
	m := summary[memory.Medium]
	if m == nil || m.Games != 2 || m.BestSeconds != 35 || m.BestMoves != 12 {
		t.Errorf("medium summary = %+v", m)
	}
	if m.AvgAccuracy < 61 || m.AvgAccuracy > 62 {
		t.Errorf("AvgAccuracy = %v, want 61.5", m.AvgAccuracy)
	}

	empty, err := store.Summary("nobody")
	if err != nil || len(empty) != 0 {
		t.Errorf("Summary(nobody) = %v, %v", empty, err)
	}
}

func TestClearGames(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(GameRecord{Player: "p", Difficulty: memory.Easy, Theme: "a", Seconds: 1, Moves: 6, Pairs: 6})
	store.SaveGame(GameRecord{Player: "q", Difficulty: memory.Easy, Theme: "a", Seconds: 1, Moves: 6, Pairs: 6})

	if err := store.ClearGames("p"); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	if games, _ := store.RecentGames("p", 10); len(games) != 0 {
		t.Errorf("Expected no games after clear, got %d", len(games))
	}
	if games, _ := store.RecentGames("q", 10); len(games) != 1 {
		t.Errorf("other players' games must survive, got %d", len(games))
	}
}

func TestHistoryRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := NewHistoryRecorder(store, "", nil)

	rec.Completed(memory.Result{
		Difficulty: memory.Hard,
		Theme:      "sports",
		Elapsed:    61*time.Second + 500*time.Millisecond,
		Moves:      14,
		TotalPairs: 10,
		Accuracy:   71,
		MaxStreak:  3,
	})

	if rec.LastID() == "" {
		t.Fatal("recorder did not save the game")
	}
	g, err := store.GameByID(rec.LastID())
	if err != nil || g == nil {
		t.Fatalf("GameByID() = %v, %v", g, err)
	}
	if g.Player != LocalPlayer || g.Seconds != 61 || g.Moves != 14 || g.Pairs != 10 || g.MaxStreak != 3 {
		t.Errorf("stored game = %+v", g)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.memory/memory.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".memory", "memory.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
