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
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.CreateMatch("abc12345", 7, "console"); err != nil {
		t.Fatalf("CreateMatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	m, err := store.MatchByID("abc12345")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m == nil || m.Seed != 7 {
		t.Errorf("MatchByID() = %+v, expected seed 7", m)
	}
}

func TestStoreMatchLifecycle(t *testing.T) {
	store := openTestStore(t)

	if err := store.CreateMatch("m1", 42, "tui"); err != nil {
		t.Fatalf("CreateMatch() failed: %v", err)
	}

	m, err := store.MatchByID("m1")
	if err != nil || m == nil {
		t.Fatalf("MatchByID() = %v, %v", m, err)
	}
	if m.EndReason != "" || !m.EndedAt.IsZero() {
		t.Errorf("running match has end data: %+v", m)
	}
	if m.Frontend != "tui" || m.Seed != 42 {
		t.Errorf("MatchByID() = %+v", m)
	}

	shots := []ShotRecord{
		{MatchID: "m1", Seq: 1, Side: "human", X: 1, Y: 1},
		{MatchID: "m1", Seq: 2, Side: "automated", X: 4, Y: 2, Hit: true},
		{MatchID: "m1", Seq: 3, Side: "human", X: 3, Y: 3, Hit: true, Sunk: true},
	}
	for _, s := range shots {
		if err := store.RecordShot(s); err != nil {
			t.Fatalf("RecordShot(%+v) failed: %v", s, err)
		}
	}

	if err := store.FinishMatch("m1", 2, EndInputClosed); err != nil {
		t.Fatalf("FinishMatch() failed: %v", err)
	}

	m, err = store.MatchByID("m1")
	if err != nil || m == nil {
		t.Fatalf("MatchByID() = %v, %v", m, err)
	}
	if m.Rounds != 2 || m.EndReason != EndInputClosed {
		t.Errorf("finished match = %+v", m)
	}
	if m.HumanShots != 2 || m.AutomatedShots != 1 {
		t.Errorf("shot counts = %d/%d, expected 2/1", m.HumanShots, m.AutomatedShots)
	}

	got, err := store.MatchShots("m1")
	if err != nil {
		t.Fatalf("MatchShots() failed: %v", err)
	}
	if len(got) != len(shots) {
		t.Fatalf("MatchShots() returned %d shots, expected %d", len(got), len(shots))
	}
	for i := range shots {
		if got[i] != shots[i] {
			t.Errorf("MatchShots()[%d] = %+v, expected %+v", i, got[i], shots[i])
		}
	}
}

func TestStoreDuplicateShotSeq(t *testing.T) {
	store := openTestStore(t)
	if err := store.CreateMatch("m1", 1, "console"); err != nil {
		t.Fatalf("CreateMatch() failed: %v", err)
	}

	shot := ShotRecord{MatchID: "m1", Seq: 1, Side: "human", X: 1, Y: 1}
	if err := store.RecordShot(shot); err != nil {
		t.Fatalf("RecordShot() failed: %v", err)
	}
	if err := store.RecordShot(shot); err == nil {
		t.Error("RecordShot() accepted a repeated sequence number")
	}
}

func TestStoreFinishUnknownMatch(t *testing.T) {
	store := openTestStore(t)

	if err := store.FinishMatch("nope", 1, EndInterrupted); err == nil {
		t.Error("FinishMatch() of an unknown match should fail")
	}
}

func TestStoreMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	m, err := store.MatchByID("nope")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m != nil {
		t.Errorf("MatchByID() = %+v, expected nil", m)
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	store := openTestStore(t)

	ids := []string{"a", "b", "c", "d", "e"}
	for i, id := range ids {
		if err := store.CreateMatch(id, int64(i), "console"); err != nil {
			t.Fatalf("CreateMatch(%s) failed: %v", id, err)
		}
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("RecentMatches(3) returned %d matches", len(matches))
	}

	// Newest first: e, d, c
	for i, want := range []string{"e", "d", "c"} {
		if matches[i].MatchID != want {
			t.Errorf("RecentMatches()[%d] = %s, expected %s", i, matches[i].MatchID, want)
		}
	}

	all, err := store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches(0) failed: %v", err)
	}
	if len(all) != len(ids) {
		t.Errorf("RecentMatches(0) returned %d matches, expected %d", len(all), len(ids))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
