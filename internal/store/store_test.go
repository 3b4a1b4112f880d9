package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testCareerData(reputation int) CareerData {
	return CareerData{
		Version:    1,
		Reputation: reputation,
		Grade:      "junior",
		Branches:   []string{"armored-doctrine"},
		Skills: []SkillRecordData{
			{Branch: "armored-doctrine", Tag: "armored-spearhead", TagValue: 11},
		},
	}
}

func TestCareerSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.CareerRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "cmdr-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i, rep := range []int{200, 150} {
		err := repo.Save(ctx, &CareerSnapshot{
			CommanderID: "cmdr-1",
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
			Data:        testCareerData(rep),
		})
		if err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}

	snap, err = repo.Latest(ctx, "cmdr-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data.Reputation != 150 {
		t.Errorf("latest reputation: got %d, want 150", snap.Data.Reputation)
	}
	if len(snap.Data.Skills) != 1 || snap.Data.Skills[0].Tag != "armored-spearhead" {
		t.Errorf("skills did not round-trip: %+v", snap.Data.Skills)
	}
}

func TestCareerSnapshotIsolatedByCommander(t *testing.T) {
	s := openTestStore(t)
	repo := s.CareerRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &CareerSnapshot{
		CommanderID: "cmdr-a",
		Timestamp:   time.Now().UTC(),
		Data:        testCareerData(100),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx, "cmdr-b")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Error("cmdr-b should have no snapshots")
	}
}

func TestCareerSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.CareerRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &CareerSnapshot{
			CommanderID: "cmdr-1",
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
			Data:        testCareerData(100 + i),
		})
		if err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "cmdr-1", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	n, err := s.Client().CareerSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d snapshots after prune, want 2", n)
	}

	// The newest snapshot survives.
	snap, err := repo.Latest(ctx, "cmdr-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Reputation != 104 {
		t.Errorf("latest after prune: got %d, want 104", snap.Data.Reputation)
	}
}

func TestAppendProgress_SequencesIncrease(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendProgress(ctx, ProgressEventData{
			CommanderID: "cmdr-1",
			Kind:        "unlock",
			Skill:       "armored-spearhead",
			Branch:      "armored-doctrine",
			Delta:       -50,
			Reputation:  150 - 50*i,
			Grade:       "junior",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := s.DB().Query("SELECT sequence FROM progress_events ORDER BY sequence")
	if err != nil {
		t.Fatalf("query sequences: %v", err)
	}
	defer rows.Close()

	var prev int64 = -1
	count := 0
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			t.Fatalf("scan: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence %d not increasing after %d", seq, prev)
		}
		prev = seq
		count++
	}
	if count != 3 {
		t.Errorf("got %d events, want 3", count)
	}
}
