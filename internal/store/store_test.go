package store

import (
	"context"
	"testing"
	"time"

	"github.com/dkessler/mnemo/internal/session"
	"github.com/dkessler/mnemo/internal/srs"
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

func testKey() session.Key {
	return session.Key{DeckID: "capitals", Mode: session.ModeReview}
}

func testSnapshot() *session.Snapshot {
	return &session.Snapshot{
		EntryIDs:          []string{"i1", "q2", "q1", "q3"},
		CurrentIndex:      2,
		ItemsCompleted:    2,
		ReadInfoCards:     []string{"i1"},
		UnlockedQuestions: []string{"q1", "q2"},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	snaps := s.Snapshots()
	ctx := context.Background()
	key := testKey()

	// Absent snapshot loads as nil, nil.
	got, err := snaps.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no snapshot, got %+v", got)
	}

	if err := snaps.Save(ctx, key, testSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err = snaps.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot back")
	}
	if got.CurrentIndex != 2 || got.ItemsCompleted != 2 {
		t.Errorf("cursor = %d/%d, want 2/2", got.CurrentIndex, got.ItemsCompleted)
	}
	if len(got.EntryIDs) != 4 || got.EntryIDs[1] != "q2" {
		t.Errorf("EntryIDs = %v", got.EntryIDs)
	}
	if len(got.ReadInfoCards) != 1 || len(got.UnlockedQuestions) != 2 {
		t.Errorf("unlock sets = %v / %v", got.ReadInfoCards, got.UnlockedQuestions)
	}
}

func TestSnapshotSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	snaps := s.Snapshots()
	ctx := context.Background()
	key := testKey()

	if err := snaps.Save(ctx, key, testSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	later := testSnapshot()
	later.CurrentIndex = 3
	later.ItemsCompleted = 3
	if err := snaps.Save(ctx, key, later); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := snaps.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CurrentIndex != 3 {
		t.Errorf("CurrentIndex = %d, want 3 (second save must overwrite)", got.CurrentIndex)
	}

	// One row per key: count directly.
	var n int
	err = s.DB().QueryRow("SELECT COUNT(*) FROM session_snapshots").Scan(&n)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if n != 1 {
		t.Errorf("snapshot rows = %d, want 1", n)
	}
}

func TestSnapshotKeysAreIndependent(t *testing.T) {
	s := openTestStore(t)
	snaps := s.Snapshots()
	ctx := context.Background()

	keyA := session.Key{DeckID: "capitals", Mode: session.ModeReview}
	keyB := session.Key{DeckID: "verbs", Mode: session.ModeReview}
	if err := snaps.Save(ctx, keyA, testSnapshot()); err != nil {
		t.Fatalf("Save A: %v", err)
	}
	if err := snaps.Delete(ctx, keyB); err != nil {
		t.Fatalf("Delete B (absent) should be a no-op: %v", err)
	}

	got, err := snaps.Load(ctx, keyA)
	if err != nil || got == nil {
		t.Fatalf("Load A after deleting B: %v, %v", got, err)
	}

	if err := snaps.Delete(ctx, keyA); err != nil {
		t.Fatalf("Delete A: %v", err)
	}
	got, err = snaps.Load(ctx, keyA)
	if err != nil {
		t.Fatalf("Load after delete: %v", err)
	}
	if got != nil {
		t.Errorf("snapshot still present after delete: %+v", got)
	}
}

func testRecord(itemID string, rating srs.Rating) session.ReviewRecord {
	before := srs.Item{ID: itemID, Interval: 3, Ease: 2.5}
	after := before
	after.Interval = 8
	after.Mastery = 0.5
	return session.ReviewRecord{
		SessionID:  "s-1",
		DeckID:     "capitals",
		ItemID:     itemID,
		Before:     before,
		After:      after,
		Rating:     rating,
		ReviewedAt: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestReviewEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	for _, rec := range []session.ReviewRecord{
		testRecord("c1", srs.Good),
		testRecord("c2", srs.Again),
		testRecord("c3", srs.Good),
	} {
		if err := events.Append(ctx, rec, false); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	n, err := events.CountByDeck(ctx, "capitals")
	if err != nil {
		t.Fatalf("CountByDeck: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	n, err = events.CountByDeck(ctx, "verbs")
	if err != nil {
		t.Fatalf("CountByDeck: %v", err)
	}
	if n != 0 {
		t.Errorf("count for other deck = %d, want 0", n)
	}

	breakdown, err := events.RatingBreakdown(ctx, "capitals")
	if err != nil {
		t.Fatalf("RatingBreakdown: %v", err)
	}
	if breakdown[srs.Good] != 2 || breakdown[srs.Again] != 1 {
		t.Errorf("breakdown = %v", breakdown)
	}
}

func TestLeechEventsDeduplicated(t *testing.T) {
	s := openTestStore(t)
	events := s.Events()
	ctx := context.Background()

	if err := events.Append(ctx, testRecord("c1", srs.Again), true); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := events.Append(ctx, testRecord("c1", srs.Again), true); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := events.Append(ctx, testRecord("c2", srs.Good), false); err != nil {
		t.Fatalf("Append: %v", err)
	}

	ids, err := events.LeechEvents(ctx, "capitals")
	if err != nil {
		t.Fatalf("LeechEvents: %v", err)
	}
	if len(ids) != 1 || ids[0] != "c1" {
		t.Errorf("leech ids = %v, want [c1]", ids)
	}
}
