package session

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"github.com/dkessler/mnemo/internal/deck"
	"github.com/dkessler/mnemo/internal/srs"
)

// memStore is an in-memory SnapshotStore recording operation order.
type memStore struct {
	mu      sync.Mutex
	snaps   map[Key]*Snapshot
	saves   []*Snapshot
	deletes int
	failAll error
}

func newMemStore() *memStore {
	return &memStore{snaps: make(map[Key]*Snapshot)}
}

func (s *memStore) Save(_ context.Context, key Key, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return s.failAll
	}
	s.snaps[key] = snap
	s.saves = append(s.saves, snap)
	return nil
}

func (s *memStore) Load(_ context.Context, key Key) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snaps[key], nil
}

func (s *memStore) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, key)
	s.deletes++
	return nil
}

func TestReviewAdvancesAndLogs(t *testing.T) {
	d := flashDeck()
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{Rand: rand.New(rand.NewSource(1))})
	defer m.Close()

	res, err := m.Review(srs.Good, today)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if res.Record.ItemID != "c1" || res.Record.Rating != srs.Good {
		t.Errorf("record = %+v", res.Record)
	}
	if res.Record.Before.Interval != 3 || res.Record.After.Interval != 8 {
		t.Errorf("intervals = %d -> %d, want 3 -> 8", res.Record.Before.Interval, res.Record.After.Interval)
	}
	// The deck item was replaced in place.
	if d.Card("c1").Review.Interval != 8 {
		t.Errorf("deck item not updated: %+v", d.Card("c1").Review)
	}
	if q.CurrentIndex != 1 || q.DisplayIndex != 1 || q.ItemsCompleted != 1 {
		t.Errorf("cursor after advance: %+v", q)
	}
	if len(m.Log()) != 1 {
		t.Errorf("log length = %d, want 1", len(m.Log()))
	}
}

func TestReviewInvalidRatingMutatesNothing(t *testing.T) {
	d := flashDeck()
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{})
	defer m.Close()

	before := d.Card("c1").Review
	_, err := m.Review(srs.Rating(9), today)
	if !errors.Is(err, srs.ErrInvalidRating) {
		t.Fatalf("err = %v, want ErrInvalidRating", err)
	}
	if !reflect.DeepEqual(d.Card("c1").Review, before) {
		t.Error("item mutated on invalid rating")
	}
	if q.CurrentIndex != 0 || q.ItemsCompleted != 0 {
		t.Error("queue advanced on invalid rating")
	}
}

func TestHistoricalActionsRejected(t *testing.T) {
	d := flashDeck()
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{})
	defer m.Close()

	if _, err := m.Review(srs.Good, today); err != nil {
		t.Fatalf("Review: %v", err)
	}
	m.NavigatePrevious()
	if q.DisplayIndex != 0 {
		t.Fatalf("DisplayIndex = %d, want 0", q.DisplayIndex)
	}

	itemBefore := d.Card("c2").Review
	if _, err := m.Review(srs.Again, today); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Review on history: err = %v, want ErrInvalidTransition", err)
	}
	if err := m.Suspend(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Suspend on history: err = %v, want ErrInvalidTransition", err)
	}
	if !reflect.DeepEqual(d.Card("c2").Review, itemBefore) {
		t.Error("historical action mutated scheduling state")
	}

	m.ReturnToCurrent()
	if q.DisplayIndex != q.CurrentIndex {
		t.Errorf("ReturnToCurrent: DisplayIndex = %d, want %d", q.DisplayIndex, q.CurrentIndex)
	}
	if _, err := m.Review(srs.Good, today); err != nil {
		t.Errorf("Review after returning: %v", err)
	}
}

func TestNavigationClamps(t *testing.T) {
	d := flashDeck()
	m := NewMachine(d, BuildQueue(d, ModeReview, today), Config{})
	defer m.Close()

	m.NavigatePrevious() // already at 0
	if m.Queue().DisplayIndex != 0 {
		t.Error("NavigatePrevious went below 0")
	}
	m.NavigateNext() // cannot pass the cursor
	if m.Queue().DisplayIndex != 0 {
		t.Error("NavigateNext passed the cursor")
	}
}

func TestSuspendSkipsScheduler(t *testing.T) {
	d := flashDeck()
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{})
	defer m.Close()

	if err := m.Suspend(); err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	got := d.Card("c1").Review
	if !got.Suspended {
		t.Error("card not suspended")
	}
	if got.Interval != 3 || got.Lapses != 0 {
		t.Errorf("Suspend touched scheduling state: %+v", got)
	}
	if q.CurrentIndex != 1 {
		t.Error("Suspend should advance")
	}
	if len(m.Log()) != 0 {
		t.Error("Suspend should not log a review")
	}
}

func TestSelectAnswerFlow(t *testing.T) {
	d := learnDeck()
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{Rand: rand.New(rand.NewSource(1))})
	defer m.Close()

	// First entry is the info card; answering it is invalid.
	if err := m.SelectAnswer("a"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("SelectAnswer on info card: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := m.ReadInfoCard(); err != nil {
		t.Fatalf("ReadInfoCard: %v", err)
	}

	// Now at a question.
	if err := m.SelectAnswer("z"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("unknown option: err = %v, want ErrUnknownOption", err)
	}
	if err := m.SelectAnswer("a"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if q.Current().Selected != "a" {
		t.Errorf("Selected = %q, want \"a\"", q.Current().Selected)
	}
	if q.CurrentIndex != 1 {
		t.Error("SelectAnswer must not advance")
	}
	if err := m.SelectAnswer("b"); !errors.Is(err, ErrAnswerLocked) {
		t.Errorf("re-select: err = %v, want ErrAnswerLocked", err)
	}

	// Advancing clears the transient selection.
	cur := q.Current()
	if _, err := m.Review(srs.Good, today); err != nil {
		t.Fatalf("Review: %v", err)
	}
	if cur.Selected != "" {
		t.Error("advance should clear the answer selection")
	}
}

func TestReadInfoCardInsertsUnlockedContiguously(t *testing.T) {
	d := learnDeck()
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{Rand: rand.New(rand.NewSource(7))})
	defer m.Close()

	remainingBefore := q.Remaining() // i1, q3
	unlocked, err := m.ReadInfoCard()
	if err != nil {
		t.Fatalf("ReadInfoCard: %v", err)
	}
	if len(unlocked) != 2 {
		t.Fatalf("unlocked = %v, want q1 and q2", unlocked)
	}
	// Two inserted, one consumed: remaining grows by one net.
	if q.Remaining() != remainingBefore+1 {
		t.Errorf("Remaining = %d, want %d", q.Remaining(), remainingBefore+1)
	}
	// The unlocked questions sit immediately after the read info card, in
	// either relative order, with q3 pushed behind them.
	next2 := []string{q.Entries[1].ID(), q.Entries[2].ID()}
	if !(next2[0] == "q1" && next2[1] == "q2") && !(next2[0] == "q2" && next2[1] == "q1") {
		t.Errorf("entries after cursor = %v, want q1/q2 in some order", next2)
	}
	if q.Entries[3].ID() != "q3" {
		t.Errorf("entry 3 = %q, want q3", q.Entries[3].ID())
	}
	if !q.ReadInfoCards["i1"] || !q.UnlockedQuestions["q1"] || !q.UnlockedQuestions["q2"] {
		t.Errorf("unlock sets: %+v", q)
	}
}

func TestReadInfoCardSkipsAlreadyUnlocked(t *testing.T) {
	d := learnDeck()
	q := BuildQueue(d, ModeReview, today)
	q.UnlockedQuestions["q1"] = true
	m := NewMachine(d, q, Config{Rand: rand.New(rand.NewSource(1))})
	defer m.Close()

	unlocked, err := m.ReadInfoCard()
	if err != nil {
		t.Fatalf("ReadInfoCard: %v", err)
	}
	if !equalIDs(unlocked, []string{"q2"}) {
		t.Errorf("unlocked = %v, want [q2]", unlocked)
	}
	if q.contains("q1") {
		t.Error("previously unlocked question must not be re-enqueued")
	}
}

func TestReadInfoCardOverlappingUnlocksNoDuplicates(t *testing.T) {
	d := learnDeck()
	// A second info card whose unlock set overlaps the first one's.
	d.InfoCards = append(d.InfoCards, deck.InfoCard{
		ID: "i2", Position: 4, Title: "Recap", Unlocks: []string{"q2"},
	})
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{Rand: rand.New(rand.NewSource(3))})
	defer m.Close()

	if _, err := m.ReadInfoCard(); err != nil { // i1 unlocks q1, q2
		t.Fatalf("ReadInfoCard i1: %v", err)
	}
	// Work through the questions to reach i2.
	for m.State() == StateAwaitingAction && m.Queue().Current().Kind == EntryCard {
		if _, err := m.Review(srs.Good, today); err != nil {
			t.Fatalf("Review: %v", err)
		}
	}
	unlocked, err := m.ReadInfoCard() // i2's q2 is already unlocked
	if err != nil {
		t.Fatalf("ReadInfoCard i2: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("unlocked = %v, want none", unlocked)
	}

	seen := make(map[string]int)
	for i := range q.Entries {
		seen[q.Entries[i].ID()]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("entry %q appears %d times", id, n)
		}
	}
}

func TestCompletionDeletesSnapshot(t *testing.T) {
	d := flashDeck()
	q := BuildQueue(d, ModeReview, today)
	store := newMemStore()
	m := NewMachine(d, q, Config{Store: store, Rand: rand.New(rand.NewSource(1))})

	if _, err := m.Review(srs.Good, today); err != nil {
		t.Fatalf("Review: %v", err)
	}
	if _, err := m.Review(srs.Again, today); err != nil {
		t.Fatalf("Review: %v", err)
	}
	if m.State() != StateCompleted {
		t.Fatalf("State = %v, want StateCompleted", m.State())
	}
	m.Close()

	if len(store.saves) != 1 {
		t.Errorf("saves = %d, want 1 (one mid-session snapshot)", len(store.saves))
	}
	if store.deletes != 1 {
		t.Errorf("deletes = %d, want 1", store.deletes)
	}
	if snap, _ := store.Load(context.Background(), q.Key()); snap != nil {
		t.Error("snapshot should be gone after completion")
	}
}

func TestSnapshotWritesPreserveOrder(t *testing.T) {
	d := flashDeck()
	d.Cards = append(d.Cards, flashCard("c5", 0), flashCard("c6", 0))
	for i := range d.Cards {
		d.Cards[i].Position = i
	}
	q := BuildQueue(d, ModeReview, today)
	store := newMemStore()
	m := NewMachine(d, q, Config{Store: store, Rand: rand.New(rand.NewSource(1))})

	n := len(q.Entries)
	for i := 0; i < n-1; i++ {
		if _, err := m.Review(srs.Good, today); err != nil {
			t.Fatalf("Review %d: %v", i, err)
		}
	}
	m.Close()

	if len(store.saves) != n-1 {
		t.Fatalf("saves = %d, want %d", len(store.saves), n-1)
	}
	for i, snap := range store.saves {
		if snap.CurrentIndex != i+1 {
			t.Errorf("save %d has CurrentIndex %d, want %d (must apply in request order)", i, snap.CurrentIndex, i+1)
		}
	}
}

func TestSnapshotWriteFailureIsNonFatal(t *testing.T) {
	d := flashDeck()
	q := BuildQueue(d, ModeReview, today)
	store := newMemStore()
	store.failAll = errors.New("disk full")

	var warnMu sync.Mutex
	var warns []error
	m := NewMachine(d, q, Config{
		Store: store,
		OnSnapshotWarn: func(err error) {
			warnMu.Lock()
			warns = append(warns, err)
			warnMu.Unlock()
		},
		Rand: rand.New(rand.NewSource(1)),
	})

	if _, err := m.Review(srs.Good, today); err != nil {
		t.Fatalf("Review must succeed despite snapshot failure: %v", err)
	}
	m.Close()

	warnMu.Lock()
	defer warnMu.Unlock()
	if len(warns) != 1 {
		t.Errorf("warnings = %d, want 1", len(warns))
	}
	if q.CurrentIndex != 1 {
		t.Error("in-memory session must continue after a failed write")
	}
}

func TestCramReviewLeavesSchedulingAlone(t *testing.T) {
	d := flashDeck()
	q := BuildQueue(d, ModeCram, today)
	store := newMemStore()
	m := NewMachine(d, q, Config{Store: store, Rand: rand.New(rand.NewSource(1))})

	before := d.Card("c1").Review
	if _, err := m.Review(srs.Again, today); err != nil {
		t.Fatalf("Review: %v", err)
	}
	if !reflect.DeepEqual(d.Card("c1").Review, before) {
		t.Error("cram review mutated item metadata")
	}
	if q.CurrentIndex != 1 {
		t.Error("cram review should still advance")
	}
	if len(m.Log()) != 0 {
		t.Error("cram reviews should not produce scheduling records")
	}
	m.Close()
	if len(store.saves) != 0 || store.deletes != 0 {
		t.Error("cram sessions must not touch the snapshot store")
	}
}

func TestLeechSuspendDuringReview(t *testing.T) {
	d := flashDeck()
	cfg := srs.DefaultLeechConfig()
	d.Cards[0].Review.Lapses = cfg.Threshold - 1
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{Leech: cfg})
	defer m.Close()

	res, err := m.Review(srs.Again, today)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if !res.Leech {
		t.Fatal("review should flag the leech")
	}
	if res.LeechWarning {
		t.Error("suspend action is not advisory")
	}
	if !d.Card("c1").Review.Suspended {
		t.Error("leech not suspended")
	}
	if m.Summary().Leeches != 1 {
		t.Errorf("Summary.Leeches = %d, want 1", m.Summary().Leeches)
	}
}

func TestLeechWarnIsAdvisory(t *testing.T) {
	d := flashDeck()
	cfg := srs.LeechConfig{Threshold: 8, Action: srs.LeechWarn}
	d.Cards[0].Review.Lapses = cfg.Threshold - 1
	q := BuildQueue(d, ModeReview, today)
	m := NewMachine(d, q, Config{Leech: cfg})
	defer m.Close()

	res, err := m.Review(srs.Again, today)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if !res.Leech || !res.LeechWarning {
		t.Errorf("result = %+v, want advisory leech", res)
	}
	if d.Card("c1").Review.Suspended {
		t.Error("warn action must not suspend")
	}
}
