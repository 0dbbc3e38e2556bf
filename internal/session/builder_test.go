package session

import (
	"testing"
	"time"

	"github.com/dkessler/mnemo/internal/deck"
	"github.com/dkessler/mnemo/internal/srs"
)

var today = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

// flashCard builds a card due the given number of days from today
// (negative = overdue).
func flashCard(id string, dueIn int) deck.Card {
	reviewed := srs.DayStart(today).AddDate(0, 0, dueIn-3)
	return deck.Card{
		ID:    id,
		Front: id + " front",
		Back:  id + " back",
		Review: srs.Item{
			ID:           id,
			Interval:     3,
			Ease:         2.5,
			Due:          srs.DayStart(today).AddDate(0, 0, dueIn),
			LastReviewed: reviewed,
			Mastery:      0.3,
		},
	}
}

func question(id string, pos int) deck.Card {
	return deck.Card{
		ID:       id,
		Position: pos,
		Prompt:   id + "?",
		Options:  []deck.Option{{ID: "a", Text: "yes"}, {ID: "b", Text: "no"}},
		Answer:   "a",
		Review:   srs.NewItem(id, srs.DefaultParams()),
	}
}

func flashDeck() *deck.Deck {
	due1 := flashCard("c1", 0)
	due2 := flashCard("c2", -4)
	notDue := flashCard("c3", 10)
	suspended := flashCard("c4", -1)
	suspended.Review.Suspended = true
	d := &deck.Deck{
		ID:    "flash",
		Name:  "Flash",
		Kind:  deck.KindFlashcards,
		Cards: []deck.Card{due1, due2, notDue, suspended},
	}
	for i := range d.Cards {
		d.Cards[i].Position = i
	}
	return d
}

// learnDeck authors: info i1 (unlocks q1, q2), q3 ungated, q1, q2 gated.
func learnDeck() *deck.Deck {
	return &deck.Deck{
		ID:   "learn",
		Name: "Learn",
		Kind: deck.KindLearning,
		InfoCards: []deck.InfoCard{
			{ID: "i1", Position: 0, Title: "Intro", Unlocks: []string{"q1", "q2"}},
		},
		Cards: []deck.Card{
			question("q3", 1),
			question("q1", 2),
			question("q2", 3),
		},
	}
}

func entryIDs(q *Queue) []string {
	ids := make([]string, len(q.Entries))
	for i := range q.Entries {
		ids[i] = q.Entries[i].ID()
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildQueueFlashcardsDueOnly(t *testing.T) {
	q := BuildQueue(flashDeck(), ModeReview, today)
	if got, want := entryIDs(q), []string{"c1", "c2"}; !equalIDs(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
	if q.TotalItems != 2 || q.CurrentIndex != 0 || q.DisplayIndex != 0 || q.ItemsCompleted != 0 {
		t.Errorf("fresh queue counters wrong: %+v", q)
	}
}

func TestBuildQueueCramTakesAll(t *testing.T) {
	q := BuildQueue(flashDeck(), ModeCram, today)
	// Everything non-suspended, dueness ignored.
	if got, want := entryIDs(q), []string{"c1", "c2", "c3"}; !equalIDs(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
}

func TestBuildQueueLearningExcludesGated(t *testing.T) {
	q := BuildQueue(learnDeck(), ModeReview, today)
	// Only the info card and the ungated question; gated stay out.
	if got, want := entryIDs(q), []string{"i1", "q3"}; !equalIDs(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
	// Progress denominator still counts the gated questions.
	if q.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", q.TotalItems)
	}
}

func TestBuildQueueLearningAuthoredInterleave(t *testing.T) {
	d := learnDeck()
	d.InfoCards = append(d.InfoCards, deck.InfoCard{ID: "i2", Position: 4, Title: "Outro"})
	q := BuildQueue(d, ModeReview, today)
	if got, want := entryIDs(q), []string{"i1", "q3", "i2"}; !equalIDs(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
}

func TestBuildFromSnapshotDropsUnknownIDs(t *testing.T) {
	d := flashDeck()
	snap := &Snapshot{
		EntryIDs:       []string{"c1", "deleted-card", "c2"},
		CurrentIndex:   1,
		ItemsCompleted: 1,
	}
	q := BuildFromSnapshot(d, ModeReview, snap)
	if got, want := entryIDs(q), []string{"c1", "c2"}; !equalIDs(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
	if q.CurrentIndex != 1 || q.ItemsCompleted != 1 || q.DisplayIndex != 1 {
		t.Errorf("cursor not restored: %+v", q)
	}
}

func TestBuildFromSnapshotCompletedIgnoresNewlyDue(t *testing.T) {
	// A finished 5-entry session rehydrates as completed even though the
	// deck has since gained new due cards.
	d := flashDeck()
	for _, id := range []string{"n1", "n2", "n3"} {
		c := flashCard(id, -1)
		c.Position = len(d.Cards)
		d.Cards = append(d.Cards, c)
	}
	snap := &Snapshot{
		EntryIDs:       []string{"c1", "c2", "n1", "n2", "n3"},
		CurrentIndex:   5,
		ItemsCompleted: 5,
	}
	q := BuildFromSnapshot(d, ModeReview, snap)
	if !q.Exhausted() {
		t.Errorf("queue should be exhausted, CurrentIndex=%d len=%d", q.CurrentIndex, len(q.Entries))
	}
	m := NewMachine(d, q, Config{})
	defer m.Close()
	if m.State() != StateCompleted {
		t.Errorf("State = %v, want StateCompleted", m.State())
	}
}

func TestBuildFromSnapshotRestoresUnlockSets(t *testing.T) {
	d := learnDeck()
	snap := &Snapshot{
		EntryIDs:          []string{"i1", "q2", "q1", "q3"},
		CurrentIndex:      1,
		ItemsCompleted:    1,
		ReadInfoCards:     []string{"i1"},
		UnlockedQuestions: []string{"q1", "q2"},
	}
	q := BuildFromSnapshot(d, ModeReview, snap)
	if !q.ReadInfoCards["i1"] || !q.UnlockedQuestions["q1"] || !q.UnlockedQuestions["q2"] {
		t.Errorf("unlock sets not restored: %+v", q)
	}
	if got, want := entryIDs(q), []string{"i1", "q2", "q1", "q3"}; !equalIDs(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}
	if q.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", q.TotalItems)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	q := BuildQueue(learnDeck(), ModeReview, today)
	q.ReadInfoCards["i1"] = true
	q.UnlockedQuestions["q1"] = true
	q.CurrentIndex = 1
	q.ItemsCompleted = 1

	snap := SnapshotFromQueue(q)
	back := BuildFromSnapshot(learnDeck(), ModeReview, snap)

	if !equalIDs(entryIDs(back), entryIDs(q)) {
		t.Errorf("entries = %v, want %v", entryIDs(back), entryIDs(q))
	}
	if back.CurrentIndex != 1 || back.ItemsCompleted != 1 ||
		!back.ReadInfoCards["i1"] || !back.UnlockedQuestions["q1"] {
		t.Errorf("round trip lost state: %+v", back)
	}
}
