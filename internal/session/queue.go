// Package session builds and drives one sitting of study: an ordered queue of
// reviewable cards and info cards, a progression state machine consuming
// learner actions, and snapshot persistence so an interrupted session can
// resume where it left off.
package session

import (
	"github.com/dkessler/mnemo/internal/deck"
)

// Mode selects how a session treats scheduling state.
type Mode string

const (
	// ModeReview studies due items and records scheduling updates.
	ModeReview Mode = "review"

	// ModeCram studies every non-suspended item and never touches
	// scheduling state. Cram sessions are not resumable.
	ModeCram Mode = "cram"
)

// Key identifies the one resumable session allowed per deck and mode.
type Key struct {
	DeckID string
	Mode   Mode
}

// EntryKind discriminates the two queue entry variants.
type EntryKind int

const (
	EntryCard EntryKind = iota // a reviewable card or question
	EntryInfo                  // an info card (learning decks only)
)

// Entry is one position in the session queue: exactly one of Card or Info is
// set, according to Kind. Selected is transient per-entry state (the option
// chosen on a question) and is cleared when the cursor advances.
type Entry struct {
	Kind     EntryKind
	Card     *deck.Card
	Info     *deck.InfoCard
	Selected string
}

// ID returns the id of the underlying card or info card.
func (e *Entry) ID() string {
	switch e.Kind {
	case EntryInfo:
		return e.Info.ID
	default:
		return e.Card.ID
	}
}

// Queue is the ordered working set for one sitting. CurrentIndex is the
// position of the next entry to act on and only moves forward; DisplayIndex
// is what the learner is looking at and may trail behind while reviewing
// history.
type Queue struct {
	DeckID string
	Mode   Mode

	Entries      []Entry
	CurrentIndex int
	DisplayIndex int

	ItemsCompleted int
	TotalItems     int

	// Session-local unlock bookkeeping for learning decks.
	ReadInfoCards     map[string]bool
	UnlockedQuestions map[string]bool
}

// Key returns the persistence key for this queue.
func (q *Queue) Key() Key {
	return Key{DeckID: q.DeckID, Mode: q.Mode}
}

// Exhausted reports whether the cursor has moved past the last entry.
func (q *Queue) Exhausted() bool {
	return q.CurrentIndex >= len(q.Entries)
}

// Current returns the entry at the cursor, or nil when the queue is exhausted.
func (q *Queue) Current() *Entry {
	if q.Exhausted() {
		return nil
	}
	return &q.Entries[q.CurrentIndex]
}

// Displayed returns the entry the learner is looking at, or nil when the
// queue is exhausted and the display has caught up with the cursor.
func (q *Queue) Displayed() *Entry {
	if q.DisplayIndex < 0 || q.DisplayIndex >= len(q.Entries) {
		return nil
	}
	return &q.Entries[q.DisplayIndex]
}

// Remaining returns how many entries are at or after the cursor.
func (q *Queue) Remaining() int {
	if q.Exhausted() {
		return 0
	}
	return len(q.Entries) - q.CurrentIndex
}

// contains reports whether an entry with the given id is anywhere in the queue.
func (q *Queue) contains(id string) bool {
	for i := range q.Entries {
		if q.Entries[i].ID() == id {
			return true
		}
	}
	return false
}

// insertAfterCurrent splices the entries in immediately after the cursor, so
// they are encountered next.
func (q *Queue) insertAfterCurrent(entries []Entry) {
	if len(entries) == 0 {
		return
	}
	at := q.CurrentIndex + 1
	if at > len(q.Entries) {
		at = len(q.Entries)
	}
	q.Entries = append(q.Entries[:at], append(entries, q.Entries[at:]...)...)
}
