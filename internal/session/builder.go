package session

import (
	"time"

	"github.com/dkessler/mnemo/internal/deck"
	"github.com/dkessler/mnemo/internal/srs"
)

// BuildQueue constructs a fresh session queue for the deck.
//
// Flashcard and quiz decks enqueue every non-suspended due card in authored
// order (cram mode takes all non-suspended cards regardless of dueness).
// Learning decks enqueue info cards and ungated eligible questions,
// interleaved in authored order; gated questions stay out until their info
// card is read. TotalItems for learning decks counts info cards plus every
// non-suspended question, gated or not, so progress is measured against the
// whole deck.
func BuildQueue(d *deck.Deck, mode Mode, asOf time.Time) *Queue {
	q := &Queue{
		DeckID:            d.ID,
		Mode:              mode,
		ReadInfoCards:     make(map[string]bool),
		UnlockedQuestions: make(map[string]bool),
	}

	if d.Kind != deck.KindLearning {
		for i := range d.Cards {
			c := &d.Cards[i]
			if !eligible(c.Review, mode, asOf) {
				continue
			}
			q.Entries = append(q.Entries, Entry{Kind: EntryCard, Card: c})
		}
		q.TotalItems = len(q.Entries)
		return q
	}

	gated := d.GatedQuestionIDs()
	ci, ii := 0, 0
	for ci < len(d.Cards) || ii < len(d.InfoCards) {
		takeCard := ii >= len(d.InfoCards) ||
			(ci < len(d.Cards) && d.Cards[ci].Position < d.InfoCards[ii].Position)
		if takeCard {
			c := &d.Cards[ci]
			ci++
			if gated[c.ID] || !eligible(c.Review, mode, asOf) {
				continue
			}
			q.Entries = append(q.Entries, Entry{Kind: EntryCard, Card: c})
			continue
		}
		q.Entries = append(q.Entries, Entry{Kind: EntryInfo, Info: &d.InfoCards[ii]})
		ii++
	}

	q.TotalItems = learningTotal(d)
	return q
}

// BuildFromSnapshot rehydrates a session queue from a persisted snapshot.
// Entry ids are re-resolved against the current deck; ids that no longer
// exist are dropped without failing, and the session continues with the
// reduced queue. The cursor, unlock sets, and completion counter are restored
// verbatim, so items that became due after the snapshot was taken are not
// picked up mid-session.
func BuildFromSnapshot(d *deck.Deck, mode Mode, snap *Snapshot) *Queue {
	q := &Queue{
		DeckID:            d.ID,
		Mode:              mode,
		CurrentIndex:      snap.CurrentIndex,
		ItemsCompleted:    snap.ItemsCompleted,
		ReadInfoCards:     toSet(snap.ReadInfoCards),
		UnlockedQuestions: toSet(snap.UnlockedQuestions),
	}
	for _, id := range snap.EntryIDs {
		if c := d.Card(id); c != nil {
			q.Entries = append(q.Entries, Entry{Kind: EntryCard, Card: c})
			continue
		}
		if info := d.InfoCard(id); info != nil {
			q.Entries = append(q.Entries, Entry{Kind: EntryInfo, Info: info})
		}
		// Unknown id: deck changed since the snapshot; drop the entry.
	}

	if q.CurrentIndex > len(q.Entries) {
		q.CurrentIndex = len(q.Entries)
	}
	q.DisplayIndex = q.CurrentIndex

	if d.Kind == deck.KindLearning {
		q.TotalItems = learningTotal(d)
	} else {
		q.TotalItems = len(q.Entries)
	}
	return q
}

// eligible reports whether a card belongs in the queue for the given mode.
func eligible(item srs.Item, mode Mode, asOf time.Time) bool {
	if item.Suspended {
		return false
	}
	if mode == ModeCram {
		return true
	}
	return item.IsDue(asOf)
}

// learningTotal is the progress denominator for a learning deck: info cards
// plus all non-suspended questions, whether or not they are gated.
func learningTotal(d *deck.Deck) int {
	n := len(d.InfoCards)
	for i := range d.Cards {
		if !d.Cards[i].Review.Suspended {
			n++
		}
	}
	return n
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
