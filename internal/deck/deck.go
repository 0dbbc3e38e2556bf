// Package deck models the content collections the engine studies: flashcard
// decks, quiz decks, and learning decks (questions gated behind info cards).
// Card content is opaque to the scheduler; only the attached review state and
// the unlock graph matter to the engine.
package deck

import (
	"fmt"

	"github.com/dkessler/mnemo/internal/srs"
)

// Kind identifies the shape of a deck.
type Kind string

const (
	KindFlashcards Kind = "flashcards"
	KindQuiz       Kind = "quiz"
	KindLearning   Kind = "learning"
)

// IsValid reports whether k is a known deck kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindFlashcards, KindQuiz, KindLearning:
		return true
	}
	return false
}

// Option is one answer choice on a quiz or learning question.
type Option struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Card is a reviewable entry: a flashcard (Front/Back) or a question
// (Prompt/Options/Answer), depending on the deck kind. Position is the
// card's index in the deck's authored order, shared with info cards.
type Card struct {
	ID       string
	Position int

	// Flashcard content.
	Front string
	Back  string

	// Question content.
	Prompt  string
	Options []Option
	Answer  string // id of the correct option; display-only

	Review srs.Item
}

// Option returns the card's option with the given id, or nil.
func (c *Card) Option(id string) *Option {
	for i := range c.Options {
		if c.Options[i].ID == id {
			return &c.Options[i]
		}
	}
	return nil
}

// InfoCard is expository content in a learning deck. Reading it during a
// session unlocks the questions listed in Unlocks.
type InfoCard struct {
	ID       string
	Position int
	Title    string
	Body     string
	Unlocks  []string
}

// Deck is a named collection of cards, plus info cards for learning decks.
// Cards and InfoCards each preserve authored order; Position interleaves the
// two for learning decks.
type Deck struct {
	ID        string
	Name      string
	Kind      Kind
	Cards     []Card
	InfoCards []InfoCard
}

// Card returns a pointer to the card with the given id, or nil.
func (d *Deck) Card(id string) *Card {
	for i := range d.Cards {
		if d.Cards[i].ID == id {
			return &d.Cards[i]
		}
	}
	return nil
}

// InfoCard returns a pointer to the info card with the given id, or nil.
func (d *Deck) InfoCard(id string) *InfoCard {
	for i := range d.InfoCards {
		if d.InfoCards[i].ID == id {
			return &d.InfoCards[i]
		}
	}
	return nil
}

// Items returns the review state of every card, in authored order.
// Used by aggregate queries (due counts, collection mastery).
func (d *Deck) Items() []srs.Item {
	items := make([]srs.Item, len(d.Cards))
	for i := range d.Cards {
		items[i] = d.Cards[i].Review
	}
	return items
}

// GatedQuestionIDs returns the set of question ids named in any info card's
// unlock list. Gated questions never enter a session queue until their info
// card has been read.
func (d *Deck) GatedQuestionIDs() map[string]bool {
	gated := make(map[string]bool)
	for i := range d.InfoCards {
		for _, id := range d.InfoCards[i].Unlocks {
			gated[id] = true
		}
	}
	return gated
}

// Validate checks structural consistency: a known kind, unique ids, info
// cards only on learning decks, and unlock references that resolve.
func (d *Deck) Validate() error {
	if !d.Kind.IsValid() {
		return fmt.Errorf("deck %q: unknown kind %q", d.Name, d.Kind)
	}
	if d.Kind != KindLearning && len(d.InfoCards) > 0 {
		return fmt.Errorf("deck %q: info cards only belong in learning decks", d.Name)
	}

	seen := make(map[string]bool, len(d.Cards)+len(d.InfoCards))
	for i := range d.Cards {
		id := d.Cards[i].ID
		if id == "" {
			return fmt.Errorf("deck %q: card %d has no id", d.Name, i)
		}
		if seen[id] {
			return fmt.Errorf("deck %q: duplicate id %q", d.Name, id)
		}
		seen[id] = true
	}
	for i := range d.InfoCards {
		id := d.InfoCards[i].ID
		if id == "" {
			return fmt.Errorf("deck %q: info card %d has no id", d.Name, i)
		}
		if seen[id] {
			return fmt.Errorf("deck %q: duplicate id %q", d.Name, id)
		}
		seen[id] = true
		for _, target := range d.InfoCards[i].Unlocks {
			if d.Card(target) == nil {
				return fmt.Errorf("deck %q: info card %q unlocks unknown question %q", d.Name, id, target)
			}
		}
	}
	return nil
}
