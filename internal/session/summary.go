package session

import (
	"time"

	"github.com/dkessler/mnemo/internal/srs"
)

// ReviewRecord captures one scheduling decision: the item as it went into
// the review, the item as it came out, and the rating that drove it.
// Progress-history collaborators persist these.
type ReviewRecord struct {
	SessionID  string
	DeckID     string
	ItemID     string
	Before     srs.Item
	After      srs.Item
	Rating     srs.Rating
	ReviewedAt time.Time
}

// Summary holds the running tallies shown when a session ends.
type Summary struct {
	Reviewed          int
	ByRating          map[srs.Rating]int
	Suspended         int
	InfoCardsRead     int
	QuestionsUnlocked int
	Leeches           int
}

func newSummary() Summary {
	return Summary{ByRating: make(map[srs.Rating]int, 4)}
}
