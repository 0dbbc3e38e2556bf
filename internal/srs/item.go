package srs

import "time"

// Item holds the scheduling state for a single reviewable item.
// Content (card front/back, question text) is not the scheduler's concern;
// callers attach an Item to whatever they are scheduling.
type Item struct {
	ID string `json:"id,omitempty"`

	// Interval is the number of days until the item is next due.
	// 0 means the item has never been successfully reviewed.
	Interval int `json:"interval"`

	// Ease is the growth multiplier applied to the interval after a
	// successful mature review. Never drops below Params.MinEase.
	Ease float64 `json:"ease"`

	// Due is the next review date, at day granularity.
	Due time.Time `json:"due"`

	// LastReviewed is the date of the most recent review.
	// The zero time means the item has never been reviewed.
	LastReviewed time.Time `json:"last_reviewed"`

	// Lapses counts Again ratings since the last non-Again rating.
	Lapses int `json:"lapses"`

	// Mastery is the retention estimate recorded at the last review,
	// in [0,1]. Decays over time; see EffectiveMastery.
	Mastery float64 `json:"mastery"`

	Suspended bool     `json:"suspended,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// NewItem returns an un-reviewed item with the default ease.
func NewItem(id string, p Params) Item {
	return Item{ID: id, Ease: p.DefaultEase}
}

// NeverReviewed reports whether the item has never been successfully reviewed.
func (it Item) NeverReviewed() bool {
	return it.LastReviewed.IsZero()
}

// IsDue reports whether the item is due on or before asOf. Comparison is at
// day granularity, so an item due any time today is due all of today.
// Items with a zero due date are due immediately.
func (it Item) IsDue(asOf time.Time) bool {
	return !DayStart(it.Due).After(DayStart(asOf))
}

// HasTag reports whether the item carries the given tag.
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// withTag returns a copy of the item with the tag appended. The tag slice is
// copied so the result never shares backing storage with the receiver.
func (it Item) withTag(tag string) Item {
	tags := make([]string, len(it.Tags), len(it.Tags)+1)
	copy(tags, it.Tags)
	it.Tags = append(tags, tag)
	return it
}

// DayStart normalizes t to midnight in its own location. All scheduling
// arithmetic works on day-normalized times so multiple reviews on one
// calendar day behave consistently.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DayStart(b).Sub(DayStart(a)).Hours() / 24)
}
