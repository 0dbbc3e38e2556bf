package srs

import (
	"fmt"
	"math"
	"time"
)

// NextState computes the item's scheduling state after a review on the given
// day. It is a pure function: the input item is not mutated, and the clock is
// an explicit argument. Returns ErrInvalidRating for out-of-range ratings,
// in which case the returned item is the input unchanged.
func NextState(item Item, rating Rating, today time.Time, p Params) (Item, error) {
	if !rating.IsValid() {
		return item, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	today = DayStart(today)
	next := item

	if rating == Again {
		next.Lapses++
	} else {
		next.Lapses = 0
	}

	ease := item.Ease + p.easeDelta(rating)
	if rating == Again && next.Lapses > 2 {
		// Chronically-failed items get their ease suppressed further,
		// proportional to how far past two lapses they are.
		ease -= float64(next.Lapses-2) * p.LapseEasePenalty
	}
	if ease < p.MinEase {
		ease = p.MinEase
	}
	next.Ease = ease

	var interval int
	switch {
	case rating == Again:
		// Back into short-term relearning regardless of prior interval.
		interval = p.RelearnDays
	case item.Interval == 0:
		// First-ever successful review: graduate on the fixed table.
		interval = p.graduatingInterval(rating)
	default:
		interval = int(math.Ceil(float64(item.Interval) * ease * p.intervalMultiplier(rating)))
	}
	if interval < 1 {
		interval = 1
	}

	next.Interval = interval
	next.Due = today.AddDate(0, 0, interval)
	next.LastReviewed = today
	next.Mastery = masteryForInterval(interval, p.MasteryCapDays)
	return next, nil
}

// Reset returns the item to its initial un-reviewed state: no interval, no
// mastery, default ease, unsuspended, due today. Tags are kept. Idempotent.
// Administrative operation; never part of the normal review flow.
func Reset(item Item, today time.Time, p Params) Item {
	item.Interval = 0
	item.Ease = p.DefaultEase
	item.Due = DayStart(today)
	item.LastReviewed = time.Time{}
	item.Lapses = 0
	item.Mastery = 0
	item.Suspended = false
	return item
}

// masteryForInterval maps a review interval to a stored mastery level:
// logarithmic growth that saturates at 1 once the interval reaches capDays.
func masteryForInterval(interval, capDays int) float64 {
	if interval <= 0 || capDays <= 0 {
		return 0
	}
	m := math.Log1p(float64(interval)) / math.Log1p(float64(capDays))
	return math.Min(1, m)
}
