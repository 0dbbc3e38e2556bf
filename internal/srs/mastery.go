package srs

import (
	"math"
	"time"
)

// EffectiveMastery returns the item's decayed retention estimate in [0,1] at
// the given time. The stored mastery level is a point-in-time value from the
// last review; retention is modeled as exponential decay with a per-item
// half-life of interval * HalfLifeFactor days. Suspended and never-reviewed
// items report 0. Computed on demand; nothing is stored.
func EffectiveMastery(item Item, now time.Time, p Params) float64 {
	if item.Suspended || item.Mastery == 0 || item.Interval == 0 || item.NeverReviewed() {
		return 0
	}
	halfLife := float64(item.Interval) * p.HalfLifeFactor
	if halfLife <= 0 {
		return 0
	}
	days := float64(DaysBetween(item.LastReviewed, now))
	if days < 0 {
		days = 0
	}
	return item.Mastery * math.Pow(0.5, days/halfLife)
}

// DueCount returns the number of non-suspended items due on or before asOf,
// at day granularity (an item due today counts all of today).
func DueCount(items []Item, asOf time.Time) int {
	n := 0
	for _, it := range items {
		if it.Suspended {
			continue
		}
		if it.IsDue(asOf) {
			n++
		}
	}
	return n
}

// CollectionMastery returns the arithmetic mean of EffectiveMastery over the
// non-suspended items, or 0 when there are none.
func CollectionMastery(items []Item, now time.Time, p Params) float64 {
	sum := 0.0
	n := 0
	for _, it := range items {
		if it.Suspended {
			continue
		}
		sum += EffectiveMastery(it, now, p)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
