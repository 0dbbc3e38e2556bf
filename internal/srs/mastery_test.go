package srs

import (
	"math"
	"testing"
	"time"
)

func reviewedItem(interval int, lastReviewed time.Time) Item {
	return Item{
		ID:           "it",
		Interval:     interval,
		Ease:         2.5,
		Due:          DayStart(lastReviewed).AddDate(0, 0, interval),
		LastReviewed: DayStart(lastReviewed),
		Mastery:      masteryForInterval(interval, 90),
	}
}

func TestEffectiveMasteryAtReviewTime(t *testing.T) {
	item := reviewedItem(10, day0)
	got := EffectiveMastery(item, day0, DefaultParams())
	approx(t, "EffectiveMastery", got, item.Mastery)
}

func TestEffectiveMasteryHalfLife(t *testing.T) {
	// Interval 10 with factor 2 gives a 20-day half-life.
	item := reviewedItem(10, day0)
	got := EffectiveMastery(item, day0.AddDate(0, 0, 20), DefaultParams())
	approx(t, "EffectiveMastery", got, item.Mastery/2)
}

func TestEffectiveMasteryNonIncreasing(t *testing.T) {
	item := reviewedItem(5, day0)
	p := DefaultParams()
	prev := math.Inf(1)
	for days := 0; days <= 60; days += 5 {
		m := EffectiveMastery(item, day0.AddDate(0, 0, days), p)
		if m > prev {
			t.Fatalf("mastery increased at day %d: %v > %v", days, m, prev)
		}
		prev = m
	}
}

func TestEffectiveMasteryZeroCases(t *testing.T) {
	p := DefaultParams()

	suspended := reviewedItem(10, day0)
	suspended.Suspended = true

	never := NewItem("fresh", p)

	tests := []struct {
		name string
		item Item
	}{
		{"suspended", suspended},
		{"never reviewed", never},
		{"zero mastery", Item{Interval: 4, LastReviewed: DayStart(day0)}},
	}
	for _, tt := range tests {
		if got := EffectiveMastery(tt.item, day0, p); got != 0 {
			t.Errorf("%s: EffectiveMastery = %v, want 0", tt.name, got)
		}
	}
}

func TestEffectiveMasteryClockBeforeReview(t *testing.T) {
	// A clock earlier than the last review does not inflate mastery.
	item := reviewedItem(10, day0)
	got := EffectiveMastery(item, day0.AddDate(0, 0, -3), DefaultParams())
	approx(t, "EffectiveMastery", got, item.Mastery)
}

func TestDueCount(t *testing.T) {
	today := DayStart(day0)
	overdue := reviewedItem(3, day0.AddDate(0, 0, -10))
	dueToday := reviewedItem(3, day0.AddDate(0, 0, -3))
	notDue := reviewedItem(30, day0.AddDate(0, 0, -1))
	suspended := reviewedItem(3, day0.AddDate(0, 0, -10))
	suspended.Suspended = true
	fresh := NewItem("n", DefaultParams()) // zero due date: immediately due

	items := []Item{overdue, dueToday, notDue, suspended, fresh}
	if got := DueCount(items, today); got != 3 {
		t.Errorf("DueCount = %d, want 3", got)
	}
	// Late in the day the answer is the same: day granularity.
	if got := DueCount(items, today.Add(23*time.Hour)); got != 3 {
		t.Errorf("DueCount end-of-day = %d, want 3", got)
	}
}

func TestCollectionMastery(t *testing.T) {
	p := DefaultParams()

	if got := CollectionMastery(nil, day0, p); got != 0 {
		t.Errorf("empty set = %v, want 0", got)
	}

	a := reviewedItem(10, day0)
	b := reviewedItem(30, day0)
	suspended := reviewedItem(90, day0)
	suspended.Suspended = true

	want := (a.Mastery + b.Mastery) / 2
	got := CollectionMastery([]Item{a, b, suspended}, day0, p)
	approx(t, "CollectionMastery", got, want)

	// All suspended counts as empty.
	if got := CollectionMastery([]Item{suspended}, day0, p); got != 0 {
		t.Errorf("all-suspended = %v, want 0", got)
	}
}
