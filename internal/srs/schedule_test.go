package srs

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

var day0 = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func matureItem() Item {
	return Item{
		ID:           "it-1",
		Interval:     3,
		Ease:         2.5,
		Due:          DayStart(day0),
		LastReviewed: DayStart(day0).AddDate(0, 0, -3),
		Mastery:      masteryForInterval(3, 90),
	}
}

func TestNextStateInvalidRating(t *testing.T) {
	item := matureItem()
	for _, r := range []Rating{0, 5, -1} {
		got, err := NextState(item, r, day0, DefaultParams())
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", r, err)
		}
		if !reflect.DeepEqual(got, item) {
			t.Errorf("rating %d: item mutated on invalid input", r)
		}
	}
}

func TestNextStateAgainUsesRelearnInterval(t *testing.T) {
	p := DefaultParams()
	for _, interval := range []int{0, 1, 3, 50, 365} {
		item := matureItem()
		item.Interval = interval
		got, err := NextState(item, Again, day0, p)
		if err != nil {
			t.Fatalf("NextState: %v", err)
		}
		if got.Interval != p.RelearnDays {
			t.Errorf("interval %d: got %d, want %d", interval, got.Interval, p.RelearnDays)
		}
		if got.Lapses != item.Lapses+1 {
			t.Errorf("interval %d: lapses = %d, want %d", interval, got.Lapses, item.Lapses+1)
		}
	}
}

func TestNextStateGoodScenario(t *testing.T) {
	// {interval:3, ease:2.5} rated Good: ceil(3*2.5*1) = 8, due 8 days out.
	got, err := NextState(matureItem(), Good, day0, DefaultParams())
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got.Interval != 8 {
		t.Errorf("Interval = %d, want 8", got.Interval)
	}
	wantDue := DayStart(day0).AddDate(0, 0, 8)
	if !got.Due.Equal(wantDue) {
		t.Errorf("Due = %v, want %v", got.Due, wantDue)
	}
	if !got.LastReviewed.Equal(DayStart(day0)) {
		t.Errorf("LastReviewed = %v, want %v", got.LastReviewed, DayStart(day0))
	}
	if got.Lapses != 0 {
		t.Errorf("Lapses = %d, want 0", got.Lapses)
	}
}

func TestNextStateGraduation(t *testing.T) {
	p := DefaultParams()
	fresh := NewItem("new", p)

	tests := []struct {
		rating Rating
		want   int
	}{
		{Hard, p.GraduateHard},
		{Good, p.GraduateGood},
		{Easy, p.GraduateEasy},
	}
	for _, tt := range tests {
		got, err := NextState(fresh, tt.rating, day0, p)
		if err != nil {
			t.Fatalf("NextState(%v): %v", tt.rating, err)
		}
		if got.Interval != tt.want {
			t.Errorf("%v: Interval = %d, want %d", tt.rating, got.Interval, tt.want)
		}
	}

	// Fresh item rated Easy: mastery = log(1+5)/log(1+90).
	got, _ := NextState(fresh, Easy, day0, p)
	approx(t, "Mastery", got.Mastery, math.Log(6)/math.Log(91))
}

func TestNextStateIntervalMonotonicInRating(t *testing.T) {
	p := DefaultParams()
	for _, interval := range []int{1, 3, 10, 60} {
		item := matureItem()
		item.Interval = interval
		hard, _ := NextState(item, Hard, day0, p)
		good, _ := NextState(item, Good, day0, p)
		easy, _ := NextState(item, Easy, day0, p)
		if hard.Interval > good.Interval || good.Interval > easy.Interval {
			t.Errorf("interval %d: Hard=%d Good=%d Easy=%d not monotonic",
				interval, hard.Interval, good.Interval, easy.Interval)
		}
	}
}

func TestNextStateEaseFloor(t *testing.T) {
	p := DefaultParams()
	item := matureItem()
	item.Ease = p.MinEase
	item.Lapses = 10
	for _, r := range AllRatings() {
		got, err := NextState(item, r, day0, p)
		if err != nil {
			t.Fatalf("NextState(%v): %v", r, err)
		}
		if got.Ease < p.MinEase {
			t.Errorf("%v: Ease = %v, below floor %v", r, got.Ease, p.MinEase)
		}
	}
}

func TestNextStateLapsePenalty(t *testing.T) {
	p := DefaultParams()
	item := matureItem()
	item.Lapses = 4 // becomes 5 after this Again; 3 beyond the grace of 2

	got, err := NextState(item, Again, day0, p)
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	want := item.Ease + p.EaseAgain - 3*p.LapseEasePenalty
	approx(t, "Ease", got.Ease, want)
}

func TestNextStateNonAgainResetsLapses(t *testing.T) {
	item := matureItem()
	item.Lapses = 6
	for _, r := range []Rating{Hard, Good, Easy} {
		got, _ := NextState(item, r, day0, DefaultParams())
		if got.Lapses != 0 {
			t.Errorf("%v: Lapses = %d, want 0", r, got.Lapses)
		}
	}
}

func TestNextStateClampsComputedInterval(t *testing.T) {
	// Hard on a 1-day item at the ease floor: ceil(1*1.3*0.8) = 2; force a
	// degenerate multiplier to check the clamp to 1.
	p := DefaultParams()
	p.HardMultiplier = 0.01
	item := matureItem()
	item.Interval = 1
	item.Ease = p.MinEase
	got, err := NextState(item, Hard, day0, p)
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got.Interval < 1 {
		t.Errorf("Interval = %d, want >= 1", got.Interval)
	}
}

func TestNextStateDayGranularity(t *testing.T) {
	// Two reviews at different times of the same day produce identical state.
	morning := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	a, _ := NextState(matureItem(), Good, morning, DefaultParams())
	b, _ := NextState(matureItem(), Good, evening, DefaultParams())
	if !a.Due.Equal(b.Due) || !a.LastReviewed.Equal(b.LastReviewed) {
		t.Errorf("same-day reviews diverge: %v vs %v", a, b)
	}
}

func TestResetIdempotent(t *testing.T) {
	p := DefaultParams()
	item := matureItem()
	item.Suspended = true
	item.Lapses = 9
	item.Tags = []string{"leech"}

	once := Reset(item, day0, p)
	twice := Reset(once, day0, p)

	if once.Interval != 0 || once.Mastery != 0 || once.Lapses != 0 || once.Suspended {
		t.Errorf("Reset left state behind: %+v", once)
	}
	approx(t, "Ease", once.Ease, p.DefaultEase)
	if !once.Due.Equal(DayStart(day0)) {
		t.Errorf("Due = %v, want %v", once.Due, DayStart(day0))
	}
	if !once.LastReviewed.IsZero() {
		t.Errorf("LastReviewed = %v, want zero", once.LastReviewed)
	}
	if !once.HasTag("leech") {
		t.Error("Reset should keep tags")
	}
	if once.Interval != twice.Interval || once.Ease != twice.Ease ||
		!once.Due.Equal(twice.Due) || once.Mastery != twice.Mastery {
		t.Errorf("Reset not idempotent: %+v vs %+v", once, twice)
	}
}

func TestMasteryForIntervalSaturates(t *testing.T) {
	if m := masteryForInterval(90, 90); m != 1 {
		t.Errorf("mastery at cap = %v, want 1", m)
	}
	if m := masteryForInterval(500, 90); m != 1 {
		t.Errorf("mastery beyond cap = %v, want 1", m)
	}
	prev := 0.0
	for _, ivl := range []int{1, 2, 5, 20, 60, 89} {
		m := masteryForInterval(ivl, 90)
		if m <= prev || m >= 1 {
			t.Errorf("mastery(%d) = %v, want strictly increasing below 1", ivl, m)
		}
		prev = m
	}
}
