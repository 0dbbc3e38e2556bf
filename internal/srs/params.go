package srs

// Params holds the tunable constants of the scheduling algorithm.
// Use DefaultParams for the standard values; every field is exposed because
// the half-life and lapse-penalty heuristics are product choices, not
// derived invariants.
type Params struct {
	// MinEase is the floor for the ease multiplier. There is no ceiling.
	MinEase float64

	// DefaultEase is the ease assigned to new and reset items.
	DefaultEase float64

	// Per-rating ease adjustments applied on every review.
	EaseAgain float64
	EaseHard  float64
	EaseGood  float64
	EaseEasy  float64

	// LapseEasePenalty is the extra ease reduction per lapse beyond the
	// second consecutive Again, suppressing chronically-failed items.
	LapseEasePenalty float64

	// RelearnDays is the fixed interval an item falls back to after Again.
	RelearnDays int

	// Graduating intervals for the first successful review of a new item,
	// keyed by rating. Independent of ease.
	GraduateHard int
	GraduateGood int
	GraduateEasy int

	// Interval multipliers for mature reviews. Good is implicitly 1.
	HardMultiplier float64
	EasyMultiplier float64

	// MasteryCapDays is the interval considered fully mastered; the stored
	// mastery level saturates toward 1 as the interval approaches it.
	MasteryCapDays int

	// HalfLifeFactor scales an item's interval into its retention
	// half-life for decay queries (half-life = interval * factor).
	HalfLifeFactor float64
}

// DefaultParams returns the standard algorithm constants.
func DefaultParams() Params {
	return Params{
		MinEase:          1.3,
		DefaultEase:      2.5,
		EaseAgain:        -0.2,
		EaseHard:         -0.15,
		EaseGood:         0,
		EaseEasy:         0.15,
		LapseEasePenalty: 0.05,
		RelearnDays:      1,
		GraduateHard:     1,
		GraduateGood:     3,
		GraduateEasy:     5,
		HardMultiplier:   0.8,
		EasyMultiplier:   1.3,
		MasteryCapDays:   90,
		HalfLifeFactor:   2.0,
	}
}

// easeDelta returns the ease adjustment for a rating.
func (p Params) easeDelta(r Rating) float64 {
	switch r {
	case Again:
		return p.EaseAgain
	case Hard:
		return p.EaseHard
	case Easy:
		return p.EaseEasy
	default:
		return p.EaseGood
	}
}

// graduatingInterval returns the first interval for a new item, by rating.
func (p Params) graduatingInterval(r Rating) int {
	switch r {
	case Hard:
		return p.GraduateHard
	case Easy:
		return p.GraduateEasy
	default:
		return p.GraduateGood
	}
}

// intervalMultiplier returns the mature-review interval multiplier.
func (p Params) intervalMultiplier(r Rating) float64 {
	switch r {
	case Hard:
		return p.HardMultiplier
	case Easy:
		return p.EasyMultiplier
	default:
		return 1
	}
}
