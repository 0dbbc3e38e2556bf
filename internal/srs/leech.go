package srs

// LeechAction selects what happens to an item once it is flagged as a leech.
type LeechAction string

const (
	LeechSuspend LeechAction = "suspend" // take the item out of circulation
	LeechTag     LeechAction = "tag"     // append the leech tag, keep reviewing
	LeechWarn    LeechAction = "warn"    // advisory only, no mutation
)

// LeechTagName is the tag appended by the tag action.
const LeechTagName = "leech"

// LeechConfig configures leech detection.
type LeechConfig struct {
	// Threshold is the lapse count at which an item becomes a leech.
	Threshold int
	Action    LeechAction
}

// DefaultLeechConfig returns the standard leech policy.
func DefaultLeechConfig() LeechConfig {
	return LeechConfig{Threshold: 8, Action: LeechSuspend}
}

// CheckLeech applies the leech policy to an item that has just been
// rescheduled. before is the item as it was going into the review, after is
// the NextState result. An item is a leech when its lapse count has reached
// the threshold and it was not already suspended before the review.
//
// The returned item reflects the configured action (suspend or tag); for the
// warn action the item is returned untouched. The boolean reports whether the
// item was flagged this review.
func CheckLeech(before, after Item, cfg LeechConfig) (Item, bool) {
	if cfg.Threshold <= 0 || after.Lapses < cfg.Threshold || before.Suspended {
		return after, false
	}
	switch cfg.Action {
	case LeechSuspend:
		after.Suspended = true
	case LeechTag:
		if !after.HasTag(LeechTagName) {
			after = after.withTag(LeechTagName)
		}
	}
	return after, true
}
