package srs

import (
	"testing"
)

func lapsedItem(lapses int) Item {
	item := matureItem()
	item.Lapses = lapses
	return item
}

func TestCheckLeechBelowThreshold(t *testing.T) {
	cfg := DefaultLeechConfig()
	before := lapsedItem(cfg.Threshold - 2)
	after, err := NextState(before, Again, day0, DefaultParams())
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	// Lapses is now threshold-1: not yet a leech.
	got, flagged := CheckLeech(before, after, cfg)
	if flagged {
		t.Error("flagged below threshold")
	}
	if got.Suspended {
		t.Error("suspended below threshold")
	}
}

func TestCheckLeechSuspendAtThreshold(t *testing.T) {
	cfg := DefaultLeechConfig()
	before := lapsedItem(cfg.Threshold - 1)
	after, err := NextState(before, Again, day0, DefaultParams())
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	got, flagged := CheckLeech(before, after, cfg)
	if !flagged {
		t.Fatal("not flagged at threshold")
	}
	if !got.Suspended {
		t.Error("suspend action should suspend the item")
	}
}

func TestCheckLeechTag(t *testing.T) {
	cfg := LeechConfig{Threshold: 8, Action: LeechTag}
	before := lapsedItem(7)
	after, _ := NextState(before, Again, day0, DefaultParams())

	got, flagged := CheckLeech(before, after, cfg)
	if !flagged {
		t.Fatal("not flagged")
	}
	if !got.HasTag(LeechTagName) {
		t.Error("tag action should append the leech tag")
	}
	if got.Suspended {
		t.Error("tag action must not suspend")
	}

	// A second detection does not duplicate the tag.
	again, _ := CheckLeech(got, got, cfg)
	count := 0
	for _, tag := range again.Tags {
		if tag == LeechTagName {
			count++
		}
	}
	if count != 1 {
		t.Errorf("leech tag appears %d times, want 1", count)
	}
}

func TestCheckLeechWarnDoesNotMutate(t *testing.T) {
	cfg := LeechConfig{Threshold: 8, Action: LeechWarn}
	before := lapsedItem(7)
	after, _ := NextState(before, Again, day0, DefaultParams())

	got, flagged := CheckLeech(before, after, cfg)
	if !flagged {
		t.Fatal("not flagged")
	}
	if got.Suspended || got.HasTag(LeechTagName) {
		t.Errorf("warn action mutated item: %+v", got)
	}
}

func TestCheckLeechAlreadySuspended(t *testing.T) {
	cfg := DefaultLeechConfig()
	before := lapsedItem(20)
	before.Suspended = true
	after := before
	after.Lapses++

	if _, flagged := CheckLeech(before, after, cfg); flagged {
		t.Error("items suspended before the review are not re-flagged")
	}
}
