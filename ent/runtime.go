// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dkessler/mnemo/ent/reviewevent"
	"github.com/dkessler/mnemo/ent/schema"
	"github.com/dkessler/mnemo/ent/sessionsnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescDeckID is the schema descriptor for deck_id field.
	revieweventDescDeckID := revieweventFields[1].Descriptor()
	// reviewevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	reviewevent.DeckIDValidator = revieweventDescDeckID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[2].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescLeech is the schema descriptor for leech field.
	revieweventDescLeech := revieweventFields[10].Descriptor()
	// reviewevent.DefaultLeech holds the default value on creation for the leech field.
	reviewevent.DefaultLeech = revieweventDescLeech.Default.(bool)
	// revieweventDescReviewedAt is the schema descriptor for reviewed_at field.
	revieweventDescReviewedAt := revieweventFields[11].Descriptor()
	// reviewevent.DefaultReviewedAt holds the default value on creation for the reviewed_at field.
	reviewevent.DefaultReviewedAt = revieweventDescReviewedAt.Default.(func() time.Time)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescDeckID is the schema descriptor for deck_id field.
	sessionsnapshotDescDeckID := sessionsnapshotFields[0].Descriptor()
	// sessionsnapshot.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	sessionsnapshot.DeckIDValidator = sessionsnapshotDescDeckID.Validators[0].(func(string) error)
	// sessionsnapshotDescMode is the schema descriptor for mode field.
	sessionsnapshotDescMode := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionsnapshot.ModeValidator = sessionsnapshotDescMode.Validators[0].(func(string) error)
	// sessionsnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	sessionsnapshotDescUpdatedAt := sessionsnapshotFields[3].Descriptor()
	// sessionsnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionsnapshot.DefaultUpdatedAt = sessionsnapshotDescUpdatedAt.Default.(func() time.Time)
	// sessionsnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionsnapshot.UpdateDefaultUpdatedAt = sessionsnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
}
