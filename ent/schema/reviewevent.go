package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent is the append-only log of scheduling decisions: one row per
// rated review, capturing the item's state before and after the scheduler
// ran. Cram reviews are never logged.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("UUID grouping the events of one sitting"),
		field.String("deck_id").
			NotEmpty().
			Immutable(),
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.Int("rating").
			Immutable().
			Comment("1=again 2=hard 3=good 4=easy"),
		field.Int("interval_before").
			Immutable(),
		field.Int("interval_after").
			Immutable(),
		field.Float("ease_before").
			Immutable(),
		field.Float("ease_after").
			Immutable(),
		field.Float("mastery_after").
			Immutable(),
		field.Int("lapses_after").
			Immutable(),
		field.Bool("leech").
			Default(false).
			Immutable().
			Comment("Whether this review tripped the leech policy"),
		field.Time("reviewed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck_id"),
		index.Fields("item_id"),
		index.Fields("session_id"),
		index.Fields("reviewed_at"),
	}
}
