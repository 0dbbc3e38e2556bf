package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot holds the resumable state of an in-progress study
// session. At most one row exists per deck and mode; finishing or
// abandoning-for-good a session deletes the row.
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("deck_id").
			NotEmpty().
			Comment("Deck the session belongs to"),
		field.String("mode").
			NotEmpty().
			Comment("Session mode (review; cram sessions are never persisted)"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized queue state as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the snapshot was last written"),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck_id", "mode").Unique(),
	}
}
