// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "interval_before", Type: field.TypeInt},
		{Name: "interval_after", Type: field.TypeInt},
		{Name: "ease_before", Type: field.TypeFloat64},
		{Name: "ease_after", Type: field.TypeFloat64},
		{Name: "mastery_after", Type: field.TypeFloat64},
		{Name: "lapses_after", Type: field.TypeInt},
		{Name: "leech", Type: field.TypeBool, Default: false},
		{Name: "reviewed_at", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_deck_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_item_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_reviewed_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[12]},
			},
		},
	}
	// SessionSnapshotsColumns holds the columns for the "session_snapshots" table.
	SessionSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionSnapshotsTable holds the schema information for the "session_snapshots" table.
	SessionSnapshotsTable = &schema.Table{
		Name:       "session_snapshots",
		Columns:    SessionSnapshotsColumns,
		PrimaryKey: []*schema.Column{SessionSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionsnapshot_deck_id_mode",
				Unique:  true,
				Columns: []*schema.Column{SessionSnapshotsColumns[1], SessionSnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ReviewEventsTable,
		SessionSnapshotsTable,
	}
)

func init() {
}
