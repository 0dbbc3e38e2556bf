// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDeckID holds the string denoting the deck_id field in the database.
	FieldDeckID = "deck_id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldIntervalBefore holds the string denoting the interval_before field in the database.
	FieldIntervalBefore = "interval_before"
	// FieldIntervalAfter holds the string denoting the interval_after field in the database.
	FieldIntervalAfter = "interval_after"
	// FieldEaseBefore holds the string denoting the ease_before field in the database.
	FieldEaseBefore = "ease_before"
	// FieldEaseAfter holds the string denoting the ease_after field in the database.
	FieldEaseAfter = "ease_after"
	// FieldMasteryAfter holds the string denoting the mastery_after field in the database.
	FieldMasteryAfter = "mastery_after"
	// FieldLapsesAfter holds the string denoting the lapses_after field in the database.
	FieldLapsesAfter = "lapses_after"
	// FieldLeech holds the string denoting the leech field in the database.
	FieldLeech = "leech"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldDeckID,
	FieldItemID,
	FieldRating,
	FieldIntervalBefore,
	FieldIntervalAfter,
	FieldEaseBefore,
	FieldEaseAfter,
	FieldMasteryAfter,
	FieldLapsesAfter,
	FieldLeech,
	FieldReviewedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	DeckIDValidator func(string) error
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// DefaultLeech holds the default value on creation for the "leech" field.
	DefaultLeech bool
	// DefaultReviewedAt holds the default value on creation for the "reviewed_at" field.
	DefaultReviewedAt func() time.Time
)

// OrderOption defines the ordering options for the ReviewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDeckID orders the results by the deck_id field.
func ByDeckID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeckID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByIntervalBefore orders the results by the interval_before field.
func ByIntervalBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalBefore, opts...).ToFunc()
}

// ByIntervalAfter orders the results by the interval_after field.
func ByIntervalAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalAfter, opts...).ToFunc()
}

// ByEaseBefore orders the results by the ease_before field.
func ByEaseBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseBefore, opts...).ToFunc()
}

// ByEaseAfter orders the results by the ease_after field.
func ByEaseAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseAfter, opts...).ToFunc()
}

// ByMasteryAfter orders the results by the mastery_after field.
func ByMasteryAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryAfter, opts...).ToFunc()
}

// ByLapsesAfter orders the results by the lapses_after field.
func ByLapsesAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapsesAfter, opts...).ToFunc()
}

// ByLeech orders the results by the leech field.
func ByLeech(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeech, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}
