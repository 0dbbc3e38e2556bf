// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dkessler/mnemo/ent/reviewevent"
)

// ReviewEvent is the model entity for the ReviewEvent schema.
type ReviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID grouping the events of one sitting
	SessionID string `json:"session_id,omitempty"`
	// DeckID holds the value of the "deck_id" field.
	DeckID string `json:"deck_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID string `json:"item_id,omitempty"`
	// 1=again 2=hard 3=good 4=easy
	Rating int `json:"rating,omitempty"`
	// IntervalBefore holds the value of the "interval_before" field.
	IntervalBefore int `json:"interval_before,omitempty"`
	// IntervalAfter holds the value of the "interval_after" field.
	IntervalAfter int `json:"interval_after,omitempty"`
	// EaseBefore holds the value of the "ease_before" field.
	EaseBefore float64 `json:"ease_before,omitempty"`
	// EaseAfter holds the value of the "ease_after" field.
	EaseAfter float64 `json:"ease_after,omitempty"`
	// MasteryAfter holds the value of the "mastery_after" field.
	MasteryAfter float64 `json:"mastery_after,omitempty"`
	// LapsesAfter holds the value of the "lapses_after" field.
	LapsesAfter int `json:"lapses_after,omitempty"`
	// Whether this review tripped the leech policy
	Leech bool `json:"leech,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt   time.Time `json:"reviewed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldLeech:
			values[i] = new(sql.NullBool)
		case reviewevent.FieldEaseBefore, reviewevent.FieldEaseAfter, reviewevent.FieldMasteryAfter:
			values[i] = new(sql.NullFloat64)
		case reviewevent.FieldID, reviewevent.FieldRating, reviewevent.FieldIntervalBefore, reviewevent.FieldIntervalAfter, reviewevent.FieldLapsesAfter:
			values[i] = new(sql.NullInt64)
		case reviewevent.FieldSessionID, reviewevent.FieldDeckID, reviewevent.FieldItemID:
			values[i] = new(sql.NullString)
		case reviewevent.FieldReviewedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEvent fields.
func (_m *ReviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case reviewevent.FieldDeckID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deck_id", values[i])
			} else if value.Valid {
				_m.DeckID = value.String
			}
		case reviewevent.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case reviewevent.FieldRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = int(value.Int64)
			}
		case reviewevent.FieldIntervalBefore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_before", values[i])
			} else if value.Valid {
				_m.IntervalBefore = int(value.Int64)
			}
		case reviewevent.FieldIntervalAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_after", values[i])
			} else if value.Valid {
				_m.IntervalAfter = int(value.Int64)
			}
		case reviewevent.FieldEaseBefore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_before", values[i])
			} else if value.Valid {
				_m.EaseBefore = value.Float64
			}
		case reviewevent.FieldEaseAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_after", values[i])
			} else if value.Valid {
				_m.EaseAfter = value.Float64
			}
		case reviewevent.FieldMasteryAfter:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_after", values[i])
			} else if value.Valid {
				_m.MasteryAfter = value.Float64
			}
		case reviewevent.FieldLapsesAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapses_after", values[i])
			} else if value.Valid {
				_m.LapsesAfter = int(value.Int64)
			}
		case reviewevent.FieldLeech:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field leech", values[i])
			} else if value.Valid {
				_m.Leech = value.Bool
			}
		case reviewevent.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewEvent.
// Note that you need to call ReviewEvent.Unwrap() before calling this method if this ReviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEvent) Update() *ReviewEventUpdateOne {
	return NewReviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEvent) Unwrap() *ReviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("deck_id=")
	builder.WriteString(_m.DeckID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("interval_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalBefore))
	builder.WriteString(", ")
	builder.WriteString("interval_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalAfter))
	builder.WriteString(", ")
	builder.WriteString("ease_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseBefore))
	builder.WriteString(", ")
	builder.WriteString("ease_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseAfter))
	builder.WriteString(", ")
	builder.WriteString("mastery_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryAfter))
	builder.WriteString(", ")
	builder.WriteString("lapses_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.LapsesAfter))
	builder.WriteString(", ")
	builder.WriteString("leech=")
	builder.WriteString(fmt.Sprintf("%v", _m.Leech))
	builder.WriteString(", ")
	builder.WriteString("reviewed_at=")
	builder.WriteString(_m.ReviewedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEvents is a parsable slice of ReviewEvent.
type ReviewEvents []*ReviewEvent
