// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dkessler/mnemo/ent/reviewevent"
)

// ReviewEventCreate is the builder for creating a ReviewEvent entity.
type ReviewEventCreate struct {
	config
	mutation *ReviewEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ReviewEventCreate) SetSessionID(v string) *ReviewEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDeckID sets the "deck_id" field.
func (_c *ReviewEventCreate) SetDeckID(v string) *ReviewEventCreate {
	_c.mutation.SetDeckID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewEventCreate) SetItemID(v string) *ReviewEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *ReviewEventCreate) SetRating(v int) *ReviewEventCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetIntervalBefore sets the "interval_before" field.
func (_c *ReviewEventCreate) SetIntervalBefore(v int) *ReviewEventCreate {
	_c.mutation.SetIntervalBefore(v)
	return _c
}

// SetIntervalAfter sets the "interval_after" field.
func (_c *ReviewEventCreate) SetIntervalAfter(v int) *ReviewEventCreate {
	_c.mutation.SetIntervalAfter(v)
	return _c
}

// SetEaseBefore sets the "ease_before" field.
func (_c *ReviewEventCreate) SetEaseBefore(v float64) *ReviewEventCreate {
	_c.mutation.SetEaseBefore(v)
	return _c
}

// SetEaseAfter sets the "ease_after" field.
func (_c *ReviewEventCreate) SetEaseAfter(v float64) *ReviewEventCreate {
	_c.mutation.SetEaseAfter(v)
	return _c
}

// SetMasteryAfter sets the "mastery_after" field.
func (_c *ReviewEventCreate) SetMasteryAfter(v float64) *ReviewEventCreate {
	_c.mutation.SetMasteryAfter(v)
	return _c
}

// SetLapsesAfter sets the "lapses_after" field.
func (_c *ReviewEventCreate) SetLapsesAfter(v int) *ReviewEventCreate {
	_c.mutation.SetLapsesAfter(v)
	return _c
}

// SetLeech sets the "leech" field.
func (_c *ReviewEventCreate) SetLeech(v bool) *ReviewEventCreate {
	_c.mutation.SetLeech(v)
	return _c
}

// SetNillableLeech sets the "leech" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableLeech(v *bool) *ReviewEventCreate {
	if v != nil {
		_c.SetLeech(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ReviewEventCreate) SetReviewedAt(v time.Time) *ReviewEventCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ReviewEventCreate) SetNillableReviewedAt(v *time.Time) *ReviewEventCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_c *ReviewEventCreate) Mutation() *ReviewEventMutation {
	return _c.mutation
}

// Save creates the ReviewEvent in the database.
func (_c *ReviewEventCreate) Save(ctx context.Context) (*ReviewEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEventCreate) SaveX(ctx context.Context) *ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEventCreate) defaults() {
	if _, ok := _c.mutation.Leech(); !ok {
		v := reviewevent.DefaultLeech
		_c.mutation.SetLeech(v)
	}
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		v := reviewevent.DefaultReviewedAt()
		_c.mutation.SetReviewedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReviewEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeckID(); !ok {
		return &ValidationError{Name: "deck_id", err: errors.New(`ent: missing required field "ReviewEvent.deck_id"`)}
	}
	if v, ok := _c.mutation.DeckID(); ok {
		if err := reviewevent.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.deck_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "ReviewEvent.rating"`)}
	}
	if _, ok := _c.mutation.IntervalBefore(); !ok {
		return &ValidationError{Name: "interval_before", err: errors.New(`ent: missing required field "ReviewEvent.interval_before"`)}
	}
	if _, ok := _c.mutation.IntervalAfter(); !ok {
		return &ValidationError{Name: "interval_after", err: errors.New(`ent: missing required field "ReviewEvent.interval_after"`)}
	}
	if _, ok := _c.mutation.EaseBefore(); !ok {
		return &ValidationError{Name: "ease_before", err: errors.New(`ent: missing required field "ReviewEvent.ease_before"`)}
	}
	if _, ok := _c.mutation.EaseAfter(); !ok {
		return &ValidationError{Name: "ease_after", err: errors.New(`ent: missing required field "ReviewEvent.ease_after"`)}
	}
	if _, ok := _c.mutation.MasteryAfter(); !ok {
		return &ValidationError{Name: "mastery_after", err: errors.New(`ent: missing required field "ReviewEvent.mastery_after"`)}
	}
	if _, ok := _c.mutation.LapsesAfter(); !ok {
		return &ValidationError{Name: "lapses_after", err: errors.New(`ent: missing required field "ReviewEvent.lapses_after"`)}
	}
	if _, ok := _c.mutation.Leech(); !ok {
		return &ValidationError{Name: "leech", err: errors.New(`ent: missing required field "ReviewEvent.leech"`)}
	}
	if _, ok := _c.mutation.ReviewedAt(); !ok {
		return &ValidationError{Name: "reviewed_at", err: errors.New(`ent: missing required field "ReviewEvent.reviewed_at"`)}
	}
	return nil
}

func (_c *ReviewEventCreate) sqlSave(ctx context.Context) (*ReviewEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewEventCreate) createSpec() (*ReviewEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewevent.Table, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DeckID(); ok {
		_spec.SetField(reviewevent.FieldDeckID, field.TypeString, value)
		_node.DeckID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.IntervalBefore(); ok {
		_spec.SetField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
		_node.IntervalBefore = value
	}
	if value, ok := _c.mutation.IntervalAfter(); ok {
		_spec.SetField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
		_node.IntervalAfter = value
	}
	if value, ok := _c.mutation.EaseBefore(); ok {
		_spec.SetField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
		_node.EaseBefore = value
	}
	if value, ok := _c.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
		_node.EaseAfter = value
	}
	if value, ok := _c.mutation.MasteryAfter(); ok {
		_spec.SetField(reviewevent.FieldMasteryAfter, field.TypeFloat64, value)
		_node.MasteryAfter = value
	}
	if value, ok := _c.mutation.LapsesAfter(); ok {
		_spec.SetField(reviewevent.FieldLapsesAfter, field.TypeInt, value)
		_node.LapsesAfter = value
	}
	if value, ok := _c.mutation.Leech(); ok {
		_spec.SetField(reviewevent.FieldLeech, field.TypeBool, value)
		_node.Leech = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(reviewevent.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = value
	}
	return _node, _spec
}

// ReviewEventCreateBulk is the builder for creating many ReviewEvent entities in bulk.
type ReviewEventCreateBulk struct {
	config
	err      error
	builders []*ReviewEventCreate
}

// Save creates the ReviewEvent entities in the database.
func (_c *ReviewEventCreateBulk) Save(ctx context.Context) ([]*ReviewEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewEventCreateBulk) SaveX(ctx context.Context) []*ReviewEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
