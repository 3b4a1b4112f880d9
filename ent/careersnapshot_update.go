// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldhq/brevet/ent/careersnapshot"
	"github.com/fieldhq/brevet/ent/predicate"
)

// CareerSnapshotUpdate is the builder for updating CareerSnapshot entities.
type CareerSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *CareerSnapshotMutation
}

// Where appends a list predicates to the CareerSnapshotUpdate builder.
func (_u *CareerSnapshotUpdate) Where(ps ...predicate.CareerSnapshot) *CareerSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommanderID sets the "commander_id" field.
func (_u *CareerSnapshotUpdate) SetCommanderID(v string) *CareerSnapshotUpdate {
	_u.mutation.SetCommanderID(v)
	return _u
}

// SetNillableCommanderID sets the "commander_id" field if the given value is not nil.
func (_u *CareerSnapshotUpdate) SetNillableCommanderID(v *string) *CareerSnapshotUpdate {
	if v != nil {
		_u.SetCommanderID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *CareerSnapshotUpdate) SetTimestamp(v time.Time) *CareerSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *CareerSnapshotUpdate) SetNillableTimestamp(v *time.Time) *CareerSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CareerSnapshotUpdate) SetData(v map[string]interface{}) *CareerSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the CareerSnapshotMutation object of the builder.
func (_u *CareerSnapshotUpdate) Mutation() *CareerSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CareerSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareerSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CareerSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareerSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareerSnapshotUpdate) check() error {
	if v, ok := _u.mutation.CommanderID(); ok {
		if err := careersnapshot.CommanderIDValidator(v); err != nil {
			return &ValidationError{Name: "commander_id", err: fmt.Errorf(`ent: validator failed for field "CareerSnapshot.commander_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CareerSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(careersnapshot.Table, careersnapshot.Columns, sqlgraph.NewFieldSpec(careersnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommanderID(); ok {
		_spec.SetField(careersnapshot.FieldCommanderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(careersnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(careersnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{careersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CareerSnapshotUpdateOne is the builder for updating a single CareerSnapshot entity.
type CareerSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CareerSnapshotMutation
}

// SetCommanderID sets the "commander_id" field.
func (_u *CareerSnapshotUpdateOne) SetCommanderID(v string) *CareerSnapshotUpdateOne {
	_u.mutation.SetCommanderID(v)
	return _u
}

// SetNillableCommanderID sets the "commander_id" field if the given value is not nil.
func (_u *CareerSnapshotUpdateOne) SetNillableCommanderID(v *string) *CareerSnapshotUpdateOne {
	if v != nil {
		_u.SetCommanderID(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *CareerSnapshotUpdateOne) SetTimestamp(v time.Time) *CareerSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *CareerSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *CareerSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CareerSnapshotUpdateOne) SetData(v map[string]interface{}) *CareerSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the CareerSnapshotMutation object of the builder.
func (_u *CareerSnapshotUpdateOne) Mutation() *CareerSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the CareerSnapshotUpdate builder.
func (_u *CareerSnapshotUpdateOne) Where(ps ...predicate.CareerSnapshot) *CareerSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CareerSnapshotUpdateOne) Select(field string, fields ...string) *CareerSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CareerSnapshot entity.
func (_u *CareerSnapshotUpdateOne) Save(ctx context.Context) (*CareerSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CareerSnapshotUpdateOne) SaveX(ctx context.Context) *CareerSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CareerSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CareerSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CareerSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.CommanderID(); ok {
		if err := careersnapshot.CommanderIDValidator(v); err != nil {
			return &ValidationError{Name: "commander_id", err: fmt.Errorf(`ent: validator failed for field "CareerSnapshot.commander_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CareerSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *CareerSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(careersnapshot.Table, careersnapshot.Columns, sqlgraph.NewFieldSpec(careersnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CareerSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, careersnapshot.FieldID)
		for _, f := range fields {
			if !careersnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != careersnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommanderID(); ok {
		_spec.SetField(careersnapshot.FieldCommanderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(careersnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(careersnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &CareerSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{careersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
