// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldhq/brevet/ent/careersnapshot"
	"github.com/fieldhq/brevet/ent/predicate"
)

// CareerSnapshotDelete is the builder for deleting a CareerSnapshot entity.
type CareerSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *CareerSnapshotMutation
}

// Where appends a list predicates to the CareerSnapshotDelete builder.
func (_d *CareerSnapshotDelete) Where(ps ...predicate.CareerSnapshot) *CareerSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CareerSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CareerSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CareerSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(careersnapshot.Table, sqlgraph.NewFieldSpec(careersnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CareerSnapshotDeleteOne is the builder for deleting a single CareerSnapshot entity.
type CareerSnapshotDeleteOne struct {
	_d *CareerSnapshotDelete
}

// Where appends a list predicates to the CareerSnapshotDelete builder.
func (_d *CareerSnapshotDeleteOne) Where(ps ...predicate.CareerSnapshot) *CareerSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CareerSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{careersnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CareerSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
