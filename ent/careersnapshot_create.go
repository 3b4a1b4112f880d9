// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldhq/brevet/ent/careersnapshot"
)

// CareerSnapshotCreate is the builder for creating a CareerSnapshot entity.
type CareerSnapshotCreate struct {
	config
	mutation *CareerSnapshotMutation
	hooks    []Hook
}

// SetCommanderID sets the "commander_id" field.
func (_c *CareerSnapshotCreate) SetCommanderID(v string) *CareerSnapshotCreate {
	_c.mutation.SetCommanderID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CareerSnapshotCreate) SetTimestamp(v time.Time) *CareerSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CareerSnapshotCreate) SetNillableTimestamp(v *time.Time) *CareerSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *CareerSnapshotCreate) SetData(v map[string]interface{}) *CareerSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the CareerSnapshotMutation object of the builder.
func (_c *CareerSnapshotCreate) Mutation() *CareerSnapshotMutation {
	return _c.mutation
}

// Save creates the CareerSnapshot in the database.
func (_c *CareerSnapshotCreate) Save(ctx context.Context) (*CareerSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CareerSnapshotCreate) SaveX(ctx context.Context) *CareerSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareerSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareerSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CareerSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := careersnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CareerSnapshotCreate) check() error {
	if _, ok := _c.mutation.CommanderID(); !ok {
		return &ValidationError{Name: "commander_id", err: errors.New(`ent: missing required field "CareerSnapshot.commander_id"`)}
	}
	if v, ok := _c.mutation.CommanderID(); ok {
		if err := careersnapshot.CommanderIDValidator(v); err != nil {
			return &ValidationError{Name: "commander_id", err: fmt.Errorf(`ent: validator failed for field "CareerSnapshot.commander_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CareerSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "CareerSnapshot.data"`)}
	}
	return nil
}

func (_c *CareerSnapshotCreate) sqlSave(ctx context.Context) (*CareerSnapshot, error) {
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

func (_c *CareerSnapshotCreate) createSpec() (*CareerSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &CareerSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(careersnapshot.Table, sqlgraph.NewFieldSpec(careersnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CommanderID(); ok {
		_spec.SetField(careersnapshot.FieldCommanderID, field.TypeString, value)
		_node.CommanderID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(careersnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(careersnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// CareerSnapshotCreateBulk is the builder for creating many CareerSnapshot entities in bulk.
type CareerSnapshotCreateBulk struct {
	config
	err      error
	builders []*CareerSnapshotCreate
}

// Save creates the CareerSnapshot entities in the database.
func (_c *CareerSnapshotCreateBulk) Save(ctx context.Context) ([]*CareerSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CareerSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CareerSnapshotMutation)
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
func (_c *CareerSnapshotCreateBulk) SaveX(ctx context.Context) []*CareerSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CareerSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CareerSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
