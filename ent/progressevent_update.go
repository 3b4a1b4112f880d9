// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldhq/brevet/ent/predicate"
	"github.com/fieldhq/brevet/ent/progressevent"
)

// ProgressEventUpdate is the builder for updating ProgressEvent entities.
type ProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEventMutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdate) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommanderID sets the "commander_id" field.
func (_u *ProgressEventUpdate) SetCommanderID(v string) *ProgressEventUpdate {
	_u.mutation.SetCommanderID(v)
	return _u
}

// SetNillableCommanderID sets the "commander_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableCommanderID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetCommanderID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ProgressEventUpdate) SetKind(v string) *ProgressEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableKind(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ProgressEventUpdate) SetSkill(v string) *ProgressEventUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableSkill(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// ClearSkill clears the value of the "skill" field.
func (_u *ProgressEventUpdate) ClearSkill() *ProgressEventUpdate {
	_u.mutation.ClearSkill()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *ProgressEventUpdate) SetBranch(v string) *ProgressEventUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableBranch(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *ProgressEventUpdate) ClearBranch() *ProgressEventUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *ProgressEventUpdate) SetDelta(v int) *ProgressEventUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableDelta(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *ProgressEventUpdate) AddDelta(v int) *ProgressEventUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReputation sets the "reputation" field.
func (_u *ProgressEventUpdate) SetReputation(v int) *ProgressEventUpdate {
	_u.mutation.ResetReputation()
	_u.mutation.SetReputation(v)
	return _u
}

// SetNillableReputation sets the "reputation" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableReputation(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetReputation(*v)
	}
	return _u
}

// AddReputation adds value to the "reputation" field.
func (_u *ProgressEventUpdate) AddReputation(v int) *ProgressEventUpdate {
	_u.mutation.AddReputation(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ProgressEventUpdate) SetGrade(v string) *ProgressEventUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableGrade(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdate) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdate) check() error {
	if v, ok := _u.mutation.CommanderID(); ok {
		if err := progressevent.CommanderIDValidator(v); err != nil {
			return &ValidationError{Name: "commander_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.commander_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := progressevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommanderID(); ok {
		_spec.SetField(progressevent.FieldCommanderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(progressevent.FieldSkill, field.TypeString, value)
	}
	if _u.mutation.SkillCleared() {
		_spec.ClearField(progressevent.FieldSkill, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(progressevent.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(progressevent.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(progressevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(progressevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reputation(); ok {
		_spec.SetField(progressevent.FieldReputation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReputation(); ok {
		_spec.AddField(progressevent.FieldReputation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(progressevent.FieldGrade, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEventUpdateOne is the builder for updating a single ProgressEvent entity.
type ProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEventMutation
}

// SetCommanderID sets the "commander_id" field.
func (_u *ProgressEventUpdateOne) SetCommanderID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetCommanderID(v)
	return _u
}

// SetNillableCommanderID sets the "commander_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableCommanderID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetCommanderID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ProgressEventUpdateOne) SetKind(v string) *ProgressEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableKind(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ProgressEventUpdateOne) SetSkill(v string) *ProgressEventUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableSkill(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// ClearSkill clears the value of the "skill" field.
func (_u *ProgressEventUpdateOne) ClearSkill() *ProgressEventUpdateOne {
	_u.mutation.ClearSkill()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *ProgressEventUpdateOne) SetBranch(v string) *ProgressEventUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableBranch(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *ProgressEventUpdateOne) ClearBranch() *ProgressEventUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// SetDelta sets the "delta" field.
func (_u *ProgressEventUpdateOne) SetDelta(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableDelta(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *ProgressEventUpdateOne) AddDelta(v int) *ProgressEventUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetReputation sets the "reputation" field.
func (_u *ProgressEventUpdateOne) SetReputation(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetReputation()
	_u.mutation.SetReputation(v)
	return _u
}

// SetNillableReputation sets the "reputation" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableReputation(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetReputation(*v)
	}
	return _u
}

// AddReputation adds value to the "reputation" field.
func (_u *ProgressEventUpdateOne) AddReputation(v int) *ProgressEventUpdateOne {
	_u.mutation.AddReputation(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ProgressEventUpdateOne) SetGrade(v string) *ProgressEventUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableGrade(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdateOne) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdateOne) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEventUpdateOne) Select(field string, fields ...string) *ProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEvent entity.
func (_u *ProgressEventUpdateOne) Save(ctx context.Context) (*ProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) SaveX(ctx context.Context) *ProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdateOne) check() error {
	if v, ok := _u.mutation.CommanderID(); ok {
		if err := progressevent.CommanderIDValidator(v); err != nil {
			return &ValidationError{Name: "commander_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.commander_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := progressevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := progressevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressevent.FieldID)
		for _, f := range fields {
			if !progressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressevent.FieldID {
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
		_spec.SetField(progressevent.FieldCommanderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(progressevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(progressevent.FieldSkill, field.TypeString, value)
	}
	if _u.mutation.SkillCleared() {
		_spec.ClearField(progressevent.FieldSkill, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(progressevent.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(progressevent.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(progressevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(progressevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reputation(); ok {
		_spec.SetField(progressevent.FieldReputation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReputation(); ok {
		_spec.AddField(progressevent.FieldReputation, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(progressevent.FieldGrade, field.TypeString, value)
	}
	_node = &ProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
