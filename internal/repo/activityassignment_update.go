// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ActivityAssignmentUpdate is the builder for updating ActivityAssignment entities.
type ActivityAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityAssignmentMutation
}

// Where appends a list predicates to the ActivityAssignmentUpdate builder.
func (_u *ActivityAssignmentUpdate) Where(ps ...predicate.ActivityAssignment) *ActivityAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ActivityAssignmentUpdate) SetActivityID(v uuid.UUID) *ActivityAssignmentUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ActivityAssignmentUpdate) SetNillableActivityID(v *uuid.UUID) *ActivityAssignmentUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_u *ActivityAssignmentUpdate) SetPhysiotherapistID(v uuid.UUID) *ActivityAssignmentUpdate {
	_u.mutation.SetPhysiotherapistID(v)
	return _u
}

// SetNillablePhysiotherapistID sets the "physiotherapist_id" field if the given value is not nil.
func (_u *ActivityAssignmentUpdate) SetNillablePhysiotherapistID(v *uuid.UUID) *ActivityAssignmentUpdate {
	if v != nil {
		_u.SetPhysiotherapistID(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *ActivityAssignmentUpdate) SetAssignedBy(v uuid.UUID) *ActivityAssignmentUpdate {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *ActivityAssignmentUpdate) SetNillableAssignedBy(v *uuid.UUID) *ActivityAssignmentUpdate {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (_u *ActivityAssignmentUpdate) ClearAssignedBy() *ActivityAssignmentUpdate {
	_u.mutation.ClearAssignedBy()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *ActivityAssignmentUpdate) SetAssignedAt(v time.Time) *ActivityAssignmentUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *ActivityAssignmentUpdate) SetNillableAssignedAt(v *time.Time) *ActivityAssignmentUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ActivityAssignmentUpdate) SetIsActive(v bool) *ActivityAssignmentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ActivityAssignmentUpdate) SetNillableIsActive(v *bool) *ActivityAssignmentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ActivityAssignmentMutation object of the builder.
func (_u *ActivityAssignmentUpdate) Mutation() *ActivityAssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityAssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activityassignment.Table, activityassignment.Columns, sqlgraph.NewFieldSpec(activityassignment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(activityassignment.FieldActivityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PhysiotherapistID(); ok {
		_spec.SetField(activityassignment.FieldPhysiotherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(activityassignment.FieldAssignedBy, field.TypeUUID, value)
	}
	if _u.mutation.AssignedByCleared() {
		_spec.ClearField(activityassignment.FieldAssignedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(activityassignment.FieldAssignedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(activityassignment.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityAssignmentUpdateOne is the builder for updating a single ActivityAssignment entity.
type ActivityAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityAssignmentMutation
}

// SetActivityID sets the "activity_id" field.
func (_u *ActivityAssignmentUpdateOne) SetActivityID(v uuid.UUID) *ActivityAssignmentUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ActivityAssignmentUpdateOne) SetNillableActivityID(v *uuid.UUID) *ActivityAssignmentUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_u *ActivityAssignmentUpdateOne) SetPhysiotherapistID(v uuid.UUID) *ActivityAssignmentUpdateOne {
	_u.mutation.SetPhysiotherapistID(v)
	return _u
}

// SetNillablePhysiotherapistID sets the "physiotherapist_id" field if the given value is not nil.
func (_u *ActivityAssignmentUpdateOne) SetNillablePhysiotherapistID(v *uuid.UUID) *ActivityAssignmentUpdateOne {
	if v != nil {
		_u.SetPhysiotherapistID(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *ActivityAssignmentUpdateOne) SetAssignedBy(v uuid.UUID) *ActivityAssignmentUpdateOne {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *ActivityAssignmentUpdateOne) SetNillableAssignedBy(v *uuid.UUID) *ActivityAssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (_u *ActivityAssignmentUpdateOne) ClearAssignedBy() *ActivityAssignmentUpdateOne {
	_u.mutation.ClearAssignedBy()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *ActivityAssignmentUpdateOne) SetAssignedAt(v time.Time) *ActivityAssignmentUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *ActivityAssignmentUpdateOne) SetNillableAssignedAt(v *time.Time) *ActivityAssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ActivityAssignmentUpdateOne) SetIsActive(v bool) *ActivityAssignmentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ActivityAssignmentUpdateOne) SetNillableIsActive(v *bool) *ActivityAssignmentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ActivityAssignmentMutation object of the builder.
func (_u *ActivityAssignmentUpdateOne) Mutation() *ActivityAssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityAssignmentUpdate builder.
func (_u *ActivityAssignmentUpdateOne) Where(ps ...predicate.ActivityAssignment) *ActivityAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityAssignmentUpdateOne) Select(field string, fields ...string) *ActivityAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityAssignment entity.
func (_u *ActivityAssignmentUpdateOne) Save(ctx context.Context) (*ActivityAssignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityAssignmentUpdateOne) SaveX(ctx context.Context) *ActivityAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActivityAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *ActivityAssignment, err error) {
	_spec := sqlgraph.NewUpdateSpec(activityassignment.Table, activityassignment.Columns, sqlgraph.NewFieldSpec(activityassignment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ActivityAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityassignment.FieldID)
		for _, f := range fields {
			if !activityassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != activityassignment.FieldID {
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
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(activityassignment.FieldActivityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PhysiotherapistID(); ok {
		_spec.SetField(activityassignment.FieldPhysiotherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(activityassignment.FieldAssignedBy, field.TypeUUID, value)
	}
	if _u.mutation.AssignedByCleared() {
		_spec.ClearField(activityassignment.FieldAssignedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(activityassignment.FieldAssignedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(activityassignment.FieldIsActive, field.TypeBool, value)
	}
	_node = &ActivityAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
