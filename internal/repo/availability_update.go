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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/availability"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// AvailabilityUpdate is the builder for updating Availability entities.
type AvailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityMutation
}

// Where appends a list predicates to the AvailabilityUpdate builder.
func (_u *AvailabilityUpdate) Where(ps ...predicate.Availability) *AvailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityUpdate) SetUpdatedAt(v time.Time) *AvailabilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AvailabilityUpdate) SetClinicID(v uuid.UUID) *AvailabilityUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillableClinicID(v *uuid.UUID) *AvailabilityUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_u *AvailabilityUpdate) SetPhysiotherapistID(v uuid.UUID) *AvailabilityUpdate {
	_u.mutation.SetPhysiotherapistID(v)
	return _u
}

// SetNillablePhysiotherapistID sets the "physiotherapist_id" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillablePhysiotherapistID(v *uuid.UUID) *AvailabilityUpdate {
	if v != nil {
		_u.SetPhysiotherapistID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityUpdate) SetDayOfWeek(v availability.DayOfWeek) *AvailabilityUpdate {
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillableDayOfWeek(v *availability.DayOfWeek) *AvailabilityUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityUpdate) SetStartTime(v string) *AvailabilityUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillableStartTime(v *string) *AvailabilityUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityUpdate) SetEndTime(v string) *AvailabilityUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillableEndTime(v *string) *AvailabilityUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityUpdate) SetIsActive(v bool) *AvailabilityUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityUpdate) SetNillableIsActive(v *bool) *AvailabilityUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AvailabilityMutation object of the builder.
func (_u *AvailabilityUpdate) Mutation() *AvailabilityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "Availability.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := availability.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Availability.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := availability.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Availability.end_time": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availability.Table, availability.Columns, sqlgraph.NewFieldSpec(availability.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(availability.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PhysiotherapistID(); ok {
		_spec.SetField(availability.FieldPhysiotherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availability.FieldDayOfWeek, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availability.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availability.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availability.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityUpdateOne is the builder for updating a single Availability entity.
type AvailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AvailabilityUpdateOne) SetClinicID(v uuid.UUID) *AvailabilityUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillableClinicID(v *uuid.UUID) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_u *AvailabilityUpdateOne) SetPhysiotherapistID(v uuid.UUID) *AvailabilityUpdateOne {
	_u.mutation.SetPhysiotherapistID(v)
	return _u
}

// SetNillablePhysiotherapistID sets the "physiotherapist_id" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillablePhysiotherapistID(v *uuid.UUID) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetPhysiotherapistID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *AvailabilityUpdateOne) SetDayOfWeek(v availability.DayOfWeek) *AvailabilityUpdateOne {
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillableDayOfWeek(v *availability.DayOfWeek) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AvailabilityUpdateOne) SetStartTime(v string) *AvailabilityUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillableStartTime(v *string) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AvailabilityUpdateOne) SetEndTime(v string) *AvailabilityUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillableEndTime(v *string) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AvailabilityUpdateOne) SetIsActive(v bool) *AvailabilityUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AvailabilityUpdateOne) SetNillableIsActive(v *bool) *AvailabilityUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AvailabilityMutation object of the builder.
func (_u *AvailabilityUpdateOne) Mutation() *AvailabilityMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityUpdate builder.
func (_u *AvailabilityUpdateOne) Where(ps ...predicate.Availability) *AvailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityUpdateOne) Select(field string, fields ...string) *AvailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Availability entity.
func (_u *AvailabilityUpdateOne) Save(ctx context.Context) (*Availability, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityUpdateOne) SaveX(ctx context.Context) *Availability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AvailabilityUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := availability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "Availability.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := availability.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Availability.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := availability.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Availability.end_time": %w`, err)}
		}
	}
	return nil
}

func (_u *AvailabilityUpdateOne) sqlSave(ctx context.Context) (_node *Availability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(availability.Table, availability.Columns, sqlgraph.NewFieldSpec(availability.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Availability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availability.FieldID)
		for _, f := range fields {
			if !availability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availability.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(availability.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PhysiotherapistID(); ok {
		_spec.SetField(availability.FieldPhysiotherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(availability.FieldDayOfWeek, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(availability.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(availability.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(availability.FieldIsActive, field.TypeBool, value)
	}
	_node = &Availability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
