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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activityschedule"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ActivityScheduleUpdate is the builder for updating ActivitySchedule entities.
type ActivityScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityScheduleMutation
}

// Where appends a list predicates to the ActivityScheduleUpdate builder.
func (_u *ActivityScheduleUpdate) Where(ps ...predicate.ActivitySchedule) *ActivityScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityScheduleUpdate) SetUpdatedAt(v time.Time) *ActivityScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ActivityScheduleUpdate) SetActivityID(v uuid.UUID) *ActivityScheduleUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ActivityScheduleUpdate) SetNillableActivityID(v *uuid.UUID) *ActivityScheduleUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *ActivityScheduleUpdate) SetDayOfWeek(v activityschedule.DayOfWeek) *ActivityScheduleUpdate {
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *ActivityScheduleUpdate) SetNillableDayOfWeek(v *activityschedule.DayOfWeek) *ActivityScheduleUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ActivityScheduleUpdate) SetStartTime(v string) *ActivityScheduleUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ActivityScheduleUpdate) SetNillableStartTime(v *string) *ActivityScheduleUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ActivityScheduleUpdate) SetEndTime(v string) *ActivityScheduleUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ActivityScheduleUpdate) SetNillableEndTime(v *string) *ActivityScheduleUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ActivityScheduleUpdate) SetStartDate(v time.Time) *ActivityScheduleUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ActivityScheduleUpdate) SetNillableStartDate(v *time.Time) *ActivityScheduleUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ActivityScheduleUpdate) ClearStartDate() *ActivityScheduleUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ActivityScheduleUpdate) SetEndDate(v time.Time) *ActivityScheduleUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ActivityScheduleUpdate) SetNillableEndDate(v *time.Time) *ActivityScheduleUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ActivityScheduleUpdate) ClearEndDate() *ActivityScheduleUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ActivityScheduleUpdate) SetIsActive(v bool) *ActivityScheduleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ActivityScheduleUpdate) SetNillableIsActive(v *bool) *ActivityScheduleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ActivityScheduleMutation object of the builder.
func (_u *ActivityScheduleUpdate) Mutation() *ActivityScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activityschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityScheduleUpdate) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := activityschedule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := activityschedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := activityschedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.end_time": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityschedule.Table, activityschedule.Columns, sqlgraph.NewFieldSpec(activityschedule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activityschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(activityschedule.FieldActivityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(activityschedule.FieldDayOfWeek, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(activityschedule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(activityschedule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(activityschedule.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(activityschedule.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(activityschedule.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(activityschedule.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(activityschedule.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityScheduleUpdateOne is the builder for updating a single ActivitySchedule entity.
type ActivityScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityScheduleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityScheduleUpdateOne) SetUpdatedAt(v time.Time) *ActivityScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ActivityScheduleUpdateOne) SetActivityID(v uuid.UUID) *ActivityScheduleUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ActivityScheduleUpdateOne) SetNillableActivityID(v *uuid.UUID) *ActivityScheduleUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *ActivityScheduleUpdateOne) SetDayOfWeek(v activityschedule.DayOfWeek) *ActivityScheduleUpdateOne {
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *ActivityScheduleUpdateOne) SetNillableDayOfWeek(v *activityschedule.DayOfWeek) *ActivityScheduleUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ActivityScheduleUpdateOne) SetStartTime(v string) *ActivityScheduleUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ActivityScheduleUpdateOne) SetNillableStartTime(v *string) *ActivityScheduleUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *ActivityScheduleUpdateOne) SetEndTime(v string) *ActivityScheduleUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *ActivityScheduleUpdateOne) SetNillableEndTime(v *string) *ActivityScheduleUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ActivityScheduleUpdateOne) SetStartDate(v time.Time) *ActivityScheduleUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ActivityScheduleUpdateOne) SetNillableStartDate(v *time.Time) *ActivityScheduleUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ActivityScheduleUpdateOne) ClearStartDate() *ActivityScheduleUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ActivityScheduleUpdateOne) SetEndDate(v time.Time) *ActivityScheduleUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ActivityScheduleUpdateOne) SetNillableEndDate(v *time.Time) *ActivityScheduleUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ActivityScheduleUpdateOne) ClearEndDate() *ActivityScheduleUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ActivityScheduleUpdateOne) SetIsActive(v bool) *ActivityScheduleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ActivityScheduleUpdateOne) SetNillableIsActive(v *bool) *ActivityScheduleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ActivityScheduleMutation object of the builder.
func (_u *ActivityScheduleUpdateOne) Mutation() *ActivityScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityScheduleUpdate builder.
func (_u *ActivityScheduleUpdateOne) Where(ps ...predicate.ActivitySchedule) *ActivityScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityScheduleUpdateOne) Select(field string, fields ...string) *ActivityScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivitySchedule entity.
func (_u *ActivityScheduleUpdateOne) Save(ctx context.Context) (*ActivitySchedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityScheduleUpdateOne) SaveX(ctx context.Context) *ActivitySchedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activityschedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityScheduleUpdateOne) check() error {
	if v, ok := _u.mutation.DayOfWeek(); ok {
		if err := activityschedule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.day_of_week": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := activityschedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := activityschedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.end_time": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityScheduleUpdateOne) sqlSave(ctx context.Context) (_node *ActivitySchedule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityschedule.Table, activityschedule.Columns, sqlgraph.NewFieldSpec(activityschedule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ActivitySchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityschedule.FieldID)
		for _, f := range fields {
			if !activityschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != activityschedule.FieldID {
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
		_spec.SetField(activityschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(activityschedule.FieldActivityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(activityschedule.FieldDayOfWeek, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(activityschedule.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(activityschedule.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(activityschedule.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(activityschedule.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(activityschedule.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(activityschedule.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(activityschedule.FieldIsActive, field.TypeBool, value)
	}
	_node = &ActivitySchedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
