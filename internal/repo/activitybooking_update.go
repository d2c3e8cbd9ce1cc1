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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activitybooking"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ActivityBookingUpdate is the builder for updating ActivityBooking entities.
type ActivityBookingUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityBookingMutation
}

// Where appends a list predicates to the ActivityBookingUpdate builder.
func (_u *ActivityBookingUpdate) Where(ps ...predicate.ActivityBooking) *ActivityBookingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityBookingUpdate) SetUpdatedAt(v time.Time) *ActivityBookingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ActivityBookingUpdate) SetActivityID(v uuid.UUID) *ActivityBookingUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableActivityID(v *uuid.UUID) *ActivityBookingUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *ActivityBookingUpdate) SetScheduleID(v uuid.UUID) *ActivityBookingUpdate {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableScheduleID(v *uuid.UUID) *ActivityBookingUpdate {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ActivityBookingUpdate) SetPatientID(v uuid.UUID) *ActivityBookingUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillablePatientID(v *uuid.UUID) *ActivityBookingUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *ActivityBookingUpdate) SetSessionDate(v time.Time) *ActivityBookingUpdate {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableSessionDate(v *time.Time) *ActivityBookingUpdate {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActivityBookingUpdate) SetStatus(v activitybooking.Status) *ActivityBookingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableStatus(v *activitybooking.Status) *ActivityBookingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *ActivityBookingUpdate) SetCancelledAt(v time.Time) *ActivityBookingUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableCancelledAt(v *time.Time) *ActivityBookingUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *ActivityBookingUpdate) ClearCancelledAt() *ActivityBookingUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *ActivityBookingUpdate) SetCancelledBy(v uuid.UUID) *ActivityBookingUpdate {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableCancelledBy(v *uuid.UUID) *ActivityBookingUpdate {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *ActivityBookingUpdate) ClearCancelledBy() *ActivityBookingUpdate {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *ActivityBookingUpdate) SetCancellationReason(v string) *ActivityBookingUpdate {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableCancellationReason(v *string) *ActivityBookingUpdate {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *ActivityBookingUpdate) ClearCancellationReason() *ActivityBookingUpdate {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ActivityBookingUpdate) SetNotes(v string) *ActivityBookingUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ActivityBookingUpdate) SetNillableNotes(v *string) *ActivityBookingUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ActivityBookingUpdate) ClearNotes() *ActivityBookingUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ActivityBookingMutation object of the builder.
func (_u *ActivityBookingUpdate) Mutation() *ActivityBookingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityBookingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityBookingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityBookingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityBookingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityBookingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activitybooking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityBookingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := activitybooking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ActivityBooking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityBookingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitybooking.Table, activitybooking.Columns, sqlgraph.NewFieldSpec(activitybooking.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activitybooking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(activitybooking.FieldActivityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(activitybooking.FieldScheduleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(activitybooking.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(activitybooking.FieldSessionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activitybooking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(activitybooking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(activitybooking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(activitybooking.FieldCancelledBy, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(activitybooking.FieldCancelledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(activitybooking.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(activitybooking.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(activitybooking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(activitybooking.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitybooking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityBookingUpdateOne is the builder for updating a single ActivityBooking entity.
type ActivityBookingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityBookingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityBookingUpdateOne) SetUpdatedAt(v time.Time) *ActivityBookingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *ActivityBookingUpdateOne) SetActivityID(v uuid.UUID) *ActivityBookingUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableActivityID(v *uuid.UUID) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetScheduleID sets the "schedule_id" field.
func (_u *ActivityBookingUpdateOne) SetScheduleID(v uuid.UUID) *ActivityBookingUpdateOne {
	_u.mutation.SetScheduleID(v)
	return _u
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableScheduleID(v *uuid.UUID) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetScheduleID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ActivityBookingUpdateOne) SetPatientID(v uuid.UUID) *ActivityBookingUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillablePatientID(v *uuid.UUID) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetSessionDate sets the "session_date" field.
func (_u *ActivityBookingUpdateOne) SetSessionDate(v time.Time) *ActivityBookingUpdateOne {
	_u.mutation.SetSessionDate(v)
	return _u
}

// SetNillableSessionDate sets the "session_date" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableSessionDate(v *time.Time) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetSessionDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActivityBookingUpdateOne) SetStatus(v activitybooking.Status) *ActivityBookingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableStatus(v *activitybooking.Status) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *ActivityBookingUpdateOne) SetCancelledAt(v time.Time) *ActivityBookingUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableCancelledAt(v *time.Time) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *ActivityBookingUpdateOne) ClearCancelledAt() *ActivityBookingUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCancelledBy sets the "cancelled_by" field.
func (_u *ActivityBookingUpdateOne) SetCancelledBy(v uuid.UUID) *ActivityBookingUpdateOne {
	_u.mutation.SetCancelledBy(v)
	return _u
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableCancelledBy(v *uuid.UUID) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetCancelledBy(*v)
	}
	return _u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (_u *ActivityBookingUpdateOne) ClearCancelledBy() *ActivityBookingUpdateOne {
	_u.mutation.ClearCancelledBy()
	return _u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_u *ActivityBookingUpdateOne) SetCancellationReason(v string) *ActivityBookingUpdateOne {
	_u.mutation.SetCancellationReason(v)
	return _u
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableCancellationReason(v *string) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetCancellationReason(*v)
	}
	return _u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (_u *ActivityBookingUpdateOne) ClearCancellationReason() *ActivityBookingUpdateOne {
	_u.mutation.ClearCancellationReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ActivityBookingUpdateOne) SetNotes(v string) *ActivityBookingUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ActivityBookingUpdateOne) SetNillableNotes(v *string) *ActivityBookingUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ActivityBookingUpdateOne) ClearNotes() *ActivityBookingUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ActivityBookingMutation object of the builder.
func (_u *ActivityBookingUpdateOne) Mutation() *ActivityBookingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityBookingUpdate builder.
func (_u *ActivityBookingUpdateOne) Where(ps ...predicate.ActivityBooking) *ActivityBookingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityBookingUpdateOne) Select(field string, fields ...string) *ActivityBookingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityBooking entity.
func (_u *ActivityBookingUpdateOne) Save(ctx context.Context) (*ActivityBooking, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityBookingUpdateOne) SaveX(ctx context.Context) *ActivityBooking {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityBookingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityBookingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityBookingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activitybooking.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityBookingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := activitybooking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ActivityBooking.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityBookingUpdateOne) sqlSave(ctx context.Context) (_node *ActivityBooking, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activitybooking.Table, activitybooking.Columns, sqlgraph.NewFieldSpec(activitybooking.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ActivityBooking.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activitybooking.FieldID)
		for _, f := range fields {
			if !activitybooking.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != activitybooking.FieldID {
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
		_spec.SetField(activitybooking.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(activitybooking.FieldActivityID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ScheduleID(); ok {
		_spec.SetField(activitybooking.FieldScheduleID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(activitybooking.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionDate(); ok {
		_spec.SetField(activitybooking.FieldSessionDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activitybooking.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(activitybooking.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(activitybooking.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledBy(); ok {
		_spec.SetField(activitybooking.FieldCancelledBy, field.TypeUUID, value)
	}
	if _u.mutation.CancelledByCleared() {
		_spec.ClearField(activitybooking.FieldCancelledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancellationReason(); ok {
		_spec.SetField(activitybooking.FieldCancellationReason, field.TypeString, value)
	}
	if _u.mutation.CancellationReasonCleared() {
		_spec.ClearField(activitybooking.FieldCancellationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(activitybooking.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(activitybooking.FieldNotes, field.TypeString)
	}
	_node = &ActivityBooking{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activitybooking.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
