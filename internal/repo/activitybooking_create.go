// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activitybooking"
	"github.com/google/uuid"
)

// ActivityBookingCreate is the builder for creating a ActivityBooking entity.
type ActivityBookingCreate struct {
	config
	mutation *ActivityBookingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityBookingCreate) SetCreatedAt(v time.Time) *ActivityBookingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableCreatedAt(v *time.Time) *ActivityBookingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActivityBookingCreate) SetUpdatedAt(v time.Time) *ActivityBookingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableUpdatedAt(v *time.Time) *ActivityBookingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *ActivityBookingCreate) SetActivityID(v uuid.UUID) *ActivityBookingCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetScheduleID sets the "schedule_id" field.
func (_c *ActivityBookingCreate) SetScheduleID(v uuid.UUID) *ActivityBookingCreate {
	_c.mutation.SetScheduleID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ActivityBookingCreate) SetPatientID(v uuid.UUID) *ActivityBookingCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetSessionDate sets the "session_date" field.
func (_c *ActivityBookingCreate) SetSessionDate(v time.Time) *ActivityBookingCreate {
	_c.mutation.SetSessionDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActivityBookingCreate) SetStatus(v activitybooking.Status) *ActivityBookingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableStatus(v *activitybooking.Status) *ActivityBookingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *ActivityBookingCreate) SetCancelledAt(v time.Time) *ActivityBookingCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableCancelledAt(v *time.Time) *ActivityBookingCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetCancelledBy sets the "cancelled_by" field.
func (_c *ActivityBookingCreate) SetCancelledBy(v uuid.UUID) *ActivityBookingCreate {
	_c.mutation.SetCancelledBy(v)
	return _c
}

// SetNillableCancelledBy sets the "cancelled_by" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableCancelledBy(v *uuid.UUID) *ActivityBookingCreate {
	if v != nil {
		_c.SetCancelledBy(*v)
	}
	return _c
}

// SetCancellationReason sets the "cancellation_reason" field.
func (_c *ActivityBookingCreate) SetCancellationReason(v string) *ActivityBookingCreate {
	_c.mutation.SetCancellationReason(v)
	return _c
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableCancellationReason(v *string) *ActivityBookingCreate {
	if v != nil {
		_c.SetCancellationReason(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ActivityBookingCreate) SetNotes(v string) *ActivityBookingCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableNotes(v *string) *ActivityBookingCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityBookingCreate) SetID(v uuid.UUID) *ActivityBookingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActivityBookingCreate) SetNillableID(v *uuid.UUID) *ActivityBookingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ActivityBookingMutation object of the builder.
func (_c *ActivityBookingCreate) Mutation() *ActivityBookingMutation {
	return _c.mutation
}

// Save creates the ActivityBooking in the database.
func (_c *ActivityBookingCreate) Save(ctx context.Context) (*ActivityBooking, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityBookingCreate) SaveX(ctx context.Context) *ActivityBooking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityBookingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityBookingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityBookingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activitybooking.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := activitybooking.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := activitybooking.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := activitybooking.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityBookingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ActivityBooking.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ActivityBooking.updated_at"`)}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`repo: missing required field "ActivityBooking.activity_id"`)}
	}
	if _, ok := _c.mutation.ScheduleID(); !ok {
		return &ValidationError{Name: "schedule_id", err: errors.New(`repo: missing required field "ActivityBooking.schedule_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "ActivityBooking.patient_id"`)}
	}
	if _, ok := _c.mutation.SessionDate(); !ok {
		return &ValidationError{Name: "session_date", err: errors.New(`repo: missing required field "ActivityBooking.session_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "ActivityBooking.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := activitybooking.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "ActivityBooking.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ActivityBookingCreate) sqlSave(ctx context.Context) (*ActivityBooking, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActivityBookingCreate) createSpec() (*ActivityBooking, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityBooking{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activitybooking.Table, sqlgraph.NewFieldSpec(activitybooking.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activitybooking.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(activitybooking.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(activitybooking.FieldActivityID, field.TypeUUID, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.ScheduleID(); ok {
		_spec.SetField(activitybooking.FieldScheduleID, field.TypeUUID, value)
		_node.ScheduleID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(activitybooking.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.SessionDate(); ok {
		_spec.SetField(activitybooking.FieldSessionDate, field.TypeTime, value)
		_node.SessionDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(activitybooking.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(activitybooking.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.CancelledBy(); ok {
		_spec.SetField(activitybooking.FieldCancelledBy, field.TypeUUID, value)
		_node.CancelledBy = &value
	}
	if value, ok := _c.mutation.CancellationReason(); ok {
		_spec.SetField(activitybooking.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(activitybooking.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityBooking.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityBookingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityBookingCreate) OnConflict(opts ...sql.ConflictOption) *ActivityBookingUpsertOne {
	_c.conflict = opts
	return &ActivityBookingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityBooking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityBookingCreate) OnConflictColumns(columns ...string) *ActivityBookingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityBookingUpsertOne{
		create: _c,
	}
}

type (
	// ActivityBookingUpsertOne is the builder for "upsert"-ing
	//  one ActivityBooking node.
	ActivityBookingUpsertOne struct {
		create *ActivityBookingCreate
	}

	// ActivityBookingUpsert is the "OnConflict" setter.
	ActivityBookingUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityBookingUpsert) SetUpdatedAt(v time.Time) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateUpdatedAt() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldUpdatedAt)
	return u
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityBookingUpsert) SetActivityID(v uuid.UUID) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldActivityID, v)
	return u
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateActivityID() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldActivityID)
	return u
}

// SetScheduleID sets the "schedule_id" field.
func (u *ActivityBookingUpsert) SetScheduleID(v uuid.UUID) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldScheduleID, v)
	return u
}

// UpdateScheduleID sets the "schedule_id" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateScheduleID() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldScheduleID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ActivityBookingUpsert) SetPatientID(v uuid.UUID) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdatePatientID() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldPatientID)
	return u
}

// SetSessionDate sets the "session_date" field.
func (u *ActivityBookingUpsert) SetSessionDate(v time.Time) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldSessionDate, v)
	return u
}

// UpdateSessionDate sets the "session_date" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateSessionDate() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldSessionDate)
	return u
}

// SetStatus sets the "status" field.
func (u *ActivityBookingUpsert) SetStatus(v activitybooking.Status) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateStatus() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldStatus)
	return u
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ActivityBookingUpsert) SetCancelledAt(v time.Time) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldCancelledAt, v)
	return u
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateCancelledAt() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldCancelledAt)
	return u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ActivityBookingUpsert) ClearCancelledAt() *ActivityBookingUpsert {
	u.SetNull(activitybooking.FieldCancelledAt)
	return u
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *ActivityBookingUpsert) SetCancelledBy(v uuid.UUID) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldCancelledBy, v)
	return u
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateCancelledBy() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldCancelledBy)
	return u
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *ActivityBookingUpsert) ClearCancelledBy() *ActivityBookingUpsert {
	u.SetNull(activitybooking.FieldCancelledBy)
	return u
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *ActivityBookingUpsert) SetCancellationReason(v string) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldCancellationReason, v)
	return u
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateCancellationReason() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldCancellationReason)
	return u
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *ActivityBookingUpsert) ClearCancellationReason() *ActivityBookingUpsert {
	u.SetNull(activitybooking.FieldCancellationReason)
	return u
}

// SetNotes sets the "notes" field.
func (u *ActivityBookingUpsert) SetNotes(v string) *ActivityBookingUpsert {
	u.Set(activitybooking.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ActivityBookingUpsert) UpdateNotes() *ActivityBookingUpsert {
	u.SetExcluded(activitybooking.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ActivityBookingUpsert) ClearNotes() *ActivityBookingUpsert {
	u.SetNull(activitybooking.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActivityBooking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activitybooking.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityBookingUpsertOne) UpdateNewValues() *ActivityBookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(activitybooking.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activitybooking.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityBooking.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityBookingUpsertOne) Ignore() *ActivityBookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityBookingUpsertOne) DoNothing() *ActivityBookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityBookingCreate.OnConflict
// documentation for more info.
func (u *ActivityBookingUpsertOne) Update(set func(*ActivityBookingUpsert)) *ActivityBookingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityBookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityBookingUpsertOne) SetUpdatedAt(v time.Time) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateUpdatedAt() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityBookingUpsertOne) SetActivityID(v uuid.UUID) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateActivityID() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateActivityID()
	})
}

// SetScheduleID sets the "schedule_id" field.
func (u *ActivityBookingUpsertOne) SetScheduleID(v uuid.UUID) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetScheduleID(v)
	})
}

// UpdateScheduleID sets the "schedule_id" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateScheduleID() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateScheduleID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *ActivityBookingUpsertOne) SetPatientID(v uuid.UUID) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdatePatientID() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdatePatientID()
	})
}

// SetSessionDate sets the "session_date" field.
func (u *ActivityBookingUpsertOne) SetSessionDate(v time.Time) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetSessionDate(v)
	})
}

// UpdateSessionDate sets the "session_date" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateSessionDate() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateSessionDate()
	})
}

// SetStatus sets the "status" field.
func (u *ActivityBookingUpsertOne) SetStatus(v activitybooking.Status) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateStatus() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateStatus()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ActivityBookingUpsertOne) SetCancelledAt(v time.Time) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateCancelledAt() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ActivityBookingUpsertOne) ClearCancelledAt() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *ActivityBookingUpsertOne) SetCancelledBy(v uuid.UUID) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateCancelledBy() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *ActivityBookingUpsertOne) ClearCancelledBy() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *ActivityBookingUpsertOne) SetCancellationReason(v string) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateCancellationReason() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *ActivityBookingUpsertOne) ClearCancellationReason() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearCancellationReason()
	})
}

// SetNotes sets the "notes" field.
func (u *ActivityBookingUpsertOne) SetNotes(v string) *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ActivityBookingUpsertOne) UpdateNotes() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ActivityBookingUpsertOne) ClearNotes() *ActivityBookingUpsertOne {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ActivityBookingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityBookingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityBookingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityBookingUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ActivityBookingUpsertOne.ID is not supported by MySQL driver. Use ActivityBookingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityBookingUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityBookingCreateBulk is the builder for creating many ActivityBooking entities in bulk.
type ActivityBookingCreateBulk struct {
	config
	err      error
	builders []*ActivityBookingCreate
	conflict []sql.ConflictOption
}

// Save creates the ActivityBooking entities in the database.
func (_c *ActivityBookingCreateBulk) Save(ctx context.Context) ([]*ActivityBooking, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityBooking, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityBookingMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ActivityBookingCreateBulk) SaveX(ctx context.Context) []*ActivityBooking {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityBookingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityBookingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityBooking.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityBookingUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityBookingCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityBookingUpsertBulk {
	_c.conflict = opts
	return &ActivityBookingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityBooking.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityBookingCreateBulk) OnConflictColumns(columns ...string) *ActivityBookingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityBookingUpsertBulk{
		create: _c,
	}
}

// ActivityBookingUpsertBulk is the builder for "upsert"-ing
// a bulk of ActivityBooking nodes.
type ActivityBookingUpsertBulk struct {
	create *ActivityBookingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActivityBooking.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activitybooking.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityBookingUpsertBulk) UpdateNewValues() *ActivityBookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(activitybooking.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activitybooking.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityBooking.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityBookingUpsertBulk) Ignore() *ActivityBookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityBookingUpsertBulk) DoNothing() *ActivityBookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityBookingCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityBookingUpsertBulk) Update(set func(*ActivityBookingUpsert)) *ActivityBookingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityBookingUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityBookingUpsertBulk) SetUpdatedAt(v time.Time) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateUpdatedAt() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityBookingUpsertBulk) SetActivityID(v uuid.UUID) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateActivityID() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateActivityID()
	})
}

// SetScheduleID sets the "schedule_id" field.
func (u *ActivityBookingUpsertBulk) SetScheduleID(v uuid.UUID) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetScheduleID(v)
	})
}

// UpdateScheduleID sets the "schedule_id" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateScheduleID() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateScheduleID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *ActivityBookingUpsertBulk) SetPatientID(v uuid.UUID) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdatePatientID() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdatePatientID()
	})
}

// SetSessionDate sets the "session_date" field.
func (u *ActivityBookingUpsertBulk) SetSessionDate(v time.Time) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetSessionDate(v)
	})
}

// UpdateSessionDate sets the "session_date" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateSessionDate() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateSessionDate()
	})
}

// SetStatus sets the "status" field.
func (u *ActivityBookingUpsertBulk) SetStatus(v activitybooking.Status) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateStatus() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateStatus()
	})
}

// SetCancelledAt sets the "cancelled_at" field.
func (u *ActivityBookingUpsertBulk) SetCancelledAt(v time.Time) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetCancelledAt(v)
	})
}

// UpdateCancelledAt sets the "cancelled_at" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateCancelledAt() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateCancelledAt()
	})
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (u *ActivityBookingUpsertBulk) ClearCancelledAt() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearCancelledAt()
	})
}

// SetCancelledBy sets the "cancelled_by" field.
func (u *ActivityBookingUpsertBulk) SetCancelledBy(v uuid.UUID) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetCancelledBy(v)
	})
}

// UpdateCancelledBy sets the "cancelled_by" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateCancelledBy() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateCancelledBy()
	})
}

// ClearCancelledBy clears the value of the "cancelled_by" field.
func (u *ActivityBookingUpsertBulk) ClearCancelledBy() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearCancelledBy()
	})
}

// SetCancellationReason sets the "cancellation_reason" field.
func (u *ActivityBookingUpsertBulk) SetCancellationReason(v string) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetCancellationReason(v)
	})
}

// UpdateCancellationReason sets the "cancellation_reason" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateCancellationReason() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateCancellationReason()
	})
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (u *ActivityBookingUpsertBulk) ClearCancellationReason() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearCancellationReason()
	})
}

// SetNotes sets the "notes" field.
func (u *ActivityBookingUpsertBulk) SetNotes(v string) *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ActivityBookingUpsertBulk) UpdateNotes() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ActivityBookingUpsertBulk) ClearNotes() *ActivityBookingUpsertBulk {
	return u.Update(func(s *ActivityBookingUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ActivityBookingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ActivityBookingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityBookingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityBookingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
