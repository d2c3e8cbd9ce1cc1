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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	"github.com/google/uuid"
)

// ActivityCreate is the builder for creating a Activity entity.
type ActivityCreate struct {
	config
	mutation *ActivityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityCreate) SetCreatedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableCreatedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActivityCreate) SetUpdatedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableUpdatedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ActivityCreate) SetDeletedAt(v time.Time) *ActivityCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDeletedAt(v *time.Time) *ActivityCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ActivityCreate) SetClinicID(v uuid.UUID) *ActivityCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_c *ActivityCreate) SetPhysiotherapistID(v uuid.UUID) *ActivityCreate {
	_c.mutation.SetPhysiotherapistID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ActivityCreate) SetName(v string) *ActivityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ActivityCreate) SetDescription(v string) *ActivityCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDescription(v *string) *ActivityCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ActivityCreate) SetType(v activity.Type) *ActivityCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableType(v *activity.Type) *ActivityCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ActivityCreate) SetDifficulty(v activity.Difficulty) *ActivityCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableDifficulty(v *activity.Difficulty) *ActivityCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetMaxParticipants sets the "max_participants" field.
func (_c *ActivityCreate) SetMaxParticipants(v int) *ActivityCreate {
	_c.mutation.SetMaxParticipants(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *ActivityCreate) SetDurationMinutes(v int) *ActivityCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetPriceCents sets the "price_cents" field.
func (_c *ActivityCreate) SetPriceCents(v int64) *ActivityCreate {
	_c.mutation.SetPriceCents(v)
	return _c
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_c *ActivityCreate) SetNillablePriceCents(v *int64) *ActivityCreate {
	if v != nil {
		_c.SetPriceCents(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *ActivityCreate) SetLocation(v string) *ActivityCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableLocation(v *string) *ActivityCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ActivityCreate) SetIsActive(v bool) *ActivityCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableIsActive(v *bool) *ActivityCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityCreate) SetID(v uuid.UUID) *ActivityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActivityCreate) SetNillableID(v *uuid.UUID) *ActivityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ActivityMutation object of the builder.
func (_c *ActivityCreate) Mutation() *ActivityMutation {
	return _c.mutation
}

// Save creates the Activity in the database.
func (_c *ActivityCreate) Save(ctx context.Context) (*Activity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityCreate) SaveX(ctx context.Context) *Activity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := activity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.GetType(); !ok {
		v := activity.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := activity.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := activity.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := activity.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Activity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Activity.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Activity.clinic_id"`)}
	}
	if _, ok := _c.mutation.PhysiotherapistID(); !ok {
		return &ValidationError{Name: "physiotherapist_id", err: errors.New(`repo: missing required field "Activity.physiotherapist_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Activity.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := activity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Activity.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "Activity.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := activity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Activity.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`repo: missing required field "Activity.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := activity.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`repo: validator failed for field "Activity.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxParticipants(); !ok {
		return &ValidationError{Name: "max_participants", err: errors.New(`repo: missing required field "Activity.max_participants"`)}
	}
	if v, ok := _c.mutation.MaxParticipants(); ok {
		if err := activity.MaxParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "max_participants", err: fmt.Errorf(`repo: validator failed for field "Activity.max_participants": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "Activity.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := activity.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Activity.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := activity.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Activity.location": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Activity.is_active"`)}
	}
	return nil
}

func (_c *ActivityCreate) sqlSave(ctx context.Context) (*Activity, error) {
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

func (_c *ActivityCreate) createSpec() (*Activity, *sqlgraph.CreateSpec) {
	var (
		_node = &Activity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activity.Table, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(activity.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(activity.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.PhysiotherapistID(); ok {
		_spec.SetField(activity.FieldPhysiotherapistID, field.TypeUUID, value)
		_node.PhysiotherapistID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(activity.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(activity.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(activity.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.MaxParticipants(); ok {
		_spec.SetField(activity.FieldMaxParticipants, field.TypeInt, value)
		_node.MaxParticipants = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(activity.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.PriceCents(); ok {
		_spec.SetField(activity.FieldPriceCents, field.TypeInt64, value)
		_node.PriceCents = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(activity.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(activity.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Activity.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityCreate) OnConflict(opts ...sql.ConflictOption) *ActivityUpsertOne {
	_c.conflict = opts
	return &ActivityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityCreate) OnConflictColumns(columns ...string) *ActivityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityUpsertOne{
		create: _c,
	}
}

type (
	// ActivityUpsertOne is the builder for "upsert"-ing
	//  one Activity node.
	ActivityUpsertOne struct {
		create *ActivityCreate
	}

	// ActivityUpsert is the "OnConflict" setter.
	ActivityUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityUpsert) SetUpdatedAt(v time.Time) *ActivityUpsert {
	u.Set(activity.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateUpdatedAt() *ActivityUpsert {
	u.SetExcluded(activity.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActivityUpsert) SetDeletedAt(v time.Time) *ActivityUpsert {
	u.Set(activity.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateDeletedAt() *ActivityUpsert {
	u.SetExcluded(activity.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActivityUpsert) ClearDeletedAt() *ActivityUpsert {
	u.SetNull(activity.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *ActivityUpsert) SetClinicID(v uuid.UUID) *ActivityUpsert {
	u.Set(activity.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateClinicID() *ActivityUpsert {
	u.SetExcluded(activity.FieldClinicID)
	return u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *ActivityUpsert) SetPhysiotherapistID(v uuid.UUID) *ActivityUpsert {
	u.Set(activity.FieldPhysiotherapistID, v)
	return u
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *ActivityUpsert) UpdatePhysiotherapistID() *ActivityUpsert {
	u.SetExcluded(activity.FieldPhysiotherapistID)
	return u
}

// SetName sets the "name" field.
func (u *ActivityUpsert) SetName(v string) *ActivityUpsert {
	u.Set(activity.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateName() *ActivityUpsert {
	u.SetExcluded(activity.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ActivityUpsert) SetDescription(v string) *ActivityUpsert {
	u.Set(activity.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateDescription() *ActivityUpsert {
	u.SetExcluded(activity.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ActivityUpsert) ClearDescription() *ActivityUpsert {
	u.SetNull(activity.FieldDescription)
	return u
}

// SetType sets the "type" field.
func (u *ActivityUpsert) SetType(v activity.Type) *ActivityUpsert {
	u.Set(activity.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateType() *ActivityUpsert {
	u.SetExcluded(activity.FieldType)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *ActivityUpsert) SetDifficulty(v activity.Difficulty) *ActivityUpsert {
	u.Set(activity.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateDifficulty() *ActivityUpsert {
	u.SetExcluded(activity.FieldDifficulty)
	return u
}

// SetMaxParticipants sets the "max_participants" field.
func (u *ActivityUpsert) SetMaxParticipants(v int) *ActivityUpsert {
	u.Set(activity.FieldMaxParticipants, v)
	return u
}

// UpdateMaxParticipants sets the "max_participants" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateMaxParticipants() *ActivityUpsert {
	u.SetExcluded(activity.FieldMaxParticipants)
	return u
}

// AddMaxParticipants adds v to the "max_participants" field.
func (u *ActivityUpsert) AddMaxParticipants(v int) *ActivityUpsert {
	u.Add(activity.FieldMaxParticipants, v)
	return u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *ActivityUpsert) SetDurationMinutes(v int) *ActivityUpsert {
	u.Set(activity.FieldDurationMinutes, v)
	return u
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateDurationMinutes() *ActivityUpsert {
	u.SetExcluded(activity.FieldDurationMinutes)
	return u
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *ActivityUpsert) AddDurationMinutes(v int) *ActivityUpsert {
	u.Add(activity.FieldDurationMinutes, v)
	return u
}

// SetPriceCents sets the "price_cents" field.
func (u *ActivityUpsert) SetPriceCents(v int64) *ActivityUpsert {
	u.Set(activity.FieldPriceCents, v)
	return u
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *ActivityUpsert) UpdatePriceCents() *ActivityUpsert {
	u.SetExcluded(activity.FieldPriceCents)
	return u
}

// AddPriceCents adds v to the "price_cents" field.
func (u *ActivityUpsert) AddPriceCents(v int64) *ActivityUpsert {
	u.Add(activity.FieldPriceCents, v)
	return u
}

// ClearPriceCents clears the value of the "price_cents" field.
func (u *ActivityUpsert) ClearPriceCents() *ActivityUpsert {
	u.SetNull(activity.FieldPriceCents)
	return u
}

// SetLocation sets the "location" field.
func (u *ActivityUpsert) SetLocation(v string) *ActivityUpsert {
	u.Set(activity.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateLocation() *ActivityUpsert {
	u.SetExcluded(activity.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *ActivityUpsert) ClearLocation() *ActivityUpsert {
	u.SetNull(activity.FieldLocation)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ActivityUpsert) SetIsActive(v bool) *ActivityUpsert {
	u.Set(activity.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityUpsert) UpdateIsActive() *ActivityUpsert {
	u.SetExcluded(activity.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityUpsertOne) UpdateNewValues() *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(activity.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activity.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Activity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityUpsertOne) Ignore() *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityUpsertOne) DoNothing() *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityCreate.OnConflict
// documentation for more info.
func (u *ActivityUpsertOne) Update(set func(*ActivityUpsert)) *ActivityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityUpsertOne) SetUpdatedAt(v time.Time) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateUpdatedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActivityUpsertOne) SetDeletedAt(v time.Time) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateDeletedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActivityUpsertOne) ClearDeletedAt() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ActivityUpsertOne) SetClinicID(v uuid.UUID) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateClinicID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateClinicID()
	})
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *ActivityUpsertOne) SetPhysiotherapistID(v uuid.UUID) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetPhysiotherapistID(v)
	})
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdatePhysiotherapistID() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdatePhysiotherapistID()
	})
}

// SetName sets the "name" field.
func (u *ActivityUpsertOne) SetName(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateName() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ActivityUpsertOne) SetDescription(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateDescription() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ActivityUpsertOne) ClearDescription() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDescription()
	})
}

// SetType sets the "type" field.
func (u *ActivityUpsertOne) SetType(v activity.Type) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateType() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateType()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *ActivityUpsertOne) SetDifficulty(v activity.Difficulty) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateDifficulty() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDifficulty()
	})
}

// SetMaxParticipants sets the "max_participants" field.
func (u *ActivityUpsertOne) SetMaxParticipants(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetMaxParticipants(v)
	})
}

// AddMaxParticipants adds v to the "max_participants" field.
func (u *ActivityUpsertOne) AddMaxParticipants(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.AddMaxParticipants(v)
	})
}

// UpdateMaxParticipants sets the "max_participants" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateMaxParticipants() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateMaxParticipants()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *ActivityUpsertOne) SetDurationMinutes(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *ActivityUpsertOne) AddDurationMinutes(v int) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateDurationMinutes() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetPriceCents sets the "price_cents" field.
func (u *ActivityUpsertOne) SetPriceCents(v int64) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetPriceCents(v)
	})
}

// AddPriceCents adds v to the "price_cents" field.
func (u *ActivityUpsertOne) AddPriceCents(v int64) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.AddPriceCents(v)
	})
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdatePriceCents() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdatePriceCents()
	})
}

// ClearPriceCents clears the value of the "price_cents" field.
func (u *ActivityUpsertOne) ClearPriceCents() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearPriceCents()
	})
}

// SetLocation sets the "location" field.
func (u *ActivityUpsertOne) SetLocation(v string) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateLocation() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ActivityUpsertOne) ClearLocation() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearLocation()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ActivityUpsertOne) SetIsActive(v bool) *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityUpsertOne) UpdateIsActive() *ActivityUpsertOne {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ActivityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ActivityUpsertOne.ID is not supported by MySQL driver. Use ActivityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityCreateBulk is the builder for creating many Activity entities in bulk.
type ActivityCreateBulk struct {
	config
	err      error
	builders []*ActivityCreate
	conflict []sql.ConflictOption
}

// Save creates the Activity entities in the database.
func (_c *ActivityCreateBulk) Save(ctx context.Context) ([]*Activity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Activity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityMutation)
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
func (_c *ActivityCreateBulk) SaveX(ctx context.Context) []*Activity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Activity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityUpsertBulk {
	_c.conflict = opts
	return &ActivityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityCreateBulk) OnConflictColumns(columns ...string) *ActivityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityUpsertBulk{
		create: _c,
	}
}

// ActivityUpsertBulk is the builder for "upsert"-ing
// a bulk of Activity nodes.
type ActivityUpsertBulk struct {
	create *ActivityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityUpsertBulk) UpdateNewValues() *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(activity.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activity.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Activity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityUpsertBulk) Ignore() *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityUpsertBulk) DoNothing() *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityUpsertBulk) Update(set func(*ActivityUpsert)) *ActivityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityUpsertBulk) SetUpdatedAt(v time.Time) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateUpdatedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ActivityUpsertBulk) SetDeletedAt(v time.Time) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateDeletedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ActivityUpsertBulk) ClearDeletedAt() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *ActivityUpsertBulk) SetClinicID(v uuid.UUID) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateClinicID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateClinicID()
	})
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *ActivityUpsertBulk) SetPhysiotherapistID(v uuid.UUID) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetPhysiotherapistID(v)
	})
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdatePhysiotherapistID() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdatePhysiotherapistID()
	})
}

// SetName sets the "name" field.
func (u *ActivityUpsertBulk) SetName(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateName() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ActivityUpsertBulk) SetDescription(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateDescription() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ActivityUpsertBulk) ClearDescription() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearDescription()
	})
}

// SetType sets the "type" field.
func (u *ActivityUpsertBulk) SetType(v activity.Type) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateType() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateType()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *ActivityUpsertBulk) SetDifficulty(v activity.Difficulty) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateDifficulty() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDifficulty()
	})
}

// SetMaxParticipants sets the "max_participants" field.
func (u *ActivityUpsertBulk) SetMaxParticipants(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetMaxParticipants(v)
	})
}

// AddMaxParticipants adds v to the "max_participants" field.
func (u *ActivityUpsertBulk) AddMaxParticipants(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.AddMaxParticipants(v)
	})
}

// UpdateMaxParticipants sets the "max_participants" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateMaxParticipants() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateMaxParticipants()
	})
}

// SetDurationMinutes sets the "duration_minutes" field.
func (u *ActivityUpsertBulk) SetDurationMinutes(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetDurationMinutes(v)
	})
}

// AddDurationMinutes adds v to the "duration_minutes" field.
func (u *ActivityUpsertBulk) AddDurationMinutes(v int) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.AddDurationMinutes(v)
	})
}

// UpdateDurationMinutes sets the "duration_minutes" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateDurationMinutes() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateDurationMinutes()
	})
}

// SetPriceCents sets the "price_cents" field.
func (u *ActivityUpsertBulk) SetPriceCents(v int64) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetPriceCents(v)
	})
}

// AddPriceCents adds v to the "price_cents" field.
func (u *ActivityUpsertBulk) AddPriceCents(v int64) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.AddPriceCents(v)
	})
}

// UpdatePriceCents sets the "price_cents" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdatePriceCents() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdatePriceCents()
	})
}

// ClearPriceCents clears the value of the "price_cents" field.
func (u *ActivityUpsertBulk) ClearPriceCents() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearPriceCents()
	})
}

// SetLocation sets the "location" field.
func (u *ActivityUpsertBulk) SetLocation(v string) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateLocation() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *ActivityUpsertBulk) ClearLocation() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.ClearLocation()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ActivityUpsertBulk) SetIsActive(v bool) *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityUpsertBulk) UpdateIsActive() *ActivityUpsertBulk {
	return u.Update(func(s *ActivityUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ActivityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ActivityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
