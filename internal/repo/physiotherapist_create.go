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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/google/uuid"
)

// PhysiotherapistCreate is the builder for creating a Physiotherapist entity.
type PhysiotherapistCreate struct {
	config
	mutation *PhysiotherapistMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhysiotherapistCreate) SetCreatedAt(v time.Time) *PhysiotherapistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableCreatedAt(v *time.Time) *PhysiotherapistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PhysiotherapistCreate) SetUpdatedAt(v time.Time) *PhysiotherapistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableUpdatedAt(v *time.Time) *PhysiotherapistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PhysiotherapistCreate) SetDeletedAt(v time.Time) *PhysiotherapistCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableDeletedAt(v *time.Time) *PhysiotherapistCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *PhysiotherapistCreate) SetClinicID(v uuid.UUID) *PhysiotherapistCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PhysiotherapistCreate) SetUserID(v uuid.UUID) *PhysiotherapistCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *PhysiotherapistCreate) SetSpecialty(v string) *PhysiotherapistCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableSpecialty(v *string) *PhysiotherapistCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetLicenseNumber sets the "license_number" field.
func (_c *PhysiotherapistCreate) SetLicenseNumber(v string) *PhysiotherapistCreate {
	_c.mutation.SetLicenseNumber(v)
	return _c
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableLicenseNumber(v *string) *PhysiotherapistCreate {
	if v != nil {
		_c.SetLicenseNumber(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *PhysiotherapistCreate) SetBio(v string) *PhysiotherapistCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableBio(v *string) *PhysiotherapistCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PhysiotherapistCreate) SetIsActive(v bool) *PhysiotherapistCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableIsActive(v *bool) *PhysiotherapistCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhysiotherapistCreate) SetID(v uuid.UUID) *PhysiotherapistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PhysiotherapistCreate) SetNillableID(v *uuid.UUID) *PhysiotherapistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PhysiotherapistMutation object of the builder.
func (_c *PhysiotherapistCreate) Mutation() *PhysiotherapistMutation {
	return _c.mutation
}

// Save creates the Physiotherapist in the database.
func (_c *PhysiotherapistCreate) Save(ctx context.Context) (*Physiotherapist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhysiotherapistCreate) SaveX(ctx context.Context) *Physiotherapist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysiotherapistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysiotherapistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhysiotherapistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := physiotherapist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := physiotherapist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := physiotherapist.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := physiotherapist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhysiotherapistCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Physiotherapist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Physiotherapist.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Physiotherapist.clinic_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Physiotherapist.user_id"`)}
	}
	if v, ok := _c.mutation.Specialty(); ok {
		if err := physiotherapist.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Physiotherapist.specialty": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LicenseNumber(); ok {
		if err := physiotherapist.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Physiotherapist.license_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Physiotherapist.is_active"`)}
	}
	return nil
}

func (_c *PhysiotherapistCreate) sqlSave(ctx context.Context) (*Physiotherapist, error) {
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

func (_c *PhysiotherapistCreate) createSpec() (*Physiotherapist, *sqlgraph.CreateSpec) {
	var (
		_node = &Physiotherapist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(physiotherapist.Table, sqlgraph.NewFieldSpec(physiotherapist.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(physiotherapist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(physiotherapist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(physiotherapist.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(physiotherapist.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(physiotherapist.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(physiotherapist.FieldSpecialty, field.TypeString, value)
		_node.Specialty = &value
	}
	if value, ok := _c.mutation.LicenseNumber(); ok {
		_spec.SetField(physiotherapist.FieldLicenseNumber, field.TypeString, value)
		_node.LicenseNumber = &value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(physiotherapist.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(physiotherapist.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Physiotherapist.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhysiotherapistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PhysiotherapistCreate) OnConflict(opts ...sql.ConflictOption) *PhysiotherapistUpsertOne {
	_c.conflict = opts
	return &PhysiotherapistUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Physiotherapist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhysiotherapistCreate) OnConflictColumns(columns ...string) *PhysiotherapistUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhysiotherapistUpsertOne{
		create: _c,
	}
}

type (
	// PhysiotherapistUpsertOne is the builder for "upsert"-ing
	//  one Physiotherapist node.
	PhysiotherapistUpsertOne struct {
		create *PhysiotherapistCreate
	}

	// PhysiotherapistUpsert is the "OnConflict" setter.
	PhysiotherapistUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PhysiotherapistUpsert) SetUpdatedAt(v time.Time) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateUpdatedAt() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PhysiotherapistUpsert) SetDeletedAt(v time.Time) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateDeletedAt() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PhysiotherapistUpsert) ClearDeletedAt() *PhysiotherapistUpsert {
	u.SetNull(physiotherapist.FieldDeletedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *PhysiotherapistUpsert) SetClinicID(v uuid.UUID) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateClinicID() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldClinicID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PhysiotherapistUpsert) SetUserID(v uuid.UUID) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateUserID() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldUserID)
	return u
}

// SetSpecialty sets the "specialty" field.
func (u *PhysiotherapistUpsert) SetSpecialty(v string) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldSpecialty, v)
	return u
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateSpecialty() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldSpecialty)
	return u
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *PhysiotherapistUpsert) ClearSpecialty() *PhysiotherapistUpsert {
	u.SetNull(physiotherapist.FieldSpecialty)
	return u
}

// SetLicenseNumber sets the "license_number" field.
func (u *PhysiotherapistUpsert) SetLicenseNumber(v string) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldLicenseNumber, v)
	return u
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateLicenseNumber() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldLicenseNumber)
	return u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *PhysiotherapistUpsert) ClearLicenseNumber() *PhysiotherapistUpsert {
	u.SetNull(physiotherapist.FieldLicenseNumber)
	return u
}

// SetBio sets the "bio" field.
func (u *PhysiotherapistUpsert) SetBio(v string) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateBio() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *PhysiotherapistUpsert) ClearBio() *PhysiotherapistUpsert {
	u.SetNull(physiotherapist.FieldBio)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PhysiotherapistUpsert) SetIsActive(v bool) *PhysiotherapistUpsert {
	u.Set(physiotherapist.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PhysiotherapistUpsert) UpdateIsActive() *PhysiotherapistUpsert {
	u.SetExcluded(physiotherapist.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Physiotherapist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(physiotherapist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhysiotherapistUpsertOne) UpdateNewValues() *PhysiotherapistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(physiotherapist.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(physiotherapist.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Physiotherapist.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PhysiotherapistUpsertOne) Ignore() *PhysiotherapistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhysiotherapistUpsertOne) DoNothing() *PhysiotherapistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhysiotherapistCreate.OnConflict
// documentation for more info.
func (u *PhysiotherapistUpsertOne) Update(set func(*PhysiotherapistUpsert)) *PhysiotherapistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhysiotherapistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhysiotherapistUpsertOne) SetUpdatedAt(v time.Time) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateUpdatedAt() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PhysiotherapistUpsertOne) SetDeletedAt(v time.Time) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateDeletedAt() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PhysiotherapistUpsertOne) ClearDeletedAt() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PhysiotherapistUpsertOne) SetClinicID(v uuid.UUID) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateClinicID() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PhysiotherapistUpsertOne) SetUserID(v uuid.UUID) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateUserID() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateUserID()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *PhysiotherapistUpsertOne) SetSpecialty(v string) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateSpecialty() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *PhysiotherapistUpsertOne) ClearSpecialty() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearSpecialty()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *PhysiotherapistUpsertOne) SetLicenseNumber(v string) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateLicenseNumber() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateLicenseNumber()
	})
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *PhysiotherapistUpsertOne) ClearLicenseNumber() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearLicenseNumber()
	})
}

// SetBio sets the "bio" field.
func (u *PhysiotherapistUpsertOne) SetBio(v string) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateBio() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *PhysiotherapistUpsertOne) ClearBio() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearBio()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PhysiotherapistUpsertOne) SetIsActive(v bool) *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PhysiotherapistUpsertOne) UpdateIsActive() *PhysiotherapistUpsertOne {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PhysiotherapistUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PhysiotherapistCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhysiotherapistUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PhysiotherapistUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PhysiotherapistUpsertOne.ID is not supported by MySQL driver. Use PhysiotherapistUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PhysiotherapistUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PhysiotherapistCreateBulk is the builder for creating many Physiotherapist entities in bulk.
type PhysiotherapistCreateBulk struct {
	config
	err      error
	builders []*PhysiotherapistCreate
	conflict []sql.ConflictOption
}

// Save creates the Physiotherapist entities in the database.
func (_c *PhysiotherapistCreateBulk) Save(ctx context.Context) ([]*Physiotherapist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Physiotherapist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhysiotherapistMutation)
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
func (_c *PhysiotherapistCreateBulk) SaveX(ctx context.Context) []*Physiotherapist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysiotherapistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysiotherapistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Physiotherapist.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PhysiotherapistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PhysiotherapistCreateBulk) OnConflict(opts ...sql.ConflictOption) *PhysiotherapistUpsertBulk {
	_c.conflict = opts
	return &PhysiotherapistUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Physiotherapist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PhysiotherapistCreateBulk) OnConflictColumns(columns ...string) *PhysiotherapistUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PhysiotherapistUpsertBulk{
		create: _c,
	}
}

// PhysiotherapistUpsertBulk is the builder for "upsert"-ing
// a bulk of Physiotherapist nodes.
type PhysiotherapistUpsertBulk struct {
	create *PhysiotherapistCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Physiotherapist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(physiotherapist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PhysiotherapistUpsertBulk) UpdateNewValues() *PhysiotherapistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(physiotherapist.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(physiotherapist.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Physiotherapist.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PhysiotherapistUpsertBulk) Ignore() *PhysiotherapistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PhysiotherapistUpsertBulk) DoNothing() *PhysiotherapistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PhysiotherapistCreateBulk.OnConflict
// documentation for more info.
func (u *PhysiotherapistUpsertBulk) Update(set func(*PhysiotherapistUpsert)) *PhysiotherapistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PhysiotherapistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PhysiotherapistUpsertBulk) SetUpdatedAt(v time.Time) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateUpdatedAt() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PhysiotherapistUpsertBulk) SetDeletedAt(v time.Time) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateDeletedAt() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PhysiotherapistUpsertBulk) ClearDeletedAt() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearDeletedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *PhysiotherapistUpsertBulk) SetClinicID(v uuid.UUID) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateClinicID() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateClinicID()
	})
}

// SetUserID sets the "user_id" field.
func (u *PhysiotherapistUpsertBulk) SetUserID(v uuid.UUID) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateUserID() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateUserID()
	})
}

// SetSpecialty sets the "specialty" field.
func (u *PhysiotherapistUpsertBulk) SetSpecialty(v string) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetSpecialty(v)
	})
}

// UpdateSpecialty sets the "specialty" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateSpecialty() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateSpecialty()
	})
}

// ClearSpecialty clears the value of the "specialty" field.
func (u *PhysiotherapistUpsertBulk) ClearSpecialty() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearSpecialty()
	})
}

// SetLicenseNumber sets the "license_number" field.
func (u *PhysiotherapistUpsertBulk) SetLicenseNumber(v string) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetLicenseNumber(v)
	})
}

// UpdateLicenseNumber sets the "license_number" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateLicenseNumber() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateLicenseNumber()
	})
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (u *PhysiotherapistUpsertBulk) ClearLicenseNumber() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearLicenseNumber()
	})
}

// SetBio sets the "bio" field.
func (u *PhysiotherapistUpsertBulk) SetBio(v string) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateBio() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *PhysiotherapistUpsertBulk) ClearBio() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.ClearBio()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PhysiotherapistUpsertBulk) SetIsActive(v bool) *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PhysiotherapistUpsertBulk) UpdateIsActive() *PhysiotherapistUpsertBulk {
	return u.Update(func(s *PhysiotherapistUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *PhysiotherapistUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PhysiotherapistCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PhysiotherapistCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PhysiotherapistUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
