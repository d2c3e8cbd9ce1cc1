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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/physiotherapist"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// PhysiotherapistUpdate is the builder for updating Physiotherapist entities.
type PhysiotherapistUpdate struct {
	config
	hooks    []Hook
	mutation *PhysiotherapistMutation
}

// Where appends a list predicates to the PhysiotherapistUpdate builder.
func (_u *PhysiotherapistUpdate) Where(ps ...predicate.Physiotherapist) *PhysiotherapistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhysiotherapistUpdate) SetUpdatedAt(v time.Time) *PhysiotherapistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PhysiotherapistUpdate) SetDeletedAt(v time.Time) *PhysiotherapistUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PhysiotherapistUpdate) SetNillableDeletedAt(v *time.Time) *PhysiotherapistUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PhysiotherapistUpdate) ClearDeletedAt() *PhysiotherapistUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PhysiotherapistUpdate) SetClinicID(v uuid.UUID) *PhysiotherapistUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PhysiotherapistUpdate) SetNillableClinicID(v *uuid.UUID) *PhysiotherapistUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PhysiotherapistUpdate) SetUserID(v uuid.UUID) *PhysiotherapistUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PhysiotherapistUpdate) SetNillableUserID(v *uuid.UUID) *PhysiotherapistUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *PhysiotherapistUpdate) SetSpecialty(v string) *PhysiotherapistUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *PhysiotherapistUpdate) SetNillableSpecialty(v *string) *PhysiotherapistUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *PhysiotherapistUpdate) ClearSpecialty() *PhysiotherapistUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *PhysiotherapistUpdate) SetLicenseNumber(v string) *PhysiotherapistUpdate {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *PhysiotherapistUpdate) SetNillableLicenseNumber(v *string) *PhysiotherapistUpdate {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (_u *PhysiotherapistUpdate) ClearLicenseNumber() *PhysiotherapistUpdate {
	_u.mutation.ClearLicenseNumber()
	return _u
}

// SetBio sets the "bio" field.
func (_u *PhysiotherapistUpdate) SetBio(v string) *PhysiotherapistUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PhysiotherapistUpdate) SetNillableBio(v *string) *PhysiotherapistUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *PhysiotherapistUpdate) ClearBio() *PhysiotherapistUpdate {
	_u.mutation.ClearBio()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PhysiotherapistUpdate) SetIsActive(v bool) *PhysiotherapistUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PhysiotherapistUpdate) SetNillableIsActive(v *bool) *PhysiotherapistUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the PhysiotherapistMutation object of the builder.
func (_u *PhysiotherapistUpdate) Mutation() *PhysiotherapistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhysiotherapistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysiotherapistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhysiotherapistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysiotherapistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhysiotherapistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := physiotherapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysiotherapistUpdate) check() error {
	if v, ok := _u.mutation.Specialty(); ok {
		if err := physiotherapist.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Physiotherapist.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := physiotherapist.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Physiotherapist.license_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PhysiotherapistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physiotherapist.Table, physiotherapist.Columns, sqlgraph.NewFieldSpec(physiotherapist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(physiotherapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(physiotherapist.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(physiotherapist.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(physiotherapist.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(physiotherapist.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(physiotherapist.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(physiotherapist.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(physiotherapist.FieldLicenseNumber, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberCleared() {
		_spec.ClearField(physiotherapist.FieldLicenseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(physiotherapist.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(physiotherapist.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(physiotherapist.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{physiotherapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhysiotherapistUpdateOne is the builder for updating a single Physiotherapist entity.
type PhysiotherapistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhysiotherapistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhysiotherapistUpdateOne) SetUpdatedAt(v time.Time) *PhysiotherapistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PhysiotherapistUpdateOne) SetDeletedAt(v time.Time) *PhysiotherapistUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PhysiotherapistUpdateOne) SetNillableDeletedAt(v *time.Time) *PhysiotherapistUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PhysiotherapistUpdateOne) ClearDeletedAt() *PhysiotherapistUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *PhysiotherapistUpdateOne) SetClinicID(v uuid.UUID) *PhysiotherapistUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *PhysiotherapistUpdateOne) SetNillableClinicID(v *uuid.UUID) *PhysiotherapistUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PhysiotherapistUpdateOne) SetUserID(v uuid.UUID) *PhysiotherapistUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PhysiotherapistUpdateOne) SetNillableUserID(v *uuid.UUID) *PhysiotherapistUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *PhysiotherapistUpdateOne) SetSpecialty(v string) *PhysiotherapistUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *PhysiotherapistUpdateOne) SetNillableSpecialty(v *string) *PhysiotherapistUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *PhysiotherapistUpdateOne) ClearSpecialty() *PhysiotherapistUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetLicenseNumber sets the "license_number" field.
func (_u *PhysiotherapistUpdateOne) SetLicenseNumber(v string) *PhysiotherapistUpdateOne {
	_u.mutation.SetLicenseNumber(v)
	return _u
}

// SetNillableLicenseNumber sets the "license_number" field if the given value is not nil.
func (_u *PhysiotherapistUpdateOne) SetNillableLicenseNumber(v *string) *PhysiotherapistUpdateOne {
	if v != nil {
		_u.SetLicenseNumber(*v)
	}
	return _u
}

// ClearLicenseNumber clears the value of the "license_number" field.
func (_u *PhysiotherapistUpdateOne) ClearLicenseNumber() *PhysiotherapistUpdateOne {
	_u.mutation.ClearLicenseNumber()
	return _u
}

// SetBio sets the "bio" field.
func (_u *PhysiotherapistUpdateOne) SetBio(v string) *PhysiotherapistUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PhysiotherapistUpdateOne) SetNillableBio(v *string) *PhysiotherapistUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *PhysiotherapistUpdateOne) ClearBio() *PhysiotherapistUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PhysiotherapistUpdateOne) SetIsActive(v bool) *PhysiotherapistUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PhysiotherapistUpdateOne) SetNillableIsActive(v *bool) *PhysiotherapistUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the PhysiotherapistMutation object of the builder.
func (_u *PhysiotherapistUpdateOne) Mutation() *PhysiotherapistMutation {
	return _u.mutation
}

// Where appends a list predicates to the PhysiotherapistUpdate builder.
func (_u *PhysiotherapistUpdateOne) Where(ps ...predicate.Physiotherapist) *PhysiotherapistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhysiotherapistUpdateOne) Select(field string, fields ...string) *PhysiotherapistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Physiotherapist entity.
func (_u *PhysiotherapistUpdateOne) Save(ctx context.Context) (*Physiotherapist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysiotherapistUpdateOne) SaveX(ctx context.Context) *Physiotherapist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhysiotherapistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysiotherapistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhysiotherapistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := physiotherapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysiotherapistUpdateOne) check() error {
	if v, ok := _u.mutation.Specialty(); ok {
		if err := physiotherapist.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Physiotherapist.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LicenseNumber(); ok {
		if err := physiotherapist.LicenseNumberValidator(v); err != nil {
			return &ValidationError{Name: "license_number", err: fmt.Errorf(`repo: validator failed for field "Physiotherapist.license_number": %w`, err)}
		}
	}
	return nil
}

func (_u *PhysiotherapistUpdateOne) sqlSave(ctx context.Context) (_node *Physiotherapist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physiotherapist.Table, physiotherapist.Columns, sqlgraph.NewFieldSpec(physiotherapist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Physiotherapist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, physiotherapist.FieldID)
		for _, f := range fields {
			if !physiotherapist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != physiotherapist.FieldID {
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
		_spec.SetField(physiotherapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(physiotherapist.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(physiotherapist.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(physiotherapist.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(physiotherapist.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(physiotherapist.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(physiotherapist.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.LicenseNumber(); ok {
		_spec.SetField(physiotherapist.FieldLicenseNumber, field.TypeString, value)
	}
	if _u.mutation.LicenseNumberCleared() {
		_spec.ClearField(physiotherapist.FieldLicenseNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(physiotherapist.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(physiotherapist.FieldBio, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(physiotherapist.FieldIsActive, field.TypeBool, value)
	}
	_node = &Physiotherapist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{physiotherapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
