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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activity"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ActivityUpdate is the builder for updating Activity entities.
type ActivityUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityMutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdate) Where(ps ...predicate.Activity) *ActivityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityUpdate) SetUpdatedAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ActivityUpdate) SetDeletedAt(v time.Time) *ActivityUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDeletedAt(v *time.Time) *ActivityUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ActivityUpdate) ClearDeletedAt() *ActivityUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ActivityUpdate) SetClinicID(v uuid.UUID) *ActivityUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableClinicID(v *uuid.UUID) *ActivityUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_u *ActivityUpdate) SetPhysiotherapistID(v uuid.UUID) *ActivityUpdate {
	_u.mutation.SetPhysiotherapistID(v)
	return _u
}

// SetNillablePhysiotherapistID sets the "physiotherapist_id" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillablePhysiotherapistID(v *uuid.UUID) *ActivityUpdate {
	if v != nil {
		_u.SetPhysiotherapistID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ActivityUpdate) SetName(v string) *ActivityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableName(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityUpdate) SetDescription(v string) *ActivityUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDescription(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ActivityUpdate) ClearDescription() *ActivityUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetType sets the "type" field.
func (_u *ActivityUpdate) SetType(v activity.Type) *ActivityUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableType(v *activity.Type) *ActivityUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ActivityUpdate) SetDifficulty(v activity.Difficulty) *ActivityUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDifficulty(v *activity.Difficulty) *ActivityUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMaxParticipants sets the "max_participants" field.
func (_u *ActivityUpdate) SetMaxParticipants(v int) *ActivityUpdate {
	_u.mutation.ResetMaxParticipants()
	_u.mutation.SetMaxParticipants(v)
	return _u
}

// SetNillableMaxParticipants sets the "max_participants" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableMaxParticipants(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetMaxParticipants(*v)
	}
	return _u
}

// AddMaxParticipants adds value to the "max_participants" field.
func (_u *ActivityUpdate) AddMaxParticipants(v int) *ActivityUpdate {
	_u.mutation.AddMaxParticipants(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ActivityUpdate) SetDurationMinutes(v int) *ActivityUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableDurationMinutes(v *int) *ActivityUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ActivityUpdate) AddDurationMinutes(v int) *ActivityUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ActivityUpdate) SetPriceCents(v int64) *ActivityUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillablePriceCents(v *int64) *ActivityUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ActivityUpdate) AddPriceCents(v int64) *ActivityUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// ClearPriceCents clears the value of the "price_cents" field.
func (_u *ActivityUpdate) ClearPriceCents() *ActivityUpdate {
	_u.mutation.ClearPriceCents()
	return _u
}

// SetLocation sets the "location" field.
func (_u *ActivityUpdate) SetLocation(v string) *ActivityUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableLocation(v *string) *ActivityUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ActivityUpdate) ClearLocation() *ActivityUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ActivityUpdate) SetIsActive(v bool) *ActivityUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ActivityUpdate) SetNillableIsActive(v *bool) *ActivityUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdate) Mutation() *ActivityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := activity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Activity.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := activity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Activity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := activity.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`repo: validator failed for field "Activity.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxParticipants(); ok {
		if err := activity.MaxParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "max_participants", err: fmt.Errorf(`repo: validator failed for field "Activity.max_participants": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := activity.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Activity.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := activity.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Activity.location": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(activity.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(activity.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(activity.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PhysiotherapistID(); ok {
		_spec.SetField(activity.FieldPhysiotherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(activity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(activity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(activity.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxParticipants(); ok {
		_spec.SetField(activity.FieldMaxParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParticipants(); ok {
		_spec.AddField(activity.FieldMaxParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(activity.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(activity.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(activity.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(activity.FieldPriceCents, field.TypeInt64, value)
	}
	if _u.mutation.PriceCentsCleared() {
		_spec.ClearField(activity.FieldPriceCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(activity.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(activity.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(activity.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityUpdateOne is the builder for updating a single Activity entity.
type ActivityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActivityUpdateOne) SetUpdatedAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ActivityUpdateOne) SetDeletedAt(v time.Time) *ActivityUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDeletedAt(v *time.Time) *ActivityUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ActivityUpdateOne) ClearDeletedAt() *ActivityUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ActivityUpdateOne) SetClinicID(v uuid.UUID) *ActivityUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableClinicID(v *uuid.UUID) *ActivityUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_u *ActivityUpdateOne) SetPhysiotherapistID(v uuid.UUID) *ActivityUpdateOne {
	_u.mutation.SetPhysiotherapistID(v)
	return _u
}

// SetNillablePhysiotherapistID sets the "physiotherapist_id" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillablePhysiotherapistID(v *uuid.UUID) *ActivityUpdateOne {
	if v != nil {
		_u.SetPhysiotherapistID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ActivityUpdateOne) SetName(v string) *ActivityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableName(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityUpdateOne) SetDescription(v string) *ActivityUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDescription(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ActivityUpdateOne) ClearDescription() *ActivityUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetType sets the "type" field.
func (_u *ActivityUpdateOne) SetType(v activity.Type) *ActivityUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableType(v *activity.Type) *ActivityUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ActivityUpdateOne) SetDifficulty(v activity.Difficulty) *ActivityUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDifficulty(v *activity.Difficulty) *ActivityUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetMaxParticipants sets the "max_participants" field.
func (_u *ActivityUpdateOne) SetMaxParticipants(v int) *ActivityUpdateOne {
	_u.mutation.ResetMaxParticipants()
	_u.mutation.SetMaxParticipants(v)
	return _u
}

// SetNillableMaxParticipants sets the "max_participants" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableMaxParticipants(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetMaxParticipants(*v)
	}
	return _u
}

// AddMaxParticipants adds value to the "max_participants" field.
func (_u *ActivityUpdateOne) AddMaxParticipants(v int) *ActivityUpdateOne {
	_u.mutation.AddMaxParticipants(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ActivityUpdateOne) SetDurationMinutes(v int) *ActivityUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableDurationMinutes(v *int) *ActivityUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ActivityUpdateOne) AddDurationMinutes(v int) *ActivityUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ActivityUpdateOne) SetPriceCents(v int64) *ActivityUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillablePriceCents(v *int64) *ActivityUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ActivityUpdateOne) AddPriceCents(v int64) *ActivityUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// ClearPriceCents clears the value of the "price_cents" field.
func (_u *ActivityUpdateOne) ClearPriceCents() *ActivityUpdateOne {
	_u.mutation.ClearPriceCents()
	return _u
}

// SetLocation sets the "location" field.
func (_u *ActivityUpdateOne) SetLocation(v string) *ActivityUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableLocation(v *string) *ActivityUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ActivityUpdateOne) ClearLocation() *ActivityUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ActivityUpdateOne) SetIsActive(v bool) *ActivityUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ActivityUpdateOne) SetNillableIsActive(v *bool) *ActivityUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ActivityMutation object of the builder.
func (_u *ActivityUpdateOne) Mutation() *ActivityMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityUpdate builder.
func (_u *ActivityUpdateOne) Where(ps ...predicate.Activity) *ActivityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityUpdateOne) Select(field string, fields ...string) *ActivityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Activity entity.
func (_u *ActivityUpdateOne) Save(ctx context.Context) (*Activity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityUpdateOne) SaveX(ctx context.Context) *Activity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActivityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := activity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Activity.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := activity.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Activity.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := activity.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`repo: validator failed for field "Activity.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxParticipants(); ok {
		if err := activity.MaxParticipantsValidator(v); err != nil {
			return &ValidationError{Name: "max_participants", err: fmt.Errorf(`repo: validator failed for field "Activity.max_participants": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := activity.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "Activity.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := activity.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "Activity.location": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityUpdateOne) sqlSave(ctx context.Context) (_node *Activity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activity.Table, activity.Columns, sqlgraph.NewFieldSpec(activity.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Activity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activity.FieldID)
		for _, f := range fields {
			if !activity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != activity.FieldID {
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
		_spec.SetField(activity.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(activity.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(activity.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(activity.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PhysiotherapistID(); ok {
		_spec.SetField(activity.FieldPhysiotherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(activity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(activity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(activity.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(activity.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MaxParticipants(); ok {
		_spec.SetField(activity.FieldMaxParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxParticipants(); ok {
		_spec.AddField(activity.FieldMaxParticipants, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(activity.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(activity.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(activity.FieldPriceCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(activity.FieldPriceCents, field.TypeInt64, value)
	}
	if _u.mutation.PriceCentsCleared() {
		_spec.ClearField(activity.FieldPriceCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(activity.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(activity.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(activity.FieldIsActive, field.TypeBool, value)
	}
	_node = &Activity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
