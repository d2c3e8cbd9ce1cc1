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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/availability"
	"github.com/google/uuid"
)

// AvailabilityCreate is the builder for creating a Availability entity.
type AvailabilityCreate struct {
	config
	mutation *AvailabilityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilityCreate) SetCreatedAt(v time.Time) *AvailabilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilityCreate) SetNillableCreatedAt(v *time.Time) *AvailabilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilityCreate) SetUpdatedAt(v time.Time) *AvailabilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilityCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *AvailabilityCreate) SetClinicID(v uuid.UUID) *AvailabilityCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_c *AvailabilityCreate) SetPhysiotherapistID(v uuid.UUID) *AvailabilityCreate {
	_c.mutation.SetPhysiotherapistID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *AvailabilityCreate) SetDayOfWeek(v availability.DayOfWeek) *AvailabilityCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AvailabilityCreate) SetStartTime(v string) *AvailabilityCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AvailabilityCreate) SetEndTime(v string) *AvailabilityCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AvailabilityCreate) SetIsActive(v bool) *AvailabilityCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AvailabilityCreate) SetNillableIsActive(v *bool) *AvailabilityCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilityCreate) SetID(v uuid.UUID) *AvailabilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilityCreate) SetNillableID(v *uuid.UUID) *AvailabilityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AvailabilityMutation object of the builder.
func (_c *AvailabilityCreate) Mutation() *AvailabilityMutation {
	return _c.mutation
}

// Save creates the Availability in the database.
func (_c *AvailabilityCreate) Save(ctx context.Context) (*Availability, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilityCreate) SaveX(ctx context.Context) *Availability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availability.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availability.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := availability.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availability.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Availability.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Availability.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Availability.clinic_id"`)}
	}
	if _, ok := _c.mutation.PhysiotherapistID(); !ok {
		return &ValidationError{Name: "physiotherapist_id", err: errors.New(`repo: missing required field "Availability.physiotherapist_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "Availability.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := availability.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "Availability.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Availability.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := availability.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "Availability.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Availability.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := availability.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "Availability.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Availability.is_active"`)}
	}
	return nil
}

func (_c *AvailabilityCreate) sqlSave(ctx context.Context) (*Availability, error) {
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

func (_c *AvailabilityCreate) createSpec() (*Availability, *sqlgraph.CreateSpec) {
	var (
		_node = &Availability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availability.Table, sqlgraph.NewFieldSpec(availability.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availability.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availability.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(availability.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.PhysiotherapistID(); ok {
		_spec.SetField(availability.FieldPhysiotherapistID, field.TypeUUID, value)
		_node.PhysiotherapistID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(availability.FieldDayOfWeek, field.TypeEnum, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(availability.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(availability.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(availability.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Availability.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityCreate) OnConflict(opts ...sql.ConflictOption) *AvailabilityUpsertOne {
	_c.conflict = opts
	return &AvailabilityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Availability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityCreate) OnConflictColumns(columns ...string) *AvailabilityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityUpsertOne{
		create: _c,
	}
}

type (
	// AvailabilityUpsertOne is the builder for "upsert"-ing
	//  one Availability node.
	AvailabilityUpsertOne struct {
		create *AvailabilityCreate
	}

	// AvailabilityUpsert is the "OnConflict" setter.
	AvailabilityUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityUpsert) SetUpdatedAt(v time.Time) *AvailabilityUpsert {
	u.Set(availability.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityUpsert) UpdateUpdatedAt() *AvailabilityUpsert {
	u.SetExcluded(availability.FieldUpdatedAt)
	return u
}

// SetClinicID sets the "clinic_id" field.
func (u *AvailabilityUpsert) SetClinicID(v uuid.UUID) *AvailabilityUpsert {
	u.Set(availability.FieldClinicID, v)
	return u
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AvailabilityUpsert) UpdateClinicID() *AvailabilityUpsert {
	u.SetExcluded(availability.FieldClinicID)
	return u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *AvailabilityUpsert) SetPhysiotherapistID(v uuid.UUID) *AvailabilityUpsert {
	u.Set(availability.FieldPhysiotherapistID, v)
	return u
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *AvailabilityUpsert) UpdatePhysiotherapistID() *AvailabilityUpsert {
	u.SetExcluded(availability.FieldPhysiotherapistID)
	return u
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityUpsert) SetDayOfWeek(v availability.DayOfWeek) *AvailabilityUpsert {
	u.Set(availability.FieldDayOfWeek, v)
	return u
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityUpsert) UpdateDayOfWeek() *AvailabilityUpsert {
	u.SetExcluded(availability.FieldDayOfWeek)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *AvailabilityUpsert) SetStartTime(v string) *AvailabilityUpsert {
	u.Set(availability.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AvailabilityUpsert) UpdateStartTime() *AvailabilityUpsert {
	u.SetExcluded(availability.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *AvailabilityUpsert) SetEndTime(v string) *AvailabilityUpsert {
	u.Set(availability.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AvailabilityUpsert) UpdateEndTime() *AvailabilityUpsert {
	u.SetExcluded(availability.FieldEndTime)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityUpsert) SetIsActive(v bool) *AvailabilityUpsert {
	u.Set(availability.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityUpsert) UpdateIsActive() *AvailabilityUpsert {
	u.SetExcluded(availability.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Availability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityUpsertOne) UpdateNewValues() *AvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(availability.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(availability.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Availability.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AvailabilityUpsertOne) Ignore() *AvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityUpsertOne) DoNothing() *AvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityCreate.OnConflict
// documentation for more info.
func (u *AvailabilityUpsertOne) Update(set func(*AvailabilityUpsert)) *AvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityUpsertOne) SetUpdatedAt(v time.Time) *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityUpsertOne) UpdateUpdatedAt() *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AvailabilityUpsertOne) SetClinicID(v uuid.UUID) *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AvailabilityUpsertOne) UpdateClinicID() *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateClinicID()
	})
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *AvailabilityUpsertOne) SetPhysiotherapistID(v uuid.UUID) *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetPhysiotherapistID(v)
	})
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *AvailabilityUpsertOne) UpdatePhysiotherapistID() *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdatePhysiotherapistID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityUpsertOne) SetDayOfWeek(v availability.DayOfWeek) *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityUpsertOne) UpdateDayOfWeek() *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AvailabilityUpsertOne) SetStartTime(v string) *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AvailabilityUpsertOne) UpdateStartTime() *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AvailabilityUpsertOne) SetEndTime(v string) *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AvailabilityUpsertOne) UpdateEndTime() *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateEndTime()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityUpsertOne) SetIsActive(v bool) *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityUpsertOne) UpdateIsActive() *AvailabilityUpsertOne {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AvailabilityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AvailabilityUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AvailabilityUpsertOne.ID is not supported by MySQL driver. Use AvailabilityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AvailabilityUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AvailabilityCreateBulk is the builder for creating many Availability entities in bulk.
type AvailabilityCreateBulk struct {
	config
	err      error
	builders []*AvailabilityCreate
	conflict []sql.ConflictOption
}

// Save creates the Availability entities in the database.
func (_c *AvailabilityCreateBulk) Save(ctx context.Context) ([]*Availability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Availability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilityMutation)
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
func (_c *AvailabilityCreateBulk) SaveX(ctx context.Context) []*Availability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Availability.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AvailabilityUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AvailabilityCreateBulk) OnConflict(opts ...sql.ConflictOption) *AvailabilityUpsertBulk {
	_c.conflict = opts
	return &AvailabilityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Availability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AvailabilityCreateBulk) OnConflictColumns(columns ...string) *AvailabilityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AvailabilityUpsertBulk{
		create: _c,
	}
}

// AvailabilityUpsertBulk is the builder for "upsert"-ing
// a bulk of Availability nodes.
type AvailabilityUpsertBulk struct {
	create *AvailabilityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Availability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(availability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AvailabilityUpsertBulk) UpdateNewValues() *AvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(availability.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(availability.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Availability.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AvailabilityUpsertBulk) Ignore() *AvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AvailabilityUpsertBulk) DoNothing() *AvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AvailabilityCreateBulk.OnConflict
// documentation for more info.
func (u *AvailabilityUpsertBulk) Update(set func(*AvailabilityUpsert)) *AvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AvailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AvailabilityUpsertBulk) SetUpdatedAt(v time.Time) *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AvailabilityUpsertBulk) UpdateUpdatedAt() *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetClinicID sets the "clinic_id" field.
func (u *AvailabilityUpsertBulk) SetClinicID(v uuid.UUID) *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetClinicID(v)
	})
}

// UpdateClinicID sets the "clinic_id" field to the value that was provided on create.
func (u *AvailabilityUpsertBulk) UpdateClinicID() *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateClinicID()
	})
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *AvailabilityUpsertBulk) SetPhysiotherapistID(v uuid.UUID) *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetPhysiotherapistID(v)
	})
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *AvailabilityUpsertBulk) UpdatePhysiotherapistID() *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdatePhysiotherapistID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *AvailabilityUpsertBulk) SetDayOfWeek(v availability.DayOfWeek) *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *AvailabilityUpsertBulk) UpdateDayOfWeek() *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AvailabilityUpsertBulk) SetStartTime(v string) *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AvailabilityUpsertBulk) UpdateStartTime() *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AvailabilityUpsertBulk) SetEndTime(v string) *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AvailabilityUpsertBulk) UpdateEndTime() *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateEndTime()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AvailabilityUpsertBulk) SetIsActive(v bool) *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AvailabilityUpsertBulk) UpdateIsActive() *AvailabilityUpsertBulk {
	return u.Update(func(s *AvailabilityUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AvailabilityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AvailabilityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AvailabilityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AvailabilityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
