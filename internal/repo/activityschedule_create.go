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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activityschedule"
	"github.com/google/uuid"
)

// ActivityScheduleCreate is the builder for creating a ActivitySchedule entity.
type ActivityScheduleCreate struct {
	config
	mutation *ActivityScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityScheduleCreate) SetCreatedAt(v time.Time) *ActivityScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityScheduleCreate) SetNillableCreatedAt(v *time.Time) *ActivityScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActivityScheduleCreate) SetUpdatedAt(v time.Time) *ActivityScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActivityScheduleCreate) SetNillableUpdatedAt(v *time.Time) *ActivityScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *ActivityScheduleCreate) SetActivityID(v uuid.UUID) *ActivityScheduleCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *ActivityScheduleCreate) SetDayOfWeek(v activityschedule.DayOfWeek) *ActivityScheduleCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *ActivityScheduleCreate) SetStartTime(v string) *ActivityScheduleCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *ActivityScheduleCreate) SetEndTime(v string) *ActivityScheduleCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ActivityScheduleCreate) SetStartDate(v time.Time) *ActivityScheduleCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *ActivityScheduleCreate) SetNillableStartDate(v *time.Time) *ActivityScheduleCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ActivityScheduleCreate) SetEndDate(v time.Time) *ActivityScheduleCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ActivityScheduleCreate) SetNillableEndDate(v *time.Time) *ActivityScheduleCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ActivityScheduleCreate) SetIsActive(v bool) *ActivityScheduleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ActivityScheduleCreate) SetNillableIsActive(v *bool) *ActivityScheduleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityScheduleCreate) SetID(v uuid.UUID) *ActivityScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActivityScheduleCreate) SetNillableID(v *uuid.UUID) *ActivityScheduleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ActivityScheduleMutation object of the builder.
func (_c *ActivityScheduleCreate) Mutation() *ActivityScheduleMutation {
	return _c.mutation
}

// Save creates the ActivitySchedule in the database.
func (_c *ActivityScheduleCreate) Save(ctx context.Context) (*ActivitySchedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityScheduleCreate) SaveX(ctx context.Context) *ActivitySchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityScheduleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activityschedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := activityschedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := activityschedule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := activityschedule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityScheduleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ActivitySchedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ActivitySchedule.updated_at"`)}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`repo: missing required field "ActivitySchedule.activity_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "ActivitySchedule.day_of_week"`)}
	}
	if v, ok := _c.mutation.DayOfWeek(); ok {
		if err := activityschedule.DayOfWeekValidator(v); err != nil {
			return &ValidationError{Name: "day_of_week", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.day_of_week": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "ActivitySchedule.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := activityschedule.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "ActivitySchedule.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := activityschedule.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "ActivitySchedule.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ActivitySchedule.is_active"`)}
	}
	return nil
}

func (_c *ActivityScheduleCreate) sqlSave(ctx context.Context) (*ActivitySchedule, error) {
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

func (_c *ActivityScheduleCreate) createSpec() (*ActivitySchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivitySchedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityschedule.Table, sqlgraph.NewFieldSpec(activityschedule.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activityschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(activityschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(activityschedule.FieldActivityID, field.TypeUUID, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(activityschedule.FieldDayOfWeek, field.TypeEnum, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(activityschedule.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(activityschedule.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(activityschedule.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(activityschedule.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(activityschedule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivitySchedule.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityScheduleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ActivityScheduleUpsertOne {
	_c.conflict = opts
	return &ActivityScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivitySchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityScheduleCreate) OnConflictColumns(columns ...string) *ActivityScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ActivityScheduleUpsertOne is the builder for "upsert"-ing
	//  one ActivitySchedule node.
	ActivityScheduleUpsertOne struct {
		create *ActivityScheduleCreate
	}

	// ActivityScheduleUpsert is the "OnConflict" setter.
	ActivityScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityScheduleUpsert) SetUpdatedAt(v time.Time) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateUpdatedAt() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldUpdatedAt)
	return u
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityScheduleUpsert) SetActivityID(v uuid.UUID) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldActivityID, v)
	return u
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateActivityID() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldActivityID)
	return u
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *ActivityScheduleUpsert) SetDayOfWeek(v activityschedule.DayOfWeek) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldDayOfWeek, v)
	return u
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateDayOfWeek() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldDayOfWeek)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *ActivityScheduleUpsert) SetStartTime(v string) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateStartTime() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *ActivityScheduleUpsert) SetEndTime(v string) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateEndTime() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldEndTime)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *ActivityScheduleUpsert) SetStartDate(v time.Time) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateStartDate() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldStartDate)
	return u
}

// ClearStartDate clears the value of the "start_date" field.
func (u *ActivityScheduleUpsert) ClearStartDate() *ActivityScheduleUpsert {
	u.SetNull(activityschedule.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *ActivityScheduleUpsert) SetEndDate(v time.Time) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateEndDate() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldEndDate)
	return u
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ActivityScheduleUpsert) ClearEndDate() *ActivityScheduleUpsert {
	u.SetNull(activityschedule.FieldEndDate)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ActivityScheduleUpsert) SetIsActive(v bool) *ActivityScheduleUpsert {
	u.Set(activityschedule.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityScheduleUpsert) UpdateIsActive() *ActivityScheduleUpsert {
	u.SetExcluded(activityschedule.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActivitySchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activityschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityScheduleUpsertOne) UpdateNewValues() *ActivityScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(activityschedule.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activityschedule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivitySchedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityScheduleUpsertOne) Ignore() *ActivityScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityScheduleUpsertOne) DoNothing() *ActivityScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityScheduleCreate.OnConflict
// documentation for more info.
func (u *ActivityScheduleUpsertOne) Update(set func(*ActivityScheduleUpsert)) *ActivityScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityScheduleUpsertOne) SetUpdatedAt(v time.Time) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateUpdatedAt() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityScheduleUpsertOne) SetActivityID(v uuid.UUID) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateActivityID() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateActivityID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *ActivityScheduleUpsertOne) SetDayOfWeek(v activityschedule.DayOfWeek) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateDayOfWeek() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartTime sets the "start_time" field.
func (u *ActivityScheduleUpsertOne) SetStartTime(v string) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateStartTime() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *ActivityScheduleUpsertOne) SetEndTime(v string) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateEndTime() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateEndTime()
	})
}

// SetStartDate sets the "start_date" field.
func (u *ActivityScheduleUpsertOne) SetStartDate(v time.Time) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateStartDate() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *ActivityScheduleUpsertOne) ClearStartDate() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.ClearStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *ActivityScheduleUpsertOne) SetEndDate(v time.Time) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateEndDate() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ActivityScheduleUpsertOne) ClearEndDate() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.ClearEndDate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ActivityScheduleUpsertOne) SetIsActive(v bool) *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityScheduleUpsertOne) UpdateIsActive() *ActivityScheduleUpsertOne {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ActivityScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityScheduleUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ActivityScheduleUpsertOne.ID is not supported by MySQL driver. Use ActivityScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityScheduleUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityScheduleCreateBulk is the builder for creating many ActivitySchedule entities in bulk.
type ActivityScheduleCreateBulk struct {
	config
	err      error
	builders []*ActivityScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the ActivitySchedule entities in the database.
func (_c *ActivityScheduleCreateBulk) Save(ctx context.Context) ([]*ActivitySchedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivitySchedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityScheduleMutation)
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
func (_c *ActivityScheduleCreateBulk) SaveX(ctx context.Context) []*ActivitySchedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivitySchedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityScheduleUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityScheduleUpsertBulk {
	_c.conflict = opts
	return &ActivityScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivitySchedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityScheduleCreateBulk) OnConflictColumns(columns ...string) *ActivityScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityScheduleUpsertBulk{
		create: _c,
	}
}

// ActivityScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of ActivitySchedule nodes.
type ActivityScheduleUpsertBulk struct {
	create *ActivityScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActivitySchedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activityschedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityScheduleUpsertBulk) UpdateNewValues() *ActivityScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(activityschedule.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activityschedule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivitySchedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityScheduleUpsertBulk) Ignore() *ActivityScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityScheduleUpsertBulk) DoNothing() *ActivityScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityScheduleUpsertBulk) Update(set func(*ActivityScheduleUpsert)) *ActivityScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActivityScheduleUpsertBulk) SetUpdatedAt(v time.Time) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateUpdatedAt() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityScheduleUpsertBulk) SetActivityID(v uuid.UUID) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateActivityID() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateActivityID()
	})
}

// SetDayOfWeek sets the "day_of_week" field.
func (u *ActivityScheduleUpsertBulk) SetDayOfWeek(v activityschedule.DayOfWeek) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetDayOfWeek(v)
	})
}

// UpdateDayOfWeek sets the "day_of_week" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateDayOfWeek() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateDayOfWeek()
	})
}

// SetStartTime sets the "start_time" field.
func (u *ActivityScheduleUpsertBulk) SetStartTime(v string) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateStartTime() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *ActivityScheduleUpsertBulk) SetEndTime(v string) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateEndTime() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateEndTime()
	})
}

// SetStartDate sets the "start_date" field.
func (u *ActivityScheduleUpsertBulk) SetStartDate(v time.Time) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateStartDate() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateStartDate()
	})
}

// ClearStartDate clears the value of the "start_date" field.
func (u *ActivityScheduleUpsertBulk) ClearStartDate() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.ClearStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *ActivityScheduleUpsertBulk) SetEndDate(v time.Time) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateEndDate() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateEndDate()
	})
}

// ClearEndDate clears the value of the "end_date" field.
func (u *ActivityScheduleUpsertBulk) ClearEndDate() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.ClearEndDate()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ActivityScheduleUpsertBulk) SetIsActive(v bool) *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityScheduleUpsertBulk) UpdateIsActive() *ActivityScheduleUpsertBulk {
	return u.Update(func(s *ActivityScheduleUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ActivityScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ActivityScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
