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
	"github.com/aruizdev/fisioclinic_backend/internal/repo/activityassignment"
	"github.com/google/uuid"
)

// ActivityAssignmentCreate is the builder for creating a ActivityAssignment entity.
type ActivityAssignmentCreate struct {
	config
	mutation *ActivityAssignmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActivityAssignmentCreate) SetCreatedAt(v time.Time) *ActivityAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActivityAssignmentCreate) SetNillableCreatedAt(v *time.Time) *ActivityAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *ActivityAssignmentCreate) SetActivityID(v uuid.UUID) *ActivityAssignmentCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (_c *ActivityAssignmentCreate) SetPhysiotherapistID(v uuid.UUID) *ActivityAssignmentCreate {
	_c.mutation.SetPhysiotherapistID(v)
	return _c
}

// SetAssignedBy sets the "assigned_by" field.
func (_c *ActivityAssignmentCreate) SetAssignedBy(v uuid.UUID) *ActivityAssignmentCreate {
	_c.mutation.SetAssignedBy(v)
	return _c
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_c *ActivityAssignmentCreate) SetNillableAssignedBy(v *uuid.UUID) *ActivityAssignmentCreate {
	if v != nil {
		_c.SetAssignedBy(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *ActivityAssignmentCreate) SetAssignedAt(v time.Time) *ActivityAssignmentCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ActivityAssignmentCreate) SetIsActive(v bool) *ActivityAssignmentCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ActivityAssignmentCreate) SetNillableIsActive(v *bool) *ActivityAssignmentCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActivityAssignmentCreate) SetID(v uuid.UUID) *ActivityAssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ActivityAssignmentCreate) SetNillableID(v *uuid.UUID) *ActivityAssignmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ActivityAssignmentMutation object of the builder.
func (_c *ActivityAssignmentCreate) Mutation() *ActivityAssignmentMutation {
	return _c.mutation
}

// Save creates the ActivityAssignment in the database.
func (_c *ActivityAssignmentCreate) Save(ctx context.Context) (*ActivityAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActivityAssignmentCreate) SaveX(ctx context.Context) *ActivityAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActivityAssignmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activityassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := activityassignment.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := activityassignment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActivityAssignmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ActivityAssignment.created_at"`)}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`repo: missing required field "ActivityAssignment.activity_id"`)}
	}
	if _, ok := _c.mutation.PhysiotherapistID(); !ok {
		return &ValidationError{Name: "physiotherapist_id", err: errors.New(`repo: missing required field "ActivityAssignment.physiotherapist_id"`)}
	}
	if _, ok := _c.mutation.AssignedAt(); !ok {
		return &ValidationError{Name: "assigned_at", err: errors.New(`repo: missing required field "ActivityAssignment.assigned_at"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ActivityAssignment.is_active"`)}
	}
	return nil
}

func (_c *ActivityAssignmentCreate) sqlSave(ctx context.Context) (*ActivityAssignment, error) {
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

func (_c *ActivityAssignmentCreate) createSpec() (*ActivityAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &ActivityAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activityassignment.Table, sqlgraph.NewFieldSpec(activityassignment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activityassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(activityassignment.FieldActivityID, field.TypeUUID, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.PhysiotherapistID(); ok {
		_spec.SetField(activityassignment.FieldPhysiotherapistID, field.TypeUUID, value)
		_node.PhysiotherapistID = value
	}
	if value, ok := _c.mutation.AssignedBy(); ok {
		_spec.SetField(activityassignment.FieldAssignedBy, field.TypeUUID, value)
		_node.AssignedBy = &value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(activityassignment.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(activityassignment.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityAssignment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityAssignmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityAssignmentCreate) OnConflict(opts ...sql.ConflictOption) *ActivityAssignmentUpsertOne {
	_c.conflict = opts
	return &ActivityAssignmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityAssignmentCreate) OnConflictColumns(columns ...string) *ActivityAssignmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityAssignmentUpsertOne{
		create: _c,
	}
}

type (
	// ActivityAssignmentUpsertOne is the builder for "upsert"-ing
	//  one ActivityAssignment node.
	ActivityAssignmentUpsertOne struct {
		create *ActivityAssignmentCreate
	}

	// ActivityAssignmentUpsert is the "OnConflict" setter.
	ActivityAssignmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetActivityID sets the "activity_id" field.
func (u *ActivityAssignmentUpsert) SetActivityID(v uuid.UUID) *ActivityAssignmentUpsert {
	u.Set(activityassignment.FieldActivityID, v)
	return u
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityAssignmentUpsert) UpdateActivityID() *ActivityAssignmentUpsert {
	u.SetExcluded(activityassignment.FieldActivityID)
	return u
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *ActivityAssignmentUpsert) SetPhysiotherapistID(v uuid.UUID) *ActivityAssignmentUpsert {
	u.Set(activityassignment.FieldPhysiotherapistID, v)
	return u
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *ActivityAssignmentUpsert) UpdatePhysiotherapistID() *ActivityAssignmentUpsert {
	u.SetExcluded(activityassignment.FieldPhysiotherapistID)
	return u
}

// SetAssignedBy sets the "assigned_by" field.
func (u *ActivityAssignmentUpsert) SetAssignedBy(v uuid.UUID) *ActivityAssignmentUpsert {
	u.Set(activityassignment.FieldAssignedBy, v)
	return u
}

// UpdateAssignedBy sets the "assigned_by" field to the value that was provided on create.
func (u *ActivityAssignmentUpsert) UpdateAssignedBy() *ActivityAssignmentUpsert {
	u.SetExcluded(activityassignment.FieldAssignedBy)
	return u
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (u *ActivityAssignmentUpsert) ClearAssignedBy() *ActivityAssignmentUpsert {
	u.SetNull(activityassignment.FieldAssignedBy)
	return u
}

// SetAssignedAt sets the "assigned_at" field.
func (u *ActivityAssignmentUpsert) SetAssignedAt(v time.Time) *ActivityAssignmentUpsert {
	u.Set(activityassignment.FieldAssignedAt, v)
	return u
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *ActivityAssignmentUpsert) UpdateAssignedAt() *ActivityAssignmentUpsert {
	u.SetExcluded(activityassignment.FieldAssignedAt)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *ActivityAssignmentUpsert) SetIsActive(v bool) *ActivityAssignmentUpsert {
	u.Set(activityassignment.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityAssignmentUpsert) UpdateIsActive() *ActivityAssignmentUpsert {
	u.SetExcluded(activityassignment.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ActivityAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activityassignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityAssignmentUpsertOne) UpdateNewValues() *ActivityAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(activityassignment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activityassignment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityAssignment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActivityAssignmentUpsertOne) Ignore() *ActivityAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityAssignmentUpsertOne) DoNothing() *ActivityAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityAssignmentCreate.OnConflict
// documentation for more info.
func (u *ActivityAssignmentUpsertOne) Update(set func(*ActivityAssignmentUpsert)) *ActivityAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityAssignmentUpsertOne) SetActivityID(v uuid.UUID) *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertOne) UpdateActivityID() *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateActivityID()
	})
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *ActivityAssignmentUpsertOne) SetPhysiotherapistID(v uuid.UUID) *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetPhysiotherapistID(v)
	})
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertOne) UpdatePhysiotherapistID() *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdatePhysiotherapistID()
	})
}

// SetAssignedBy sets the "assigned_by" field.
func (u *ActivityAssignmentUpsertOne) SetAssignedBy(v uuid.UUID) *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetAssignedBy(v)
	})
}

// UpdateAssignedBy sets the "assigned_by" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertOne) UpdateAssignedBy() *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateAssignedBy()
	})
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (u *ActivityAssignmentUpsertOne) ClearAssignedBy() *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.ClearAssignedBy()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *ActivityAssignmentUpsertOne) SetAssignedAt(v time.Time) *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertOne) UpdateAssignedAt() *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateAssignedAt()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ActivityAssignmentUpsertOne) SetIsActive(v bool) *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertOne) UpdateIsActive() *ActivityAssignmentUpsertOne {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ActivityAssignmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityAssignmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityAssignmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActivityAssignmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ActivityAssignmentUpsertOne.ID is not supported by MySQL driver. Use ActivityAssignmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActivityAssignmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActivityAssignmentCreateBulk is the builder for creating many ActivityAssignment entities in bulk.
type ActivityAssignmentCreateBulk struct {
	config
	err      error
	builders []*ActivityAssignmentCreate
	conflict []sql.ConflictOption
}

// Save creates the ActivityAssignment entities in the database.
func (_c *ActivityAssignmentCreateBulk) Save(ctx context.Context) ([]*ActivityAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActivityAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActivityAssignmentMutation)
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
func (_c *ActivityAssignmentCreateBulk) SaveX(ctx context.Context) []*ActivityAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActivityAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActivityAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActivityAssignment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActivityAssignmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ActivityAssignmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActivityAssignmentUpsertBulk {
	_c.conflict = opts
	return &ActivityAssignmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActivityAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActivityAssignmentCreateBulk) OnConflictColumns(columns ...string) *ActivityAssignmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActivityAssignmentUpsertBulk{
		create: _c,
	}
}

// ActivityAssignmentUpsertBulk is the builder for "upsert"-ing
// a bulk of ActivityAssignment nodes.
type ActivityAssignmentUpsertBulk struct {
	create *ActivityAssignmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActivityAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(activityassignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ActivityAssignmentUpsertBulk) UpdateNewValues() *ActivityAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(activityassignment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activityassignment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActivityAssignment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActivityAssignmentUpsertBulk) Ignore() *ActivityAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActivityAssignmentUpsertBulk) DoNothing() *ActivityAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActivityAssignmentCreateBulk.OnConflict
// documentation for more info.
func (u *ActivityAssignmentUpsertBulk) Update(set func(*ActivityAssignmentUpsert)) *ActivityAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActivityAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetActivityID sets the "activity_id" field.
func (u *ActivityAssignmentUpsertBulk) SetActivityID(v uuid.UUID) *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetActivityID(v)
	})
}

// UpdateActivityID sets the "activity_id" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertBulk) UpdateActivityID() *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateActivityID()
	})
}

// SetPhysiotherapistID sets the "physiotherapist_id" field.
func (u *ActivityAssignmentUpsertBulk) SetPhysiotherapistID(v uuid.UUID) *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetPhysiotherapistID(v)
	})
}

// UpdatePhysiotherapistID sets the "physiotherapist_id" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertBulk) UpdatePhysiotherapistID() *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdatePhysiotherapistID()
	})
}

// SetAssignedBy sets the "assigned_by" field.
func (u *ActivityAssignmentUpsertBulk) SetAssignedBy(v uuid.UUID) *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetAssignedBy(v)
	})
}

// UpdateAssignedBy sets the "assigned_by" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertBulk) UpdateAssignedBy() *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateAssignedBy()
	})
}

// ClearAssignedBy clears the value of the "assigned_by" field.
func (u *ActivityAssignmentUpsertBulk) ClearAssignedBy() *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.ClearAssignedBy()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *ActivityAssignmentUpsertBulk) SetAssignedAt(v time.Time) *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertBulk) UpdateAssignedAt() *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateAssignedAt()
	})
}

// SetIsActive sets the "is_active" field.
func (u *ActivityAssignmentUpsertBulk) SetIsActive(v bool) *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *ActivityAssignmentUpsertBulk) UpdateIsActive() *ActivityAssignmentUpsertBulk {
	return u.Update(func(s *ActivityAssignmentUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *ActivityAssignmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ActivityAssignmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ActivityAssignmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActivityAssignmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
