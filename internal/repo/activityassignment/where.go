// Code generated by ent, DO NOT EDIT.

package activityassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldActivityID, v))
}

// PhysiotherapistID applies equality check predicate on the "physiotherapist_id" field. It's identical to PhysiotherapistIDEQ.
func PhysiotherapistID(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldPhysiotherapistID, v))
}

// AssignedBy applies equality check predicate on the "assigned_by" field. It's identical to AssignedByEQ.
func AssignedBy(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldAssignedBy, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldAssignedAt, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLTE(FieldActivityID, v))
}

// PhysiotherapistIDEQ applies the EQ predicate on the "physiotherapist_id" field.
func PhysiotherapistIDEQ(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldPhysiotherapistID, v))
}

// PhysiotherapistIDNEQ applies the NEQ predicate on the "physiotherapist_id" field.
func PhysiotherapistIDNEQ(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNEQ(FieldPhysiotherapistID, v))
}

// PhysiotherapistIDIn applies the In predicate on the "physiotherapist_id" field.
func PhysiotherapistIDIn(vs ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldIn(FieldPhysiotherapistID, vs...))
}

// PhysiotherapistIDNotIn applies the NotIn predicate on the "physiotherapist_id" field.
func PhysiotherapistIDNotIn(vs ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNotIn(FieldPhysiotherapistID, vs...))
}

// PhysiotherapistIDGT applies the GT predicate on the "physiotherapist_id" field.
func PhysiotherapistIDGT(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGT(FieldPhysiotherapistID, v))
}

// PhysiotherapistIDGTE applies the GTE predicate on the "physiotherapist_id" field.
func PhysiotherapistIDGTE(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGTE(FieldPhysiotherapistID, v))
}

// PhysiotherapistIDLT applies the LT predicate on the "physiotherapist_id" field.
func PhysiotherapistIDLT(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLT(FieldPhysiotherapistID, v))
}

// PhysiotherapistIDLTE applies the LTE predicate on the "physiotherapist_id" field.
func PhysiotherapistIDLTE(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLTE(FieldPhysiotherapistID, v))
}

// AssignedByEQ applies the EQ predicate on the "assigned_by" field.
func AssignedByEQ(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldAssignedBy, v))
}

// AssignedByNEQ applies the NEQ predicate on the "assigned_by" field.
func AssignedByNEQ(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNEQ(FieldAssignedBy, v))
}

// AssignedByIn applies the In predicate on the "assigned_by" field.
func AssignedByIn(vs ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldIn(FieldAssignedBy, vs...))
}

// AssignedByNotIn applies the NotIn predicate on the "assigned_by" field.
func AssignedByNotIn(vs ...uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNotIn(FieldAssignedBy, vs...))
}

// AssignedByGT applies the GT predicate on the "assigned_by" field.
func AssignedByGT(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGT(FieldAssignedBy, v))
}

// AssignedByGTE applies the GTE predicate on the "assigned_by" field.
func AssignedByGTE(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGTE(FieldAssignedBy, v))
}

// AssignedByLT applies the LT predicate on the "assigned_by" field.
func AssignedByLT(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLT(FieldAssignedBy, v))
}

// AssignedByLTE applies the LTE predicate on the "assigned_by" field.
func AssignedByLTE(v uuid.UUID) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLTE(FieldAssignedBy, v))
}

// AssignedByIsNil applies the IsNil predicate on the "assigned_by" field.
func AssignedByIsNil() predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldIsNull(FieldAssignedBy))
}

// AssignedByNotNil applies the NotNil predicate on the "assigned_by" field.
func AssignedByNotNil() predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNotNull(FieldAssignedBy))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldLTE(FieldAssignedAt, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityAssignment) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityAssignment) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityAssignment) predicate.ActivityAssignment {
	return predicate.ActivityAssignment(sql.NotPredicates(p))
}
