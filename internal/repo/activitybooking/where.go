// Code generated by ent, DO NOT EDIT.

package activitybooking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldActivityID, v))
}

// ScheduleID applies equality check predicate on the "schedule_id" field. It's identical to ScheduleIDEQ.
func ScheduleID(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldScheduleID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldPatientID, v))
}

// SessionDate applies equality check predicate on the "session_date" field. It's identical to SessionDateEQ.
func SessionDate(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldSessionDate, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledBy applies equality check predicate on the "cancelled_by" field. It's identical to CancelledByEQ.
func CancelledBy(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCancelledBy, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCancellationReason, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldUpdatedAt, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldActivityID, v))
}

// ScheduleIDEQ applies the EQ predicate on the "schedule_id" field.
func ScheduleIDEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldScheduleID, v))
}

// ScheduleIDNEQ applies the NEQ predicate on the "schedule_id" field.
func ScheduleIDNEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldScheduleID, v))
}

// ScheduleIDIn applies the In predicate on the "schedule_id" field.
func ScheduleIDIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldScheduleID, vs...))
}

// ScheduleIDNotIn applies the NotIn predicate on the "schedule_id" field.
func ScheduleIDNotIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldScheduleID, vs...))
}

// ScheduleIDGT applies the GT predicate on the "schedule_id" field.
func ScheduleIDGT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldScheduleID, v))
}

// ScheduleIDGTE applies the GTE predicate on the "schedule_id" field.
func ScheduleIDGTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldScheduleID, v))
}

// ScheduleIDLT applies the LT predicate on the "schedule_id" field.
func ScheduleIDLT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldScheduleID, v))
}

// ScheduleIDLTE applies the LTE predicate on the "schedule_id" field.
func ScheduleIDLTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldScheduleID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldPatientID, v))
}

// SessionDateEQ applies the EQ predicate on the "session_date" field.
func SessionDateEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldSessionDate, v))
}

// SessionDateNEQ applies the NEQ predicate on the "session_date" field.
func SessionDateNEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldSessionDate, v))
}

// SessionDateIn applies the In predicate on the "session_date" field.
func SessionDateIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldSessionDate, vs...))
}

// SessionDateNotIn applies the NotIn predicate on the "session_date" field.
func SessionDateNotIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldSessionDate, vs...))
}

// SessionDateGT applies the GT predicate on the "session_date" field.
func SessionDateGT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldSessionDate, v))
}

// SessionDateGTE applies the GTE predicate on the "session_date" field.
func SessionDateGTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldSessionDate, v))
}

// SessionDateLT applies the LT predicate on the "session_date" field.
func SessionDateLT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldSessionDate, v))
}

// SessionDateLTE applies the LTE predicate on the "session_date" field.
func SessionDateLTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldSessionDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldStatus, vs...))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotNull(FieldCancelledAt))
}

// CancelledByEQ applies the EQ predicate on the "cancelled_by" field.
func CancelledByEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCancelledBy, v))
}

// CancelledByNEQ applies the NEQ predicate on the "cancelled_by" field.
func CancelledByNEQ(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldCancelledBy, v))
}

// CancelledByIn applies the In predicate on the "cancelled_by" field.
func CancelledByIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldCancelledBy, vs...))
}

// CancelledByNotIn applies the NotIn predicate on the "cancelled_by" field.
func CancelledByNotIn(vs ...uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldCancelledBy, vs...))
}

// CancelledByGT applies the GT predicate on the "cancelled_by" field.
func CancelledByGT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldCancelledBy, v))
}

// CancelledByGTE applies the GTE predicate on the "cancelled_by" field.
func CancelledByGTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldCancelledBy, v))
}

// CancelledByLT applies the LT predicate on the "cancelled_by" field.
func CancelledByLT(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldCancelledBy, v))
}

// CancelledByLTE applies the LTE predicate on the "cancelled_by" field.
func CancelledByLTE(v uuid.UUID) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldCancelledBy, v))
}

// CancelledByIsNil applies the IsNil predicate on the "cancelled_by" field.
func CancelledByIsNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIsNull(FieldCancelledBy))
}

// CancelledByNotNil applies the NotNil predicate on the "cancelled_by" field.
func CancelledByNotNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotNull(FieldCancelledBy))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldContainsFold(FieldCancellationReason, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityBooking) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityBooking) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityBooking) predicate.ActivityBooking {
	return predicate.ActivityBooking(sql.NotPredicates(p))
}
