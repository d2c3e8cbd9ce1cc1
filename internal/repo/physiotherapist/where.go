// Code generated by ent, DO NOT EDIT.

package physiotherapist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aruizdev/fisioclinic_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldDeletedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldClinicID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldUserID, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldSpecialty, v))
}

// LicenseNumber applies equality check predicate on the "license_number" field. It's identical to LicenseNumberEQ.
func LicenseNumber(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldLicenseNumber, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldBio, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotNull(FieldDeletedAt))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldClinicID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldUserID, v))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyIsNil applies the IsNil predicate on the "specialty" field.
func SpecialtyIsNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIsNull(FieldSpecialty))
}

// SpecialtyNotNil applies the NotNil predicate on the "specialty" field.
func SpecialtyNotNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotNull(FieldSpecialty))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldContainsFold(FieldSpecialty, v))
}

// LicenseNumberEQ applies the EQ predicate on the "license_number" field.
func LicenseNumberEQ(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldLicenseNumber, v))
}

// LicenseNumberNEQ applies the NEQ predicate on the "license_number" field.
func LicenseNumberNEQ(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldLicenseNumber, v))
}

// LicenseNumberIn applies the In predicate on the "license_number" field.
func LicenseNumberIn(vs ...string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldLicenseNumber, vs...))
}

// LicenseNumberNotIn applies the NotIn predicate on the "license_number" field.
func LicenseNumberNotIn(vs ...string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldLicenseNumber, vs...))
}

// LicenseNumberGT applies the GT predicate on the "license_number" field.
func LicenseNumberGT(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldLicenseNumber, v))
}

// LicenseNumberGTE applies the GTE predicate on the "license_number" field.
func LicenseNumberGTE(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldLicenseNumber, v))
}

// LicenseNumberLT applies the LT predicate on the "license_number" field.
func LicenseNumberLT(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldLicenseNumber, v))
}

// LicenseNumberLTE applies the LTE predicate on the "license_number" field.
func LicenseNumberLTE(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldLicenseNumber, v))
}

// LicenseNumberContains applies the Contains predicate on the "license_number" field.
func LicenseNumberContains(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldContains(FieldLicenseNumber, v))
}

// LicenseNumberHasPrefix applies the HasPrefix predicate on the "license_number" field.
func LicenseNumberHasPrefix(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldHasPrefix(FieldLicenseNumber, v))
}

// LicenseNumberHasSuffix applies the HasSuffix predicate on the "license_number" field.
func LicenseNumberHasSuffix(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldHasSuffix(FieldLicenseNumber, v))
}

// LicenseNumberIsNil applies the IsNil predicate on the "license_number" field.
func LicenseNumberIsNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIsNull(FieldLicenseNumber))
}

// LicenseNumberNotNil applies the NotNil predicate on the "license_number" field.
func LicenseNumberNotNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotNull(FieldLicenseNumber))
}

// LicenseNumberEqualFold applies the EqualFold predicate on the "license_number" field.
func LicenseNumberEqualFold(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEqualFold(FieldLicenseNumber, v))
}

// LicenseNumberContainsFold applies the ContainsFold predicate on the "license_number" field.
func LicenseNumberContainsFold(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldContainsFold(FieldLicenseNumber, v))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldContainsFold(FieldBio, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Physiotherapist) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Physiotherapist) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Physiotherapist) predicate.Physiotherapist {
	return predicate.Physiotherapist(sql.NotPredicates(p))
}
