// Package actor models the authenticated caller as a closed set of kinds and
// implements every ownership check as a pure function over that value. Service
// code never inspects raw role strings.
package actor

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind discriminates the Actor union.
type Kind string

const (
	KindPatient      Kind = "patient"
	KindPractitioner Kind = "practitioner"
	KindClinicAdmin  Kind = "clinic_admin"
	KindSuperAdmin   Kind = "super_admin"
)

// Actor is the authenticated caller. Exactly the fields implied by Kind are
// set: PatientID for patients, PractitionerID for practitioners, ClinicID for
// every kind except super admin. UserID is set for patients and practitioners.
type Actor struct {
	Kind           Kind
	UserID         uuid.UUID
	PatientID      uuid.UUID
	PractitionerID uuid.UUID
	ClinicID       uuid.UUID
}

// Patient builds a patient actor.
func Patient(userID, patientID, clinicID uuid.UUID) Actor {
	return Actor{Kind: KindPatient, UserID: userID, PatientID: patientID, ClinicID: clinicID}
}

// Practitioner builds a practitioner actor.
func Practitioner(userID, practitionerID, clinicID uuid.UUID) Actor {
	return Actor{Kind: KindPractitioner, UserID: userID, PractitionerID: practitionerID, ClinicID: clinicID}
}

// ClinicAdmin builds a clinic-admin actor.
func ClinicAdmin(userID, clinicID uuid.UUID) Actor {
	return Actor{Kind: KindClinicAdmin, UserID: userID, ClinicID: clinicID}
}

// SuperAdmin builds a super-admin actor; it belongs to no clinic.
func SuperAdmin(userID uuid.UUID) Actor {
	return Actor{Kind: KindSuperAdmin, UserID: userID}
}

// ParseKind validates a stored role value.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPatient, KindPractitioner, KindClinicAdmin, KindSuperAdmin:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown actor kind: %q", s)
}

// IsStaff reports whether a is a practitioner, clinic admin or super admin.
func (a Actor) IsStaff() bool {
	return a.Kind == KindPractitioner || a.Kind == KindClinicAdmin || a.Kind == KindSuperAdmin
}

// IsAdmin reports whether a is a clinic admin or super admin.
func (a Actor) IsAdmin() bool {
	return a.Kind == KindClinicAdmin || a.Kind == KindSuperAdmin
}

// InClinic reports whether a may act inside clinicID. Super admins may act in
// any clinic.
func (a Actor) InClinic(clinicID uuid.UUID) bool {
	if a.Kind == KindSuperAdmin {
		return true
	}
	return a.ClinicID == clinicID
}

// OwnsPatient reports whether a is the patient identified by patientID.
func (a Actor) OwnsPatient(patientID uuid.UUID) bool {
	return a.Kind == KindPatient && a.PatientID == patientID
}

// OwnsPractitioner reports whether a is the practitioner identified by
// practitionerID.
func (a Actor) OwnsPractitioner(practitionerID uuid.UUID) bool {
	return a.Kind == KindPractitioner && a.PractitionerID == practitionerID
}
