package actor

import "github.com/google/uuid"

// CanViewPatientRecords reports whether a may read the calendar, appointments
// and bookings of patientID within clinicID.
func CanViewPatientRecords(a Actor, patientID, clinicID uuid.UUID) bool {
	if a.OwnsPatient(patientID) {
		return true
	}
	return a.IsStaff() && a.InClinic(clinicID)
}

// CanViewPractitionerCalendar reports whether a may read the day/week timeline
// of practitionerID within clinicID. Patients only see free slots, not the
// full timeline.
func CanViewPractitionerCalendar(a Actor, practitionerID, clinicID uuid.UUID) bool {
	if a.OwnsPractitioner(practitionerID) {
		return true
	}
	return a.IsAdmin() && a.InClinic(clinicID)
}

// CanBookForPatient reports whether a may create an appointment or activity
// booking on behalf of patientID within clinicID.
func CanBookForPatient(a Actor, patientID, clinicID uuid.UUID) bool {
	if a.OwnsPatient(patientID) {
		return a.InClinic(clinicID)
	}
	return a.IsStaff() && a.InClinic(clinicID)
}

// CanCancelAppointment reports whether a may cancel an appointment owned by
// patientID with practitionerID, within clinicID.
func CanCancelAppointment(a Actor, patientID, practitionerID, clinicID uuid.UUID) bool {
	if a.OwnsPatient(patientID) || a.OwnsPractitioner(practitionerID) {
		return true
	}
	return a.IsAdmin() && a.InClinic(clinicID)
}

// CanCompleteAppointment reports whether a may mark an appointment with
// practitionerID as completed. Only the assigned practitioner may.
func CanCompleteAppointment(a Actor, practitionerID uuid.UUID) bool {
	return a.OwnsPractitioner(practitionerID)
}

// CanManageAvailability reports whether a may edit the availability template
// of practitionerID within clinicID.
func CanManageAvailability(a Actor, practitionerID, clinicID uuid.UUID) bool {
	if a.OwnsPractitioner(practitionerID) {
		return true
	}
	return a.IsAdmin() && a.InClinic(clinicID)
}

// CanManageActivities reports whether a may create/update activities, their
// schedules and assignments within clinicID.
func CanManageActivities(a Actor, clinicID uuid.UUID) bool {
	return a.IsAdmin() && a.InClinic(clinicID)
}

// CanSetBookingAttendance reports whether a may mark a booking attended or
// no-show within clinicID. This is a staff action.
func CanSetBookingAttendance(a Actor, clinicID uuid.UUID) bool {
	return a.IsStaff() && a.InClinic(clinicID)
}
