package appointment

import "errors"

var (
	ErrNotFound             = errors.New("appointment not found")
	ErrForbidden            = errors.New("not allowed to act on this appointment")
	ErrInvalidTimeRange     = errors.New("end_time must be after start_time")
	ErrPastAppointment      = errors.New("appointment start must be in the future")
	ErrNoAvailabilityForDay = errors.New("practitioner has no availability on this day")
	ErrOutsideWorkingHours  = errors.New("appointment is outside the practitioner's working hours")
	ErrAppointmentConflict  = errors.New("appointment overlaps an existing appointment")
	ErrActivityConflict     = errors.New("appointment overlaps a scheduled group activity")
	ErrAlreadyCompleted     = errors.New("appointment is already completed")
	ErrAlreadyCancelled     = errors.New("appointment is already cancelled")
	ErrInvalidTransition    = errors.New("invalid appointment status transition")
	ErrPhysioNotFound       = errors.New("physiotherapist not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrBusy                 = errors.New("practitioner calendar is busy, retry")
)
