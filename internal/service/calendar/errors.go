package calendar

import "errors"

var (
	ErrPhysioNotFound  = errors.New("physiotherapist not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrForbidden       = errors.New("not allowed to view this calendar")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)
