package activity

import "errors"

var (
	ErrNotFound          = errors.New("activity not found")
	ErrScheduleNotFound  = errors.New("activity schedule not found")
	ErrBookingNotFound   = errors.New("activity booking not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrForbidden         = errors.New("not allowed to act on this activity")
	ErrInvalidClock      = errors.New(`times must be zero-padded 24-hour "HH:MM"`)
	ErrInvalidWeekday    = errors.New("unknown weekday")
	ErrInvalidTimeRange  = errors.New("end_time must be after start_time")
	ErrInvalidDateRange  = errors.New("end_date must not be before start_date")
	ErrInvalidType       = errors.New("unknown activity type")
	ErrInvalidDuration   = errors.New("duration must be between 15 and 240 minutes")
	ErrInvalidDifficulty = errors.New("unknown difficulty level")
	ErrPhysioNotFound    = errors.New("physiotherapist not found")
	ErrWrongDay          = errors.New("session date does not fall on the schedule's weekday")
	ErrOutsideWindow     = errors.New("session date is outside the schedule's validity window")
	ErrPastSession       = errors.New("session date must be in the future")
	ErrSessionFull       = errors.New("activity session is full")
	ErrAlreadyBooked     = errors.New("patient already has a booking for this session")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrAlreadyAttended   = errors.New("booking is already marked attended")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrBusy              = errors.New("activity session is busy, retry")
)
