package physiotherapist

import "errors"

var (
	ErrNotFound         = errors.New("physiotherapist not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrForbidden        = errors.New("not allowed to manage this physiotherapist")
	ErrInvalidClock     = errors.New(`times must be zero-padded 24-hour "HH:MM"`)
	ErrInvalidTimeRange = errors.New("end_time must be after start_time")
	ErrInvalidWeekday   = errors.New("unknown weekday")
	ErrDayTaken         = errors.New("an availability entry already exists for this weekday")
	ErrAlreadyAssigned  = errors.New("physiotherapist is already assigned to this activity")
	ErrNotAssigned      = errors.New("physiotherapist is not assigned to this activity")
)
