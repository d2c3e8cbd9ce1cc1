package patient

import "errors"

var (
	ErrNotFound   = errors.New("patient not found")
	ErrForbidden  = errors.New("not allowed to act on this patient")
	ErrEmptyName  = errors.New("first_name and last_name are required")
)
