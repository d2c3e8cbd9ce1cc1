package clinic

import "errors"

var (
	ErrNotFound          = errors.New("clinic not found")
	ErrSlugAlreadyExists = errors.New("clinic slug already taken")
	ErrForbidden         = errors.New("not allowed to manage clinics")
	ErrEmptyName         = errors.New("clinic name cannot be empty")
)
