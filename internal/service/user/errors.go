package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid user role")
	ErrForbidden    = errors.New("not allowed to manage this user")
)
