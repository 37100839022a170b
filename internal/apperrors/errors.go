package apperrors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a duplicate registration or duplicate profile.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is a generic sentinel for credential and token failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals an ownership check failure.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
)
