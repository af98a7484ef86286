// Package services defines the business logic for the café directory.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Cafe-related errors.
var (
	// ErrCafeNotFound indicates that no café exists with the requested id.
	ErrCafeNotFound = errors.New("cafe not found")

	// ErrDuplicateCafe is returned when a café with the same name already
	// exists.
	ErrDuplicateCafe = errors.New("a cafe with that name already exists")

	// ErrMissingField is returned when a required café field is empty. It is
	// wrapped with the field name, e.g. "required field missing: name".
	ErrMissingField = errors.New("required field missing")
)
