package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")
)
