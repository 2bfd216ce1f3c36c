package schedule

import "errors"

var (
	// ErrScheduleNotFound is returned when the business has no schedule
	// configuration
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrBusinessNotFound is returned when the business does not exist
	ErrBusinessNotFound = errors.New("business not found")

	// ErrAccessDenied is returned when the user does not own the business
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed or inconsistent schedule data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
