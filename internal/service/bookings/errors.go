package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBusinessNotFound is returned when the business does not exist
	ErrBusinessNotFound = errors.New("business not found")

	// ErrAccessDenied is returned when the user has no rights to the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking status does not allow
	// cancellation
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrTooLateToCancel is returned when the booking starts too soon for the
	// modification notice window
	ErrTooLateToCancel = errors.New("too close to start time to cancel")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
