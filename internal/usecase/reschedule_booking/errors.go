package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied is returned when the booking belongs to another customer
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrScheduleNotFound is returned when the business has no migrated
	// schedule configuration
	ErrScheduleNotFound = errors.New("reschedule_booking: schedule not found")

	// ErrCannotReschedule is returned when the booking status does not allow
	// modification
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrTooLateToModify is returned when the booking starts too soon for the
	// modification notice window
	ErrTooLateToModify = errors.New("reschedule_booking: too close to start time")

	// ErrBusinessClosed is returned when the business does not work on the
	// requested date
	ErrBusinessClosed = errors.New("reschedule_booking: business closed on requested date")

	// ErrSlotConflict is returned when the requested start time is not among
	// the bookable slots of the date
	ErrSlotConflict = errors.New("reschedule_booking: slot is not available")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("reschedule_booking: internal error")
)
