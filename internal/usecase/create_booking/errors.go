package create_booking

import "errors"

var (
	// ErrBusinessNotFound is returned when the business does not exist
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrScheduleNotFound is returned when the business has no migrated
	// schedule configuration; bookings are not accepted for such businesses
	ErrScheduleNotFound = errors.New("create_booking: schedule not found")

	// ErrBusinessClosed is returned when the business does not work on the
	// requested date
	ErrBusinessClosed = errors.New("create_booking: business closed on requested date")

	// ErrSlotConflict is returned when the requested start time is not among
	// the bookable slots of the date
	ErrSlotConflict = errors.New("create_booking: slot is not available")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)
