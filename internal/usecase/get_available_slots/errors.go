package get_available_slots

import "errors"

var (
	// ErrScheduleNotFound is returned when neither this service nor the
	// legacy agenda knows the business's schedule
	ErrScheduleNotFound = errors.New("get_available_slots: schedule not found")

	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
