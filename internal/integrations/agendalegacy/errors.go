package agendalegacy

import "errors"

var (
	// ErrAgendaNotFound is returned when the legacy system has no agenda for the business
	ErrAgendaNotFound = errors.New("legacy agenda not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("agendalegacy client: internal error")

	// ErrInvalidResponse is returned when the legacy API answers with an unexpected payload
	ErrInvalidResponse = errors.New("agendalegacy client: invalid response")
)
