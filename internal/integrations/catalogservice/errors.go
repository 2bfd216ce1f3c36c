package catalogservice

import "errors"

var (
	// ErrBusinessNotFound is returned when the business does not exist
	ErrBusinessNotFound = errors.New("business not found")

	// ErrServiceNotFound is returned when the service does not exist in the business catalog
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse is returned when CatalogService answers with an unexpected payload
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
