package cancel_booking

// CancelBookingRequest is the HTTP request body. The reason is optional.
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}
