package get_available_slots

import (
	"time"

	"github.com/agendora/Agendora-BookingService/internal/availability"
)

// Request is a slot query for one business and date
type Request struct {
	BusinessID int64     // Business whose agenda is queried
	ServiceID  int64     // Requested service; 0 means no specific service
	Date       time.Time // Target calendar date (time part ignored)

	// ExcludeBookingID removes one booking from the collision checks, so a
	// reschedule flow does not collide with the booking being moved
	ExcludeBookingID *int64
}

// Response carries the canonical availability payload for the requested date
type Response struct {
	Date         time.Time
	BusinessID   int64
	ServiceID    int64
	Availability availability.Response
}
