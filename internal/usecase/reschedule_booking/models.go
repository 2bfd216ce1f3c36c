package reschedule_booking

import (
	"time"

	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// Request moves an existing booking to a new date and time
type Request struct {
	BookingID  int64            // Booking being moved
	CustomerID int64            // Authenticated customer, must own the booking
	Date       time.Time        // New calendar date
	StartTime  types.TimeString // New start time, "HH:MM"
}

// Response is the booking after the move
type Response struct {
	ID              int64            `json:"id"`
	CustomerID      int64            `json:"customerId"`
	BusinessID      int64            `json:"businessId"`
	ServiceID       int64            `json:"serviceId"`
	BookingDate     time.Time        `json:"bookingDate"`
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Status          string           `json:"status"`
	ServiceName     string           `json:"serviceName"`
	ServicePrice    float64          `json:"servicePrice"`
	Notes           *string          `json:"notes,omitempty"`
}
