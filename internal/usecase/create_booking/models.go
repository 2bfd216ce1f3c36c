package create_booking

import (
	"time"

	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// Request carries the data needed to create a booking
type Request struct {
	CustomerID int64            // Authenticated customer
	BusinessID int64            // Target business
	ServiceID  int64            // Booked service
	Date       time.Time        // Booking calendar date
	StartTime  types.TimeString // Requested start time, "HH:MM"
	Notes      *string          // Optional customer notes
}

// Response is the created booking
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
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
