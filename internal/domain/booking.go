package domain

import (
	"time"

	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents one appointment at a business
type Booking struct {
	ID              int64
	BusinessID      int64
	CustomerID      int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking blocks its time slot.
// Only confirmed bookings occupy slots; completed and cancelled ones do not.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking status allows cancellation
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking status allows rescheduling
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BusinessBookingsFilter filters business booking listings
type BusinessBookingsFilter struct {
	BusinessID      int64          // Required
	StartDate       *time.Time     // Period start (nil = unbounded)
	EndDate         *time.Time     // Period end (nil = unbounded)
	Status          *BookingStatus // Status filter (nil = any)
	IncludeInactive bool           // Whether to include cancelled and completed bookings
}

// InactiveStatuses lists the statuses that never occupy a slot.
// Used when filtering bookings for availability checks.
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ValidStatuses lists every status accepted from the outside
var ValidStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
