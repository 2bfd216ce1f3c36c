package reschedule_booking

import (
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	rescheduleBooking "github.com/agendora/Agendora-BookingService/internal/usecase/reschedule_booking"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// RescheduleBookingRequest is the HTTP request body
type RescheduleBookingRequest struct {
	Date      string `json:"date"`      // "2026-03-15"
	StartTime string `json:"startTime"` // "10:00"
}

// ToUseCaseRequest converts the HTTP request into the usecase request
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID, customerID int64) (*rescheduleBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID:  bookingID,
		CustomerID: customerID,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// BookingResponse is the HTTP response body
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	BusinessID      int64   `json:"businessId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		BusinessID:      resp.BusinessID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
	}
}
