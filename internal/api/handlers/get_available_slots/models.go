package get_available_slots

import (
	"time"

	"github.com/agendora/Agendora-BookingService/internal/availability"
	"github.com/agendora/Agendora-BookingService/internal/domain"
	getAvailableSlots "github.com/agendora/Agendora-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse is the HTTP response model. The embedded availability
// payload keeps the legacy wire keys: horarios, horas, minutos_por_hora.
type AvailableSlotsResponse struct {
	Date       string `json:"date"`
	BusinessID int64  `json:"businessId"`
	ServiceID  int64  `json:"serviceId,omitempty"`

	availability.Response
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		Response:   resp.Availability,
	}
}

// ToUseCaseRequest builds the usecase request from the parsed parameters
func ToUseCaseRequest(businessID, serviceID int64, dateStr string, excludeBookingID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID:       businessID,
		ServiceID:        serviceID,
		Date:             date,
		ExcludeBookingID: excludeBookingID,
	}, nil
}
