package get_business_bookings

import (
	"net/url"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/internal/service/bookings/models"
)

// ToServiceRequest builds the service request from the query parameters.
// Supported params: startDate, endDate (YYYY-MM-DD), status, includeInactive.
func ToServiceRequest(businessID, userID int64, query url.Values) (*models.GetBusinessBookingsRequest, error) {
	req := &models.GetBusinessBookingsRequest{
		UserID:     userID,
		BusinessID: businessID,
	}

	if raw := query.Get("startDate"); raw != "" {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &d
	}
	if raw := query.Get("endDate"); raw != "" {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &d
	}
	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}
	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
