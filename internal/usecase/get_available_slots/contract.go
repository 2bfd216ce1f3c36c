package get_available_slots

import (
	"context"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/availability"
	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
)

// BookingRepository is the booking store surface this usecase needs
type BookingRepository interface {
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository is the schedule configuration surface this usecase needs
type ScheduleRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
	GetBlockedDates(ctx context.Context, businessID int64) (domain.BlockedDates, error)
}

// CatalogServiceClient resolves services from the business catalog
type CatalogServiceClient interface {
	GetService(ctx context.Context, businessID, serviceID int64) (*catalogservice.Service, error)
}

// LegacyAgendaClient serves availability for businesses that still live in
// the legacy agenda system
type LegacyAgendaClient interface {
	GetDayAvailability(ctx context.Context, businessID int64, date time.Time) (*availability.Response, error)
}

// TimeProvider supplies the current time (swapped for a fixed clock in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this usecase needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
