package bookings

import (
	"context"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// BookingRepository is the booking store surface this service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
	CompletePastBookings(ctx context.Context, date time.Time, timeOfDay types.TimeString) (int64, error)
}

// ScheduleRepository supplies the schedule configuration, needed to resolve
// the business's timezone for the cancellation window
type ScheduleRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
}

// CatalogServiceClient resolves businesses for access checks
type CatalogServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*catalogservice.Business, error)
}

// TimeProvider supplies the current time (swapped for a fixed clock in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this service needs
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
