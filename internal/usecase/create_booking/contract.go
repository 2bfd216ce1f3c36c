package create_booking

import (
	"context"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
)

// BookingRepository is the booking store surface this usecase needs
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository is the schedule configuration surface this usecase needs
type ScheduleRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
	GetBlockedDates(ctx context.Context, businessID int64) (domain.BlockedDates, error)
}

// CatalogServiceClient resolves businesses and services from the catalog
type CatalogServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*catalogservice.Business, error)
	GetService(ctx context.Context, businessID, serviceID int64) (*catalogservice.Service, error)
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
