package schedule

import (
	"context"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
)

// ScheduleRepository is the schedule store surface this service needs
type ScheduleRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	GetBlockedDates(ctx context.Context, businessID int64) (domain.BlockedDates, error)
	ReplaceBlockedDates(ctx context.Context, businessID int64, dates []time.Time) error
}

// CatalogServiceClient resolves businesses for access checks
type CatalogServiceClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*catalogservice.Business, error)
}

// TransactionManager runs functions inside database transactions
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface this service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
