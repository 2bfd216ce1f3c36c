package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
	"github.com/agendora/Agendora-BookingService/pkg/ptr"
)

// Fakes

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeScheduleRepo struct {
	config    *domain.ScheduleConfig
	configErr error
	blocked   domain.BlockedDates
}

func (f *fakeScheduleRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	return f.config, f.configErr
}

func (f *fakeScheduleRepo) GetBlockedDates(_ context.Context, _ int64) (domain.BlockedDates, error) {
	return f.blocked, nil
}

type fakeCatalog struct {
	business    *catalogClient.Business
	businessErr error
	service     *catalogClient.Service
	serviceErr  error
}

func (f *fakeCatalog) GetBusiness(_ context.Context, _ int64) (*catalogClient.Business, error) {
	return f.business, f.businessErr
}

func (f *fakeCatalog) GetService(_ context.Context, _, _ int64) (*catalogClient.Service, error) {
	return f.service, f.serviceErr
}

// passthroughTxManager runs the function without a database
type passthroughTxManager struct{ calls int }

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Helpers

var (
	monday = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	early  = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
)

func mondayConfig() *domain.ScheduleConfig {
	config := &domain.ScheduleConfig{
		BusinessID:             10,
		SlotGranularityMinutes: 30,
		Timezone:               "UTC",
	}
	config.Week.SetDay(time.Monday, domain.DaySchedule{
		Enabled:   true,
		OpenTime:  "09:00",
		CloseTime: "12:00",
	})
	return config
}

func activeBusiness() *catalogClient.Business {
	return &catalogClient.Business{ID: 10, Name: "Barbearia Central", OwnerID: 1, Active: true}
}

func haircut() *catalogClient.Service {
	return &catalogClient.Service{ID: 5, BusinessID: 10, Name: "Corte", Price: ptr.Ptr(50.0), DurationMinutes: 30}
}

func newTestUseCase(repo *fakeBookingRepo, sched *fakeScheduleRepo, catalog *fakeCatalog, now time.Time) (*UseCase, *passthroughTxManager) {
	tx := &passthroughTxManager{}
	uc := NewUseCase(repo, sched, catalog, tx, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc, tx
}

func validRequest() *Request {
	return &Request{
		CustomerID: 7,
		BusinessID: 10,
		ServiceID:  5,
		Date:       monday,
		StartTime:  "09:30",
	}
}

// Tests

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc, tx := newTestUseCase(repo,
		&fakeScheduleRepo{config: mondayConfig()},
		&fakeCatalog{business: activeBusiness(), service: haircut()},
		early,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Corte", resp.ServiceName)
	assert.Equal(t, 50.0, resp.ServicePrice)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 1, tx.calls, "availability check and insert must run in one transaction")

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_SlotTakenIsConflict(t *testing.T) {
	taken := &domain.Booking{
		ID:              1,
		StartTime:       "09:30",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}
	uc, _ := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{taken}},
		&fakeScheduleRepo{config: mondayConfig()},
		&fakeCatalog{business: activeBusiness(), service: haircut()},
		early,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ClosedDay(t *testing.T) {
	config := mondayConfig()
	config.Week.SetDay(time.Monday, domain.DaySchedule{Enabled: false})
	uc, _ := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: config},
		&fakeCatalog{business: activeBusiness(), service: haircut()},
		early,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecute_BlockedDateIsConflict(t *testing.T) {
	uc, _ := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{
			config:  mondayConfig(),
			blocked: domain.NewBlockedDates([]time.Time{monday}),
		},
		&fakeCatalog{business: activeBusiness(), service: haircut()},
		early,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_UnmigratedBusinessRejected(t *testing.T) {
	uc, _ := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{configErr: scheduleRepo.ErrScheduleNotFound},
		&fakeCatalog{business: activeBusiness(), service: haircut()},
		early,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 3, 17, 8, 0, 0, 0, time.UTC) // the day after
	uc, _ := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig()},
		&fakeCatalog{business: activeBusiness(), service: haircut()},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BusinessAndServiceLookupFailures(t *testing.T) {
	uc, _ := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig()},
		&fakeCatalog{businessErr: catalogClient.ErrBusinessNotFound},
		early,
	)
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	uc, _ = newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig()},
		&fakeCatalog{business: activeBusiness(), serviceErr: catalogClient.ErrServiceNotFound},
		early,
	)
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveBusinessRejected(t *testing.T) {
	inactive := activeBusiness()
	inactive.Active = false
	uc, _ := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig()},
		&fakeCatalog{business: inactive, service: haircut()},
		early,
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc, _ := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalog{}, early)

	req := validRequest()
	req.CustomerID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = "25:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
