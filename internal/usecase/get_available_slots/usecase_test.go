package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendora/Agendora-BookingService/internal/availability"
	"github.com/agendora/Agendora-BookingService/internal/domain"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	legacyClient "github.com/agendora/Agendora-BookingService/internal/integrations/agendalegacy"
	catalogClient "github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
)

// Fakes

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeScheduleRepo struct {
	config     *domain.ScheduleConfig
	configErr  error
	blocked    domain.BlockedDates
	blockedErr error
}

func (f *fakeScheduleRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	return f.config, f.configErr
}

func (f *fakeScheduleRepo) GetBlockedDates(_ context.Context, _ int64) (domain.BlockedDates, error) {
	return f.blocked, f.blockedErr
}

type fakeCatalog struct {
	service *catalogClient.Service
	err     error
	calls   int
}

func (f *fakeCatalog) GetService(_ context.Context, _, _ int64) (*catalogClient.Service, error) {
	f.calls++
	return f.service, f.err
}

type fakeLegacy struct {
	resp  *availability.Response
	err   error
	calls int
}

func (f *fakeLegacy) GetDayAvailability(_ context.Context, _ int64, _ time.Time) (*availability.Response, error) {
	f.calls++
	return f.resp, f.err
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Helpers

func mondayConfig(granularity int) *domain.ScheduleConfig {
	config := &domain.ScheduleConfig{
		BusinessID:             10,
		SlotGranularityMinutes: granularity,
		Timezone:               "UTC",
	}
	config.Week.SetDay(time.Monday, domain.DaySchedule{
		Enabled:   true,
		OpenTime:  "09:00",
		CloseTime: "11:00",
	})
	return config
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	schedRepo *fakeScheduleRepo,
	catalog *fakeCatalog,
	legacy *fakeLegacy,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, schedRepo, catalog, legacy, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

var (
	monday = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	early  = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
)

// Tests

func TestExecute_HappyPath(t *testing.T) {
	duration := 30
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig(30)},
		&fakeCatalog{service: &catalogClient.Service{ID: 5, DurationMinutes: duration}},
		&fakeLegacy{},
		early,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, resp.Availability.Slots)
	assert.Equal(t, []string{"09", "10"}, resp.Availability.Hours)
}

func TestExecute_NoServiceDefaultsToGranularity(t *testing.T) {
	catalog := &fakeCatalog{}
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig(60)},
		catalog,
		&fakeLegacy{},
		early,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 0, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00"}, resp.Availability.Slots)
	assert.Zero(t, catalog.calls, "catalog must not be queried without a service id")
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig(30)},
		&fakeCatalog{err: catalogClient.ErrServiceNotFound},
		&fakeLegacy{},
		early,
	)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 99, Date: monday})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ConfirmedBookingExcludesSlots(t *testing.T) {
	booking := &domain.Booking{
		ID:              1,
		StartTime:       "09:30",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{booking}},
		&fakeScheduleRepo{config: mondayConfig(30)},
		&fakeCatalog{service: &catalogClient.Service{ID: 5, DurationMinutes: 30}},
		&fakeLegacy{},
		early,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:30"}, resp.Availability.Slots)
}

func TestExecute_BlockedDateYieldsEmptyPayload(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{
			config:  mondayConfig(30),
			blocked: domain.NewBlockedDates([]time.Time{monday}),
		},
		&fakeCatalog{service: &catalogClient.Service{ID: 5, DurationMinutes: 30}},
		&fakeLegacy{},
		early,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: monday})
	require.NoError(t, err)

	assert.True(t, resp.Availability.IsEmpty())
	assert.NotNil(t, resp.Availability.Slots)
}

func TestExecute_UnmigratedBusinessFallsBackToLegacy(t *testing.T) {
	legacyResp := availability.Normalize(availability.Raw{Slots: []string{"9:0", "9:30"}})
	legacy := &fakeLegacy{resp: &legacyResp}
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{configErr: scheduleRepo.ErrScheduleNotFound},
		&fakeCatalog{},
		legacy,
		early,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, 1, legacy.calls)
	assert.Equal(t, []string{"09:00", "09:30"}, resp.Availability.Slots)
}

func TestExecute_UnknownEverywhereIsScheduleNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{configErr: scheduleRepo.ErrScheduleNotFound},
		&fakeCatalog{},
		&fakeLegacy{err: legacyClient.ErrAgendaNotFound},
		early,
	)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 10, Date: monday})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestExecute_RejectsInvalidRequest(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalog{}, &fakeLegacy{}, early)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TodayUsesBusinessTimezone(t *testing.T) {
	// now is 09:15 on the requested Monday: earlier candidates are filtered
	now := time.Date(2026, 3, 16, 9, 15, 0, 0, time.UTC)
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{config: mondayConfig(30)},
		&fakeCatalog{service: &catalogClient.Service{ID: 5, DurationMinutes: 30}},
		&fakeLegacy{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: 10, ServiceID: 5, Date: monday})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:30", "10:00", "10:30"}, resp.Availability.Slots)
}
