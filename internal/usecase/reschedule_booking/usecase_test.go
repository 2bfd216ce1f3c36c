package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	bookingRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/booking"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// Fakes

type fakeBookingRepo struct {
	byID     *domain.Booking
	byIDErr  error
	bookings []*domain.Booking

	updatedDate time.Time
	updatedTime types.TimeString
	updateCalls int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.byID, f.byIDErr
}

func (f *fakeBookingRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateSchedule(_ context.Context, _ int64, date time.Time, startTime types.TimeString) error {
	f.updateCalls++
	f.updatedDate = date
	f.updatedTime = startTime
	return nil
}

type fakeScheduleRepo struct {
	config  *domain.ScheduleConfig
	blocked domain.BlockedDates
}

func (f *fakeScheduleRepo) GetByBusinessID(_ context.Context, _ int64) (*domain.ScheduleConfig, error) {
	return f.config, nil
}

func (f *fakeScheduleRepo) GetBlockedDates(_ context.Context, _ int64) (domain.BlockedDates, error) {
	return f.blocked, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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
	monday  = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	early   = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
)

func weekConfig() *domain.ScheduleConfig {
	config := &domain.ScheduleConfig{
		BusinessID:             10,
		SlotGranularityMinutes: 30,
		Timezone:               "UTC",
	}
	open := domain.DaySchedule{Enabled: true, OpenTime: "09:00", CloseTime: "12:00"}
	config.Week.SetDay(time.Monday, open)
	config.Week.SetDay(time.Tuesday, open)
	return config
}

func ownBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		CustomerID:      7,
		BusinessID:      10,
		ServiceID:       5,
		BookingDate:     monday,
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
		ServiceName:     "Corte",
		ServicePrice:    50.0,
	}
}

func newTestUseCase(repo *fakeBookingRepo, sched *fakeScheduleRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, sched, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func moveRequest() *Request {
	return &Request{
		BookingID:  42,
		CustomerID: 7,
		Date:       tuesday,
		StartTime:  "09:30",
	}
}

// Tests

func TestExecute_MovesBooking(t *testing.T) {
	repo := &fakeBookingRepo{byID: ownBooking()}
	uc := newTestUseCase(repo, &fakeScheduleRepo{config: weekConfig()}, early)

	resp, err := uc.Execute(context.Background(), moveRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, tuesday, repo.updatedDate)
	assert.Equal(t, types.TimeString("09:30"), repo.updatedTime)
	assert.Equal(t, "09:30", resp.StartTime.String())
	assert.Equal(t, tuesday, resp.BookingDate)
}

func TestExecute_BookingDoesNotCollideWithItself(t *testing.T) {
	// Moving within the same day: the booking's own 10:00 interval is in the
	// collision set but excluded by id.
	booking := ownBooking()
	repo := &fakeBookingRepo{
		byID:     booking,
		bookings: []*domain.Booking{booking},
	}
	uc := newTestUseCase(repo, &fakeScheduleRepo{config: weekConfig()}, early)

	req := moveRequest()
	req.Date = monday
	req.StartTime = "10:00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OtherBookingStillCollides(t *testing.T) {
	other := &domain.Booking{
		ID:              99,
		StartTime:       "09:30",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}
	repo := &fakeBookingRepo{byID: ownBooking(), bookings: []*domain.Booking{other}}
	uc := newTestUseCase(repo, &fakeScheduleRepo{config: weekConfig()}, early)

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_NotOwnerForbidden(t *testing.T) {
	repo := &fakeBookingRepo{byID: ownBooking()}
	uc := newTestUseCase(repo, &fakeScheduleRepo{config: weekConfig()}, early)

	req := moveRequest()
	req.CustomerID = 1000

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{byIDErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(repo, &fakeScheduleRepo{config: weekConfig()}, early)

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledBookingCannotMove(t *testing.T) {
	booking := ownBooking()
	booking.Status = domain.StatusCancelled
	uc := newTestUseCase(&fakeBookingRepo{byID: booking}, &fakeScheduleRepo{config: weekConfig()}, early)

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_NoticeWindowGate(t *testing.T) {
	// Booking starts Monday 10:00. At 09:00 exactly the 60-minute window is
	// closed; at 08:59 it is still open.
	repo := &fakeBookingRepo{byID: ownBooking()}

	atCutoff := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, &fakeScheduleRepo{config: weekConfig()}, atCutoff)
	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrTooLateToModify)

	justBefore := time.Date(2026, 3, 16, 8, 59, 0, 0, time.UTC)
	repo = &fakeBookingRepo{byID: ownBooking()}
	uc = newTestUseCase(repo, &fakeScheduleRepo{config: weekConfig()}, justBefore)
	_, err = uc.Execute(context.Background(), moveRequest())
	assert.NoError(t, err)
}

func TestExecute_ClosedTargetDay(t *testing.T) {
	config := weekConfig()
	config.Week.SetDay(time.Tuesday, domain.DaySchedule{Enabled: false})
	uc := newTestUseCase(&fakeBookingRepo{byID: ownBooking()}, &fakeScheduleRepo{config: config}, early)

	_, err := uc.Execute(context.Background(), moveRequest())
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, early)

	req := moveRequest()
	req.BookingID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = moveRequest()
	req.StartTime = "nope"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
