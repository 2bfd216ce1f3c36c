package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

func day(open, close string) domain.DaySchedule {
	return domain.DaySchedule{
		Enabled:   true,
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
	}
}

func dayWithLunch(open, close, lunchStart, lunchEnd string) domain.DaySchedule {
	d := day(open, close)
	ls := types.TimeString(lunchStart)
	le := types.TimeString(lunchEnd)
	d.LunchEnabled = true
	d.LunchStart = &ls
	d.LunchEnd = &le
	return d
}

func confirmed(id int64, start string, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

var (
	futureDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC) // Monday
	earlyNow   = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
)

func TestGenerateSlots_PlainDay(t *testing.T) {
	slots := GenerateSlots(day("09:00", "11:00"), 30, 30, futureDate, earlyNow, nil, nil, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateSlots_LunchWindowExcluded(t *testing.T) {
	// Open 09:00-12:00, lunch 10:00-10:30: the 10:00 candidate falls inside
	// lunch; 09:30 ends exactly at lunch start and survives.
	slots := GenerateSlots(dayWithLunch("09:00", "12:00", "10:00", "10:30"), 30, 30,
		futureDate, earlyNow, nil, nil, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)
}

func TestGenerateSlots_PartialFinalStepDropped(t *testing.T) {
	// 60-minute service in a 09:00-10:30 window: 09:30 would end at 10:30
	// exactly (kept, half-open), 10:00 would end at 11:00 (dropped).
	slots := GenerateSlots(day("09:00", "10:30"), 30, 60, futureDate, earlyNow, nil, nil, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)
}

func TestGenerateSlots_TodayFiltersPastAndCurrentMinute(t *testing.T) {
	// At 09:15, the 09:00 slot has passed; 09:30 is the first offered. A slot
	// at exactly now would also be excluded.
	now := time.Date(2026, 3, 16, 9, 15, 0, 0, time.UTC)

	slots := GenerateSlots(day("09:00", "10:00"), 30, 30, futureDate, now, nil, nil, nil)

	assert.Equal(t, []types.TimeString{"09:30"}, slots)
}

func TestGenerateSlots_TodayExactBoundary(t *testing.T) {
	// now exactly on a candidate: that candidate is excluded, strictly later
	// ones survive.
	now := time.Date(2026, 3, 16, 9, 30, 0, 0, time.UTC)

	slots := GenerateSlots(day("09:00", "10:30"), 30, 30, futureDate, now, nil, nil, nil)

	assert.Equal(t, []types.TimeString{"10:00"}, slots)
}

func TestGenerateSlots_PastDateIsEmpty(t *testing.T) {
	// Requesting yesterday (or any earlier date) yields nothing, even though
	// the day rule itself would produce a full grid.
	dayAfter := time.Date(2026, 3, 17, 12, 0, 0, 0, time.UTC)
	monthAfter := time.Date(2026, 4, 20, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day("09:00", "11:00"), 30, 30, futureDate, dayAfter, nil, nil, nil)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)

	slots = GenerateSlots(day("09:00", "11:00"), 30, 30, futureDate, monthAfter, nil, nil, nil)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DisabledDay(t *testing.T) {
	d := domain.DaySchedule{Enabled: false}

	slots := GenerateSlots(d, 30, 30, futureDate, earlyNow, nil, nil, nil)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerateSlots_BlockedDate(t *testing.T) {
	blocked := domain.NewBlockedDates([]time.Time{futureDate})

	slots := GenerateSlots(day("09:00", "18:00"), 30, 30, futureDate, earlyNow, blocked, nil, nil)

	assert.Empty(t, slots)
}

func TestGenerateSlots_BookingCollision(t *testing.T) {
	bookings := []*domain.Booking{confirmed(1, "09:30", 30)}

	slots := GenerateSlots(day("09:00", "11:00"), 30, 30, futureDate, earlyNow, nil, bookings, nil)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30"}, slots)
}

func TestGenerateSlots_AdjacentBookingDoesNotCollide(t *testing.T) {
	// A booking ending at 10:00 does not block the 10:00 slot: intervals are
	// half-open.
	bookings := []*domain.Booking{confirmed(1, "09:00", 60)}

	slots := GenerateSlots(day("09:00", "11:00"), 30, 60, futureDate, earlyNow, nil, bookings, nil)

	assert.Equal(t, []types.TimeString{"10:00"}, slots)
}

func TestGenerateSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	cancelled := confirmed(1, "09:00", 120)
	cancelled.Status = domain.StatusCancelled

	slots := GenerateSlots(day("09:00", "10:00"), 30, 30, futureDate, earlyNow, nil,
		[]*domain.Booking{cancelled}, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)
}

func TestGenerateSlots_ExcludeBookingID(t *testing.T) {
	// The booking being rescheduled must not collide with itself.
	bookings := []*domain.Booking{confirmed(7, "09:00", 60)}
	excludeID := int64(7)

	withExclusion := GenerateSlots(day("09:00", "10:00"), 30, 30, futureDate, earlyNow, nil,
		bookings, &excludeID)
	withoutExclusion := GenerateSlots(day("09:00", "10:00"), 30, 30, futureDate, earlyNow, nil,
		bookings, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, withExclusion)
	assert.Empty(t, withoutExclusion)
}

func TestGenerateSlots_LongServiceStillStepsByGranularity(t *testing.T) {
	// 90-minute service, 30-minute granularity: candidates every 30 minutes,
	// each occupying 90.
	slots := GenerateSlots(day("09:00", "12:00"), 30, 90, futureDate, earlyNow, nil, nil, nil)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateSlots_InvalidDayRuleTreatedAsClosed(t *testing.T) {
	d := day("18:00", "09:00") // open after close

	slots := GenerateSlots(d, 30, 30, futureDate, earlyNow, nil, nil, nil)

	assert.Empty(t, slots)
}
