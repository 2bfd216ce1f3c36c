package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agendora/Agendora-BookingService/pkg/types"
)

func windowBooking(date time.Time, start string, status BookingStatus) *Booking {
	return &Booking{
		ID:              1,
		BookingDate:     date,
		StartTime:       types.TimeString(start),
		DurationMinutes: 30,
		Status:          status,
	}
}

func TestModificationWindow_OpenWellBeforeStart(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	b := windowBooking(date, "14:00", StatusConfirmed)

	now := time.Date(2026, 3, 16, 10, 0, 0, 0, loc)

	assert.True(t, b.IsCancellable(now, loc))
	assert.True(t, b.IsEditable(now, loc))
}

func TestModificationWindow_ExactCutoffIsClosed(t *testing.T) {
	// Exactly 60 minutes before start: no longer modifiable.
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	b := windowBooking(date, "14:00", StatusConfirmed)

	now := time.Date(2026, 3, 16, 13, 0, 0, 0, loc)

	assert.False(t, b.IsCancellable(now, loc))
	assert.False(t, b.IsEditable(now, loc))
}

func TestModificationWindow_OneMinuteBeforeCutoffIsOpen(t *testing.T) {
	// 61 minutes before start: still modifiable.
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	b := windowBooking(date, "14:00", StatusConfirmed)

	now := time.Date(2026, 3, 16, 12, 59, 0, 0, loc)

	assert.True(t, b.IsCancellable(now, loc))
	assert.True(t, b.IsEditable(now, loc))
}

func TestModificationWindow_AfterStart(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	b := windowBooking(date, "14:00", StatusConfirmed)

	now := time.Date(2026, 3, 16, 15, 0, 0, 0, loc)

	assert.False(t, b.IsCancellable(now, loc))
}

func TestModificationWindow_NonConfirmedNeverModifiable(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, loc) // weeks before

	for _, status := range []BookingStatus{StatusCompleted, StatusCancelled} {
		b := windowBooking(date, "14:00", status)
		assert.False(t, b.IsCancellable(now, loc), "status %s", status)
		assert.False(t, b.IsEditable(now, loc), "status %s", status)
	}
}

func TestModificationWindow_SameRuleForCancelAndEdit(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, loc)
	b := windowBooking(date, "14:00", StatusConfirmed)

	moments := []time.Time{
		time.Date(2026, 3, 16, 12, 0, 0, 0, loc),
		time.Date(2026, 3, 16, 12, 59, 59, 0, loc),
		time.Date(2026, 3, 16, 13, 0, 0, 0, loc),
		time.Date(2026, 3, 16, 13, 30, 0, 0, loc),
	}
	for _, now := range moments {
		assert.Equal(t, b.IsCancellable(now, loc), b.IsEditable(now, loc), "at %s", now)
	}
}

func TestStartsAt_UsesBusinessLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	b := windowBooking(date, "14:00", StatusConfirmed)

	start, err := b.StartsAt(loc)
	assert.NoError(t, err)
	assert.Equal(t, 14, start.Hour())
	assert.Equal(t, loc, start.Location())
}
