package availability

import (
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// GenerateSlots derives the bookable start times of one day.
//
// Candidates are generated from the day's open time in fixed steps of the
// slot granularity; stepping always starts exactly at the open time, so a
// trailing partial step is dropped, never clamped. A candidate survives when
// the whole service interval [t, t+duration) fits before closing, does not
// intersect the lunch window, does not collide with a confirmed booking, and,
// on the current day in the business's timezone, starts strictly after now.
//
// All interval checks are half-open, so a slot ending exactly where lunch or
// a booking starts is not excluded by adjacency alone.
//
// A disabled or blocked day yields an empty list, and so does a request date
// already in the past in the business's timezone; so does a day rule that
// fails validation, rather than propagating a configuration error this deep.
// Both usecases that need availability call this one function: the list shown
// to the customer and the list a booking write is checked against are always
// computed by the same code.
func GenerateSlots(
	day domain.DaySchedule,
	granularityMinutes int,
	serviceDurationMinutes int,
	requestDate time.Time,
	now time.Time,
	blockedDates domain.BlockedDates,
	bookings []*domain.Booking,
	excludeBookingID *int64,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if !day.Enabled || blockedDates.Contains(requestDate) {
		return slots
	}
	// A day that already ended has no bookable start times
	if pastDay(requestDate, now) {
		return slots
	}
	if granularityMinutes <= 0 || serviceDurationMinutes <= 0 {
		return slots
	}
	// Invalid day rule: treated as closed
	if err := day.Validate(); err != nil {
		return slots
	}

	open, err := day.OpenTime.MinutesFromMidnight()
	if err != nil {
		return slots
	}
	close, err := day.CloseTime.MinutesFromMidnight()
	if err != nil {
		return slots
	}

	lunchStart, lunchEnd, hasLunch := lunchWindow(day)
	occupied := occupiedIntervals(bookings, excludeBookingID)

	isToday := sameDay(requestDate, now)
	nowMinutes := now.Hour()*60 + now.Minute()

	for t := open; t < close; t += granularityMinutes {
		end := t + serviceDurationMinutes

		if end > close {
			continue
		}
		if hasLunch && t < lunchEnd && end > lunchStart {
			continue
		}
		if isToday && t <= nowMinutes {
			continue
		}
		if collides(t, end, occupied) {
			continue
		}

		slot, err := types.FromMinutes(t)
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}

	return slots
}

// interval is a half-open [start, end) span in minutes from midnight
type interval struct {
	start int
	end   int
}

// lunchWindow extracts the lunch exclusion interval, if configured
func lunchWindow(day domain.DaySchedule) (start, end int, ok bool) {
	if !day.LunchEnabled || day.LunchStart == nil || day.LunchEnd == nil {
		return 0, 0, false
	}
	start, err := day.LunchStart.MinutesFromMidnight()
	if err != nil {
		return 0, 0, false
	}
	end, err = day.LunchEnd.MinutesFromMidnight()
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// occupiedIntervals collects the intervals of bookings that occupy a slot,
// skipping the booking being rescheduled so it never collides with itself.
func occupiedIntervals(bookings []*domain.Booking, excludeBookingID *int64) []interval {
	intervals := make([]interval, 0, len(bookings))

	for _, booking := range bookings {
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		if !booking.OccupiesSlot() {
			continue
		}
		start, err := booking.StartTime.MinutesFromMidnight()
		if err != nil {
			continue
		}
		intervals = append(intervals, interval{start: start, end: start + booking.DurationMinutes})
	}

	return intervals
}

// collides reports whether [start, end) intersects any occupied interval.
// Touching boundaries are not an intersection.
func collides(start, end int, occupied []interval) bool {
	for _, iv := range occupied {
		if iv.start < end && iv.end > start {
			return true
		}
	}
	return false
}

// sameDay reports whether the two moments fall on the same calendar date
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// pastDay reports whether date falls on a calendar date before now's
func pastDay(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
