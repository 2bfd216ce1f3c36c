package domain

import (
	"time"
)

// StartsAt combines the booking date and start time into a moment in the
// business's timezone.
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	hour, minute, err := b.StartTime.HourMinute()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		hour, minute, 0, 0, loc,
	), nil
}

// hasModificationNotice is the single edit/cancel window predicate: the
// booking is confirmed and starts strictly more than ModificationNoticeMinutes
// from now. At exactly the cutoff the booking is no longer modifiable.
func hasModificationNotice(b *Booking, now time.Time, loc *time.Location) bool {
	if b.Status != StatusConfirmed {
		return false
	}
	start, err := b.StartsAt(loc)
	if err != nil {
		return false
	}
	return start.Sub(now) > time.Duration(ModificationNoticeMinutes)*time.Minute
}

// IsCancellable reports whether the booking may still be cancelled at now.
func (b *Booking) IsCancellable(now time.Time, loc *time.Location) bool {
	return hasModificationNotice(b, now, loc)
}

// IsEditable reports whether the booking may still be rescheduled at now.
// Same rule and threshold as IsCancellable; the two names exist for clarity
// at call sites only.
func (b *Booking) IsEditable(now time.Time, loc *time.Location) bool {
	return hasModificationNotice(b, now, loc)
}
