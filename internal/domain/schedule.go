package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/agendora/Agendora-BookingService/pkg/types"
)

var (
	// ErrInvalidDaySchedule is returned when a day rule violates the
	// start/end or lunch window invariants
	ErrInvalidDaySchedule = errors.New("invalid day schedule")

	// ErrInvalidGranularity is returned when the slot granularity is out of range
	ErrInvalidGranularity = errors.New("invalid slot granularity")

	// ErrInvalidTimezone is returned when the configured timezone cannot be loaded
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// DaySchedule is the working-hours rule for one weekday
type DaySchedule struct {
	Enabled   bool
	OpenTime  types.TimeString
	CloseTime types.TimeString

	// Optional lunch exclusion window inside the working hours
	LunchEnabled bool
	LunchStart   *types.TimeString
	LunchEnd     *types.TimeString
}

// Validate checks the day invariants: open < close when enabled, and when the
// lunch window is enabled both bounds are present with
// open <= lunchStart < lunchEnd <= close. Disabled days are always valid.
func (d *DaySchedule) Validate() error {
	if !d.Enabled {
		return nil
	}

	if err := d.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidDaySchedule, err)
	}
	if err := d.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidDaySchedule, err)
	}
	if !d.OpenTime.IsBefore(d.CloseTime) {
		return fmt.Errorf("%w: open time %s must be before close time %s",
			ErrInvalidDaySchedule, d.OpenTime, d.CloseTime)
	}

	if !d.LunchEnabled {
		return nil
	}

	if d.LunchStart == nil || d.LunchEnd == nil {
		return fmt.Errorf("%w: lunch window enabled but bounds are missing", ErrInvalidDaySchedule)
	}
	if err := d.LunchStart.Validate(); err != nil {
		return fmt.Errorf("%w: lunch start: %v", ErrInvalidDaySchedule, err)
	}
	if err := d.LunchEnd.Validate(); err != nil {
		return fmt.Errorf("%w: lunch end: %v", ErrInvalidDaySchedule, err)
	}
	if !d.LunchStart.IsBefore(*d.LunchEnd) {
		return fmt.Errorf("%w: lunch start %s must be before lunch end %s",
			ErrInvalidDaySchedule, *d.LunchStart, *d.LunchEnd)
	}
	if d.LunchStart.IsBefore(d.OpenTime) || d.LunchEnd.IsAfter(d.CloseTime) {
		return fmt.Errorf("%w: lunch window [%s, %s) outside working hours [%s, %s]",
			ErrInvalidDaySchedule, *d.LunchStart, *d.LunchEnd, d.OpenTime, d.CloseTime)
	}

	return nil
}

// WeekSchedule holds the rule for each of the seven weekdays. The fixed
// fields keep the set of keys closed; there is no way to address a weekday
// that does not exist.
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// Day returns the rule for the given weekday
func (w *WeekSchedule) Day(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Enabled: false}
	}
}

// SetDay replaces the rule for the given weekday
func (w *WeekSchedule) SetDay(weekday time.Weekday, day DaySchedule) {
	switch weekday {
	case time.Monday:
		w.Monday = day
	case time.Tuesday:
		w.Tuesday = day
	case time.Wednesday:
		w.Wednesday = day
	case time.Thursday:
		w.Thursday = day
	case time.Friday:
		w.Friday = day
	case time.Saturday:
		w.Saturday = day
	case time.Sunday:
		w.Sunday = day
	}
}

// Weekdays lists the seven weekdays in persistence order
var Weekdays = []time.Weekday{
	time.Sunday,
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// ScheduleConfig is the active working-hours configuration of one business.
// Read-only to the availability engine; one active version per business.
type ScheduleConfig struct {
	ID                     int64
	BusinessID             int64
	SlotGranularityMinutes int

	// Timezone is the business's IANA zone name. Date and "now" comparisons
	// are made in this zone, never in ambient server time. Empty means the
	// server's local zone.
	Timezone string

	Week WeekSchedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the whole configuration: granularity bounds, timezone and
// every enabled day rule.
func (c *ScheduleConfig) Validate() error {
	if c.SlotGranularityMinutes < MinSlotGranularityMinutes || c.SlotGranularityMinutes > MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: %d minutes (allowed %d-%d)",
			ErrInvalidGranularity, c.SlotGranularityMinutes, MinSlotGranularityMinutes, MaxSlotGranularityMinutes)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	for _, weekday := range Weekdays {
		day := c.Week.Day(weekday)
		if err := day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", weekday, err)
		}
	}

	return nil
}

// Location resolves the business timezone
func (c *ScheduleConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Timezone)
	}
	return loc, nil
}

// BlockedDates is the set of explicit closure dates of a business, keyed by
// the YYYY-MM-DD form. A blocked date overrides the weekday rule.
type BlockedDates map[string]struct{}

// NewBlockedDates builds a set from a date list
func NewBlockedDates(dates []time.Time) BlockedDates {
	set := make(BlockedDates, len(dates))
	for _, d := range dates {
		set[d.Format(DateFormat)] = struct{}{}
	}
	return set
}

// Contains reports whether the date is blocked
func (b BlockedDates) Contains(date time.Time) bool {
	_, ok := b[date.Format(DateFormat)]
	return ok
}

// Dates returns the set as a date list (unordered)
func (b BlockedDates) Dates() []time.Time {
	dates := make([]time.Time, 0, len(b))
	for key := range b {
		if d, err := time.Parse(DateFormat, key); err == nil {
			dates = append(dates, d)
		}
	}
	return dates
}
