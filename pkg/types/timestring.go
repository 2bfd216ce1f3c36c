package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minutesPerDay upper bound for any time of day
const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString is returned when a value cannot be parsed as "HH:MM"
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange is returned when an arithmetic result leaves the 00:00-23:59 range
	ErrTimeOutOfRange = errors.New("time out of range")
)

// TimeString is a time of day serialized as zero-padded "HH:MM" (24h).
//
// The string kind is deliberate: database/sql scans it directly from
// TIME/VARCHAR columns, and because every valid value is zero-padded,
// lexicographic comparison of TimeStrings matches chronological order.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses a "H:M" token of any padding and
// re-serializes it zero-padded ("9:5" becomes "09:05").
func NewTimeStringFromString(s string) (TimeString, error) {
	hour, minute, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return FromClock(hour, minute), nil
}

// FromClock builds a zero-padded TimeString from hour and minute.
func FromClock(hour, minute int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
}

// FromMinutes builds a TimeString from minutes since midnight.
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return FromClock(minutes/60, minutes%60), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a parsable time of day.
func (t TimeString) Validate() error {
	_, _, err := parseClock(string(t))
	return err
}

// HourMinute returns the parsed hour and minute components.
func (t TimeString) HourMinute() (int, int, error) {
	return parseClock(string(t))
}

// MinutesFromMidnight returns the value as minutes since midnight.
func (t TimeString) MinutesFromMidnight() (int, error) {
	hour, minute, err := parseClock(string(t))
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Results that cross midnight in either direction are an error: a booking day
// never wraps.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.MinutesFromMidnight()
	if err != nil {
		return "", err
	}
	return FromMinutes(total + minutes)
}

// IsBefore reports whether t is strictly earlier than other.
// Plain string comparison is correct for zero-padded values.
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// parseClock parses "H:M" with any digit padding into hour and minute.
func parseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return hour, minute, nil
}
