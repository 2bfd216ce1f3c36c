package types

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		in   string
		want TimeString
	}{
		{"09:05", "09:05"},
		{"9:5", "09:05"},
		{"0:0", "00:00"},
		{"23:59", "23:59"},
		{" 9 : 30 ", "09:30"},
	}
	for _, tc := range cases {
		got, err := NewTimeStringFromString(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "-1:30", "ab:cd", "10:15:00"} {
		_, err := NewTimeStringFromString(in)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", in)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 16, 7, 5, 42, 0, time.UTC)
	assert.Equal(t, TimeString("07:05"), NewTimeString(moment))
}

func TestFromMinutes(t *testing.T) {
	got, err := FromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	got, err = FromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), got)

	_, err = FromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = FromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestMinutesFromMidnight(t *testing.T) {
	m, err := TimeString("14:45").MinutesFromMidnight()
	require.NoError(t, err)
	assert.Equal(t, 14*60+45, m)

	_, err = TimeString("garbage").MinutesFromMidnight()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// A booking day never wraps past midnight
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestLexicographicOrderIsChronological(t *testing.T) {
	values := []string{"14:00", "09:30", "09:05", "23:59", "00:00", "10:00"}
	sort.Strings(values)

	assert.Equal(t, []string{"00:00", "09:05", "09:30", "10:00", "14:00", "23:59"}, values)

	assert.True(t, TimeString("09:05").IsBefore("09:30"))
	assert.True(t, TimeString("14:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
}

func TestValidateAndIsZero(t *testing.T) {
	assert.NoError(t, TimeString("08:00").Validate())
	assert.Error(t, TimeString("8pm").Validate())
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("08:00").IsZero())
}
