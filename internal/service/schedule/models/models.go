package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

var (
	// ErrInvalidDate is returned when a blocked date is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")
)

// Request models

// DayScheduleRequest is one weekday rule in API shape. Times are "HH:MM".
type DayScheduleRequest struct {
	Enabled    bool    `json:"enabled"`
	OpenTime   string  `json:"openTime,omitempty"`
	CloseTime  string  `json:"closeTime,omitempty"`
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`
}

// UpdateScheduleRequest replaces a business's whole schedule configuration
type UpdateScheduleRequest struct {
	UserID     int64 `json:"-"`
	BusinessID int64 `json:"-"`

	SlotGranularityMinutes int    `json:"slotGranularityMinutes"`
	Timezone               string `json:"timezone,omitempty"`

	Monday    DayScheduleRequest `json:"monday"`
	Tuesday   DayScheduleRequest `json:"tuesday"`
	Wednesday DayScheduleRequest `json:"wednesday"`
	Thursday  DayScheduleRequest `json:"thursday"`
	Friday    DayScheduleRequest `json:"friday"`
	Saturday  DayScheduleRequest `json:"saturday"`
	Sunday    DayScheduleRequest `json:"sunday"`

	// BlockedDates replaces the closure date set, YYYY-MM-DD each
	BlockedDates []string `json:"blockedDates"`
}

// ToDomainConfig converts the request into the domain configuration. An
// omitted granularity falls back to the platform default; any other
// out-of-range value is left for Validate to reject.
func (r *UpdateScheduleRequest) ToDomainConfig() (*domain.ScheduleConfig, error) {
	granularity := r.SlotGranularityMinutes
	if granularity == 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}

	config := &domain.ScheduleConfig{
		BusinessID:             r.BusinessID,
		SlotGranularityMinutes: granularity,
		Timezone:               r.Timezone,
	}

	days := map[time.Weekday]DayScheduleRequest{
		time.Monday:    r.Monday,
		time.Tuesday:   r.Tuesday,
		time.Wednesday: r.Wednesday,
		time.Thursday:  r.Thursday,
		time.Friday:    r.Friday,
		time.Saturday:  r.Saturday,
		time.Sunday:    r.Sunday,
	}
	for weekday, day := range days {
		domainDay, err := day.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", weekday, err)
		}
		config.Week.SetDay(weekday, domainDay)
	}

	return config, nil
}

// BlockedDateList parses the blocked date strings
func (r *UpdateScheduleRequest) BlockedDateList() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(r.BlockedDates))
	for _, s := range r.BlockedDates {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func (d *DayScheduleRequest) toDomain() (domain.DaySchedule, error) {
	day := domain.DaySchedule{Enabled: d.Enabled}
	if !d.Enabled {
		return day, nil
	}

	open, err := types.NewTimeStringFromString(d.OpenTime)
	if err != nil {
		return day, fmt.Errorf("open time: %w", err)
	}
	day.OpenTime = open

	closeTime, err := types.NewTimeStringFromString(d.CloseTime)
	if err != nil {
		return day, fmt.Errorf("close time: %w", err)
	}
	day.CloseTime = closeTime

	if d.LunchStart != nil || d.LunchEnd != nil {
		day.LunchEnabled = true
		if d.LunchStart != nil {
			start, err := types.NewTimeStringFromString(*d.LunchStart)
			if err != nil {
				return day, fmt.Errorf("lunch start: %w", err)
			}
			day.LunchStart = &start
		}
		if d.LunchEnd != nil {
			end, err := types.NewTimeStringFromString(*d.LunchEnd)
			if err != nil {
				return day, fmt.Errorf("lunch end: %w", err)
			}
			day.LunchEnd = &end
		}
	}

	return day, nil
}

// Response models

// DayScheduleResponse is one weekday rule in API shape
type DayScheduleResponse struct {
	Enabled    bool    `json:"enabled"`
	OpenTime   string  `json:"openTime,omitempty"`
	CloseTime  string  `json:"closeTime,omitempty"`
	LunchStart *string `json:"lunchStart,omitempty"`
	LunchEnd   *string `json:"lunchEnd,omitempty"`
}

// ScheduleResponse is a business's whole schedule configuration
type ScheduleResponse struct {
	BusinessID             int64  `json:"businessId"`
	SlotGranularityMinutes int    `json:"slotGranularityMinutes"`
	Timezone               string `json:"timezone,omitempty"`

	Monday    DayScheduleResponse `json:"monday"`
	Tuesday   DayScheduleResponse `json:"tuesday"`
	Wednesday DayScheduleResponse `json:"wednesday"`
	Thursday  DayScheduleResponse `json:"thursday"`
	Friday    DayScheduleResponse `json:"friday"`
	Saturday  DayScheduleResponse `json:"saturday"`
	Sunday    DayScheduleResponse `json:"sunday"`

	BlockedDates []string `json:"blockedDates"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainConfig converts the domain configuration into the DTO
func FromDomainConfig(config *domain.ScheduleConfig, blocked domain.BlockedDates) *ScheduleResponse {
	if config == nil {
		return nil
	}

	dates := make([]string, 0, len(blocked))
	for _, d := range blocked.Dates() {
		dates = append(dates, d.Format(domain.DateFormat))
	}
	sort.Strings(dates)

	return &ScheduleResponse{
		BusinessID:             config.BusinessID,
		SlotGranularityMinutes: config.SlotGranularityMinutes,
		Timezone:               config.Timezone,
		Monday:                 fromDomainDay(config.Week.Monday),
		Tuesday:                fromDomainDay(config.Week.Tuesday),
		Wednesday:              fromDomainDay(config.Week.Wednesday),
		Thursday:               fromDomainDay(config.Week.Thursday),
		Friday:                 fromDomainDay(config.Week.Friday),
		Saturday:               fromDomainDay(config.Week.Saturday),
		Sunday:                 fromDomainDay(config.Week.Sunday),
		BlockedDates:           dates,
		UpdatedAt:              config.UpdatedAt,
	}
}

func fromDomainDay(day domain.DaySchedule) DayScheduleResponse {
	resp := DayScheduleResponse{Enabled: day.Enabled}
	if !day.Enabled {
		return resp
	}

	resp.OpenTime = day.OpenTime.String()
	resp.CloseTime = day.CloseTime.String()
	if day.LunchEnabled && day.LunchStart != nil && day.LunchEnd != nil {
		start := day.LunchStart.String()
		end := day.LunchEnd.String()
		resp.LunchStart = &start
		resp.LunchEnd = &end
	}
	return resp
}
