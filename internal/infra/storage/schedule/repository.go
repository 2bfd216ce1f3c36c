package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	"github.com/agendora/Agendora-BookingService/pkg/dbmetrics"
	"github.com/agendora/Agendora-BookingService/pkg/psqlbuilder"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// Repository persists schedule configurations, their per-weekday rules and
// blocked dates. Weekday rows use Go's time.Weekday numbering (0 = Sunday).
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository over the given executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID loads the active schedule configuration of one business,
// assembling the weekly rules from the per-weekday rows.
func (r *Repository) GetByBusinessID(ctx context.Context, businessID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"slot_granularity_minutes",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("schedule_configs").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build config query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.BusinessID,
		&config.SlotGranularityMinutes,
		&config.Timezone,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	week, err := r.loadWeek(ctx, executor, businessID)
	if err != nil {
		return nil, err
	}
	config.Week = week

	return &config, nil
}

// Upsert writes the configuration and all seven weekday rows, replacing the
// previous version in place (one active version per business).
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_configs").
		Columns("business_id", "slot_granularity_minutes", "timezone").
		Values(config.BusinessID, config.SlotGranularityMinutes, config.Timezone).
		Suffix(`ON CONFLICT (business_id) DO UPDATE
			SET slot_granularity_minutes = EXCLUDED.slot_granularity_minutes,
			    timezone = EXCLUDED.timezone,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build config upsert: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute config upsert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	for _, weekday := range domain.Weekdays {
		if err := r.upsertDay(ctx, executor, config.BusinessID, weekday, config.Week.Day(weekday)); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// GetBlockedDates loads the business's blocked date set
func (r *Repository) GetBlockedDates(ctx context.Context, businessID int64) (domain.BlockedDates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("blocked_date").
		From("blocked_dates").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("blocked_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetBlockedDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return domain.NewBlockedDates(dates), nil
}

// ReplaceBlockedDates replaces the business's blocked date set
func (r *Repository) ReplaceBlockedDates(ctx context.Context, businessID int64, dates []time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBlockedDates - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceBlockedDates - execute delete: %v", ErrExecQuery, err)
	}

	if len(dates) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("blocked_dates").
		Columns("business_id", "blocked_date")
	for _, date := range dates {
		insertBuilder = insertBuilder.Values(businessID, date)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceBlockedDates - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceBlockedDates - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadWeek assembles the weekly schedule from the weekday rows.
// Missing rows are left as disabled days.
func (r *Repository) loadWeek(ctx context.Context, executor DBExecutor, businessID int64) (domain.WeekSchedule, error) {
	var week domain.WeekSchedule

	query, args, err := psqlbuilder.Select(
		"weekday",
		"enabled",
		"open_time",
		"close_time",
		"lunch_enabled",
		"lunch_start",
		"lunch_end",
	).
		From("schedule_days").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return week, fmt.Errorf("%w: loadWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return week, fmt.Errorf("%w: loadWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var day domain.DaySchedule
		var openTime, closeTime sql.NullString
		var lunchStart, lunchEnd sql.NullString

		err := rows.Scan(
			&weekday,
			&day.Enabled,
			&openTime,
			&closeTime,
			&day.LunchEnabled,
			&lunchStart,
			&lunchEnd,
		)
		if err != nil {
			return week, fmt.Errorf("%w: loadWeek - scan day: %v", ErrScanRow, err)
		}

		if openTime.Valid {
			day.OpenTime = types.TimeString(openTime.String)
		}
		if closeTime.Valid {
			day.CloseTime = types.TimeString(closeTime.String)
		}
		day.LunchStart = nullableTime(lunchStart)
		day.LunchEnd = nullableTime(lunchEnd)

		week.SetDay(time.Weekday(weekday), day)
	}
	if err := rows.Err(); err != nil {
		return week, fmt.Errorf("%w: loadWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// upsertDay writes one weekday rule
func (r *Repository) upsertDay(ctx context.Context, executor DBExecutor, businessID int64, weekday time.Weekday, day domain.DaySchedule) error {
	query, args, err := psqlbuilder.Insert("schedule_days").
		Columns(
			"business_id",
			"weekday",
			"enabled",
			"open_time",
			"close_time",
			"lunch_enabled",
			"lunch_start",
			"lunch_end",
		).
		Values(
			businessID,
			int(weekday),
			day.Enabled,
			nullIfZero(day.OpenTime),
			nullIfZero(day.CloseTime),
			day.LunchEnabled,
			day.LunchStart,
			day.LunchEnd,
		).
		Suffix(`ON CONFLICT (business_id, weekday) DO UPDATE
			SET enabled = EXCLUDED.enabled,
			    open_time = EXCLUDED.open_time,
			    close_time = EXCLUDED.close_time,
			    lunch_enabled = EXCLUDED.lunch_enabled,
			    lunch_start = EXCLUDED.lunch_start,
			    lunch_end = EXCLUDED.lunch_end`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: upsertDay - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertDay - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

func nullableTime(v sql.NullString) *types.TimeString {
	if !v.Valid || v.String == "" {
		return nil
	}
	t := types.TimeString(v.String)
	return &t
}

func nullIfZero(t types.TimeString) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
