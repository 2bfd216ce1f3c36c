package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendora/Agendora-BookingService/internal/availability"
	"github.com/agendora/Agendora-BookingService/internal/domain"
	bookingRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	"github.com/agendora/Agendora-BookingService/pkg/ptr"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// UseCase moves bookings to a new date and time
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute reschedules a booking. The same notice window that guards
// cancellation guards rescheduling, and the target slot is re-checked inside
// a serializable transaction with the booking itself excluded from the
// collision set.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, customer=%d, date=%s, time=%s",
		req.BookingID, req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Run load, checks and update in one serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Load the booking and check ownership
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if booking.CustomerID != req.CustomerID {
			uc.logger.Warn("RescheduleBooking: customer=%d does not own booking id=%d",
				req.CustomerID, req.BookingID)
			return ErrAccessDenied
		}
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d has status=%s", req.BookingID, booking.Status)
			return ErrCannotReschedule
		}

		// 2.2. Load the schedule configuration of the booking's business
		config, err := uc.scheduleRepo.GetByBusinessID(txCtx, booking.BusinessID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("RescheduleBooking: business id=%d has no schedule configuration", booking.BusinessID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		loc, err := config.Location()
		if err != nil {
			uc.logger.Error("RescheduleBooking: business=%d has invalid timezone %q: %v",
				booking.BusinessID, config.Timezone, err)
			return fmt.Errorf("%w: invalid timezone: %v", ErrInternal, err)
		}
		now := uc.timeProvider.Now().In(loc)

		// 2.3. The modification notice window is measured against the
		// booking's current start, not the requested one
		if !booking.IsEditable(now, loc) {
			uc.logger.Warn("RescheduleBooking: booking id=%d starts too soon to modify", req.BookingID)
			return ErrTooLateToModify
		}

		// 2.4. Validate the target date and day
		if err := validateDateNotPast(req.Date, now); err != nil {
			uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
			return err
		}
		day := config.Week.Day(req.Date.Weekday())
		if !day.Enabled {
			uc.logger.Warn("RescheduleBooking: business=%d is closed on %s",
				booking.BusinessID, req.Date.Format(domain.DateFormat))
			return ErrBusinessClosed
		}

		// 2.5. Regenerate the target date's slots, excluding the booking
		// being moved so it does not collide with itself
		blockedDates, err := uc.scheduleRepo.GetBlockedDates(txCtx, booking.BusinessID)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get blocked dates: %v", err)
			return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
		}

		filter := domain.BusinessBookingsFilter{
			BusinessID: booking.BusinessID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
			Status:     ptr.Ptr(domain.StatusConfirmed),
		}
		bookings, err := uc.bookingRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		slots := availability.GenerateSlots(
			day,
			config.SlotGranularityMinutes,
			booking.DurationMinutes,
			req.Date,
			now,
			blockedDates,
			bookings,
			&booking.ID,
		)
		if !containsSlot(slots, req.StartTime) {
			uc.logger.Warn("RescheduleBooking: time %s is not available on %s for business=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), booking.BusinessID)
			return ErrSlotConflict
		}

		// 2.6. Persist the move
		if err := uc.bookingRepo.UpdateSchedule(txCtx, booking.ID, req.Date, req.StartTime); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		booking.BookingDate = req.Date
		booking.StartTime = req.StartTime
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully moved booking id=%d to %s %s",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.StartTime)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		BusinessID:      result.BusinessID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
	}, nil
}

// containsSlot reports whether the generated slot list includes the time
func containsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
