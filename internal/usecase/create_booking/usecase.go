package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendora/Agendora-BookingService/internal/availability"
	"github.com/agendora/Agendora-BookingService/internal/domain"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
	"github.com/agendora/Agendora-BookingService/pkg/ptr"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// UseCase creates bookings
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute creates a booking. Slot availability is re-checked inside a
// serializable transaction so two concurrent requests cannot both take the
// last slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, business=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the business
	business, err := uc.catalogClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.Active {
		uc.logger.Warn("CreateBooking: business id=%d is inactive", req.BusinessID)
		return nil, ErrBusinessNotFound
	}

	// 3. Resolve the service
	service, err := uc.catalogClient.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Run the availability check and the insert in one serializable
	// transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Load the schedule configuration. Unmigrated businesses are
		// read-only here: their bookings still live in the legacy agenda, and
		// writing locally would race with it.
		config, err := uc.scheduleRepo.GetByBusinessID(txCtx, req.BusinessID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: business id=%d has no schedule configuration", req.BusinessID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		loc, err := config.Location()
		if err != nil {
			uc.logger.Error("CreateBooking: business=%d has invalid timezone %q: %v",
				req.BusinessID, config.Timezone, err)
			return fmt.Errorf("%w: invalid timezone: %v", ErrInternal, err)
		}
		now := uc.timeProvider.Now().In(loc)

		// 4.2. Reject past dates
		if err := validateDateNotPast(req.Date, now); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 4.3. Closed day short-circuits before any slot math
		day := config.Week.Day(req.Date.Weekday())
		if !day.Enabled {
			uc.logger.Warn("CreateBooking: business=%d is closed on %s",
				req.BusinessID, req.Date.Format(domain.DateFormat))
			return ErrBusinessClosed
		}

		// 4.4. Load blocked dates and the date's confirmed bookings; the
		// booking query takes row locks (FOR UPDATE) inside the transaction
		blockedDates, err := uc.scheduleRepo.GetBlockedDates(txCtx, req.BusinessID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked dates: %v", err)
			return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
		}

		filter := domain.BusinessBookingsFilter{
			BusinessID: req.BusinessID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
			Status:     ptr.Ptr(domain.StatusConfirmed),
		}
		bookings, err := uc.bookingRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.5. The requested time must be one of the bookable slots
		durationMinutes := service.DurationMinutes
		if durationMinutes <= 0 {
			durationMinutes = config.SlotGranularityMinutes
		}
		slots := availability.GenerateSlots(
			day,
			config.SlotGranularityMinutes,
			durationMinutes,
			req.Date,
			now,
			blockedDates,
			bookings,
			nil,
		)
		if !containsSlot(slots, req.StartTime) {
			uc.logger.Warn("CreateBooking: time %s is not available on %s for business=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), req.BusinessID)
			return ErrSlotConflict
		}

		// 4.6. Persist with denormalized service data
		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			BusinessID:      req.BusinessID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: durationMinutes,
			Status:          domain.StatusConfirmed,
			ServiceName:     service.Name,
			ServicePrice:    servicePrice(service),
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

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
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
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

// servicePrice extracts the price, defaulting to 0.0 when the catalog has none
func servicePrice(service *catalogClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
