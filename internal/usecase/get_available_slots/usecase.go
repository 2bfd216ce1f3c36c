package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendora/Agendora-BookingService/internal/availability"
	"github.com/agendora/Agendora-BookingService/internal/domain"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	legacyClient "github.com/agendora/Agendora-BookingService/internal/integrations/agendalegacy"
	catalogClient "github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
	"github.com/agendora/Agendora-BookingService/pkg/ptr"
)

// UseCase answers slot queries: which start times of one day are bookable
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	legacyClient  LegacyAgendaClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	legacyClient LegacyAgendaClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		legacyClient:  legacyClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute runs the slot query
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, service=%d, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the schedule configuration; businesses that have not migrated
	// are still served by the legacy agenda
	config, err := uc.scheduleRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return uc.legacyAvailability(ctx, req)
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 3. Evaluate "now" and "today" in the business's timezone
	loc, err := config.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: business=%d has invalid timezone %q: %v",
			req.BusinessID, config.Timezone, err)
		return nil, fmt.Errorf("%w: invalid timezone: %v", ErrInternal, err)
	}
	now := uc.timeProvider.Now().In(loc)

	// 4. Resolve the service duration; without a specific service one slot
	// occupies exactly one granularity step
	durationMinutes := config.SlotGranularityMinutes
	if req.ServiceID > 0 {
		service, err := uc.catalogClient.GetService(ctx, req.BusinessID, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.DurationMinutes > 0 {
			durationMinutes = service.DurationMinutes
		}
	}

	// 5. Load the blocked dates
	blockedDates, err := uc.scheduleRepo.GetBlockedDates(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked dates for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	// 6. Load the confirmed bookings of the target date
	filter := domain.BusinessBookingsFilter{
		BusinessID: req.BusinessID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
		Status:     ptr.Ptr(domain.StatusConfirmed),
	}
	bookings, err := uc.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Generate and normalize. A disabled, blocked or fully booked day is
	// an empty payload, not an error.
	slots := availability.GenerateSlots(
		config.Week.Day(req.Date.Weekday()),
		config.SlotGranularityMinutes,
		durationMinutes,
		req.Date,
		now,
		blockedDates,
		bookings,
		req.ExcludeBookingID,
	)

	uc.logger.Info("GetAvailableSlots: generated %d slots for business=%d, date=%s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		BusinessID:   req.BusinessID,
		ServiceID:    req.ServiceID,
		Availability: availability.FromSlots(slots),
	}, nil
}

// legacyAvailability serves the query from the legacy agenda API. Its payload
// arrives in either of the two historical shapes and is already normalized by
// the client.
func (uc *UseCase) legacyAvailability(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d not migrated, falling back to legacy agenda", req.BusinessID)

	legacy, err := uc.legacyClient.GetDayAvailability(ctx, req.BusinessID, req.Date)
	if err != nil {
		if errors.Is(err, legacyClient.ErrAgendaNotFound) {
			uc.logger.Warn("GetAvailableSlots: no schedule for business=%d in any system", req.BusinessID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetAvailableSlots: legacy agenda failed for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: legacy agenda: %v", ErrInternal, err)
	}

	return &Response{
		Date:         req.Date,
		BusinessID:   req.BusinessID,
		ServiceID:    req.ServiceID,
		Availability: *legacy,
	}, nil
}
