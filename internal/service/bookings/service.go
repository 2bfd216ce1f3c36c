package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	bookingRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
	"github.com/agendora/Agendora-BookingService/internal/service/bookings/models"
	"github.com/agendora/Agendora-BookingService/pkg/types"
)

// Service handles booking reads, cancellation and housekeeping
type Service struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewService creates the bookings service
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// GetByID fetches one booking. A customer sees only their own bookings; the
// business owner sees all bookings of their business.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings fetches a customer's booking history, optionally
// filtered by status
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBusinessBookings fetches a business's bookings with flexible filtering.
// Only the business owner may call it.
//
// StartDate and EndDate pointing at the same date select one day; Status
// narrows to one status; IncludeInactive adds cancelled bookings.
func (s *Service) GetBusinessBookings(ctx context.Context, req *models.GetBusinessBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetBusinessBookings: fetching bookings for business=%d, user=%d", req.BusinessID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if err := s.checkOwnerAccess(ctx, req.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBusinessBookings: invalid filter for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBusinessBookings: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessBookings: successfully fetched %d bookings for business=%d", len(bookings), req.BusinessID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking. A customer may cancel their own booking while the
// modification notice window is still open; the business owner may cancel any
// booking of their business at any time.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d (%d chars)",
			bookingID, len(req.CancellationReason))
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if booking.CustomerID == req.UserID {
		// Customer cancellation is gated by the notice window, measured in
		// the business's timezone
		loc, err := s.businessLocation(ctx, booking.BusinessID)
		if err != nil {
			s.logger.Error("Cancel: failed to resolve timezone for business=%d: %v", booking.BusinessID, err)
			return fmt.Errorf("%w: Cancel - failed to resolve timezone: %v", ErrInternal, err)
		}
		now := s.timeProvider.Now().In(loc)
		if !booking.IsCancellable(now, loc) {
			s.logger.Warn("Cancel: booking id=%d starts too soon for customer cancellation", bookingID)
			return ErrTooLateToCancel
		}
	} else {
		// Owner cancellation is not window-gated
		if err := s.checkOwnerAccess(ctx, booking.BusinessID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// CompletePastDue marks confirmed bookings whose start time has passed as
// completed. Runs from the background job.
func (s *Service) CompletePastDue(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	timeOfDay := types.NewTimeString(now)

	affected, err := s.bookingRepo.CompletePastBookings(ctx, date, timeOfDay)
	if err != nil {
		s.logger.Error("CompletePastDue: repository error: %v", err)
		return 0, fmt.Errorf("%w: CompletePastDue - repository error: %v", ErrInternal, err)
	}

	if affected > 0 {
		s.logger.Info("CompletePastDue: marked %d bookings as completed", affected)
	}
	return affected, nil
}

// Helpers

// checkUserAccess allows the booking's customer and the business owner
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.CustomerID == userID {
		return nil
	}

	if err := s.checkOwnerAccess(ctx, booking.BusinessID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess verifies the user owns the business
func (s *Service) checkOwnerAccess(ctx context.Context, businessID int64, userID int64) error {
	business, err := s.catalogClient.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrBusinessNotFound) {
			s.logger.Warn("checkOwnerAccess: business id=%d not found", businessID)
			return ErrBusinessNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get business id=%d: %v", businessID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get business: %v", ErrInternal, err)
	}

	if business.OwnerID == userID {
		return nil
	}

	s.logger.Warn("checkOwnerAccess: user=%d is not the owner of business=%d", userID, businessID)
	return ErrAccessDenied
}

// businessLocation resolves the business's timezone from its schedule
// configuration. Businesses without a migrated configuration fall back to the
// server's local time.
func (s *Service) businessLocation(ctx context.Context, businessID int64) (*time.Location, error) {
	config, err := s.scheduleRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return time.Local, nil
		}
		return nil, err
	}
	return config.Location()
}
