package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendora/Agendora-BookingService/internal/domain"
	scheduleRepo "github.com/agendora/Agendora-BookingService/internal/infra/storage/schedule"
	catalogClient "github.com/agendora/Agendora-BookingService/internal/integrations/catalogservice"
	"github.com/agendora/Agendora-BookingService/internal/service/schedule/models"
)

// Service manages business schedule configurations
type Service struct {
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService creates the schedule service
func NewService(
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Get fetches a business's schedule configuration. Public.
func (s *Service) Get(ctx context.Context, businessID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for business=%d", businessID)

	config, err := s.scheduleRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Get: schedule for business=%d not found", businessID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Get: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	blocked, err := s.scheduleRepo.GetBlockedDates(ctx, businessID)
	if err != nil {
		s.logger.Error("Get: failed to get blocked dates for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - failed to get blocked dates: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule for business=%d", businessID)
	return models.FromDomainConfig(config, blocked), nil
}

// Update replaces a business's schedule configuration and blocked date set.
// Only the business owner may call it. An inconsistent configuration (open
// after close, lunch outside working hours, granularity out of range) is
// rejected whole; no partial write happens.
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for business=%d by user=%d", req.BusinessID, req.UserID)

	// 1. Access check
	if err := s.checkOwnerAccess(ctx, req.BusinessID, req.UserID); err != nil {
		return nil, err
	}

	// 2. Convert and validate the whole configuration up front
	config, err := req.ToDomainConfig()
	if err != nil {
		s.logger.Warn("Update: invalid schedule data for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := config.Validate(); err != nil {
		s.logger.Warn("Update: schedule validation failed for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	blockedDates, err := req.BlockedDateList()
	if err != nil {
		s.logger.Warn("Update: invalid blocked dates for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Write the configuration and the blocked dates atomically
	var saved *domain.ScheduleConfig
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		saved, err = s.scheduleRepo.Upsert(txCtx, config)
		if err != nil {
			return fmt.Errorf("%w: Update - upsert error: %v", ErrInternal, err)
		}
		if err := s.scheduleRepo.ReplaceBlockedDates(txCtx, req.BusinessID, blockedDates); err != nil {
			return fmt.Errorf("%w: Update - blocked dates error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: transaction failed for business=%d: %v", req.BusinessID, err)
		return nil, err
	}

	s.logger.Info("Update: successfully updated schedule for business=%d", req.BusinessID)
	return models.FromDomainConfig(saved, domain.NewBlockedDates(blockedDates)), nil
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
