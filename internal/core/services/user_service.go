package services

import (
	"context"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/out"
)

type UserService struct {
	userStore out.UserStorePort
	logger    out.LoggerPort
}

func NewUserService(userStore out.UserStorePort, logger out.LoggerPort) *UserService {
	return &UserService{
		userStore: userStore,
		logger:    logger.WithModule("UserService"),
	}
}

func (s *UserService) SaveSelectedLocation(ctx context.Context, userID string, location domain.GeoPoint) error {
	if err := s.userStore.SetSelectedLocation(ctx, userID, location); err != nil {
		s.logger.Error("user.location.save_failed", out.LogFields{
			"userId": userID,
			"error":  err.Error(),
		})
		return err
	}

	return nil
}

func (s *UserService) GetSelectedLocation(ctx context.Context, userID string) (*domain.GeoPoint, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.SelectedLocation == nil {
		return nil, domain.ErrNotFound
	}

	return user.SelectedLocation, nil
}
