package service

import (
	"context"
	"errors"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/a2sh3r/starsbot/internal/repository"
	"go.uber.org/zap"
)

type UserService interface {
	RegisterUser(ctx context.Context, user *models.User) (created bool, err error)
	GetUser(ctx context.Context, telegramID int64) (*models.User, error)
	ListRecentUsers(ctx context.Context, limit int) ([]models.User, error)
	AdjustBalance(ctx context.Context, actorID, targetID, delta int64) (*models.User, error)
	GetStats(ctx context.Context) (models.Stats, error)
}

type userService struct {
	repo    repository.UserRepository
	adminID int64
}

func NewUserService(repo repository.UserRepository, adminID int64) UserService {
	return &userService{
		repo:    repo,
		adminID: adminID,
	}
}

// RegisterUser creates the account on first contact. ReferredBy is written
// once here and never updated afterwards; a self-reference is dropped.
func (s *userService) RegisterUser(ctx context.Context, user *models.User) (bool, error) {
	if user.TelegramID <= 0 {
		return false, apperrors.ErrInvalidRequest
	}
	if user.ReferredBy != nil && *user.ReferredBy == user.TelegramID {
		user.ReferredBy = nil
	}
	user.IsAdmin = user.TelegramID == s.adminID

	err := s.repo.CreateUser(ctx, user)
	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logger.Log.Info("user registered",
		zap.Int64("telegram_id", user.TelegramID), zap.Bool("referred", user.ReferredBy != nil))
	return true, nil
}

func (s *userService) GetUser(ctx context.Context, telegramID int64) (*models.User, error) {
	return s.repo.GetUserByTelegramID(ctx, telegramID)
}

func (s *userService) ListRecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	return s.repo.ListRecentUsers(ctx, limit)
}

// AdjustBalance is the admin's direct balance edit. The repository rejects
// any delta that would push the balance below zero.
func (s *userService) AdjustBalance(ctx context.Context, actorID, targetID, delta int64) (*models.User, error) {
	if actorID != s.adminID {
		return nil, apperrors.ErrForbidden
	}
	if delta == 0 {
		return nil, apperrors.ErrInvalidRequest
	}

	if err := s.repo.AdjustBalance(ctx, targetID, delta); err != nil {
		return nil, err
	}

	logger.Log.Info("balance adjusted by admin",
		zap.Int64("target", targetID), zap.Int64("delta", delta))
	return s.repo.GetUserByTelegramID(ctx, targetID)
}

func (s *userService) GetStats(ctx context.Context) (models.Stats, error) {
	return s.repo.GetStats(ctx)
}
