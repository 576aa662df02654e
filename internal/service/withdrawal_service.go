package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/a2sh3r/starsbot/internal/notify"
	"github.com/a2sh3r/starsbot/internal/repository"
	"github.com/a2sh3r/starsbot/internal/utils"
	"go.uber.org/zap"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type WithdrawalService interface {
	Submit(ctx context.Context, userID, amount int64, details string) (*models.Withdrawal, error)
	Decide(ctx context.Context, withdrawalID int64, decision Decision, actorID int64) (*models.Withdrawal, error)
	GetUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	GetPending(ctx context.Context) ([]models.Withdrawal, error)
}

type withdrawalService struct {
	userRepo       repository.UserRepository
	withdrawalRepo repository.WithdrawalRepository
	notifier       notify.Notifier
	adminID        int64
	minWithdrawal  int64
}

func NewWithdrawalService(userRepo repository.UserRepository, withdrawalRepo repository.WithdrawalRepository, notifier notify.Notifier, adminID, minWithdrawal int64) WithdrawalService {
	return &withdrawalService{
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
		notifier:       notifier,
		adminID:        adminID,
		minWithdrawal:  minWithdrawal,
	}
}

// Submit escrows the amount immediately: the stars leave the balance before
// any admin looks at the request and come back only on rejection.
func (s *withdrawalService) Submit(ctx context.Context, userID, amount int64, details string) (*models.Withdrawal, error) {
	if strings.TrimSpace(details) == "" {
		return nil, apperrors.ErrInvalidRequest
	}
	if amount < s.minWithdrawal {
		return nil, apperrors.ErrBelowMinimum
	}

	user, err := s.userRepo.GetUserByTelegramID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Balance < amount {
		return nil, apperrors.ErrInsufficientFunds
	}

	withdrawal := &models.Withdrawal{
		UserID:  userID,
		Amount:  amount,
		Details: details,
	}
	if err := s.withdrawalRepo.Submit(ctx, withdrawal); err != nil {
		return nil, err
	}

	withdrawalsSubmitted.Inc()
	logger.Log.Info("withdrawal submitted",
		zap.Int64("user", userID), zap.Int64("amount", amount), zap.Int64("id", withdrawal.ID))

	s.notifier.Notify(ctx, userID, fmt.Sprintf(
		"Withdrawal request #%d for %s stars accepted.\n"+
			"The amount is reserved until the admin decides.",
		withdrawal.ID, utils.FormatStars(amount)))

	name := user.FirstName
	if user.Username != "" {
		name = name + " (@" + user.Username + ")"
	}
	s.notifier.NotifyWithButtons(ctx, s.adminID, fmt.Sprintf(
		"Withdrawal request #%d\n"+
			"From: %s, id %d\n"+
			"Amount: %s stars\n"+
			"Details: %s",
		withdrawal.ID, name, userID, utils.FormatStars(amount), details),
		[][]notify.Button{{
			{Text: "✅ Approve", Data: fmt.Sprintf("wd_approve:%d", withdrawal.ID)},
			{Text: "❌ Reject", Data: fmt.Sprintf("wd_reject:%d", withdrawal.ID)},
		}})

	return withdrawal, nil
}

// Decide applies the terminal admin decision. Approval leaves the escrow
// debit permanent; rejection refunds it. A request that is already decided
// stays as is, so a second decision never touches the balance.
func (s *withdrawalService) Decide(ctx context.Context, withdrawalID int64, decision Decision, actorID int64) (*models.Withdrawal, error) {
	if actorID != s.adminID {
		return nil, apperrors.ErrForbidden
	}

	var status models.WithdrawalStatus
	switch decision {
	case DecisionApprove:
		status = models.WithdrawalStatusApproved
	case DecisionReject:
		status = models.WithdrawalStatusRejected
	default:
		return nil, apperrors.ErrInvalidRequest
	}

	var withdrawal *models.Withdrawal
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		withdrawal, err = s.withdrawalRepo.Decide(ctx, withdrawalID, status)
		if !errors.Is(err, apperrors.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	withdrawalsDecided.WithLabelValues(string(decision)).Inc()
	logger.Log.Info("withdrawal decided",
		zap.Int64("id", withdrawalID), zap.String("decision", string(decision)))

	switch status {
	case models.WithdrawalStatusApproved:
		s.notifier.Notify(ctx, withdrawal.UserID, fmt.Sprintf(
			"Withdrawal request #%d approved!\n"+
				"%s stars are on their way.",
			withdrawal.ID, utils.FormatStars(withdrawal.Amount)))
	case models.WithdrawalStatusRejected:
		s.notifier.Notify(ctx, withdrawal.UserID, fmt.Sprintf(
			"Withdrawal request #%d rejected.\n"+
				"%s stars returned to your balance.",
			withdrawal.ID, utils.FormatStars(withdrawal.Amount)))
	}

	return withdrawal, nil
}

func (s *withdrawalService) GetUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.withdrawalRepo.GetByUser(ctx, userID)
}

func (s *withdrawalService) GetPending(ctx context.Context) ([]models.Withdrawal, error) {
	return s.withdrawalRepo.GetPending(ctx)
}
