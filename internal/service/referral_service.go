package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/a2sh3r/starsbot/internal/notify"
	"github.com/a2sh3r/starsbot/internal/repository"
	"github.com/a2sh3r/starsbot/internal/utils"
	"go.uber.org/zap"
)

// conflictRetries bounds re-reads after a lost-update conflict before the
// error is surfaced as transient.
const conflictRetries = 3

type ReferralService interface {
	CreateReferral(ctx context.Context, referrerID, referredID int64) error
	GrantPendingRewards(ctx context.Context, referredID int64) error
	ApplyPenalty(ctx context.Context, referredID int64) error
	GetUserReferrals(ctx context.Context, referrerID int64) ([]models.Referral, error)
}

type referralService struct {
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
	notifier     notify.Notifier
	reward       int64
}

func NewReferralService(userRepo repository.UserRepository, referralRepo repository.ReferralRepository, notifier notify.Notifier, reward int64) ReferralService {
	return &referralService{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		notifier:     notifier,
		reward:       reward,
	}
}

// CreateReferral records the edge between referrer and referred with the
// reward still pending. Idempotent: an existing edge for the pair is a
// no-op. The reward itself is granted later, once the referred user passes
// the subscription check.
func (s *referralService) CreateReferral(ctx context.Context, referrerID, referredID int64) error {
	if referrerID <= 0 || referredID <= 0 {
		return apperrors.ErrInvalidRequest
	}
	if referrerID == referredID {
		return apperrors.ErrSelfReferral
	}

	referrer, err := s.userRepo.GetUserByTelegramID(ctx, referrerID)
	if err != nil {
		return err
	}

	existing, err := s.referralRepo.GetByPair(ctx, referrerID, referredID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	referral := &models.Referral{
		ReferrerID: referrerID,
		ReferredID: referredID,
		Status:     models.ReferralStatusPending,
	}
	err = s.referralRepo.CreateReferral(ctx, referral)
	if errors.Is(err, apperrors.ErrReferralExists) {
		return nil
	}
	if err != nil {
		return err
	}

	logger.Log.Info("referral created",
		zap.Int64("referrer", referrerID), zap.Int64("referred", referredID))

	s.notifier.Notify(ctx, referrerID, fmt.Sprintf(
		"New referral joined via your link!\n"+
			"You will receive %s stars once they pass the subscription check.",
		utils.FormatStars(s.reward)))
	s.notifier.Notify(ctx, referredID, fmt.Sprintf(
		"You joined via an invite from %s.\n"+
			"Subscribe to the sponsor channels to unlock the bot and credit your inviter.",
		referrer.FirstName))
	return nil
}

// GrantPendingRewards credits every not-yet-active edge of the referred
// user. Safe to call repeatedly: granted edges are excluded from the scan,
// and the repository flips the status with an exactly-once condition.
func (s *referralService) GrantPendingRewards(ctx context.Context, referredID int64) error {
	referrals, err := s.referralRepo.GetGrantable(ctx, referredID)
	if err != nil {
		return err
	}

	for _, referral := range referrals {
		referrer, err := s.userRepo.GetUserByTelegramID(ctx, referral.ReferrerID)
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Log.Warn("referrer vanished, reward not granted",
				zap.Int64("referrer", referral.ReferrerID), zap.Int64("referred", referredID))
			continue
		}
		if err != nil {
			return err
		}

		err = s.grantOne(ctx, referral)
		if errors.Is(err, apperrors.ErrRewardAlreadyGiven) {
			continue
		}
		if err != nil {
			return err
		}

		rewardsGranted.Inc()
		logger.Log.Info("referral reward granted",
			zap.Int64("referrer", referral.ReferrerID), zap.Int64("referred", referredID),
			zap.Int64("reward", s.reward))

		s.notifier.Notify(ctx, referral.ReferrerID, fmt.Sprintf(
			"Your referral passed the subscription check!\n"+
				"+%s stars. Balance: %s, referrals: %d.",
			utils.FormatStars(s.reward),
			utils.FormatStars(referrer.Balance+s.reward),
			referrer.ReferralCount+1))
		s.notifier.Notify(ctx, referredID, fmt.Sprintf(
			"Subscription confirmed — your inviter just received %s stars.\n"+
				"Share your own link to start earning too!",
			utils.FormatStars(s.reward)))
	}
	return nil
}

func (s *referralService) grantOne(ctx context.Context, referral models.Referral) error {
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = s.referralRepo.GrantReward(ctx, referral.ReferrerID, referral.ReferredID, s.reward)
		if !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
	}
	return err
}

// ApplyPenalty takes the reward back after the referred user left the
// sponsor channels. The edge is revoked, never deleted: re-subscribing
// re-grants it through GrantPendingRewards. Failed preconditions are
// deliberate no-ops; in particular, a referrer who already spent the
// stars keeps the reward.
func (s *referralService) ApplyPenalty(ctx context.Context, referredID int64) error {
	referred, err := s.userRepo.GetUserByTelegramID(ctx, referredID)
	if err != nil {
		return err
	}
	if referred.ReferredBy == nil {
		return nil
	}
	referrerID := *referred.ReferredBy

	if _, err := s.userRepo.GetUserByTelegramID(ctx, referrerID); errors.Is(err, apperrors.ErrUserNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	referral, err := s.referralRepo.GetByPair(ctx, referrerID, referredID)
	if err != nil {
		return err
	}
	if referral == nil || !referral.RewardActive() {
		return nil
	}

	err = s.revokeOne(ctx, referrerID, referredID)
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		penaltiesSkipped.Inc()
		logger.Log.Warn("penalty skipped, referrer balance below reward",
			zap.Int64("referrer", referrerID), zap.Int64("referred", referredID))
		return nil
	case errors.Is(err, apperrors.ErrRewardNotActive):
		return nil
	case err != nil:
		return err
	}

	rewardsRevoked.Inc()
	logger.Log.Info("referral reward revoked",
		zap.Int64("referrer", referrerID), zap.Int64("referred", referredID),
		zap.Int64("reward", s.reward))

	s.notifier.Notify(ctx, referrerID, fmt.Sprintf(
		"Your referral %s left the sponsor channels.\n"+
			"-%s stars. The reward comes back when they re-subscribe.",
		referred.FirstName, utils.FormatStars(s.reward)))
	s.notifier.Notify(ctx, referredID,
		"You left the sponsor channels, so your inviter lost the reward.\n"+
			"Re-subscribe to restore it and unlock the bot again.")
	return nil
}

func (s *referralService) revokeOne(ctx context.Context, referrerID, referredID int64) error {
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = s.referralRepo.RevokeReward(ctx, referrerID, referredID, s.reward)
		if !errors.Is(err, apperrors.ErrConflict) {
			return err
		}
	}
	return err
}

func (s *referralService) GetUserReferrals(ctx context.Context, referrerID int64) ([]models.Referral, error) {
	return s.referralRepo.GetByReferrer(ctx, referrerID)
}
