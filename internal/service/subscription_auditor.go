package service

import (
	"context"
	"time"

	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/repository"
	"github.com/a2sh3r/starsbot/internal/subscription"
	"go.uber.org/zap"
)

// SubscriptionAuditor periodically re-checks referred users against the
// sponsor channels and drives the reward transitions in both directions:
// grants for users who subscribed since the last sweep, penalties for
// users who left.
type SubscriptionAuditor struct {
	userRepo     repository.UserRepository
	referrals    ReferralService
	checker      subscription.Checker
	channels     subscription.ChannelSource
	pollInterval time.Duration
}

func NewSubscriptionAuditor(userRepo repository.UserRepository, referrals ReferralService, checker subscription.Checker, channels subscription.ChannelSource, interval time.Duration) *SubscriptionAuditor {
	return &SubscriptionAuditor{
		userRepo:     userRepo,
		referrals:    referrals,
		checker:      checker,
		channels:     channels,
		pollInterval: interval,
	}
}

// Run sweeps on the configured interval until the context is done. A
// non-positive interval disables the audit entirely.
func (a *SubscriptionAuditor) Run(ctx context.Context) {
	if a.pollInterval <= 0 {
		logger.Log.Info("subscription audit disabled")
		return
	}

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.sweep(ctx)
		}
	}
}

func (a *SubscriptionAuditor) sweep(ctx context.Context) {
	if len(a.channels.List()) == 0 {
		return
	}

	users, err := a.userRepo.ListReferredUsers(ctx)
	if err != nil {
		logger.Log.Error("failed to list referred users", zap.Error(err))
		return
	}

	for _, user := range users {
		if a.checker.IsSubscribed(ctx, user.TelegramID) {
			if err := a.referrals.GrantPendingRewards(ctx, user.TelegramID); err != nil {
				logger.Log.Error("audit grant failed",
					zap.Int64("user", user.TelegramID), zap.Error(err))
			}
		} else {
			if err := a.referrals.ApplyPenalty(ctx, user.TelegramID); err != nil {
				logger.Log.Error("audit penalty failed",
					zap.Int64("user", user.TelegramID), zap.Error(err))
			}
		}
	}
}
