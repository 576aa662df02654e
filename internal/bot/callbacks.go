package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/service"
	"github.com/a2sh3r/starsbot/internal/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.From == nil {
		return
	}
	userID := callback.From.ID
	data := callback.Data

	switch {
	case data == callbackCheckSubscription:
		b.handleSubscriptionCheck(ctx, callback)
	case strings.HasPrefix(data, callbackApprovePrefix), strings.HasPrefix(data, callbackRejectPrefix):
		b.handleWithdrawalDecision(ctx, callback)
	case data == callbackAdminUsers:
		b.answerCallback(callback.ID, "")
		if userID == b.adminID {
			b.sendUserList(ctx, userID)
		}
	case data == callbackAdminStats:
		b.answerCallback(callback.ID, "")
		if userID == b.adminID {
			b.sendStats(ctx, userID)
		}
	case data == callbackAdminChannels:
		b.answerCallback(callback.ID, "")
		if userID == b.adminID {
			b.sendChannelList(userID)
		}
	case data == callbackAdminBalance:
		b.answerCallback(callback.ID, "")
		if userID == b.adminID {
			b.states.set(userID, conversation{state: stateAwaitingBalance})
			b.reply(userID, "Send: <telegram id> +10 or <telegram id> -10")
		}
	case data == callbackAdminBroadcast:
		b.answerCallback(callback.ID, "")
		if userID == b.adminID {
			b.states.set(userID, conversation{state: stateAwaitingNewsText})
			b.reply(userID, "Send the message to broadcast. Text is re-sent, anything else is forwarded.")
		}
	default:
		b.answerCallback(callback.ID, "")
	}
}

// handleSubscriptionCheck re-runs the per-channel membership check when the
// user presses the check button and grants pending rewards on success.
func (b *Bot) handleSubscriptionCheck(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	userID := callback.From.ID

	report := b.checker.PerChannel(ctx, userID)
	if !report.Complete() {
		b.answerCallback(callback.ID, "Not all channels joined yet")
		b.reply(userID, fmt.Sprintf(
			"🔒 Still missing:\n%s\n\nJoin them and press the check button again.",
			strings.Join(report.Missing, "\n")))
		return
	}

	b.answerCallback(callback.ID, "Subscription confirmed!")
	if err := b.referrals.GrantPendingRewards(ctx, userID); err != nil {
		logger.Log.Error("failed to grant rewards after check",
			zap.Int64("user", userID), zap.Error(err))
	}

	user, err := b.users.GetUser(ctx, userID)
	if err != nil {
		logger.Log.Error("failed to load user after check", zap.Int64("user", userID), zap.Error(err))
		return
	}
	b.sendWelcome(ctx, user, false)
}

func (b *Bot) handleWithdrawalDecision(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	userID := callback.From.ID

	decision, withdrawalID, ok := parseDecisionCallback(callback.Data)
	if !ok {
		b.answerCallback(callback.ID, "")
		return
	}

	withdrawal, err := b.withdrawals.Decide(ctx, withdrawalID, decision, userID)
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		b.answerCallback(callback.ID, "Admins only")
	case errors.Is(err, apperrors.ErrAlreadyDecided):
		b.answerCallback(callback.ID, "Already decided")
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		b.answerCallback(callback.ID, "Request not found")
	case err != nil:
		logger.Log.Error("failed to decide withdrawal",
			zap.Int64("id", withdrawalID), zap.Error(err))
		b.answerCallback(callback.ID, "Something went wrong")
	default:
		b.answerCallback(callback.ID, "Done")
		verdict := "approved"
		if decision == service.DecisionReject {
			verdict = "rejected"
		}
		b.reply(userID, fmt.Sprintf("Request #%d for %s stars %s.",
			withdrawal.ID, utils.FormatStars(withdrawal.Amount), verdict))

		// Strip the keyboard so the decision buttons cannot be pressed twice.
		if callback.Message != nil {
			edit := tgbotapi.NewEditMessageReplyMarkup(
				callback.Message.Chat.ID, callback.Message.MessageID,
				tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
			if _, err := b.api.Request(edit); err != nil {
				logger.Log.Debug("failed to strip decision keyboard", zap.Error(err))
			}
		}
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		logger.Log.Debug("failed to answer callback", zap.Error(err))
	}
}
