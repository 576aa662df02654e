package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/a2sh3r/starsbot/internal/service"
	"github.com/a2sh3r/starsbot/internal/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const recentUsersLimit = 20

func (b *Bot) sendAdminPanel(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🛠 Admin panel")
	msg.ReplyMarkup = adminPanelKeyboard()
	b.send(msg)
}

func (b *Bot) sendUserList(ctx context.Context, chatID int64) {
	users, err := b.users.ListRecentUsers(ctx, recentUsersLimit)
	if err != nil {
		logger.Log.Error("failed to list users", zap.Error(err))
		b.reply(chatID, "Failed to load the user list.")
		return
	}
	if len(users) == 0 {
		b.reply(chatID, "No users yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Last %d users:\n\n", len(users)))
	for _, u := range users {
		name := u.FirstName
		if u.Username != "" {
			name += " (@" + u.Username + ")"
		}
		sb.WriteString(fmt.Sprintf("• %d — %s, %s stars, %d refs\n",
			u.TelegramID, name, utils.FormatStars(u.Balance), u.ReferralCount))
	}
	b.reply(chatID, sb.String())
}

func (b *Bot) sendStats(ctx context.Context, chatID int64) {
	stats, err := b.users.GetStats(ctx)
	if err != nil {
		logger.Log.Error("failed to load stats", zap.Error(err))
		b.reply(chatID, "Failed to load stats.")
		return
	}
	b.reply(chatID, fmt.Sprintf(
		"📊 Stats\n\n"+
			"Users: %d\n"+
			"Total balance: %s stars\n"+
			"Referrals: %d\n"+
			"Pending withdrawals: %d",
		stats.TotalUsers, utils.FormatStars(stats.TotalBalance),
		stats.TotalReferrals, stats.PendingWithdrawals))
}

func (b *Bot) sendChannelList(chatID int64) {
	list := b.registry.List()
	if len(list) == 0 {
		b.reply(chatID, "📡 No sponsor channels configured.\n\n"+
			"/addchannel @name — add\n/removechannel @name — remove\n/clearchannels — remove all")
		return
	}
	b.reply(chatID, fmt.Sprintf(
		"📡 Sponsor channels:\n%s\n\n/addchannel @name — add\n/removechannel @name — remove\n/clearchannels — remove all",
		strings.Join(list, "\n")))
}

func (b *Bot) handleAddChannel(ctx context.Context, message *tgbotapi.Message, user *models.User) {
	channel := strings.TrimSpace(message.CommandArguments())
	err := b.registry.Add(ctx, user.TelegramID, channel)
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		return
	case errors.Is(err, apperrors.ErrInvalidRequest):
		b.reply(user.TelegramID, "Usage: /addchannel @channel")
	case errors.Is(err, apperrors.ErrChannelExists):
		b.reply(user.TelegramID, "This channel is already on the list.")
	case err != nil:
		logger.Log.Error("failed to add channel", zap.String("channel", channel), zap.Error(err))
		b.reply(user.TelegramID, "Failed to add the channel.")
	default:
		b.sendChannelList(user.TelegramID)
	}
}

func (b *Bot) handleRemoveChannel(ctx context.Context, message *tgbotapi.Message, user *models.User) {
	channel := strings.TrimSpace(message.CommandArguments())
	err := b.registry.Remove(ctx, user.TelegramID, channel)
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		return
	case errors.Is(err, apperrors.ErrChannelNotFound):
		b.reply(user.TelegramID, "This channel is not on the list.")
	case err != nil:
		logger.Log.Error("failed to remove channel", zap.String("channel", channel), zap.Error(err))
		b.reply(user.TelegramID, "Failed to remove the channel.")
	default:
		b.sendChannelList(user.TelegramID)
	}
}

func (b *Bot) handleClearChannels(ctx context.Context, user *models.User) {
	err := b.registry.Clear(ctx, user.TelegramID)
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		return
	case err != nil:
		logger.Log.Error("failed to clear channels", zap.Error(err))
		b.reply(user.TelegramID, "Failed to clear the channel list.")
	default:
		b.reply(user.TelegramID, "📡 Sponsor channel list cleared.")
	}
}

// handleBalanceEdit reads the "<telegram id> +N" line the admin sends after
// pressing the edit balance button.
func (b *Bot) handleBalanceEdit(ctx context.Context, message *tgbotapi.Message, user *models.User) {
	b.states.clear(user.TelegramID)

	targetID, delta, ok := parseBalanceEdit(message.Text)
	if !ok {
		b.reply(user.TelegramID, "Format: <telegram id> +10 or <telegram id> -10")
		return
	}

	target, err := b.users.AdjustBalance(ctx, user.TelegramID, targetID, delta)
	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		return
	case errors.Is(err, apperrors.ErrUserNotFound):
		b.reply(user.TelegramID, fmt.Sprintf("User %d not found.", targetID))
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		b.reply(user.TelegramID, "The balance cannot go below zero.")
	case err != nil:
		logger.Log.Error("failed to adjust balance",
			zap.Int64("target", targetID), zap.Error(err))
		b.reply(user.TelegramID, "Failed to adjust the balance.")
	default:
		b.reply(user.TelegramID, fmt.Sprintf(
			"✅ Balance of %d is now %s stars.", targetID, utils.FormatStars(target.Balance)))
		b.notifyBalanceChange(ctx, targetID, delta)
	}
}

func (b *Bot) notifyBalanceChange(ctx context.Context, targetID, delta int64) {
	sign := "+"
	if delta < 0 {
		sign = ""
	}
	b.reply(targetID, fmt.Sprintf("⚖️ The admin changed your balance: %s%s stars.",
		sign, utils.FormatStars(delta)))
}

// handleBroadcastInput fans the admin's message out to every user: plain
// text is re-sent, anything else is forwarded as is.
func (b *Bot) handleBroadcastInput(ctx context.Context, message *tgbotapi.Message, user *models.User) {
	b.states.clear(user.TelegramID)
	if user.TelegramID != b.adminID {
		return
	}

	var result service.BroadcastResult
	var err error
	if message.Text != "" {
		result, err = b.broadcast.BroadcastText(ctx, message.Text)
	} else {
		result, err = b.broadcast.BroadcastForward(ctx, message.Chat.ID, message.MessageID)
	}
	if err != nil {
		logger.Log.Error("broadcast failed", zap.Error(err))
		b.reply(user.TelegramID, "Broadcast failed.")
		return
	}

	b.reply(user.TelegramID, fmt.Sprintf(
		"📢 Broadcast finished: %d delivered, %d failed out of %d.",
		result.Sent, result.Failed, result.Total))
}
