package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/a2sh3r/starsbot/internal/utils"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

func (b *Bot) sendWelcome(ctx context.Context, user *models.User, created bool) {
	text := fmt.Sprintf(
		"⭐ Welcome, %s!\n\n"+
			"Invite friends with your referral link and earn %s stars for each one "+
			"who joins the sponsor channels.",
		user.FirstName, utils.FormatStars(b.reward))
	if !created {
		text = fmt.Sprintf("Welcome back, %s!", user.FirstName)
	}

	msg := tgbotapi.NewMessage(user.TelegramID, text)
	msg.ReplyMarkup = mainMenuKeyboard()
	b.send(msg)
}

func (b *Bot) sendSubscriptionPrompt(chatID int64, channels []string) {
	msg := tgbotapi.NewMessage(chatID,
		"🔒 Subscribe to the sponsor channels to unlock the bot, then press the check button.")
	msg.ReplyMarkup = subscriptionKeyboard(channels)
	b.send(msg)
}

func (b *Bot) handleMenuButton(ctx context.Context, message *tgbotapi.Message, user *models.User) {
	switch message.Text {
	case buttonBalance:
		b.sendBalance(ctx, user)
	case buttonReferrals:
		b.sendReferralList(ctx, user)
	case buttonLink:
		b.sendReferralLink(user)
	case buttonWithdraw:
		b.startWithdrawDialog(user)
	case buttonWithdrawals:
		b.sendWithdrawalHistory(ctx, user)
	case buttonSupport:
		b.states.set(user.TelegramID, conversation{state: stateAwaitingSupport})
		b.reply(user.TelegramID, "✍️ Write your message, it goes straight to the admin.")
	default:
		b.reply(user.TelegramID, "Use the menu below to navigate.")
	}
}

func (b *Bot) sendBalance(ctx context.Context, user *models.User) {
	b.reply(user.TelegramID, fmt.Sprintf(
		"⭐ Balance: %s stars\n👥 Referrals: %d\n\nMinimum withdrawal: %s stars.",
		utils.FormatStars(user.Balance), user.ReferralCount, utils.FormatStars(b.minWithdrawal)))
}

func (b *Bot) sendReferralList(ctx context.Context, user *models.User) {
	referrals, err := b.referrals.GetUserReferrals(ctx, user.TelegramID)
	if err != nil {
		logger.Log.Error("failed to list referrals", zap.Int64("user", user.TelegramID), zap.Error(err))
		b.reply(user.TelegramID, "Something went wrong, try again later.")
		return
	}
	if len(referrals) == 0 {
		b.reply(user.TelegramID, "You have no referrals yet. Share your link to start earning!")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 Your referrals (%d):\n\n", len(referrals)))
	for _, ref := range referrals {
		mark := "⏳ pending"
		switch ref.Status {
		case models.ReferralStatusActive:
			mark = "✅ rewarded"
		case models.ReferralStatusRevoked:
			mark = "❌ left sponsors"
		}
		sb.WriteString(fmt.Sprintf("• %d — %s\n", ref.ReferredID, mark))
	}
	b.reply(user.TelegramID, sb.String())
}

func (b *Bot) sendReferralLink(user *models.User) {
	link := utils.ReferralLink(b.username, user.TelegramID)
	b.reply(user.TelegramID, fmt.Sprintf(
		"🔗 Your referral link:\n%s\n\nEach friend who joins the sponsors earns you %s stars.",
		link, utils.FormatStars(b.reward)))

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		logger.Log.Warn("failed to render referral qr", zap.Error(err))
		return
	}
	photo := tgbotapi.NewPhoto(user.TelegramID, tgbotapi.FileBytes{Name: "referral.png", Bytes: png})
	photo.Caption = "Scan to join"
	b.send(photo)
}

func (b *Bot) startWithdrawDialog(user *models.User) {
	if user.Balance < b.minWithdrawal {
		b.reply(user.TelegramID, fmt.Sprintf(
			"Not enough stars: you have %s, the minimum withdrawal is %s.",
			utils.FormatStars(user.Balance), utils.FormatStars(b.minWithdrawal)))
		return
	}
	b.states.set(user.TelegramID, conversation{state: stateAwaitingAmount})
	b.reply(user.TelegramID, fmt.Sprintf(
		"💸 How many stars do you want to withdraw? (min %s, available %s)",
		utils.FormatStars(b.minWithdrawal), utils.FormatStars(user.Balance)))
}

func (b *Bot) sendWithdrawalHistory(ctx context.Context, user *models.User) {
	withdrawals, err := b.withdrawals.GetUserWithdrawals(ctx, user.TelegramID)
	if err != nil {
		logger.Log.Error("failed to list withdrawals", zap.Int64("user", user.TelegramID), zap.Error(err))
		b.reply(user.TelegramID, "Something went wrong, try again later.")
		return
	}
	if len(withdrawals) == 0 {
		b.reply(user.TelegramID, "You have no withdrawal requests yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 Your withdrawal requests:\n\n")
	for _, w := range withdrawals {
		mark := "⏳"
		switch w.Status {
		case models.WithdrawalStatusApproved:
			mark = "✅"
		case models.WithdrawalStatusRejected:
			mark = "❌"
		}
		sb.WriteString(fmt.Sprintf("%s #%d — %s stars (%s)\n",
			mark, w.ID, utils.FormatStars(w.Amount), w.CreatedAt.Format("02.01.2006")))
	}
	b.reply(user.TelegramID, sb.String())
}

func (b *Bot) handleConversation(ctx context.Context, message *tgbotapi.Message, user *models.User, conv conversation) {
	switch conv.state {
	case stateAwaitingAmount:
		b.handleWithdrawAmount(message, user)
	case stateAwaitingDetails:
		b.handleWithdrawDetails(ctx, message, user, conv.amount)
	case stateAwaitingSupport:
		b.handleSupportMessage(message, user)
	case stateAwaitingBalance:
		b.handleBalanceEdit(ctx, message, user)
	case stateAwaitingNewsText:
		b.handleBroadcastInput(ctx, message, user)
	default:
		b.states.clear(user.TelegramID)
	}
}

func (b *Bot) handleWithdrawAmount(message *tgbotapi.Message, user *models.User) {
	amount, err := strconv.ParseInt(strings.TrimSpace(message.Text), 10, 64)
	if err != nil || amount <= 0 {
		b.reply(user.TelegramID, "Send the amount as a plain number, e.g. 50.")
		return
	}
	if amount < b.minWithdrawal {
		b.reply(user.TelegramID, fmt.Sprintf(
			"The minimum withdrawal is %s stars.", utils.FormatStars(b.minWithdrawal)))
		return
	}
	if amount > user.Balance {
		b.reply(user.TelegramID, fmt.Sprintf(
			"You only have %s stars.", utils.FormatStars(user.Balance)))
		return
	}

	b.states.set(user.TelegramID, conversation{state: stateAwaitingDetails, amount: amount})
	b.reply(user.TelegramID, "Now send the payout details (wallet or card).")
}

func (b *Bot) handleWithdrawDetails(ctx context.Context, message *tgbotapi.Message, user *models.User, amount int64) {
	b.states.clear(user.TelegramID)

	withdrawal, err := b.withdrawals.Submit(ctx, user.TelegramID, amount, strings.TrimSpace(message.Text))
	switch {
	case errors.Is(err, apperrors.ErrInvalidRequest):
		b.reply(user.TelegramID, "The payout details cannot be empty. Start over from the menu.")
	case errors.Is(err, apperrors.ErrBelowMinimum):
		b.reply(user.TelegramID, fmt.Sprintf(
			"The minimum withdrawal is %s stars.", utils.FormatStars(b.minWithdrawal)))
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		b.reply(user.TelegramID, "Not enough stars on your balance anymore.")
	case err != nil:
		logger.Log.Error("failed to submit withdrawal",
			zap.Int64("user", user.TelegramID), zap.Error(err))
		b.reply(user.TelegramID, "Something went wrong, try again later.")
	default:
		logger.Log.Info("withdrawal request accepted",
			zap.Int64("user", user.TelegramID), zap.Int64("id", withdrawal.ID))
	}
}

func (b *Bot) handleSupportMessage(message *tgbotapi.Message, user *models.User) {
	b.states.clear(user.TelegramID)

	name := user.FirstName
	if user.Username != "" {
		name += " (@" + user.Username + ")"
	}
	b.reply(b.adminID, fmt.Sprintf("🆘 Support message from %s, id %d:\n\n%s",
		name, user.TelegramID, message.Text))

	answer := "✅ Your message was sent to the admin."
	if b.adminUsername != "" {
		answer += " You can also reach them directly: @" + strings.TrimPrefix(b.adminUsername, "@")
	}
	b.reply(user.TelegramID, answer)
}
