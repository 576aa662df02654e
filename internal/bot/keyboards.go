package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	buttonBalance     = "⭐ Balance"
	buttonReferrals   = "👥 My referrals"
	buttonLink        = "🔗 Referral link"
	buttonWithdraw    = "💸 Withdraw"
	buttonWithdrawals = "📜 My withdrawals"
	buttonSupport     = "🆘 Support"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonBalance),
			tgbotapi.NewKeyboardButton(buttonReferrals),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonLink),
			tgbotapi.NewKeyboardButton(buttonWithdraw),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonWithdrawals),
			tgbotapi.NewKeyboardButton(buttonSupport),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func adminPanelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Users", callbackAdminUsers),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", callbackAdminStats),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Edit balance", callbackAdminBalance),
			tgbotapi.NewInlineKeyboardButtonData("📢 Broadcast", callbackAdminBroadcast),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📡 Channels", callbackAdminChannels),
		),
	)
}

func subscriptionKeyboard(channels []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, channel := range channels {
		url := "https://t.me/" + strings.TrimPrefix(channel, "@")
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📡 "+channel, url),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Check subscription", callbackCheckSubscription),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
