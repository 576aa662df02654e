// Package notify delivers outcome messages to users and the admin. Delivery
// is best effort: failures are retried a couple of times, then counted and
// dropped. Nothing here ever reaches the ledger transaction that triggered
// the message.
package notify

import (
	"context"
	"time"

	"github.com/a2sh3r/starsbot/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	notificationsDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_notifications_delivered_total",
			Help: "Notifications delivered to recipients",
		},
	)
	notificationsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_notifications_dropped_total",
			Help: "Notifications dropped after exhausting retries",
		},
	)
)

func init() {
	prometheus.MustRegister(notificationsDelivered)
	prometheus.MustRegister(notificationsDropped)
}

// Button is a transport-neutral inline button; Data is returned verbatim in
// the callback when the recipient presses it.
type Button struct {
	Text string
	Data string
}

type Notifier interface {
	Notify(ctx context.Context, recipientID int64, text string)
	NotifyWithButtons(ctx context.Context, recipientID int64, text string, buttons [][]Button)
}

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

const (
	maxAttempts  = 3
	retryBackoff = 500 * time.Millisecond
)

type TelegramNotifier struct {
	sender Sender
}

func NewTelegramNotifier(sender Sender) *TelegramNotifier {
	return &TelegramNotifier{sender: sender}
}

func (n *TelegramNotifier) Notify(ctx context.Context, recipientID int64, text string) {
	msg := tgbotapi.NewMessage(recipientID, text)
	n.deliver(ctx, recipientID, msg)
}

func (n *TelegramNotifier) NotifyWithButtons(ctx context.Context, recipientID int64, text string, buttons [][]Button) {
	msg := tgbotapi.NewMessage(recipientID, text)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, b := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, keyboardRow)
	}
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	n.deliver(ctx, recipientID, msg)
}

func (n *TelegramNotifier) deliver(ctx context.Context, recipientID int64, msg tgbotapi.Chattable) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if _, lastErr = n.sender.Send(msg); lastErr == nil {
			notificationsDelivered.Inc()
			return
		}

		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
		case <-time.After(retryBackoff):
			continue
		}
		break
	}

	notificationsDropped.Inc()
	logger.Log.Warn("notification dropped",
		zap.Int64("recipient", recipientID), zap.Error(lastErr))
}
