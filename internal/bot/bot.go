// Package bot is the Telegram transport: it turns updates into service
// calls and renders the results back as messages and keyboards. All
// business rules live in the service layer.
package bot

import (
	"context"

	"github.com/a2sh3r/starsbot/internal/channels"
	"github.com/a2sh3r/starsbot/internal/config"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/a2sh3r/starsbot/internal/service"
	"github.com/a2sh3r/starsbot/internal/subscription"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Deps struct {
	Users       service.UserService
	Referrals   service.ReferralService
	Withdrawals service.WithdrawalService
	Broadcast   service.BroadcastService
	Checker     subscription.Checker
	Registry    *channels.Registry
}

type Bot struct {
	api           *tgbotapi.BotAPI
	username      string
	adminID       int64
	adminUsername string
	reward        int64
	minWithdrawal int64

	users       service.UserService
	referrals   service.ReferralService
	withdrawals service.WithdrawalService
	broadcast   service.BroadcastService
	checker     subscription.Checker
	registry    *channels.Registry
	states      *stateStore
}

func New(api *tgbotapi.BotAPI, cfg *config.Config, deps Deps) *Bot {
	return &Bot{
		api:           api,
		username:      api.Self.UserName,
		adminID:       cfg.AdminID,
		adminUsername: cfg.AdminUsername,
		reward:        cfg.ReferralReward,
		minWithdrawal: cfg.MinWithdrawal,
		users:         deps.Users,
		referrals:     deps.Referrals,
		withdrawals:   deps.Withdrawals,
		broadcast:     deps.Broadcast,
		checker:       deps.Checker,
		registry:      deps.Registry,
		states:        newStateStore(),
	}
}

// Run consumes the long-poll update channel until the context is done.
// Each update is handled in its own goroutine so a slow Telegram call for
// one user never blocks the rest.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	logger.Log.Info("bot started", zap.String("username", b.username))
	for update := range updates {
		update := update
		go b.handleUpdate(ctx, update)
	}
	logger.Log.Info("bot stopped")
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	userID := message.From.ID

	user, created := b.ensureUser(ctx, message)
	if user == nil {
		return
	}

	if message.IsCommand() {
		b.handleCommand(ctx, message, user, created)
		return
	}

	if conv := b.states.get(userID); conv.state != stateNone {
		b.handleConversation(ctx, message, user, conv)
		return
	}

	if !b.gateSubscription(ctx, user) {
		return
	}
	b.handleMenuButton(ctx, message, user)
}

// ensureUser registers the account on first contact and wires the referral
// edge carried in the /start deep link.
func (b *Bot) ensureUser(ctx context.Context, message *tgbotapi.Message) (*models.User, bool) {
	from := message.From

	user := &models.User{
		TelegramID: from.ID,
		Username:   from.UserName,
		FirstName:  from.FirstName,
	}
	if message.IsCommand() && message.Command() == "start" {
		if referrerID, ok := parseStartPayload(message.CommandArguments()); ok && referrerID != from.ID {
			user.ReferredBy = &referrerID
		}
	}

	created, err := b.users.RegisterUser(ctx, user)
	if err != nil {
		logger.Log.Error("failed to register user", zap.Int64("user", from.ID), zap.Error(err))
		return nil, false
	}

	if created && user.ReferredBy != nil {
		if err := b.referrals.CreateReferral(ctx, *user.ReferredBy, from.ID); err != nil {
			logger.Log.Warn("failed to create referral",
				zap.Int64("referrer", *user.ReferredBy), zap.Int64("referred", from.ID), zap.Error(err))
		}
	}

	stored, err := b.users.GetUser(ctx, from.ID)
	if err != nil {
		logger.Log.Error("failed to load user", zap.Int64("user", from.ID), zap.Error(err))
		return nil, false
	}
	return stored, created
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message, user *models.User, created bool) {
	switch message.Command() {
	case "start":
		b.states.clear(user.TelegramID)
		if !b.gateSubscription(ctx, user) {
			return
		}
		b.sendWelcome(ctx, user, created)
	case "admin":
		if user.TelegramID == b.adminID {
			b.sendAdminPanel(user.TelegramID)
		}
	case "addchannel":
		b.handleAddChannel(ctx, message, user)
	case "removechannel":
		b.handleRemoveChannel(ctx, message, user)
	case "clearchannels":
		b.handleClearChannels(ctx, user)
	default:
		b.reply(user.TelegramID, "Unknown command. Use the menu below.")
	}
}

// gateSubscription blocks every user surface behind sponsor membership.
// The admin and users without configured channels pass through.
func (b *Bot) gateSubscription(ctx context.Context, user *models.User) bool {
	if user.TelegramID == b.adminID {
		return true
	}
	if len(b.registry.List()) == 0 {
		return true
	}
	if b.checker.IsSubscribed(ctx, user.TelegramID) {
		if err := b.referrals.GrantPendingRewards(ctx, user.TelegramID); err != nil {
			logger.Log.Error("failed to grant rewards on gate pass",
				zap.Int64("user", user.TelegramID), zap.Error(err))
		}
		return true
	}

	b.sendSubscriptionPrompt(user.TelegramID, b.registry.List())
	return false
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		logger.Log.Warn("telegram send failed", zap.Error(err))
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}
