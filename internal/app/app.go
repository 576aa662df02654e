package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a2sh3r/starsbot/internal/bot"
	"github.com/a2sh3r/starsbot/internal/channels"
	"github.com/a2sh3r/starsbot/internal/config"
	"github.com/a2sh3r/starsbot/internal/database"
	"github.com/a2sh3r/starsbot/internal/handlers"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/notify"
	"github.com/a2sh3r/starsbot/internal/repository"
	"github.com/a2sh3r/starsbot/internal/service"
	"github.com/a2sh3r/starsbot/internal/subscription"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const subscriptionCacheTTL = 2 * time.Minute

type App struct {
	server  *http.Server
	bot     *bot.Bot
	auditor *service.SubscriptionAuditor
	db      *sql.DB
}

func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize("debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.BotToken == "" {
		return nil, errors.New("bot token is required")
	}
	if cfg.AdminID == 0 {
		return nil, errors.New("admin id is required")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	logger.Log.Info("authorized on telegram", zap.String("username", api.Self.UserName))

	userRepo := repository.NewUserRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	channelRepo := repository.NewChannelRepository(db)

	registry := channels.NewRegistry(channelRepo, cfg.AdminID)
	if err := registry.Load(ctx, cfg.SponsorChannelList()); err != nil {
		return nil, fmt.Errorf("failed to load sponsor channels: %w", err)
	}

	checker := subscription.NewCachedChecker(
		subscription.NewTelegramChecker(api, registry, cfg.SubscriptionTimeout),
		cfg.RedisAddr, subscriptionCacheTTL)

	notifier := notify.NewTelegramNotifier(api)

	userService := service.NewUserService(userRepo, cfg.AdminID)
	referralService := service.NewReferralService(userRepo, referralRepo, notifier, cfg.ReferralReward)
	withdrawalService := service.NewWithdrawalService(userRepo, withdrawalRepo, notifier, cfg.AdminID, cfg.MinWithdrawal)
	broadcastService := service.NewBroadcastService(userRepo, api, cfg.BroadcastWorkers, cfg.BroadcastRate)

	auditor := service.NewSubscriptionAuditor(userRepo, referralService, checker, registry, cfg.AuditInterval)

	telegramBot := bot.New(api, cfg, bot.Deps{
		Users:       userService,
		Referrals:   referralService,
		Withdrawals: withdrawalService,
		Broadcast:   broadcastService,
		Checker:     checker,
		Registry:    registry,
	})

	handler := handlers.NewHandler(db, userService)
	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: handlers.NewRouter(handler),
	}

	return &App{
		server:  server,
		bot:     telegramBot,
		auditor: auditor,
		db:      db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("status server failed to start", zap.Error(err))
		}
	}()

	go a.auditor.Run(ctx)
	go a.bot.Run(ctx)

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down status server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("status server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
