package service

import (
	"context"
	"sync"

	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/a2sh3r/starsbot/internal/repository"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BroadcastResult counts per-recipient outcomes of a fan-out. Failures are
// never propagated, only counted.
type BroadcastResult struct {
	Sent   int
	Failed int
	Total  int
}

type BroadcastService interface {
	BroadcastText(ctx context.Context, text string) (BroadcastResult, error)
	BroadcastForward(ctx context.Context, fromChatID int64, messageID int) (BroadcastResult, error)
}

type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type broadcastService struct {
	userRepo repository.UserRepository
	sender   TelegramSender
	workers  int
	limiter  *rate.Limiter
}

func NewBroadcastService(userRepo repository.UserRepository, sender TelegramSender, workers int, perSecond float64) BroadcastService {
	if workers < 1 {
		workers = 1
	}
	return &broadcastService{
		userRepo: userRepo,
		sender:   sender,
		workers:  workers,
		limiter:  rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

func (s *broadcastService) BroadcastText(ctx context.Context, text string) (BroadcastResult, error) {
	return s.fanOut(ctx, func(user models.User) tgbotapi.Chattable {
		return tgbotapi.NewMessage(user.TelegramID, "📢 "+text)
	})
}

func (s *broadcastService) BroadcastForward(ctx context.Context, fromChatID int64, messageID int) (BroadcastResult, error) {
	return s.fanOut(ctx, func(user models.User) tgbotapi.Chattable {
		return tgbotapi.NewForward(user.TelegramID, fromChatID, messageID)
	})
}

// fanOut pushes one message per user through a bounded worker pool. The
// shared limiter keeps the pool under the Telegram global send rate.
func (s *broadcastService) fanOut(ctx context.Context, build func(models.User) tgbotapi.Chattable) (BroadcastResult, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return BroadcastResult{}, err
	}

	jobs := make(chan models.User)
	var sent, failed int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for user := range jobs {
				if err := s.limiter.Wait(ctx); err != nil {
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				_, err := s.sender.Send(build(user))
				mu.Lock()
				if err != nil {
					failed++
				} else {
					sent++
				}
				mu.Unlock()
				if err != nil {
					broadcastFailed.Inc()
					logger.Log.Debug("broadcast delivery failed",
						zap.Int64("recipient", user.TelegramID), zap.Error(err))
				} else {
					broadcastSent.Inc()
				}
			}
		}()
	}

	for _, user := range users {
		select {
		case jobs <- user:
		case <-ctx.Done():
			// Recipients skipped on cancellation count as failed so the
			// totals still reconcile with len(users).
			mu.Lock()
			failed++
			mu.Unlock()
			broadcastFailed.Inc()
		}
	}
	close(jobs)
	wg.Wait()

	result := BroadcastResult{
		Sent:   int(sent),
		Failed: int(failed),
		Total:  len(users),
	}
	logger.Log.Info("broadcast finished",
		zap.Int("sent", result.Sent), zap.Int("failed", result.Failed), zap.Int("total", result.Total))
	return result, nil
}
