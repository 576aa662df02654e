// Package subscription answers whether a user is currently a member of all
// sponsor channels. Any API error or timeout counts as not subscribed so a
// flaky Telegram API can never hand out rewards.
package subscription

import (
	"context"
	"time"

	"github.com/a2sh3r/starsbot/internal/logger"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Checker interface {
	IsSubscribed(ctx context.Context, userID int64) bool
	PerChannel(ctx context.Context, userID int64) Report
}

// Report is the per-channel membership split used by the subscription
// check keyboard.
type Report struct {
	Joined  []string
	Missing []string
}

func (r Report) Complete() bool {
	return len(r.Missing) == 0
}

type ChannelSource interface {
	List() []string
}

type MemberAPI interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

type TelegramChecker struct {
	api      MemberAPI
	channels ChannelSource
	timeout  time.Duration
}

func NewTelegramChecker(api MemberAPI, channels ChannelSource, timeout time.Duration) *TelegramChecker {
	return &TelegramChecker{
		api:      api,
		channels: channels,
		timeout:  timeout,
	}
}

func (c *TelegramChecker) IsSubscribed(ctx context.Context, userID int64) bool {
	for _, channel := range c.channels.List() {
		if !c.isMember(ctx, channel, userID) {
			return false
		}
	}
	return true
}

func (c *TelegramChecker) PerChannel(ctx context.Context, userID int64) Report {
	var report Report
	for _, channel := range c.channels.List() {
		if c.isMember(ctx, channel, userID) {
			report.Joined = append(report.Joined, channel)
		} else {
			report.Missing = append(report.Missing, channel)
		}
	}
	return report
}

type memberResult struct {
	member tgbotapi.ChatMember
	err    error
}

// isMember bounds the API call with the configured timeout; the bot API
// client has no context support, so the call runs in its own goroutine.
func (c *TelegramChecker) isMember(ctx context.Context, channel string, userID int64) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resultCh := make(chan memberResult, 1)
	go func() {
		member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				SuperGroupUsername: channel,
				UserID:             userID,
			},
		})
		resultCh <- memberResult{member: member, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.Log.Warn("subscription check timed out",
			zap.String("channel", channel), zap.Int64("user", userID))
		return false
	case res := <-resultCh:
		if res.err != nil {
			logger.Log.Warn("subscription check failed",
				zap.String("channel", channel), zap.Int64("user", userID), zap.Error(res.err))
			return false
		}
		switch res.member.Status {
		case "left", "kicked", "banned":
			return false
		default:
			return true
		}
	}
}
