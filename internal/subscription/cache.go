package subscription

import (
	"context"
	"strconv"
	"time"

	"github.com/a2sh3r/starsbot/internal/logger"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedChecker keeps recent verdicts in redis so repeated menu taps do not
// hammer the Telegram API. Cache errors fail open to the wrapped checker.
type CachedChecker struct {
	next   Checker
	client *redis.Client
	ttl    time.Duration
}

// NewCachedChecker returns the wrapped checker unchanged when addr is empty
// or redis is unreachable.
func NewCachedChecker(next Checker, addr string, ttl time.Duration) Checker {
	if addr == "" {
		return next
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("redis unreachable, subscription cache disabled", zap.Error(err))
		return next
	}

	return &CachedChecker{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func (c *CachedChecker) IsSubscribed(ctx context.Context, userID int64) bool {
	key := cacheKey(userID)

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return cached == "1"
	}
	if err != redis.Nil {
		logger.Log.Warn("subscription cache read failed", zap.Error(err))
	}

	subscribed := c.next.IsSubscribed(ctx, userID)

	value := "0"
	if subscribed {
		value = "1"
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		logger.Log.Warn("subscription cache write failed", zap.Error(err))
	}
	return subscribed
}

// PerChannel always goes to the API: it backs the explicit re-check button,
// so a stale verdict would defeat its purpose. The fresh verdict replaces
// whatever is cached.
func (c *CachedChecker) PerChannel(ctx context.Context, userID int64) Report {
	report := c.next.PerChannel(ctx, userID)

	value := "0"
	if report.Complete() {
		value = "1"
	}
	if err := c.client.Set(ctx, cacheKey(userID), value, c.ttl).Err(); err != nil {
		logger.Log.Warn("subscription cache write failed", zap.Error(err))
	}
	return report
}

func cacheKey(userID int64) string {
	return "sub:" + strconv.FormatInt(userID, 10)
}
