// Package channels keeps the runtime-mutable list of sponsor channels a
// user has to join before rewards and withdrawals unlock. Mutations are
// admin-only and persisted, so the list survives restarts.
package channels

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/repository"
	"go.uber.org/zap"
)

type Registry struct {
	repo    repository.ChannelRepository
	adminID int64

	mu       sync.RWMutex
	channels []string
}

func NewRegistry(repo repository.ChannelRepository, adminID int64) *Registry {
	return &Registry{
		repo:    repo,
		adminID: adminID,
	}
}

// Load reads the persisted list and seeds it with the configured channels
// that are not stored yet. Called once at startup.
func (r *Registry) Load(ctx context.Context, seed []string) error {
	for _, channel := range seed {
		err := r.repo.AddChannel(ctx, normalize(channel))
		if err != nil && !errors.Is(err, apperrors.ErrChannelExists) {
			return err
		}
	}

	stored, err := r.repo.ListChannels(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.channels = stored
	r.mu.Unlock()

	logger.Log.Info("sponsor channels loaded", zap.Int("count", len(stored)))
	return nil
}

func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.channels...)
}

func (r *Registry) Add(ctx context.Context, actorID int64, channel string) error {
	if actorID != r.adminID {
		return apperrors.ErrForbidden
	}

	channel = normalize(channel)
	if channel == "@" {
		return apperrors.ErrInvalidRequest
	}

	if err := r.repo.AddChannel(ctx, channel); err != nil {
		return err
	}

	r.mu.Lock()
	r.channels = append(r.channels, channel)
	r.mu.Unlock()
	return nil
}

func (r *Registry) Remove(ctx context.Context, actorID int64, channel string) error {
	if actorID != r.adminID {
		return apperrors.ErrForbidden
	}

	channel = normalize(channel)
	if err := r.repo.RemoveChannel(ctx, channel); err != nil {
		return err
	}

	r.mu.Lock()
	for i, ch := range r.channels {
		if ch == channel {
			r.channels = append(r.channels[:i], r.channels[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	return nil
}

func (r *Registry) Clear(ctx context.Context, actorID int64) error {
	if actorID != r.adminID {
		return apperrors.ErrForbidden
	}

	if err := r.repo.ClearChannels(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	r.channels = nil
	r.mu.Unlock()
	return nil
}

func normalize(channel string) string {
	channel = strings.TrimSpace(channel)
	if !strings.HasPrefix(channel, "@") {
		channel = "@" + channel
	}
	return channel
}
