package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/a2sh3r/starsbot/internal/mocks/repository_mocks"
	"github.com/a2sh3r/starsbot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu      sync.Mutex
	sent    []tgbotapi.Chattable
	failFor map[int64]bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok && f.failFor[msg.ChatID] {
		return tgbotapi.Message{}, errors.New("forbidden: bot was blocked by the user")
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func TestBroadcastService_BroadcastText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	users := []models.User{
		{TelegramID: 1}, {TelegramID: 2}, {TelegramID: 3},
	}

	tests := []struct {
		name       string
		failFor    map[int64]bool
		wantSent   int
		wantFailed int
	}{
		{
			name:     "все доставлены",
			failFor:  nil,
			wantSent: 3,
		},
		{
			name:       "заблокировавший бота считается как отказ",
			failFor:    map[int64]bool{2: true},
			wantSent:   2,
			wantFailed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := repository_mocks.NewMockUserRepository(ctrl)
			userRepo.EXPECT().ListUsers(ctx).Return(users, nil).Times(1)

			sender := &fakeSender{failFor: tt.failFor}
			svc := NewBroadcastService(userRepo, sender, 4, 1000)

			result, err := svc.BroadcastText(ctx, "hello")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, result.Sent)
			assert.Equal(t, tt.wantFailed, result.Failed)
			assert.Equal(t, len(users), result.Total)
		})
	}
}

func TestBroadcastService_BroadcastForward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	userRepo := repository_mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().ListUsers(ctx).Return([]models.User{{TelegramID: 1}, {TelegramID: 2}}, nil).Times(1)

	sender := &fakeSender{}
	svc := NewBroadcastService(userRepo, sender, 2, 1000)

	result, err := svc.BroadcastForward(ctx, 500, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)

	for _, c := range sender.sent {
		fwd, ok := c.(tgbotapi.ForwardConfig)
		require.True(t, ok)
		assert.Equal(t, int64(500), fwd.FromChatID)
		assert.Equal(t, 42, fwd.MessageID)
	}
}

func TestBroadcastService_CancelledContextCountsAsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	users := []models.User{
		{TelegramID: 1}, {TelegramID: 2}, {TelegramID: 3},
	}
	userRepo := repository_mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().ListUsers(ctx).Return(users, nil).Times(1)

	sender := &fakeSender{}
	svc := NewBroadcastService(userRepo, sender, 2, 1000)

	result, err := svc.BroadcastText(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, len(users), result.Failed)
	assert.Equal(t, result.Total, result.Sent+result.Failed)
}

func TestBroadcastService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	dbErr := errors.New("db down")
	userRepo := repository_mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().ListUsers(ctx).Return(nil, dbErr).Times(1)

	svc := NewBroadcastService(userRepo, &fakeSender{}, 2, 1000)
	_, err := svc.BroadcastText(ctx, "hello")
	assert.ErrorIs(t, err, dbErr)
}
