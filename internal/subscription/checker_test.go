package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

type staticChannels []string

func (s staticChannels) List() []string {
	return s
}

type fakeMemberAPI struct {
	statuses map[string]string
	err      error
	delay    time.Duration
}

func (f *fakeMemberAPI) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return tgbotapi.ChatMember{}, f.err
	}
	status, ok := f.statuses[config.SuperGroupUsername]
	if !ok {
		status = "left"
	}
	return tgbotapi.ChatMember{Status: status}, nil
}

func TestTelegramChecker_IsSubscribed(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		channels []string
		api      *fakeMemberAPI
		want     bool
	}{
		{
			name:     "участник всех каналов",
			channels: []string{"@one", "@two"},
			api: &fakeMemberAPI{statuses: map[string]string{
				"@one": "member",
				"@two": "administrator",
			}},
			want: true,
		},
		{
			name:     "покинул один из каналов",
			channels: []string{"@one", "@two"},
			api: &fakeMemberAPI{statuses: map[string]string{
				"@one": "member",
				"@two": "left",
			}},
			want: false,
		},
		{
			name:     "исключённый не считается подписанным",
			channels: []string{"@one"},
			api:      &fakeMemberAPI{statuses: map[string]string{"@one": "kicked"}},
			want:     false,
		},
		{
			name:     "ошибка API трактуется как не подписан",
			channels: []string{"@one"},
			api:      &fakeMemberAPI{err: errors.New("bad gateway")},
			want:     false,
		},
		{
			name:     "пустой список каналов означает подписан",
			channels: nil,
			api:      &fakeMemberAPI{},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewTelegramChecker(tt.api, staticChannels(tt.channels), time.Second)
			assert.Equal(t, tt.want, checker.IsSubscribed(ctx, 1))
		})
	}
}

func TestTelegramChecker_Timeout(t *testing.T) {
	api := &fakeMemberAPI{
		statuses: map[string]string{"@one": "member"},
		delay:    200 * time.Millisecond,
	}
	checker := NewTelegramChecker(api, staticChannels{"@one"}, 10*time.Millisecond)

	start := time.Now()
	got := checker.IsSubscribed(context.Background(), 1)
	assert.False(t, got, "a timed out check must count as not subscribed")
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestTelegramChecker_PerChannel(t *testing.T) {
	api := &fakeMemberAPI{statuses: map[string]string{
		"@one":   "member",
		"@two":   "left",
		"@three": "creator",
	}}
	checker := NewTelegramChecker(api, staticChannels{"@one", "@two", "@three"}, time.Second)

	report := checker.PerChannel(context.Background(), 1)
	assert.Equal(t, []string{"@one", "@three"}, report.Joined)
	assert.Equal(t, []string{"@two"}, report.Missing)
	assert.False(t, report.Complete())

	api.statuses["@two"] = "member"
	report = checker.PerChannel(context.Background(), 1)
	assert.True(t, report.Complete())
}
