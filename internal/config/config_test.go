package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_ID", "42")
	t.Setenv("REFERRAL_REWARD", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, int64(42), cfg.AdminID)
	assert.Equal(t, int64(5), cfg.ReferralReward)
	assert.Equal(t, int64(50), cfg.MinWithdrawal)
}

func TestConfig_SponsorChannelList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"пустой список", "", nil},
		{"один канал", "@news", []string{"@news"}},
		{"несколько каналов с пробелами", "@news, promo ,@music", []string{"@news", "@promo", "@music"}},
		{"канал без собаки", "news", []string{"@news"}},
		{"лишние запятые", ",@news,,", []string{"@news"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SponsorChannels: tt.raw}
			assert.Equal(t, tt.want, cfg.SponsorChannelList())
		})
	}
}
