package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStars(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"ноль", 0, "0"},
		{"меньше тысячи", 999, "999"},
		{"тысяча", 1000, "1 000"},
		{"миллион", 1234567, "1 234 567"},
		{"отрицательное значение", -1500, "-1 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatStars(tt.amount))
		})
	}
}

func TestReferralLink(t *testing.T) {
	assert.Equal(t, "https://t.me/starsbot?start=42", ReferralLink("starsbot", 42))
}
