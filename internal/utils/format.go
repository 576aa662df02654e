package utils

import (
	"fmt"
	"strconv"
)

// FormatStars renders an amount with thin spaces between thousands groups,
// matching how balances are shown throughout the bot.
func FormatStars(amount int64) string {
	s := strconv.FormatInt(amount, 10)

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// ReferralLink builds the deep link that credits userID as the referrer.
func ReferralLink(botUsername string, userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%d", botUsername, userID)
}
