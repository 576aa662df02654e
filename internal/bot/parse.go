package bot

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/a2sh3r/starsbot/internal/service"
)

const (
	callbackCheckSubscription = "check_sub"
	callbackApprovePrefix     = "wd_approve:"
	callbackRejectPrefix      = "wd_reject:"
	callbackAdminUsers        = "admin_users"
	callbackAdminStats        = "admin_stats"
	callbackAdminBroadcast    = "admin_broadcast"
	callbackAdminChannels     = "admin_channels"
	callbackAdminBalance      = "admin_balance"
)

// parseStartPayload extracts the referrer id from a /start deep link.
func parseStartPayload(args string) (int64, bool) {
	args = strings.TrimSpace(args)
	if args == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

var balanceEditRe = regexp.MustCompile(`^(\d+)\s+([+-]\d+)$`)

// parseBalanceEdit reads the admin's "<telegram id> +N" or "<telegram id> -N"
// balance edit line.
func parseBalanceEdit(text string) (targetID, delta int64, ok bool) {
	match := balanceEditRe.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return 0, 0, false
	}

	targetID, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	delta, err = strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return targetID, delta, true
}

// parseDecisionCallback maps a withdrawal keyboard press back to the
// decision and the withdrawal id.
func parseDecisionCallback(data string) (service.Decision, int64, bool) {
	var decision service.Decision
	var raw string
	switch {
	case strings.HasPrefix(data, callbackApprovePrefix):
		decision = service.DecisionApprove
		raw = strings.TrimPrefix(data, callbackApprovePrefix)
	case strings.HasPrefix(data, callbackRejectPrefix):
		decision = service.DecisionReject
		raw = strings.TrimPrefix(data, callbackRejectPrefix)
	default:
		return "", 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, false
	}
	return decision, id, true
}
