package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	rewardsGranted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_referral_rewards_granted_total",
			Help: "Referral rewards credited to referrers",
		},
	)
	rewardsRevoked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_referral_rewards_revoked_total",
			Help: "Referral rewards taken back after a lost subscription",
		},
	)
	penaltiesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_referral_penalties_skipped_total",
			Help: "Penalties skipped because the referrer balance was below the reward",
		},
	)
	withdrawalsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_withdrawals_submitted_total",
			Help: "Withdrawal requests accepted into escrow",
		},
	)
	withdrawalsDecided = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starsbot_withdrawals_decided_total",
			Help: "Withdrawal decisions by outcome",
		},
		[]string{"decision"},
	)
	broadcastSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_broadcast_sent_total",
			Help: "Broadcast messages delivered",
		},
	)
	broadcastFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "starsbot_broadcast_failed_total",
			Help: "Broadcast messages that could not be delivered",
		},
	)
)

func init() {
	prometheus.MustRegister(rewardsGranted)
	prometheus.MustRegister(rewardsRevoked)
	prometheus.MustRegister(penaltiesSkipped)
	prometheus.MustRegister(withdrawalsSubmitted)
	prometheus.MustRegister(withdrawalsDecided)
	prometheus.MustRegister(broadcastSent)
	prometheus.MustRegister(broadcastFailed)
}
