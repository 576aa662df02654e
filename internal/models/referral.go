package models

import "time"

// ReferralStatus tracks the reward lifecycle of a referral edge. Pending and
// revoked edges are treated identically by re-verification (both are
// grantable); the distinction exists for audit and display only.
type ReferralStatus string

const (
	ReferralStatusPending ReferralStatus = "pending"
	ReferralStatusActive  ReferralStatus = "active"
	ReferralStatusRevoked ReferralStatus = "revoked"
)

type Referral struct {
	ID         int64          `json:"-" db:"id"`
	ReferrerID int64          `json:"referrer_id" db:"referrer_id"`
	ReferredID int64          `json:"referred_id" db:"referred_id"`
	Status     ReferralStatus `json:"status" db:"status"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

// RewardActive reports whether the reward for this edge is currently held
// by the referrer.
func (r Referral) RewardActive() bool {
	return r.Status == ReferralStatusActive
}
