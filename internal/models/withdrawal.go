package models

import "time"

type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

type Withdrawal struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"-" db:"user_id"`
	Amount    int64            `json:"amount" db:"amount"`
	Details   string           `json:"details" db:"details"`
	Status    WithdrawalStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	DecidedAt *time.Time       `json:"decided_at,omitempty" db:"decided_at"`
}

// Stats is the aggregate snapshot shown in the admin panel and on the
// status endpoint.
type Stats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalBalance       int64 `json:"total_balance"`
	TotalReferrals     int64 `json:"total_referrals"`
	PendingWithdrawals int64 `json:"pending_withdrawals"`
}
