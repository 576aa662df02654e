package models

import "time"

type User struct {
	ID            int64     `json:"-" db:"id"`
	TelegramID    int64     `json:"telegram_id" db:"telegram_id"`
	Username      string    `json:"username,omitempty" db:"username"`
	FirstName     string    `json:"first_name" db:"first_name"`
	Balance       int64     `json:"balance" db:"balance"`
	ReferralCount int       `json:"referral_count" db:"referral_count"`
	ReferredBy    *int64    `json:"referred_by,omitempty" db:"referred_by"`
	IsAdmin       bool      `json:"-" db:"is_admin"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
