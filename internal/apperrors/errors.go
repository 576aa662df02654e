package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfReferral       = errors.New("self referral is not allowed")
	ErrReferralExists     = errors.New("referral already exists")
	ErrRewardAlreadyGiven = errors.New("referral reward already given")
	ErrRewardNotActive    = errors.New("referral reward is not active")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrBelowMinimum       = errors.New("amount is below the minimum withdrawal")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrAlreadyDecided     = errors.New("withdrawal already decided")
	ErrForbidden          = errors.New("operation allowed only for admin")
	ErrConflict           = errors.New("concurrent update conflict")
	ErrChannelExists      = errors.New("channel already registered")
	ErrChannelNotFound    = errors.New("channel not found")
	ErrInternalServer     = errors.New("internal server error")
)
