package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/models"
	"go.uber.org/zap"
)

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referral *models.Referral) error
	GetByPair(ctx context.Context, referrerID, referredID int64) (*models.Referral, error)
	GetByReferrer(ctx context.Context, referrerID int64) ([]models.Referral, error)
	GetGrantable(ctx context.Context, referredID int64) ([]models.Referral, error)
	GrantReward(ctx context.Context, referrerID, referredID, reward int64) error
	RevokeReward(ctx context.Context, referrerID, referredID, reward int64) error
}

type referralRepo struct {
	db *sql.DB
}

func NewReferralRepository(db *sql.DB) ReferralRepository {
	return &referralRepo{db: db}
}

func (r *referralRepo) CreateReferral(ctx context.Context, referral *models.Referral) error {
	query := `INSERT INTO referrals (referrer_id, referred_id, status)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (referrer_id, referred_id) DO NOTHING
			  RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		referral.ReferrerID, referral.ReferredID, models.ReferralStatusPending).
		Scan(&referral.ID, &referral.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrReferralExists
	}
	return err
}

func (r *referralRepo) GetByPair(ctx context.Context, referrerID, referredID int64) (*models.Referral, error) {
	query := `SELECT id, referrer_id, referred_id, status, created_at
			  FROM referrals WHERE referrer_id=$1 AND referred_id=$2`
	row := r.db.QueryRowContext(ctx, query, referrerID, referredID)

	var referral models.Referral
	err := row.Scan(&referral.ID, &referral.ReferrerID, &referral.ReferredID, &referral.Status, &referral.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

func (r *referralRepo) GetByReferrer(ctx context.Context, referrerID int64) ([]models.Referral, error) {
	query := `SELECT id, referrer_id, referred_id, status, created_at
			  FROM referrals WHERE referrer_id=$1 ORDER BY created_at`
	return r.queryReferrals(ctx, query, referrerID)
}

// GetGrantable returns the edges of a referred user whose reward is not
// currently held, i.e. pending and revoked ones alike.
func (r *referralRepo) GetGrantable(ctx context.Context, referredID int64) ([]models.Referral, error) {
	query := `SELECT id, referrer_id, referred_id, status, created_at
			  FROM referrals WHERE referred_id=$1 AND status <> 'active' ORDER BY created_at`
	return r.queryReferrals(ctx, query, referredID)
}

func (r *referralRepo) queryReferrals(ctx context.Context, query string, args ...interface{}) ([]models.Referral, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query referrals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var referrals []models.Referral
	for rows.Next() {
		var referral models.Referral
		err := rows.Scan(&referral.ID, &referral.ReferrerID, &referral.ReferredID, &referral.Status, &referral.CreatedAt)
		if err != nil {
			logger.Log.Error("failed to scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, referral)
	}
	return referrals, rows.Err()
}

// GrantReward activates the edge and credits the referrer in one transaction.
// The status condition makes the grant exactly-once: a second caller finds
// zero rows and gets ErrRewardAlreadyGiven without touching the balance.
func (r *referralRepo) GrantReward(ctx context.Context, referrerID, referredID, reward int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapConflict(err)
	}
	defer func() {
		if err != nil {
			err := tx.Rollback()
			if err != nil {
				logger.Log.Error("rollback error")
				return
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE referrals SET status = 'active'
		WHERE referrer_id = $1 AND referred_id = $2 AND status <> 'active'
	`, referrerID, referredID)
	if err != nil {
		return mapConflict(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return mapConflict(err)
	}
	if affected == 0 {
		err = apperrors.ErrRewardAlreadyGiven
		return err
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE users
		SET balance = balance + $1,
		    referral_count = referral_count + 1
		WHERE telegram_id = $2
	`, reward, referrerID)
	if err != nil {
		return mapConflict(err)
	}

	affected, err = res.RowsAffected()
	if err != nil {
		return mapConflict(err)
	}
	if affected == 0 {
		err = apperrors.ErrUserNotFound
		return err
	}

	err = tx.Commit()
	return mapConflict(err)
}

// RevokeReward takes the reward back. The balance condition skips the
// penalty when the referrer has already spent the stars; the edge then
// stays active and the reward stands.
func (r *referralRepo) RevokeReward(ctx context.Context, referrerID, referredID, reward int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapConflict(err)
	}
	defer func() {
		if err != nil {
			err := tx.Rollback()
			if err != nil {
				logger.Log.Error("rollback error")
				return
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE referrals SET status = 'revoked'
		WHERE referrer_id = $1 AND referred_id = $2 AND status = 'active'
	`, referrerID, referredID)
	if err != nil {
		return mapConflict(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return mapConflict(err)
	}
	if affected == 0 {
		err = apperrors.ErrRewardNotActive
		return err
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE users
		SET balance = balance - $1,
		    referral_count = GREATEST(referral_count - 1, 0)
		WHERE telegram_id = $2 AND balance >= $1
	`, reward, referrerID)
	if err != nil {
		return mapConflict(err)
	}

	affected, err = res.RowsAffected()
	if err != nil {
		return mapConflict(err)
	}
	if affected == 0 {
		err = apperrors.ErrInsufficientFunds
		return err
	}

	err = tx.Commit()
	return mapConflict(err)
}
