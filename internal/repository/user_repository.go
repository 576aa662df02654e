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

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListRecentUsers(ctx context.Context, limit int) ([]models.User, error)
	ListReferredUsers(ctx context.Context) ([]models.User, error)
	AdjustBalance(ctx context.Context, telegramID int64, delta int64) error
	GetStats(ctx context.Context) (models.Stats, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := r.GetUserByTelegramID(ctx, user.TelegramID)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	query := `INSERT INTO users (telegram_id, username, first_name, referred_by, is_admin)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		user.TelegramID, user.Username, user.FirstName, user.ReferredBy, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepo) GetUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	query := `SELECT id, telegram_id, COALESCE(username, ''), first_name, balance, referral_count, referred_by, is_admin, created_at
			  FROM users WHERE telegram_id=$1`
	row := r.db.QueryRowContext(ctx, query, telegramID)

	var user models.User
	err := row.Scan(&user.ID, &user.TelegramID, &user.Username, &user.FirstName,
		&user.Balance, &user.ReferralCount, &user.ReferredBy, &user.IsAdmin, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, telegram_id, COALESCE(username, ''), first_name, balance, referral_count, referred_by, is_admin, created_at
			  FROM users ORDER BY created_at`
	return r.queryUsers(ctx, query)
}

func (r *userRepo) ListRecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	query := `SELECT id, telegram_id, COALESCE(username, ''), first_name, balance, referral_count, referred_by, is_admin, created_at
			  FROM users ORDER BY created_at DESC LIMIT $1`
	return r.queryUsers(ctx, query, limit)
}

func (r *userRepo) ListReferredUsers(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, telegram_id, COALESCE(username, ''), first_name, balance, referral_count, referred_by, is_admin, created_at
			  FROM users WHERE referred_by IS NOT NULL ORDER BY created_at`
	return r.queryUsers(ctx, query)
}

func (r *userRepo) queryUsers(ctx context.Context, query string, args ...interface{}) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query users", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.TelegramID, &user.Username, &user.FirstName,
			&user.Balance, &user.ReferralCount, &user.ReferredBy, &user.IsAdmin, &user.CreatedAt)
		if err != nil {
			logger.Log.Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// AdjustBalance applies a signed delta to the user balance. The condition in
// the UPDATE keeps the balance non-negative under concurrent writers.
func (r *userRepo) AdjustBalance(ctx context.Context, telegramID int64, delta int64) error {
	query := `UPDATE users
			  SET balance = balance + $1
			  WHERE telegram_id = $2 AND balance + $1 >= 0`
	res, err := r.db.ExecContext(ctx, query, delta, telegramID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.GetUserByTelegramID(ctx, telegramID); err != nil {
			return err
		}
		return apperrors.ErrInsufficientFunds
	}
	return nil
}

func (r *userRepo) GetStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	query := `SELECT
				(SELECT COUNT(*) FROM users),
				(SELECT COALESCE(SUM(balance), 0) FROM users),
				(SELECT COUNT(*) FROM referrals),
				(SELECT COUNT(*) FROM withdrawals WHERE status = 'pending')`
	err := r.db.QueryRowContext(ctx, query).
		Scan(&stats.TotalUsers, &stats.TotalBalance, &stats.TotalReferrals, &stats.PendingWithdrawals)
	if err != nil {
		logger.Log.Error("failed to get stats", zap.Error(err))
		return models.Stats{}, err
	}
	return stats, nil
}
