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

type WithdrawalRepository interface {
	Submit(ctx context.Context, withdrawal *models.Withdrawal) error
	GetByID(ctx context.Context, id int64) (*models.Withdrawal, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	GetPending(ctx context.Context) ([]models.Withdrawal, error)
	Decide(ctx context.Context, id int64, status models.WithdrawalStatus) (*models.Withdrawal, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

// Submit escrows the amount and records the pending request in one
// transaction. The balance condition on the debit rejects the request when
// the funds are gone by the time the statement runs.
func (r *withdrawalRepo) Submit(ctx context.Context, withdrawal *models.Withdrawal) error {
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
		UPDATE users
		SET balance = balance - $1
		WHERE telegram_id = $2 AND balance >= $1
	`, withdrawal.Amount, withdrawal.UserID)
	if err != nil {
		return mapConflict(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return mapConflict(err)
	}
	if affected == 0 {
		err = apperrors.ErrInsufficientFunds
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO withdrawals (user_id, amount, details, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, withdrawal.UserID, withdrawal.Amount, withdrawal.Details, models.WithdrawalStatusPending).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		return mapConflict(err)
	}
	withdrawal.Status = models.WithdrawalStatusPending

	err = tx.Commit()
	return mapConflict(err)
}

func (r *withdrawalRepo) GetByID(ctx context.Context, id int64) (*models.Withdrawal, error) {
	query := `SELECT id, user_id, amount, details, status, created_at, decided_at
			  FROM withdrawals WHERE id=$1`
	row := r.db.QueryRowContext(ctx, query, id)

	var w models.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Details, &w.Status, &w.CreatedAt, &w.DecidedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepo) GetByUser(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	query := `SELECT id, user_id, amount, details, status, created_at, decided_at
			  FROM withdrawals WHERE user_id=$1 ORDER BY created_at DESC`
	return r.queryWithdrawals(ctx, query, userID)
}

func (r *withdrawalRepo) GetPending(ctx context.Context) ([]models.Withdrawal, error) {
	query := `SELECT id, user_id, amount, details, status, created_at, decided_at
			  FROM withdrawals WHERE status='pending' ORDER BY created_at`
	return r.queryWithdrawals(ctx, query)
}

func (r *withdrawalRepo) queryWithdrawals(ctx context.Context, query string, args ...interface{}) ([]models.Withdrawal, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		var w models.Withdrawal
		if err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.Details, &w.Status, &w.CreatedAt, &w.DecidedAt); err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

// Decide sets the terminal status. The status condition makes the decision
// exactly-once: a second decision finds zero rows and never touches the
// balance again. A rejection refunds the escrowed amount in the same
// transaction.
func (r *withdrawalRepo) Decide(ctx context.Context, id int64, status models.WithdrawalStatus) (*models.Withdrawal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
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

	var w models.Withdrawal
	err = tx.QueryRowContext(ctx, `
		UPDATE withdrawals
		SET status = $1, decided_at = now()
		WHERE id = $2 AND status = 'pending'
		RETURNING id, user_id, amount, details, status, created_at, decided_at
	`, status, id).Scan(&w.ID, &w.UserID, &w.Amount, &w.Details, &w.Status, &w.CreatedAt, &w.DecidedAt)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM withdrawals WHERE id = $1)`, id).Scan(&exists); scanErr != nil {
			err = scanErr
			return nil, err
		}
		if !exists {
			err = apperrors.ErrWithdrawalNotFound
			return nil, err
		}
		err = apperrors.ErrAlreadyDecided
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if status == models.WithdrawalStatusRejected {
		_, err = tx.ExecContext(ctx, `
			UPDATE users SET balance = balance + $1 WHERE telegram_id = $2
		`, w.Amount, w.UserID)
		if err != nil {
			return nil, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, mapConflict(err)
	}
	return &w, nil
}
