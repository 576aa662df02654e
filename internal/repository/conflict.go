package repository

import (
	"errors"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// mapConflict converts driver-level lost-update signals into ErrConflict so
// services can re-read and retry a bounded number of times.
func mapConflict(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected {
			return apperrors.ErrConflict
		}
	}
	return err
}
