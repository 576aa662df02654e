package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"go.uber.org/zap"
)

type ChannelRepository interface {
	ListChannels(ctx context.Context) ([]string, error)
	AddChannel(ctx context.Context, channel string) error
	RemoveChannel(ctx context.Context, channel string) error
	ClearChannels(ctx context.Context) error
}

type channelRepo struct {
	db *sql.DB
}

func NewChannelRepository(db *sql.DB) ChannelRepository {
	return &channelRepo{db: db}
}

func (r *channelRepo) ListChannels(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT channel FROM sponsor_channels ORDER BY added_at`)
	if err != nil {
		logger.Log.Error("failed to query channels", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var channels []string
	for rows.Next() {
		var channel string
		if err := rows.Scan(&channel); err != nil {
			logger.Log.Error("failed to scan channel row", zap.Error(err))
			return nil, err
		}
		channels = append(channels, channel)
	}
	return channels, rows.Err()
}

func (r *channelRepo) AddChannel(ctx context.Context, channel string) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sponsor_channels (channel) VALUES ($1) ON CONFLICT (channel) DO NOTHING`, channel)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrChannelExists
	}
	return nil
}

func (r *channelRepo) RemoveChannel(ctx context.Context, channel string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sponsor_channels WHERE channel = $1`, channel)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrChannelNotFound
	}
	return nil
}

func (r *channelRepo) ClearChannels(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sponsor_channels`)
	return err
}
