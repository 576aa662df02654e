package repository

import (
	"context"
	"testing"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelRepo(t *testing.T) {
	r := NewChannelRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("добавление и чтение каналов", func(t *testing.T) {
		require.NoError(t, r.AddChannel(ctx, "@sponsor_one"))
		require.NoError(t, r.AddChannel(ctx, "@sponsor_two"))

		got, err := r.ListChannels(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"@sponsor_one", "@sponsor_two"}, got)
	})

	t.Run("повторное добавление отклоняется", func(t *testing.T) {
		assert.ErrorIs(t, r.AddChannel(ctx, "@sponsor_one"), apperrors.ErrChannelExists)
	})

	t.Run("удаление канала", func(t *testing.T) {
		require.NoError(t, r.RemoveChannel(ctx, "@sponsor_one"))

		got, err := r.ListChannels(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"@sponsor_two"}, got)
	})

	t.Run("удаление несуществующего канала", func(t *testing.T) {
		assert.ErrorIs(t, r.RemoveChannel(ctx, "@unknown"), apperrors.ErrChannelNotFound)
	})

	t.Run("полная очистка", func(t *testing.T) {
		require.NoError(t, r.ClearChannels(ctx))

		got, err := r.ListChannels(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
