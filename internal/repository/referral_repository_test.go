package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralRepo_CreateReferral(t *testing.T) {
	r := NewReferralRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("создание новой связи", func(t *testing.T) {
		referral := &models.Referral{ReferrerID: 200, ReferredID: 300, Status: models.ReferralStatusPending}
		require.NoError(t, r.CreateReferral(ctx, referral))
		assert.NotZero(t, referral.ID)
		assert.False(t, referral.CreatedAt.IsZero())
	})

	t.Run("повторная вставка той же пары", func(t *testing.T) {
		referral := &models.Referral{ReferrerID: 100, ReferredID: 200, Status: models.ReferralStatusPending}
		assert.ErrorIs(t, r.CreateReferral(ctx, referral), apperrors.ErrReferralExists)
	})
}

func TestReferralRepo_GetByPair(t *testing.T) {
	r := NewReferralRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("существующая пара", func(t *testing.T) {
		got, err := r.GetByPair(ctx, 100, 200)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.ReferralStatusActive, got.Status)
	})

	t.Run("отсутствующая пара", func(t *testing.T) {
		got, err := r.GetByPair(ctx, 200, 100)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestReferralRepo_GetGrantable(t *testing.T) {
	r := NewReferralRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	t.Run("ожидающая связь попадает в выборку", func(t *testing.T) {
		got, err := r.GetGrantable(ctx, 300)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(100), got[0].ReferrerID)
	})

	t.Run("активная связь исключается", func(t *testing.T) {
		got, err := r.GetGrantable(ctx, 200)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("отозванная связь снова выбирается", func(t *testing.T) {
		_, err := testDB.Exec(`UPDATE referrals SET status='revoked' WHERE referrer_id=100 AND referred_id=200`)
		require.NoError(t, err)

		got, err := r.GetGrantable(ctx, 200)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestReferralRepo_GrantReward(t *testing.T) {
	r := NewReferralRepository(testDB)
	users := NewUserRepository(testDB)
	ctx := context.Background()

	const reward int64 = 3

	t.Run("начисление переводит связь в active и пополняет баланс", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.GrantReward(ctx, 100, 300, reward))

		referrer, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(153), referrer.Balance)
		assert.Equal(t, 3, referrer.ReferralCount)

		got, err := r.GetByPair(ctx, 100, 300)
		require.NoError(t, err)
		assert.Equal(t, models.ReferralStatusActive, got.Status)
	})

	t.Run("повторное начисление отклоняется", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.GrantReward(ctx, 100, 300, reward))
		assert.ErrorIs(t, r.GrantReward(ctx, 100, 300, reward), apperrors.ErrRewardAlreadyGiven)

		referrer, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(153), referrer.Balance)
	})
}

func TestReferralRepo_RevokeReward(t *testing.T) {
	r := NewReferralRepository(testDB)
	users := NewUserRepository(testDB)
	ctx := context.Background()

	const reward int64 = 3

	t.Run("отзыв активной награды", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.RevokeReward(ctx, 100, 200, reward))

		referrer, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(147), referrer.Balance)
		assert.Equal(t, 1, referrer.ReferralCount)

		got, err := r.GetByPair(ctx, 100, 200)
		require.NoError(t, err)
		assert.Equal(t, models.ReferralStatusRevoked, got.Status)
	})

	t.Run("повторный отзыв отклоняется", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.RevokeReward(ctx, 100, 200, reward))
		assert.ErrorIs(t, r.RevokeReward(ctx, 100, 200, reward), apperrors.ErrRewardNotActive)
	})

	t.Run("отзыв ожидающей награды отклоняется", func(t *testing.T) {
		setupTestData(t, testDB)

		assert.ErrorIs(t, r.RevokeReward(ctx, 100, 300, reward), apperrors.ErrRewardNotActive)
	})

	t.Run("недостаточный баланс оставляет награду активной", func(t *testing.T) {
		setupTestData(t, testDB)
		_, err := testDB.Exec(`UPDATE users SET balance = 1 WHERE telegram_id = 100`)
		require.NoError(t, err)

		assert.ErrorIs(t, r.RevokeReward(ctx, 100, 200, reward), apperrors.ErrInsufficientFunds)

		got, err := r.GetByPair(ctx, 100, 200)
		require.NoError(t, err)
		assert.Equal(t, models.ReferralStatusActive, got.Status)
	})
}

func TestReferralRepo_ConcurrentGrants(t *testing.T) {
	r := NewReferralRepository(testDB)
	users := NewUserRepository(testDB)
	ctx := context.Background()

	const reward int64 = 3

	setupTestData(t, testDB)

	// Два приглашённых одного реферера начисляются одновременно.
	_, err := testDB.Exec(`UPDATE referrals SET status='pending' WHERE referrer_id=100`)
	require.NoError(t, err)

	referredIDs := []int64{200, 300}
	var wg sync.WaitGroup
	errs := make([]error, len(referredIDs))
	for i, referredID := range referredIDs {
		wg.Add(1)
		go func(i int, referredID int64) {
			defer wg.Done()
			errs[i] = r.GrantReward(ctx, 100, referredID, reward)
		}(i, referredID)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	referrer, err := users.GetUserByTelegramID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(156), referrer.Balance)
	assert.Equal(t, 4, referrer.ReferralCount)
}
