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

func TestWithdrawalRepo_Submit(t *testing.T) {
	r := NewWithdrawalRepository(testDB)
	users := NewUserRepository(testDB)
	ctx := context.Background()

	t.Run("успешная заявка резервирует сумму", func(t *testing.T) {
		setupTestData(t, testDB)

		withdrawal := &models.Withdrawal{UserID: 100, Amount: 100, Details: "card 1234"}
		require.NoError(t, r.Submit(ctx, withdrawal))
		assert.NotZero(t, withdrawal.ID)

		user, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(50), user.Balance)
	})

	t.Run("недостаточный баланс отклоняет заявку целиком", func(t *testing.T) {
		setupTestData(t, testDB)

		withdrawal := &models.Withdrawal{UserID: 100, Amount: 151, Details: "card 1234"}
		assert.ErrorIs(t, r.Submit(ctx, withdrawal), apperrors.ErrInsufficientFunds)

		user, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(150), user.Balance)

		pending, err := r.GetPending(ctx)
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})
}

func TestWithdrawalRepo_Decide(t *testing.T) {
	r := NewWithdrawalRepository(testDB)
	users := NewUserRepository(testDB)
	ctx := context.Background()

	t.Run("одобрение не возвращает средства", func(t *testing.T) {
		setupTestData(t, testDB)

		withdrawal := &models.Withdrawal{UserID: 100, Amount: 100, Details: "card 1234"}
		require.NoError(t, r.Submit(ctx, withdrawal))

		decided, err := r.Decide(ctx, withdrawal.ID, models.WithdrawalStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusApproved, decided.Status)
		require.NotNil(t, decided.DecidedAt)

		user, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(50), user.Balance)
	})

	t.Run("отклонение возвращает средства на баланс", func(t *testing.T) {
		setupTestData(t, testDB)

		withdrawal := &models.Withdrawal{UserID: 100, Amount: 100, Details: "card 1234"}
		require.NoError(t, r.Submit(ctx, withdrawal))

		decided, err := r.Decide(ctx, withdrawal.ID, models.WithdrawalStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalStatusRejected, decided.Status)

		user, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(150), user.Balance)
	})

	t.Run("повторное решение отклоняется", func(t *testing.T) {
		setupTestData(t, testDB)

		withdrawal := &models.Withdrawal{UserID: 100, Amount: 100, Details: "card 1234"}
		require.NoError(t, r.Submit(ctx, withdrawal))

		_, err := r.Decide(ctx, withdrawal.ID, models.WithdrawalStatusApproved)
		require.NoError(t, err)

		_, err = r.Decide(ctx, withdrawal.ID, models.WithdrawalStatusRejected)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyDecided)

		user, err := users.GetUserByTelegramID(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(50), user.Balance)
	})

	t.Run("несуществующая заявка", func(t *testing.T) {
		setupTestData(t, testDB)

		_, err := r.Decide(ctx, 12345, models.WithdrawalStatusApproved)
		assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
	})
}

func TestWithdrawalRepo_ConcurrentDecisions(t *testing.T) {
	r := NewWithdrawalRepository(testDB)
	users := NewUserRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	withdrawal := &models.Withdrawal{UserID: 100, Amount: 100, Details: "card 1234"}
	require.NoError(t, r.Submit(ctx, withdrawal))

	decisions := []models.WithdrawalStatus{
		models.WithdrawalStatusApproved,
		models.WithdrawalStatusRejected,
	}
	errs := make([]error, len(decisions))
	var wg sync.WaitGroup
	for i, status := range decisions {
		wg.Add(1)
		go func(i int, status models.WithdrawalStatus) {
			defer wg.Done()
			_, errs[i] = r.Decide(ctx, withdrawal.ID, status)
		}(i, status)
	}
	wg.Wait()

	// Ровно одно решение проходит, второе видит уже решённую заявку.
	var succeeded, alreadyDecided int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, apperrors.ErrAlreadyDecided)
			alreadyDecided++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, alreadyDecided)

	got, err := r.GetByID(ctx, withdrawal.ID)
	require.NoError(t, err)

	user, err := users.GetUserByTelegramID(ctx, 100)
	require.NoError(t, err)
	if got.Status == models.WithdrawalStatusRejected {
		assert.Equal(t, int64(150), user.Balance)
	} else {
		assert.Equal(t, int64(50), user.Balance)
	}
}

func TestWithdrawalRepo_GetByUser(t *testing.T) {
	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	got, err := r.GetByUser(ctx, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(50), got[0].Amount)

	got, err = r.GetByUser(ctx, 200)
	require.NoError(t, err)
	assert.Empty(t, got)
}
