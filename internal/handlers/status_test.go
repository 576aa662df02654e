package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/mocks/service_mocks"
	"github.com/a2sh3r/starsbot/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"
)

func TestHandler_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSvc    func(m *service_mocks.MockUserService)
		wantStatus int
		wantStats  *models.Stats
		wantBody   string
	}{
		{
			name: "успешный ответ со статистикой",
			mockSvc: func(m *service_mocks.MockUserService) {
				m.EXPECT().GetStats(gomock.Any()).Return(models.Stats{
					TotalUsers:         10,
					TotalBalance:       120,
					TotalReferrals:     4,
					PendingWithdrawals: 1,
				}, nil).Times(1)
			},
			wantStatus: http.StatusOK,
			wantStats: &models.Stats{
				TotalUsers:         10,
				TotalBalance:       120,
				TotalReferrals:     4,
				PendingWithdrawals: 1,
			},
		},
		{
			name: "ошибка сервиса",
			mockSvc: func(m *service_mocks.MockUserService) {
				m.EXPECT().GetStats(gomock.Any()).
					Return(models.Stats{}, errors.New("db down")).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   apperrors.ErrInternalServer.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userService := service_mocks.NewMockUserService(ctrl)
			tt.mockSvc(userService)

			handler := NewHandler(nil, userService)

			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			w := httptest.NewRecorder()
			handler.GetStats(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStats != nil {
				var got models.Stats
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, *tt.wantStats, got)
			}
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_HealthzUnreachableDB(t *testing.T) {
	db, err := sql.Open("postgres", "postgres://127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	handler := NewHandler(db, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.Healthz(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_UnknownRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userService := service_mocks.NewMockUserService(ctrl)
	router := NewRouter(NewHandler(nil, userService))

	t.Run("неизвестный путь", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("неверный метод", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}
