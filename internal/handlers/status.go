// Package handlers exposes the operational HTTP surface next to the bot:
// liveness, aggregate stats and Prometheus metrics.
package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/starsbot/internal/apperrors"
	"github.com/a2sh3r/starsbot/internal/logger"
	"github.com/a2sh3r/starsbot/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	db          *sql.DB
	userService service.UserService
}

func NewHandler(db *sql.DB, userService service.UserService) *Handler {
	return &Handler{
		db:          db,
		userService: userService,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		logger.Log.Error("healthz ping failed", zap.Error(err))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.userService.GetStats(r.Context())
	if err != nil {
		http.Error(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		logger.Log.Error("failed to get stats", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(stats)
}
