package handlers

import (
	"net/http"

	"github.com/a2sh3r/starsbot/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

func NewRouter(handler *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip())
	r.Use(middleware.RateLimitMiddleware(middleware.NewIPRateLimiter(rate.Limit(10), 20)))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Get("/healthz", handler.Healthz)
	r.Get("/api/stats", handler.GetStats)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
