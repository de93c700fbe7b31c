package app

import (
	"github.com/avc-dev/movies-api/internal/config"
	"github.com/avc-dev/movies-api/internal/handler"
	"github.com/avc-dev/movies-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)
	r.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logger).Handler)
	r.Use(middleware.NewCORS(cfg.AllowedOrigins, logger).Handler)
	r.Use(middleware.NewGzip(logger).Handler)

	// Routes
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", h.ListMovies)
		r.Post("/", h.CreateMovie)
		r.Get("/{id}", h.GetMovie)
		r.Patch("/{id}", h.UpdateMovie)
		r.Delete("/{id}", h.DeleteMovie)
	})

	return r
}
