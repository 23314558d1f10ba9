// Package api assembles the HTTP router: middleware, Swagger UI, and the
// basketball and football routes.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/ballknowledge-data/internal/api/handler"
	"github.com/albapepper/ballknowledge-data/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// Basketball
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})
	r.Get("/teams", h.ListNBATeams)
	r.Get("/roster/{team}/{season}", h.GetNBARoster)
	r.Get("/players/{season}", h.GetNBASeasonPlayers)
	r.Get("/random", h.RandomNBATeam)
	r.Route("/career", func(r chi.Router) {
		r.Get("/random", h.RandomNBACareer)
		r.Get("/{player_id}", h.GetNBACareer)
	})

	// Football
	r.Route("/nfl", func(r chi.Router) {
		r.Get("/health", h.NFLHealth)
		r.Get("/teams", h.ListNFLTeams)
		r.Get("/roster/{team}/{season}", h.GetNFLRoster)
		r.Get("/players/{season}", h.GetNFLSeasonPlayers)
		r.Get("/record/{team}/{season}", h.GetNFLRecord)
		r.Get("/random", h.RandomNFLTeam)
		r.Route("/career", func(r chi.Router) {
			r.Get("/random", h.RandomNFLCareer)
			r.Get("/{player_id}", h.GetNFLCareer)
		})
	})

	return r
}
