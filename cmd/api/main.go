// Command api is the Ball Knowledge data API server.
//
// Usage:
//
//	ballknowledge-api
//	API_PORT=8080 DATA_DIR=/srv/data ballknowledge-api

// @title Ball Knowledge Data API
// @version 1.0.0
// @description Roster, team record and career-mode data for the Ball Knowledge basketball and football trivia games.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Ball Knowledge
// @license.name MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/ballknowledge-data/internal/api"
	"github.com/albapepper/ballknowledge-data/internal/api/handler"
	"github.com/albapepper/ballknowledge-data/internal/cache"
	"github.com/albapepper/ballknowledge-data/internal/career"
	"github.com/albapepper/ballknowledge-data/internal/config"
	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/provider/nbastats"
	"github.com/albapepper/ballknowledge-data/internal/provider/nflverse"
	"github.com/albapepper/ballknowledge-data/internal/roster"

	_ "github.com/albapepper/ballknowledge-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// --- Providers and roster pipelines ---
	nbaClient := nbastats.NewClient(cfg.NBAStatsBaseURL, cfg.NBARequestDelay, cfg.NBATimeout, logger)
	nflClient := nflverse.NewClient(cfg.NFLVerseBaseURL, cfg.NFLVerseSchedulesURL, cfg.NFLTimeout, logger)

	nbaFiles := filecache.New(cfg.NBACachePath(), cfg.NBACacheExpiry, logger)
	nflFiles := filecache.New(cfg.NFLCachePath(), cfg.NFLCacheExpiry, logger)

	nfl := config.SportRegistry[config.SportNFL]
	nbaRosters := roster.NewNBA(nbaClient, nbaFiles, cache.NewMemo[*provider.Table](), logger)
	nflRosters := roster.NewNFL(nflClient, nflFiles, nfl.FirstSeason, nfl.CurrentSeason, logger)

	// --- Career pools ---
	nbaCareers := loadPool[career.NBABio](cfg.PoolPath(config.NBACareersFile), logger)
	nflCareers := loadPool[career.NFLBio](cfg.PoolPath(config.NFLCareersFile), logger)

	// --- Response cache ---
	appCache := cache.New(cfg.CacheEnabled)
	go appCache.Sweep(ctx, 5*time.Minute)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	h := handler.New(handler.Deps{
		NBA:              nbaRosters,
		NFL:              nflRosters,
		NBACareers:       nbaCareers,
		NFLCareers:       nflCareers,
		Cache:            appCache,
		NFLFirstSeason:   nfl.FirstSeason,
		NFLDataAvailable: cfg.NFLVerseBaseURL != "",
		Logger:           logger,
	})
	router := api.NewRouter(h, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2*cfg.NFLTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Ball Knowledge Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

// loadPool indexes a career pool. A missing or unreadable pool leaves the
// index empty and the career endpoints answer 503.
func loadPool[B any](path string, logger *slog.Logger) *career.Index[B] {
	entries, err := career.LoadPool[B](path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Career pool not found", "path", path)
		return nil
	case err != nil:
		logger.Error("Failed to load career pool", "path", path, "error", err)
		return nil
	}
	logger.Info("Career pool loaded", "path", path, "players", len(entries))
	return career.NewIndex(entries, nil)
}
