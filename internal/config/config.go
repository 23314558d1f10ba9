// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// --------------------------------------------------------------------------
// Sport registry
// --------------------------------------------------------------------------

type SportConfig struct {
	ID            string
	Name          string
	CurrentSeason int // start year of the latest completed season
	FirstSeason   int // earliest season the providers cover for rosters
}

const (
	SportNBA = "NBA"
	SportNFL = "NFL"
)

var SportRegistry = map[string]SportConfig{
	SportNBA: {ID: SportNBA, Name: "National Basketball Association", CurrentSeason: 2025, FirstSeason: 1946},
	SportNFL: {ID: SportNFL, Name: "National Football League", CurrentSeason: 2025, FirstSeason: 2000},
}

// --------------------------------------------------------------------------
// Artifact names
// --------------------------------------------------------------------------

const (
	NBACareersFile    = "nba_careers.json"
	NFLCareersFile    = "nfl_careers.json"
	NFLLineupPoolFile = "nfl_lineup_pool.json"

	NBACacheDir = ".cache"
	NFLCacheDir = ".nfl_cache"
)

// Published pool tables.
const (
	CareerPlayersTable = "career_players"
	CareerSeasonsTable = "career_seasons"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string `validate:"required"`
	APIPort     int    `validate:"min=1,max=65535"`
	Environment string `validate:"oneof=development staging production"`
	Debug       bool

	// CORS
	CORSAllowOrigins []string `validate:"min=1,dive,required"`

	// Inbound rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int           `validate:"min=1"`
	RateLimitWindow   time.Duration `validate:"min=1s"`

	// Response cache
	CacheEnabled bool

	// Data layout
	DataDir        string        `validate:"required"`
	NBACacheExpiry time.Duration `validate:"gt=0"`
	NFLCacheExpiry time.Duration `validate:"gt=0"`

	// Basketball provider
	NBAStatsBaseURL string        `validate:"required,url"`
	NBARequestDelay time.Duration `validate:"gte=0"`
	NBATimeout      time.Duration `validate:"gt=0"`

	// Football provider
	NFLVerseBaseURL      string        `validate:"required,url"`
	NFLVerseSchedulesURL string        `validate:"required,url"`
	NFLTimeout           time.Duration `validate:"gt=0"`

	// Database (optional; only `ingest publish` needs it)
	DatabaseURL    string
	DBPoolMinConns int `validate:"min=0"`
	DBPoolMaxConns int `validate:"min=1"`
	DBPoolMaxLife  time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:4173",
			"http://127.0.0.1:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		DataDir:        envOr("DATA_DIR", "data"),
		NBACacheExpiry: envDuration("NBA_CACHE_EXPIRY", 24*time.Hour),
		NFLCacheExpiry: envDuration("NFL_CACHE_EXPIRY", 168*time.Hour),

		NBAStatsBaseURL: envOr("NBA_STATS_BASE_URL", "https://stats.nba.com/stats"),
		NBARequestDelay: envDuration("NBA_REQUEST_DELAY", 700*time.Millisecond),
		NBATimeout:      envDuration("NBA_TIMEOUT", 30*time.Second),

		NFLVerseBaseURL:      envOr("NFLVERSE_BASE_URL", "https://github.com/nflverse/nflverse-data/releases/download"),
		NFLVerseSchedulesURL: envOr("NFLVERSE_SCHEDULES_URL", "https://github.com/nflverse/nfldata/raw/master/data/games.csv"),
		NFLTimeout:           envDuration("NFL_TIMEOUT", 2*time.Minute),

		DatabaseURL:    envOr("DATABASE_URL", envOr("NEON_DATABASE_URL", "")),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RequireDatabase returns an error when no database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL or NEON_DATABASE_URL must be set")
	}
	return nil
}

// NBACachePath is the directory holding NBA roster cache files.
func (c *Config) NBACachePath() string { return filepath.Join(c.DataDir, NBACacheDir) }

// NFLCachePath is the directory holding NFL roster, player and record cache files.
func (c *Config) NFLCachePath() string { return filepath.Join(c.DataDir, NFLCacheDir) }

// PoolPath returns the location of a career pool artifact.
func (c *Config) PoolPath(name string) string { return filepath.Join(c.DataDir, name) }

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go duration strings ("700ms", "24h").
func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
