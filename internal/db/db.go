// Package db provides a pgxpool-based connection pool with prepared statement
// registration, health checking and the schema career pools publish into.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/ballknowledge-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, StmtHealthCheck).Scan(&n)
}

// CountPlayers returns how many published players sport has.
func (p *Pool) CountPlayers(ctx context.Context, sport string) (int, error) {
	var n int
	if err := p.QueryRow(ctx, StmtCountPlayers, sport).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s players: %w", sport, err)
	}
	return n, nil
}

// Prepared statement names.
const (
	StmtHealthCheck  = "health_check"
	StmtUpsertPlayer = "upsert_career_player"
	StmtUpsertSeason = "upsert_career_season"
	StmtCountPlayers = "count_career_players"
)

// Statements returns the SQL of every prepared statement by name.
func Statements() map[string]string {
	players, seasons := config.CareerPlayersTable, config.CareerSeasonsTable
	return map[string]string{
		StmtHealthCheck: "SELECT 1",

		StmtUpsertPlayer: `
			INSERT INTO ` + players + ` (
				player_id, sport, player_name, position, first_season, last_season, bio
			) VALUES ($1,$2,$3,$4,$5,$6,$7)
			ON CONFLICT (player_id, sport) DO UPDATE SET
				player_name = EXCLUDED.player_name,
				position = COALESCE(EXCLUDED.position, ` + players + `.position),
				first_season = EXCLUDED.first_season,
				last_season = EXCLUDED.last_season,
				bio = EXCLUDED.bio,
				updated_at = NOW()`,

		StmtUpsertSeason: `
			INSERT INTO ` + seasons + ` (
				player_id, sport, season, team, gp, stats
			) VALUES ($1,$2,$3,$4,$5,$6)
			ON CONFLICT (player_id, sport, season) DO UPDATE SET
				team = EXCLUDED.team,
				gp = EXCLUDED.gp,
				stats = EXCLUDED.stats,
				updated_at = NOW()`,

		StmtCountPlayers: "SELECT COUNT(*) FROM " + players + " WHERE sport = $1",
	}
}

// registerPreparedStatements registers all statements the publish layer uses.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	for name, sql := range Statements() {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}

// schema is applied by EnsureSchema. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS ` + config.CareerPlayersTable + ` (
		player_id    TEXT NOT NULL,
		sport        TEXT NOT NULL,
		player_name  TEXT NOT NULL,
		position     TEXT,
		first_season INTEGER,
		last_season  INTEGER,
		bio          JSONB NOT NULL DEFAULT '{}',
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (player_id, sport)
	)`,
	`CREATE TABLE IF NOT EXISTS ` + config.CareerSeasonsTable + ` (
		player_id  TEXT NOT NULL,
		sport      TEXT NOT NULL,
		season     TEXT NOT NULL,
		team       TEXT NOT NULL,
		gp         INTEGER NOT NULL DEFAULT 0,
		stats      JSONB NOT NULL DEFAULT '{}',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (player_id, sport, season),
		FOREIGN KEY (player_id, sport) REFERENCES ` + config.CareerPlayersTable + ` (player_id, sport) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_` + config.CareerPlayersTable + `_sport_position
		ON ` + config.CareerPlayersTable + ` (sport, position)`,
}

// EnsureSchema creates the career tables when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
