package seed

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/ballknowledge-data/internal/career"
	"github.com/albapepper/ballknowledge-data/internal/db"
)

// Execer runs a statement. *pgxpool.Pool satisfies it; statements are
// referenced by their prepared names.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// progressEvery is how often PublishPool logs progress, in players.
const progressEvery = 250

// PublishPool upserts every entry of a pool and its season rows. A failed
// player skips its seasons; failures are collected, never fatal, except a
// cancelled context which stops the run.
func PublishPool[B any](ctx context.Context, ex Execer, sport string, entries []career.Entry[B], logger *slog.Logger) SeedResult {
	var result SeedResult
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Publishing career pool", "sport", sport, "players", len(entries))

	for i := range entries {
		if ctx.Err() != nil {
			result.AddErrorf("publish %s: %v", sport, ctx.Err())
			break
		}
		e := &entries[i]
		if err := UpsertPlayer(ctx, ex, sport, e); err != nil {
			result.AddErrorf("upsert player %s: %v", e.PlayerID, err)
			continue
		}
		result.PlayersUpserted++

		for _, s := range e.Seasons {
			if err := UpsertSeason(ctx, ex, sport, e.PlayerID.String(), s); err != nil {
				result.AddErrorf("upsert season %s %s: %v", e.PlayerID, s.Season, err)
				continue
			}
			result.SeasonsUpserted++
		}

		if (i+1)%progressEvery == 0 {
			logger.Info("Publish progress", "sport", sport, "processed", i+1)
		}
	}

	logger.Info("Publish complete", "sport", sport, "summary", result.Summary())
	return result
}

// UpsertPlayer writes one pool entry to the players table.
func UpsertPlayer[B any](ctx context.Context, ex Execer, sport string, e *career.Entry[B]) error {
	bio, err := json.Marshal(e.Bio)
	if err != nil {
		return err
	}
	_, err = ex.Exec(ctx, db.StmtUpsertPlayer,
		e.PlayerID.String(), sport, e.PlayerName, nilEmpty(e.Position),
		nilZero(e.FirstYear()), nilZero(e.LastYear()), bio,
	)
	return err
}

// UpsertSeason writes one season row to the seasons table.
func UpsertSeason(ctx context.Context, ex Execer, sport, playerID string, s career.SeasonRow) error {
	stats, err := json.Marshal(nonNilMap(s.Stats))
	if err != nil {
		return err
	}
	_, err = ex.Exec(ctx, db.StmtUpsertSeason, playerID, sport, s.Season, s.Team, s.GP, stats)
	return err
}

func nilEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nilZero(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nonNilMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
