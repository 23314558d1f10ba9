package career

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// NBAUpdater appends newly completed seasons to an existing basketball pool
// without rebuilding it.
type NBAUpdater struct {
	src    NBASource
	path   string
	logger *slog.Logger
}

// NewNBAUpdater creates an updater for the pool at path.
func NewNBAUpdater(src NBASource, path string, logger *slog.Logger) *NBAUpdater {
	if logger == nil {
		logger = slog.Default()
	}
	return &NBAUpdater{src: src, path: path, logger: logger}
}

// Update adds the given seasons (start years) to the pool. For each season,
// existing players gain a row when they played and lack it, and new
// players clearing the update thresholds are fetched in full and inserted
// when they have enough seasons. A season that fails to load is recorded
// and skipped. The pool is written once, and only when something changed,
// so rerunning with the same years leaves it untouched.
func (u *NBAUpdater) Update(ctx context.Context, years []int) (UpdateResult, error) {
	var result UpdateResult

	entries, err := LoadPool[NBABio](u.path)
	if err != nil {
		return result, err
	}
	byID := make(map[provider.PlayerID]int, len(entries))
	for i, e := range entries {
		byID[e.PlayerID] = i
	}
	u.logger.Info("Loaded career pool", "players", len(entries), "path", u.path)

	sorted := append([]int(nil), years...)
	sort.Ints(sorted)

	for _, year := range sorted {
		season := teams.FormatNBASeason(year)
		tbl, err := u.src.LeagueDashPlayerStats(ctx, season)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			result.AddErrorf("season %s: %v", season, err)
			u.logger.Warn("Season skipped", "season", season, "error", err)
			continue
		}

		var candidates []Candidate
		tbl.Each(func(r provider.Row) {
			id := r.ID("PLAYER_ID")
			if id == "" {
				return
			}
			if i, ok := byID[id]; ok {
				e := &entries[i]
				if e.HasSeason(season) {
					result.AlreadyPresent++
					return
				}
				e.AddSeason(NBASeasonRow(r, season, r.String("TEAM_ABBREVIATION", "???")))
				result.Updated++
				return
			}
			if r.Int("GP") >= NBAUpdateMinGP && r.Float("PTS", 1) >= NBAUpdateMinPPG {
				candidates = append(candidates, Candidate{ID: id, Name: r.First("PLAYER_NAME", "PLAYER")})
			}
		})
		u.logger.Info("Season merged", "season", season,
			"updated", result.Updated, "already_present", result.AlreadyPresent, "candidates", len(candidates))

		for _, cand := range candidates {
			entry, err := FetchNBACareer(ctx, u.src, cand, u.logger)
			if err != nil {
				if ctx.Err() != nil {
					return result, ctx.Err()
				}
				result.AddErrorf("fetch career %s (%s): %v", cand.Name, cand.ID, err)
				result.Skipped++
				continue
			}
			if entry == nil {
				result.Skipped++
				continue
			}
			byID[entry.PlayerID] = len(entries)
			entries = append(entries, *entry)
			result.Added++
			u.logger.Info("New player added", "player", cand.Name, "seasons", len(entry.Seasons))
		}
	}

	if !result.Changed() {
		u.logger.Info("Career pool unchanged", "summary", result.Summary())
		return result, nil
	}
	if err := SavePool(u.path, entries); err != nil {
		return result, fmt.Errorf("save updated pool: %w", err)
	}
	u.logger.Info("Career pool updated", "players", len(entries), "summary", result.Summary())
	return result, nil
}
