package export

import (
	"context"
	"log/slog"

	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/roster"
	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// NBARosterSource fetches one team's roster for a season.
type NBARosterSource interface {
	TeamRoster(ctx context.Context, teamID int, season string) (*provider.Table, error)
}

// NBAExporter writes basketball roster files named with the abbreviation
// the franchise used that season (NJN_2004-05).
type NBAExporter struct {
	src    NBARosterSource
	cache  *filecache.Store
	out    string
	logger *slog.Logger
}

// NewNBAExporter creates an exporter reading cache and writing under out.
func NewNBAExporter(src NBARosterSource, cache *filecache.Store, out string, logger *slog.Logger) *NBAExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &NBAExporter{src: src, cache: cache, out: out, logger: logger}
}

// Run exports every selected team and season. Cached rosters keep their
// averages; rosters fetched here carry ppg 0. Fetch failures are recorded
// and skipped.
func (e *NBAExporter) Run(ctx context.Context, opts Options) (ExportResult, error) {
	var result ExportResult
	selected := opts.selectTeams(teams.NBAAbbreviations())
	seasons := make(map[string]seasonList)
	var order []string

	e.logger.Info("Exporting NBA rosters", "from", opts.StartYear, "to", opts.EndYear,
		"teams", len(selected), "force", opts.Force, "out", e.out)

	for _, year := range opts.Years() {
		season := teams.FormatNBASeason(year)
		list := seasonList{}
		seasons[season] = list
		order = append(order, season)

		for _, current := range selected {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			hist := teams.HistoricalNBA(current, year)
			path := rosterPath(e.out, hist, season)

			if !opts.Force && exists(path) {
				existing, err := readPlayers(path)
				if err != nil {
					e.logger.Warn("Unreadable roster file", "path", path, "error", err)
				}
				for _, p := range existing {
					list.add(p.ID, p.Name)
				}
				result.Skipped++
				continue
			}

			players, ok := e.cached(hist, current, season)
			if ok {
				result.FromCache++
			} else {
				players = e.fetch(ctx, &result, current, season)
				if len(players) == 0 {
					if err := ctx.Err(); err != nil {
						return result, err
					}
					continue
				}
				result.FromAPI++
			}

			roster.SortByPPG(players)
			if err := writeJSON(path, rosterFile[string, roster.NBAPlayer]{Team: hist, Season: season, Players: players}); err != nil {
				result.AddErrorf("write %s: %v", path, err)
				continue
			}
			result.Written++
			for _, p := range players {
				list.add(p.ID, p.Name)
			}
		}
		e.logger.Info("Season exported", "season", season, "players", len(list))
	}

	for _, season := range order {
		path := playersPath(e.out, season)
		if !opts.Force && exists(path) {
			continue
		}
		if len(seasons[season]) == 0 {
			continue
		}
		if err := writeJSON(path, seasons[season].sorted()); err != nil {
			result.AddErrorf("write %s: %v", path, err)
			continue
		}
		result.SeasonFiles++
	}

	e.logger.Info("NBA export complete", "summary", result.Summary())
	return result, nil
}

// cached reads the API's cache entry, under the historical abbreviation
// first and then the current one.
func (e *NBAExporter) cached(hist, current, season string) ([]roster.NBAPlayer, bool) {
	if e.cache == nil {
		return nil, false
	}
	for _, abbr := range []string{hist, current} {
		var players []roster.NBAPlayer
		if e.cache.ReadAny(roster.NBARosterKey(abbr, season), "players", &players) && len(players) > 0 {
			return players, true
		}
	}
	return nil, false
}

func (e *NBAExporter) fetch(ctx context.Context, result *ExportResult, current, season string) []roster.NBAPlayer {
	tbl, err := e.src.TeamRoster(ctx, teams.NBATeams[current], season)
	if err != nil {
		if ctx.Err() == nil {
			e.logger.Warn("Roster fetch failed", "team", current, "season", season, "error", err)
			result.AddErrorf("%s %s: %v", current, season, err)
		}
		return nil
	}
	return roster.RosterPlayers(tbl)
}
