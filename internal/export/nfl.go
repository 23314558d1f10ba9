package export

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/roster"
	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// NFLExporter writes football roster files named with current
// abbreviations. Older seasons listed under an alias (STL, SD, OAK) are
// filed under the current franchise.
type NFLExporter struct {
	src    roster.NFLRosterSource
	cache  *filecache.Store
	out    string
	logger *slog.Logger
}

// NewNFLExporter creates an exporter reading cache and writing under out.
func NewNFLExporter(src roster.NFLRosterSource, cache *filecache.Store, out string, logger *slog.Logger) *NFLExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &NFLExporter{src: src, cache: cache, out: out, logger: logger}
}

// Run exports in three passes: copy whatever the cache holds, bulk-fetch
// each year that still has gaps, then build player lists for years whose
// rosters all came from the cache.
func (e *NFLExporter) Run(ctx context.Context, opts Options) (ExportResult, error) {
	var result ExportResult
	selected := opts.selectTeams(teams.NFLAbbreviations())
	years := opts.Years()

	e.logger.Info("Exporting NFL rosters", "from", opts.StartYear, "to", opts.EndYear,
		"teams", len(selected), "force", opts.Force, "out", e.out)

	missing := make(map[int]bool)
	for _, year := range years {
		season := strconv.Itoa(year)
		for _, team := range selected {
			path := rosterPath(e.out, team, season)
			if !opts.Force && exists(path) {
				result.Skipped++
				continue
			}
			players, ok := e.cached(team, year)
			if !ok {
				missing[year] = true
				continue
			}
			if err := writeJSON(path, rosterFile[int, roster.NFLPlayer]{Team: team, Season: year, Players: players}); err != nil {
				result.AddErrorf("write %s: %v", path, err)
				continue
			}
			result.FromCache++
			result.Written++
		}
	}
	e.logger.Info("Cache pass complete", "from_cache", result.FromCache, "skipped", result.Skipped, "missing_years", len(missing))

	listed := make(map[int]bool)
	for _, year := range years {
		if !missing[year] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		tbl, err := roster.FetchNFLRosters(ctx, e.src, year, e.logger)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			e.logger.Warn("Roster fetch failed", "season", year, "error", err)
			result.AddErrorf("%d: %v", year, err)
			result.FailedYears = append(result.FailedYears, year)
			continue
		}

		season := strconv.Itoa(year)
		available := roster.TeamsInTable(tbl, "team")
		for _, team := range selected {
			path := rosterPath(e.out, team, season)
			if !opts.Force && exists(path) {
				continue
			}
			dataTeam, ok := teams.FindNFLTeam(team, available)
			if !ok {
				continue
			}
			players := roster.BuildNFLRoster(tbl, dataTeam, year)
			if len(players) == 0 {
				continue
			}
			if err := writeJSON(path, rosterFile[int, roster.NFLPlayer]{Team: team, Season: year, Players: players}); err != nil {
				result.AddErrorf("write %s: %v", path, err)
				continue
			}
			result.FromAPI++
			result.Written++
		}

		path := playersPath(e.out, season)
		if opts.Force || !exists(path) {
			if err := writeJSON(path, roster.NFLSeasonPlayerList(tbl, year)); err != nil {
				result.AddErrorf("write %s: %v", path, err)
			} else {
				result.SeasonFiles++
			}
		}
		listed[year] = true
		e.logger.Info("Season fetched", "season", year, "from_api", result.FromAPI)
	}

	for _, year := range years {
		season := strconv.Itoa(year)
		path := playersPath(e.out, season)
		if listed[year] || (!opts.Force && exists(path)) {
			continue
		}
		list := seasonList{}
		for _, team := range selected {
			players, err := readPlayers(rosterPath(e.out, team, season))
			if err != nil {
				continue
			}
			for _, p := range players {
				list.add(p.ID, p.Name)
			}
		}
		if len(list) == 0 {
			continue
		}
		if err := writeJSON(path, list.sorted()); err != nil {
			result.AddErrorf("write %s: %v", path, err)
			continue
		}
		result.SeasonFiles++
	}

	e.logger.Info("NFL export complete", "summary", result.Summary())
	return result, nil
}

func (e *NFLExporter) cached(team string, year int) ([]roster.NFLPlayer, bool) {
	if e.cache == nil {
		return nil, false
	}
	var players []roster.NFLPlayer
	if e.cache.ReadAny(roster.NFLRosterKey(team, year), "players", &players) && len(players) > 0 {
		return players, true
	}
	return nil, false
}
