package career

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

// Football eligibility. Career totals go through the stats table; any one
// of the three is enough.
const (
	NFLFirstYear       = 2010
	NFLLastYear        = 2024
	NFLMinRosterYears  = 5
	NFLMinRushYards    = 1000
	NFLMinRecYards     = 1000
	NFLMinPassYards    = 3000
	nflLateRBYardsMin  = 200
	nflLateRBYearsFrom = 2023
)

// NFLCareerPositions are the positions a football entry can carry, in
// priority order.
var NFLCareerPositions = []string{"QB", "RB", "WR", "TE"}

// nflLineupMin is the single-season bar of the lineup pool, keyed by
// position then stats column.
var nflLineupMin = map[string]map[string]int{
	"QB": {"passing_yards": 1500},
	"RB": {"rushing_yards": 400},
	"WR": {"receiving_yards": 400},
	"TE": {"receiving_yards": 300},
}

var nflStatColumns = map[string][]string{
	"QB": {"completions", "attempts", "passing_yards", "passing_tds", "interceptions", "rushing_yards"},
	"RB": {"carries", "rushing_yards", "rushing_tds", "receptions", "receiving_yards"},
	"WR": {"targets", "receptions", "receiving_yards", "receiving_tds"},
	"TE": {"targets", "receptions", "receiving_yards", "receiving_tds"},
}

// NFLSource is the subset of the football provider the pool builders read.
type NFLSource interface {
	SeasonalRosters(ctx context.Context, year int) (*provider.Table, error)
	SeasonalStats(ctx context.Context, year int) (*provider.Table, error)
}

// NFLBuilder builds the football pools from bulk seasonal files.
type NFLBuilder struct {
	src       NFLSource
	firstYear int
	lastYear  int
	logger    *slog.Logger
}

// NewNFLBuilder creates a builder over NFLFirstYear through NFLLastYear.
func NewNFLBuilder(src NFLSource, logger *slog.Logger) *NFLBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &NFLBuilder{src: src, firstYear: NFLFirstYear, lastYear: NFLLastYear, logger: logger}
}

// nflPlayer is one player's rows across the loaded years, already ordered
// by season.
type nflPlayer struct {
	id      provider.PlayerID
	rosters []provider.Row
	stats   []provider.Row
}

// Build returns the career pool: players with enough roster years, a
// skill position, and career production.
func (b *NFLBuilder) Build(ctx context.Context) ([]NFLEntry, BuildResult, error) {
	return b.build(ctx, "career", func(p *nflPlayer, pos string) bool {
		if len(p.rosters) < NFLMinRosterYears {
			return false
		}
		return sumColumn(p.stats, "rushing_yards") >= NFLMinRushYards ||
			sumColumn(p.stats, "receiving_yards") >= NFLMinRecYards ||
			sumColumn(p.stats, "passing_yards") >= NFLMinPassYards
	})
}

// BuildLineup returns the lineup pool: players with at least one season
// over their position's single-season bar. Like every pool it needs
// MinPoolSeasons seasons, so a rookie with one standout year is left out.
func (b *NFLBuilder) BuildLineup(ctx context.Context) ([]NFLEntry, BuildResult, error) {
	return b.build(ctx, "lineup", func(p *nflPlayer, pos string) bool {
		return MeetsLineupThreshold(p.stats, pos)
	})
}

func (b *NFLBuilder) build(ctx context.Context, pool string, qualifies func(*nflPlayer, string) bool) ([]NFLEntry, BuildResult, error) {
	var result BuildResult

	players, err := b.load(ctx)
	if err != nil {
		return nil, result, err
	}
	b.logger.Info("Scanning players", "pool", pool, "players", len(players))

	var entries []NFLEntry
	for _, p := range players {
		pos := careerPosition(p.rosters)
		if pos == "" || len(p.stats) == 0 || !qualifies(p, pos) {
			continue
		}
		result.Candidates++

		entry, ok := nflEntry(p, pos)
		if !ok {
			result.Discarded++
			continue
		}
		entries = append(entries, entry)
		result.Added++
	}
	b.logger.Info("Football pool built", "pool", pool, "summary", result.Summary())
	return entries, result, nil
}

// load fetches every year and groups rows per player in first-appearance
// order. Roster rows are deduplicated by (player, season).
func (b *NFLBuilder) load(ctx context.Context) ([]*nflPlayer, error) {
	byID := make(map[provider.PlayerID]*nflPlayer)
	var order []*nflPlayer
	player := func(id provider.PlayerID) *nflPlayer {
		p, ok := byID[id]
		if !ok {
			p = &nflPlayer{id: id}
			byID[id] = p
			order = append(order, p)
		}
		return p
	}

	rosterRows, statRows := 0, 0
	for year := b.firstYear; year <= b.lastYear; year++ {
		rosters, err := b.src.SeasonalRosters(ctx, year)
		if err != nil {
			if errors.Is(err, provider.ErrNoData) {
				b.logger.Warn("No roster data", "season", year)
				continue
			}
			return nil, fmt.Errorf("load rosters %d: %w", year, err)
		}
		seen := make(map[provider.PlayerID]bool, rosters.Len())
		rosters.Each(func(r provider.Row) {
			id := r.ID("player_id")
			if id == "" || seen[id] {
				return
			}
			seen[id] = true
			p := player(id)
			p.rosters = append(p.rosters, r)
			rosterRows++
		})
	}
	if rosterRows == 0 {
		return nil, provider.NoData("football rosters")
	}

	for year := b.firstYear; year <= b.lastYear; year++ {
		stats, err := b.src.SeasonalStats(ctx, year)
		if err != nil {
			if errors.Is(err, provider.ErrNoData) {
				b.logger.Warn("No stats data", "season", year)
				continue
			}
			return nil, fmt.Errorf("load stats %d: %w", year, err)
		}
		stats.Each(func(r provider.Row) {
			id := r.ID("player_id")
			if p, ok := byID[id]; ok && id != "" {
				p.stats = append(p.stats, r)
				statRows++
			}
		})
	}
	if statRows == 0 {
		return nil, provider.NoData("football stats")
	}
	b.logger.Info("Football data loaded", "roster_rows", rosterRows, "stat_rows", statRows)

	for _, p := range order {
		sortBySeason(p.rosters)
		sortBySeason(p.stats)
	}
	return order, nil
}

func sortBySeason(rows []provider.Row) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Int("season") < rows[j].Int("season") })
}

// careerPosition returns the first skill position listed across the
// player's roster years.
func careerPosition(rosters []provider.Row) string {
	for _, r := range rosters {
		pos := r.String("position", "")
		for _, want := range NFLCareerPositions {
			if pos == want {
				return pos
			}
		}
	}
	return ""
}

func sumColumn(rows []provider.Row, column string) int {
	total := 0.0
	for _, r := range rows {
		if f, ok := provider.ExtractValue(r.Get(column)); ok {
			total += f
		}
	}
	return int(total)
}

// MeetsLineupThreshold reports whether any season clears the position's
// single-season bar. Running backs need only 200 rushing yards from 2023.
func MeetsLineupThreshold(stats []provider.Row, position string) bool {
	for _, r := range stats {
		year := r.Int("season")
		for column, minimum := range nflLineupMin[position] {
			if position == "RB" && column == "rushing_yards" && year >= nflLateRBYearsFrom {
				minimum = nflLateRBYardsMin
			}
			if r.Int(column) >= minimum {
				return true
			}
		}
	}
	return false
}

func nflEntry(p *nflPlayer, pos string) (NFLEntry, bool) {
	latest := p.rosters[len(p.rosters)-1]
	name := latest.String("player_name", "")
	if name == "" {
		return NFLEntry{}, false
	}

	rosterByYear := make(map[int]provider.Row, len(p.rosters))
	for _, r := range p.rosters {
		rosterByYear[r.Int("season")] = r
	}

	seasons := make([]SeasonRow, 0, len(p.stats))
	for _, s := range p.stats {
		year := s.Int("season")
		var team string
		if r, ok := rosterByYear[year]; ok {
			team = r.String("team", "???")
		} else {
			team = s.String("recent_team", s.String("team", "???"))
		}
		row := SeasonRow{
			Season: strconv.Itoa(year),
			Team:   team,
			GP:     s.Int("games"),
			Stats:  make(map[string]float64, len(nflStatColumns[pos])),
		}
		for _, column := range nflStatColumns[pos] {
			row.Stats[column] = float64(s.Int(column))
		}
		seasons = append(seasons, row)
	}
	if len(seasons) < MinPoolSeasons {
		return NFLEntry{}, false
	}

	return NFLEntry{
		PlayerID:   p.id,
		PlayerName: name,
		Position:   pos,
		Seasons:    seasons,
		Bio: NFLBio{
			Height:      FormatHeight(latest.Get("height")),
			Weight:      latest.Int("weight"),
			College:     latest.String("college", ""),
			YearsExp:    latest.Int("years_exp"),
			DraftClub:   latest.String("draft_club", ""),
			DraftNumber: latest.Int("draft_number"),
		},
	}, true
}

// FormatHeight renders a height in inches as feet-inches ("6-2"). Values
// that are not numeric are returned as given.
func FormatHeight(v interface{}) string {
	raw := provider.String(v, "")
	if raw == "" {
		return ""
	}
	inches, ok := provider.ExtractValue(v)
	if !ok {
		return raw
	}
	n := int(inches)
	return fmt.Sprintf("%d-%d", n/12, n%12)
}
