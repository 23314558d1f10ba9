package career

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// Eligibility thresholds of the basketball pool.
const (
	NBAMinPPG          = 10.0 // at least one sampled season at 10+ points per game
	NBAMinSeasons      = 5    // career spans 5+ years
	NBAMinToYear       = 1980 // played into the modern era
	NBACheckpointEvery = 25

	// New players picked up by an update need both.
	NBAUpdateMinGP  = 20
	NBAUpdateMinPPG = 10.0
)

// NBASampleYears returns the season start years scanned for productive
// players: every other year from 1985 through 2025.
func NBASampleYears() []int {
	years := make([]int, 0, 21)
	for y := 1985; y < 2026; y += 2 {
		years = append(years, y)
	}
	return years
}

// NBASource is the subset of the basketball provider the pool builders read.
type NBASource interface {
	LeagueDashPlayerStats(ctx context.Context, season string) (*provider.Table, error)
	AllPlayers(ctx context.Context, season string) (*provider.Table, error)
	PlayerCareer(ctx context.Context, playerID provider.PlayerID) (*provider.Table, error)
	PlayerInfo(ctx context.Context, playerID provider.PlayerID) (*provider.Table, error)
}

// Candidate is a player selected for a career fetch.
type Candidate struct {
	ID   provider.PlayerID
	Name string
}

// NBABuilder builds the basketball pool in three phases: scan sampled
// seasons for productive players, filter the player directory by career
// span, then fetch each candidate's career log and bio.
type NBABuilder struct {
	src             NBASource
	out             string
	sampleYears     []int
	directorySeason string
	checkpointEvery int
	logger          *slog.Logger
}

// NewNBABuilder creates a builder writing to out. currentSeason is the start
// year of the season the player directory is requested for.
func NewNBABuilder(src NBASource, out string, currentSeason int, logger *slog.Logger) *NBABuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &NBABuilder{
		src:             src,
		out:             out,
		sampleYears:     NBASampleYears(),
		directorySeason: teams.FormatNBASeason(currentSeason),
		checkpointEvery: NBACheckpointEvery,
		logger:          logger,
	}
}

// Build runs all phases and writes the pool. With resume, players already
// in the checkpoint are kept and not fetched again; the eligibility phases
// always rerun. On cancellation the progress so far is checkpointed.
func (b *NBABuilder) Build(ctx context.Context, resume bool) (BuildResult, error) {
	var result BuildResult

	var careers []NBAEntry
	done := make(map[provider.PlayerID]bool)
	if resume {
		partial, err := LoadPartial[NBABio](b.out)
		if err != nil {
			return result, fmt.Errorf("load checkpoint: %w", err)
		}
		careers = partial
		for _, c := range careers {
			done[c.PlayerID] = true
		}
		if len(careers) > 0 {
			b.logger.Info("Resuming from checkpoint", "players", len(careers))
		}
	}

	eligible, err := b.Eligible(ctx)
	if err != nil {
		return result, err
	}
	result.Candidates = len(eligible)

	remaining := make([]Candidate, 0, len(eligible))
	for _, c := range eligible {
		if done[c.ID] {
			result.Resumed++
			continue
		}
		remaining = append(remaining, c)
	}
	b.logger.Info("Fetching career data",
		"remaining", len(remaining), "already_done", result.Resumed, "total", len(eligible))

	for i, cand := range remaining {
		if err := ctx.Err(); err != nil {
			b.checkpoint(careers)
			return result, err
		}

		entry, err := FetchNBACareer(ctx, b.src, cand, b.logger)
		switch {
		case err != nil && ctx.Err() != nil:
			b.checkpoint(careers)
			return result, ctx.Err()
		case err != nil:
			result.AddErrorf("fetch career %s (%s): %v", cand.Name, cand.ID, err)
			result.Discarded++
		case entry == nil:
			result.Discarded++
		default:
			careers = append(careers, *entry)
			result.Added++
		}

		status := "OK"
		if entry == nil {
			status = "SKIP"
		}
		b.logger.Info("Career fetched", "n", result.Resumed+i+1, "total", len(eligible),
			"player", cand.Name, "status", status)

		if (i+1)%b.checkpointEvery == 0 {
			b.checkpoint(careers)
		}
	}

	if err := SavePool(b.out, careers); err != nil {
		return result, err
	}
	if err := RemovePartial(b.out); err != nil {
		b.logger.Warn("Could not remove checkpoint", "error", err)
	}
	b.logger.Info("NBA career pool written", "players", len(careers),
		"path", b.out, "kb", FileSize(b.out)/1024, "summary", result.Summary())
	return result, nil
}

func (b *NBABuilder) checkpoint(careers []NBAEntry) {
	if err := SavePartial(b.out, careers); err != nil {
		b.logger.Error("Checkpoint failed", "error", err)
		return
	}
	b.logger.Info("Checkpoint saved", "players", len(careers))
}

// Eligible runs the scan and directory phases. A season that fails to load
// is logged and skipped; a directory failure is fatal.
func (b *NBABuilder) Eligible(ctx context.Context) ([]Candidate, error) {
	productive := make(map[provider.PlayerID]string)

	b.logger.Info("Scanning sampled seasons", "seasons", len(b.sampleYears), "min_ppg", NBAMinPPG)
	for i, year := range b.sampleYears {
		season := teams.FormatNBASeason(year)
		tbl, err := b.src.LeagueDashPlayerStats(ctx, season)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			b.logger.Warn("Season skipped", "n", i+1, "season", season, "error", err)
			continue
		}
		count := 0
		tbl.Each(func(r provider.Row) {
			pts, ok := provider.ExtractValue(r.Get("PTS"))
			if !ok || pts < NBAMinPPG {
				return
			}
			id := r.ID("PLAYER_ID")
			if id == "" {
				return
			}
			productive[id] = r.First("PLAYER_NAME", "PLAYER")
			count++
		})
		b.logger.Info("Season scanned", "n", i+1, "season", season, "productive", count)
	}
	b.logger.Info("Productive players", "count", len(productive))

	dir, err := b.src.AllPlayers(ctx, b.directorySeason)
	if err != nil {
		return nil, fmt.Errorf("fetch player directory: %w", err)
	}

	var eligible []Candidate
	dir.Each(func(r provider.Row) {
		from, to := r.Int("FROM_YEAR"), r.Int("TO_YEAR")
		if to-from < NBAMinSeasons-1 || to < NBAMinToYear {
			return
		}
		id := r.ID("PERSON_ID")
		scanName, ok := productive[id]
		if !ok {
			return
		}
		name := r.String("DISPLAY_FIRST_LAST", scanName)
		if id == "" || name == "" {
			return
		}
		eligible = append(eligible, Candidate{ID: id, Name: name})
	})
	b.logger.Info("Eligible players", "count", len(eligible))
	return eligible, nil
}

// FetchNBACareer fetches the career log and bio of one candidate. It returns
// a nil entry when the candidate has fewer than MinPoolSeasons seasons. A
// failed bio fetch only costs the bio.
func FetchNBACareer(ctx context.Context, src NBASource, cand Candidate, logger *slog.Logger) (*NBAEntry, error) {
	tbl, err := src.PlayerCareer(ctx, cand.ID)
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			return nil, nil
		}
		return nil, err
	}

	seasons := GroupNBASeasons(tbl)
	if len(seasons) < MinPoolSeasons {
		return nil, nil
	}

	bio, err := fetchNBABio(ctx, src, cand.ID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("Bio fetch failed", "player", cand.Name, "error", err)
	}

	return &NBAEntry{
		PlayerID:   cand.ID,
		PlayerName: cand.Name,
		Seasons:    seasons,
		Bio:        bio,
	}, nil
}

func fetchNBABio(ctx context.Context, src NBASource, id provider.PlayerID) (NBABio, error) {
	tbl, err := src.PlayerInfo(ctx, id)
	if err != nil {
		return NBABio{}, err
	}
	if tbl.Len() == 0 {
		return NBABio{}, provider.NoData("player info")
	}
	r := tbl.Row(0)
	return NBABio{
		Height:    r.String("HEIGHT", ""),
		Weight:    r.Int("WEIGHT"),
		School:    r.String("SCHOOL", ""),
		Exp:       r.Int("SEASON_EXP"),
		DraftYear: draftYear(r.String("DRAFT_YEAR", "")),
	}, nil
}

func draftYear(s string) int {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
	}
	return provider.Int(s)
}

// GroupNBASeasons collapses a per-team career log into one row per season in
// first-appearance order. Traded seasons take their numbers from the TOT row
// and list every team: "HOU/PHI".
func GroupNBASeasons(tbl *provider.Table) []SeasonRow {
	type group struct {
		tot, teams []provider.Row
		first      provider.Row
	}
	var order []string
	groups := make(map[string]*group)
	tbl.Each(func(r provider.Row) {
		id := r.String("SEASON_ID", "")
		g, ok := groups[id]
		if !ok {
			g = &group{first: r}
			groups[id] = g
			order = append(order, id)
		}
		if r.String("TEAM_ABBREVIATION", "") == "TOT" {
			g.tot = append(g.tot, r)
		} else {
			g.teams = append(g.teams, r)
		}
	})

	seasons := make([]SeasonRow, 0, len(order))
	for _, id := range order {
		g := groups[id]
		if len(g.teams) <= 1 && len(g.tot) == 0 {
			seasons = append(seasons, NBASeasonRow(g.first, g.first.String("SEASON_ID", id), g.first.String("TEAM_ABBREVIATION", "???")))
			continue
		}

		label := "???"
		if len(g.teams) > 0 {
			abbrs := make([]string, 0, len(g.teams))
			for _, r := range g.teams {
				abbrs = append(abbrs, r.String("TEAM_ABBREVIATION", "???"))
			}
			label = strings.Join(abbrs, "/")
		}
		src := g.first
		if len(g.tot) > 0 {
			src = g.tot[0]
		} else if len(g.teams) > 0 {
			src = g.teams[0]
		}
		seasons = append(seasons, NBASeasonRow(src, id, label))
	}
	return seasons
}

// NBASeasonRow reads the per-game columns shared by the career log and the
// league dash table.
func NBASeasonRow(r provider.Row, season, team string) SeasonRow {
	return SeasonRow{
		Season: season,
		Team:   team,
		GP:     r.Int("GP"),
		Stats: map[string]float64{
			"min":     r.Float("MIN", 1),
			"pts":     r.Float("PTS", 1),
			"reb":     r.Float("REB", 1),
			"ast":     r.Float("AST", 1),
			"stl":     r.Float("STL", 1),
			"blk":     r.Float("BLK", 1),
			"fg_pct":  r.Float("FG_PCT", 3),
			"fg3_pct": r.Float("FG3_PCT", 3),
		},
	}
}
