package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/albapepper/ballknowledge-data/internal/cache"
	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// LowScorerPPG is the points-per-game line below which a player is flagged.
const LowScorerPPG = 10.0

// NBASource is the subset of the basketball provider the roster pipeline reads.
type NBASource interface {
	TeamRoster(ctx context.Context, teamID int, season string) (*provider.Table, error)
	LeagueDashPlayerStats(ctx context.Context, season string) (*provider.Table, error)
}

// NBAPlayer is one enriched roster entry.
type NBAPlayer struct {
	ID          provider.PlayerID `json:"id"`
	Name        string            `json:"name"`
	Position    string            `json:"position"`
	Number      string            `json:"number"`
	PPG         float64           `json:"ppg"`
	IsLowScorer bool              `json:"isLowScorer"`
}

// NBARoster is the response for one team and season.
type NBARoster struct {
	Team    string      `json:"team"`
	Season  string      `json:"season"`
	Players []NBAPlayer `json:"players"`
	Cached  bool        `json:"cached"`
}

// NBASeasonPlayers is the season-wide player list.
type NBASeasonPlayers struct {
	Season  string         `json:"season"`
	Players []SeasonPlayer `json:"players"`
	Cached  bool           `json:"cached"`
}

// NBA serves basketball rosters.
type NBA struct {
	src    NBASource
	files  *filecache.Store
	league *cache.Memo[*provider.Table]
	logger *slog.Logger
}

// NewNBA wires the basketball roster pipeline. league memoizes the
// league-wide per-game table by season label.
func NewNBA(src NBASource, files *filecache.Store, league *cache.Memo[*provider.Table], logger *slog.Logger) *NBA {
	if logger == nil {
		logger = slog.Default()
	}
	if league == nil {
		league = cache.NewMemo[*provider.Table]()
	}
	return &NBA{src: src, files: files, league: league, logger: logger}
}

// NBARosterKey is the file cache key of a roster.
func NBARosterKey(team, season string) string {
	return team + "_" + season
}

func nbaSeasonPlayersKey(season string) string {
	return "nba_season_players_" + season
}

// Roster returns the enriched roster of team in season, sorted by ppg
// descending with unique player ids.
func (n *NBA) Roster(ctx context.Context, team, season string) (*NBARoster, error) {
	team = strings.ToUpper(team)
	teamID, ok := teams.NBATeams[team]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, team)
	}
	if !teams.ValidNBASeason(season) {
		return nil, fmt.Errorf("%w: expected 'YYYY-YY', got %q", ErrInvalidSeason, season)
	}

	key := NBARosterKey(team, season)
	var cached []NBAPlayer
	if _, ok := n.files.Read(key, "players", &cached); ok {
		n.logger.Info("Cache hit", "team", team, "season", season)
		return &NBARoster{Team: team, Season: season, Players: cached, Cached: true}, nil
	}

	n.logger.Info("Fetching roster", "team", team, "season", season)
	tbl, err := n.src.TeamRoster(ctx, teamID, season)
	if err != nil {
		if isNoData(err) {
			return nil, fmt.Errorf("no roster data found for %s in %s: %w", team, season, provider.ErrNoData)
		}
		return nil, fmt.Errorf("fetch roster %s %s: %w", team, season, err)
	}

	players := RosterPlayers(tbl)
	if len(players) == 0 {
		return nil, fmt.Errorf("no roster data found for %s in %s: %w", team, season, provider.ErrNoData)
	}

	ppg, complete := n.ppgTable(ctx, season)
	Enrich(players, ppg)

	// A roster built without averages is served but not persisted, so the
	// next request retries the averages.
	if complete {
		n.files.Write(key, map[string]any{"team": team, "season": season}, "players", players)
	}
	return &NBARoster{Team: team, Season: season, Players: players, Cached: false}, nil
}

// SeasonPlayers returns every player who appeared in season, sorted by name.
func (n *NBA) SeasonPlayers(ctx context.Context, season string) (*NBASeasonPlayers, error) {
	if !teams.ValidNBASeason(season) {
		return nil, fmt.Errorf("%w: expected 'YYYY-YY', got %q", ErrInvalidSeason, season)
	}

	key := nbaSeasonPlayersKey(season)
	var cached []SeasonPlayer
	if _, ok := n.files.Read(key, "players", &cached); ok {
		return &NBASeasonPlayers{Season: season, Players: cached, Cached: true}, nil
	}

	tbl, err := n.leagueTable(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("season players %s: %w", season, err)
	}

	seen := make(map[provider.PlayerID]bool, tbl.Len())
	players := make([]SeasonPlayer, 0, tbl.Len())
	tbl.Each(func(r provider.Row) {
		id := r.ID("PLAYER_ID")
		name := r.First("PLAYER_NAME", "PLAYER")
		if id == "" || name == "" || seen[id] {
			return
		}
		seen[id] = true
		players = append(players, SeasonPlayer{ID: id, Name: name})
	})
	if len(players) == 0 {
		return nil, fmt.Errorf("no player data found for season %s: %w", season, provider.ErrNoData)
	}
	sort.SliceStable(players, func(i, j int) bool { return players[i].Name < players[j].Name })

	n.files.Write(key, map[string]any{"season": season}, "players", players)
	return &NBASeasonPlayers{Season: season, Players: players, Cached: false}, nil
}

func (n *NBA) leagueTable(ctx context.Context, season string) (*provider.Table, error) {
	return n.league.Get(ctx, season, func(ctx context.Context) (*provider.Table, error) {
		return n.src.LeagueDashPlayerStats(ctx, season)
	})
}

// ppgTable returns player id -> points per game for season. complete is
// false when the provider could not be reached and the map is empty.
func (n *NBA) ppgTable(ctx context.Context, season string) (map[provider.PlayerID]float64, bool) {
	tbl, err := n.leagueTable(ctx, season)
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			return map[provider.PlayerID]float64{}, true
		}
		n.logger.Warn("Season stats unavailable", "season", season, "error", err)
		return map[provider.PlayerID]float64{}, false
	}
	return PPGByPlayer(tbl), true
}

// RosterPlayers converts a CommonTeamRoster table into players, dropping
// rows without an id and repeated ids.
func RosterPlayers(tbl *provider.Table) []NBAPlayer {
	seen := make(map[provider.PlayerID]bool, tbl.Len())
	players := make([]NBAPlayer, 0, tbl.Len())
	tbl.Each(func(r provider.Row) {
		id := r.ID("PLAYER_ID")
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		players = append(players, NBAPlayer{
			ID:       id,
			Name:     r.String("PLAYER", ""),
			Position: r.String("POSITION", ""),
			Number:   r.String("NUM", ""),
		})
	})
	return players
}

// PPGByPlayer indexes a league dash table by player id.
func PPGByPlayer(tbl *provider.Table) map[provider.PlayerID]float64 {
	out := make(map[provider.PlayerID]float64, tbl.Len())
	tbl.Each(func(r provider.Row) {
		if id := r.ID("PLAYER_ID"); id != "" {
			out[id] = r.Float("PTS", 1)
		}
	})
	return out
}

// Enrich joins ppg onto players (0 for players missing from the table), sets
// the low-scorer flag, and sorts by ppg descending. Ties keep roster order.
func Enrich(players []NBAPlayer, ppg map[provider.PlayerID]float64) {
	for i := range players {
		players[i].PPG = ppg[players[i].ID]
		players[i].IsLowScorer = players[i].PPG < LowScorerPPG
	}
	SortByPPG(players)
}

// SortByPPG orders players by ppg descending, keeping ties in input order.
func SortByPPG(players []NBAPlayer) {
	sort.SliceStable(players, func(i, j int) bool { return players[i].PPG > players[j].PPG })
}
