package roster

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/albapepper/ballknowledge-data/internal/cache"
	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// NFLRosterSource provides season rosters, with the weekly form as fallback.
type NFLRosterSource interface {
	SeasonalRosters(ctx context.Context, year int) (*provider.Table, error)
	WeeklyRosters(ctx context.Context, year int) (*provider.Table, error)
}

// NFLSource is the subset of the football provider the roster pipeline reads.
type NFLSource interface {
	NFLRosterSource
	Schedules(ctx context.Context) (*provider.Table, error)
}

// NFLPlayer is one roster entry.
type NFLPlayer struct {
	ID       provider.PlayerID `json:"id"`
	Name     string            `json:"name"`
	Position string            `json:"position"`
	Number   string            `json:"number"`
	Unit     string            `json:"unit"`
}

// NFLRoster is the response for one team and season.
type NFLRoster struct {
	Team    string      `json:"team"`
	Season  int         `json:"season"`
	Players []NFLPlayer `json:"players"`
	Cached  bool        `json:"cached"`
}

// NFLSeasonPlayers is the season-wide player list.
type NFLSeasonPlayers struct {
	Season  int            `json:"season"`
	Players []SeasonPlayer `json:"players"`
	Cached  bool           `json:"cached"`
}

// Record is a team's regular season result.
type Record struct {
	Team   string  `json:"team"`
	Season int     `json:"season"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	Record string  `json:"record"`
	WinPct float64 `json:"winPct"`
	Cached bool    `json:"cached"`
}

// NFL serves football rosters, season player lists and team records.
type NFL struct {
	src         NFLSource
	files       *filecache.Store
	rosters     *cache.Memo[*provider.Table]
	schedules   *cache.Memo[*provider.Table]
	firstSeason int
	lastSeason  int
	logger      *slog.Logger
}

// NewNFL wires the football pipeline for seasons firstSeason..lastSeason.
func NewNFL(src NFLSource, files *filecache.Store, firstSeason, lastSeason int, logger *slog.Logger) *NFL {
	if logger == nil {
		logger = slog.Default()
	}
	return &NFL{
		src:         src,
		files:       files,
		rosters:     cache.NewMemo[*provider.Table](),
		schedules:   cache.NewMemo[*provider.Table](),
		firstSeason: firstSeason,
		lastSeason:  lastSeason,
		logger:      logger,
	}
}

// NFLRosterKey is the file cache key of a roster.
func NFLRosterKey(team string, year int) string {
	return fmt.Sprintf("nfl_%s_%d", team, year)
}

func nflSeasonPlayersKey(year int) string {
	return fmt.Sprintf("nfl_season_players_%d", year)
}

func nflRecordKey(team string, year int) string {
	return fmt.Sprintf("nfl_record_%s_%d", team, year)
}

func (n *NFL) checkSeason(year int) error {
	if year < n.firstSeason || year > n.lastSeason {
		return fmt.Errorf("%w: season must be between %d and %d, got %d",
			ErrInvalidSeason, n.firstSeason, n.lastSeason, year)
	}
	return nil
}

func checkNFLTeam(team string) (string, error) {
	team = strings.ToUpper(team)
	if _, ok := teams.NFLTeams[team]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTeam, team)
	}
	return team, nil
}

// Roster returns the roster of team in year ordered by unit, position, name.
func (n *NFL) Roster(ctx context.Context, team string, year int) (*NFLRoster, error) {
	team, err := checkNFLTeam(team)
	if err != nil {
		return nil, err
	}
	if err := n.checkSeason(year); err != nil {
		return nil, err
	}

	key := NFLRosterKey(team, year)
	var cached []NFLPlayer
	if _, ok := n.files.Read(key, "players", &cached); ok {
		n.logger.Info("Cache hit", "team", team, "season", year)
		return &NFLRoster{Team: team, Season: year, Players: cached, Cached: true}, nil
	}

	tbl, err := n.seasonRosters(ctx, year)
	if err != nil {
		if isNoData(err) {
			return nil, fmt.Errorf("no roster data found for %s in %d: %w", team, year, provider.ErrNoData)
		}
		return nil, fmt.Errorf("fetch rosters %d: %w", year, err)
	}

	dataTeam, ok := teams.FindNFLTeam(team, TeamsInTable(tbl, "team"))
	if !ok {
		n.logger.Warn("No alias found for team", "team", team, "season", year)
		return nil, fmt.Errorf("no roster data found for %s in %d: %w", team, year, provider.ErrNoData)
	}
	if dataTeam != team {
		n.logger.Info("Abbreviation matched", "team", team, "data_team", dataTeam, "season", year)
	}

	players := BuildNFLRoster(tbl, dataTeam, year)
	if len(players) == 0 {
		return nil, fmt.Errorf("no roster data found for %s in %d: %w", team, year, provider.ErrNoData)
	}

	n.files.Write(key, map[string]any{"team": team, "season": year}, "players", players)
	return &NFLRoster{Team: team, Season: year, Players: players, Cached: false}, nil
}

// SeasonPlayers returns every rostered player in year, unique by
// case-folded name and sorted by name.
func (n *NFL) SeasonPlayers(ctx context.Context, year int) (*NFLSeasonPlayers, error) {
	if err := n.checkSeason(year); err != nil {
		return nil, err
	}

	key := nflSeasonPlayersKey(year)
	var cached []SeasonPlayer
	if _, ok := n.files.Read(key, "players", &cached); ok {
		return &NFLSeasonPlayers{Season: year, Players: cached, Cached: true}, nil
	}

	tbl, err := n.seasonRosters(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("season players %d: %w", year, err)
	}
	players := NFLSeasonPlayerList(tbl, year)
	if len(players) == 0 {
		return nil, fmt.Errorf("no player data found for season %d: %w", year, provider.ErrNoData)
	}

	n.files.Write(key, map[string]any{"season": year}, "players", players)
	return &NFLSeasonPlayers{Season: year, Players: players, Cached: false}, nil
}

// TeamRecord returns team's regular season record in year computed from
// completed games.
func (n *NFL) TeamRecord(ctx context.Context, team string, year int) (*Record, error) {
	team, err := checkNFLTeam(team)
	if err != nil {
		return nil, err
	}
	if err := n.checkSeason(year); err != nil {
		return nil, err
	}

	key := nflRecordKey(team, year)
	var cached Record
	if _, ok := n.files.Read(key, "record", &cached); ok {
		cached.Cached = true
		return &cached, nil
	}

	games, err := n.schedules.Get(ctx, "games", n.src.Schedules)
	if err != nil {
		return nil, fmt.Errorf("fetch schedules: %w", err)
	}

	records := SeasonRecords(games, year)
	available := make(map[string]bool, len(records))
	for abbr := range records {
		available[abbr] = true
	}
	dataTeam, ok := teams.FindNFLTeam(team, available)
	if !ok {
		return nil, fmt.Errorf("no record data found for %s in %d: %w", team, year, provider.ErrNoData)
	}

	rec := records[dataTeam].Record(team, year)
	n.files.Write(key, map[string]any{"team": team, "season": year}, "record", rec)
	return &rec, nil
}

func (n *NFL) seasonRosters(ctx context.Context, year int) (*provider.Table, error) {
	return n.rosters.Get(ctx, strconv.Itoa(year), func(ctx context.Context) (*provider.Table, error) {
		return FetchNFLRosters(ctx, n.src, year, n.logger)
	})
}

// FetchNFLRosters loads the seasonal roster table for year, falling back to
// the weekly rosters (first row per player_id) when no seasonal asset exists.
func FetchNFLRosters(ctx context.Context, src NFLRosterSource, year int, logger *slog.Logger) (*provider.Table, error) {
	tbl, err := src.SeasonalRosters(ctx, year)
	if err == nil {
		return tbl, nil
	}
	if !isNoData(err) {
		return nil, err
	}

	logger.Info("Seasonal rosters empty, trying weekly rosters", "season", year)
	weekly, err := src.WeeklyRosters(ctx, year)
	if err != nil {
		return nil, err
	}
	return dedupeRows(weekly, "player_id"), nil
}

func dedupeRows(tbl *provider.Table, column string) *provider.Table {
	seen := make(map[string]bool, tbl.Len())
	rows := make([][]interface{}, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		id := tbl.Row(i).String(column, "")
		if id != "" {
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		rows = append(rows, tbl.Rows[i])
	}
	return provider.NewTable(tbl.Name, tbl.Headers, rows)
}

// TeamsInTable returns the set of values in a team column.
func TeamsInTable(tbl *provider.Table, column string) map[string]bool {
	out := make(map[string]bool)
	tbl.Each(func(r provider.Row) {
		if t := r.String(column, ""); t != "" {
			out[t] = true
		}
	})
	return out
}

// BuildNFLRoster extracts dataTeam's players from a season roster table.
// CUT players are left out unless nobody else is listed.
func BuildNFLRoster(tbl *provider.Table, dataTeam string, year int) []NFLPlayer {
	var all, active []provider.Row
	tbl.Each(func(r provider.Row) {
		if r.String("team", "") != dataTeam {
			return
		}
		all = append(all, r)
		if r.String("status", "") != "CUT" {
			active = append(active, r)
		}
	})
	if len(active) == 0 {
		active = all
	}

	seen := make(map[provider.PlayerID]bool, len(active))
	players := make([]NFLPlayer, 0, len(active))
	for _, r := range active {
		id := nflPlayerID(r, year)
		if seen[id] {
			continue
		}
		seen[id] = true

		name := r.First("player_name", "full_name")
		if name == "" {
			continue
		}
		position := r.First("position", "depth_chart_position")
		players = append(players, NFLPlayer{
			ID:       id,
			Name:     name,
			Position: position,
			Number:   jerseyNumber(r.Get("jersey_number")),
			Unit:     teams.Unit(position),
		})
	}
	SortNFLRoster(players)
	return players
}

// SortNFLRoster orders by unit (offense, defense, special teams), then
// position, then name.
func SortNFLRoster(players []NFLPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if ua, ub := teams.UnitOrder(a.Unit), teams.UnitOrder(b.Unit); ua != ub {
			return ua < ub
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Name < b.Name
	})
}

// NFLSeasonPlayerList builds the unique-name player list of a season table.
func NFLSeasonPlayerList(tbl *provider.Table, year int) []SeasonPlayer {
	seen := make(map[string]bool, tbl.Len())
	players := make([]SeasonPlayer, 0, tbl.Len())
	tbl.Each(func(r provider.Row) {
		name := r.First("player_name", "full_name")
		folded := strings.ToLower(name)
		if name == "" || seen[folded] {
			return
		}
		seen[folded] = true

		id := r.ID("player_id")
		if id == "" {
			id = provider.PlayerID(fmt.Sprintf("%s_%d", name, year))
		}
		players = append(players, SeasonPlayer{ID: id, Name: name})
	})
	sort.SliceStable(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players
}

func nflPlayerID(r provider.Row, year int) provider.PlayerID {
	if id := r.First("player_id", "espn_id"); id != "" {
		return provider.PlayerID(id)
	}
	name := r.First("player_name")
	if name == "" {
		name = "unknown"
	}
	return provider.PlayerID(fmt.Sprintf("%s_%d", name, year))
}

func jerseyNumber(v interface{}) string {
	f, ok := provider.ExtractValue(v)
	if !ok || f == 0 {
		return ""
	}
	return strconv.Itoa(int(f))
}

// --------------------------------------------------------------------------
// Records
// --------------------------------------------------------------------------

// Tally counts a team's results.
type Tally struct {
	Wins, Losses, Ties int
}

// Record formats the tally as "W-L", or "W-L-T" when any game was tied.
func (t Tally) Record(team string, year int) Record {
	rec := Record{Team: team, Season: year, Wins: t.Wins, Losses: t.Losses, Ties: t.Ties}
	if t.Ties > 0 {
		rec.Record = fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.Ties)
	} else {
		rec.Record = fmt.Sprintf("%d-%d", t.Wins, t.Losses)
	}
	if total := t.Wins + t.Losses + t.Ties; total > 0 {
		rec.WinPct = provider.Round(float64(t.Wins)/float64(total), 3)
	}
	return rec
}

// SeasonRecords tallies every team's record from the completed regular
// season games of year, keyed by the abbreviation the schedule uses.
func SeasonRecords(games *provider.Table, year int) map[string]*Tally {
	records := make(map[string]*Tally)
	get := func(team string) *Tally {
		t, ok := records[team]
		if !ok {
			t = &Tally{}
			records[team] = t
		}
		return t
	}

	games.Each(func(g provider.Row) {
		if g.Int("season") != year || g.String("game_type", "") != "REG" {
			return
		}
		home, away := g.String("home_team", ""), g.String("away_team", "")
		hs, okH := provider.ExtractValue(g.Get("home_score"))
		as, okA := provider.ExtractValue(g.Get("away_score"))
		if !okH || !okA || home == "" || away == "" {
			return
		}
		switch {
		case hs > as:
			get(home).Wins++
			get(away).Losses++
		case as > hs:
			get(away).Wins++
			get(home).Losses++
		default:
			get(home).Ties++
			get(away).Ties++
		}
	})
	return records
}
