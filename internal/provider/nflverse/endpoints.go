package nflverse

import (
	"context"
	"fmt"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

// SeasonalRosters returns one row per player on a season roster: season,
// player_id, player_name, team, position, jersey_number, status, height,
// weight, college, years_exp, draft_club, draft_number, espn_id.
func (c *Client) SeasonalRosters(ctx context.Context, year int) (*provider.Table, error) {
	u := fmt.Sprintf("%s/rosters/roster_%d.csv", c.baseURL, year)
	return c.getCSV(ctx, fmt.Sprintf("roster_%d", year), u)
}

// WeeklyRosters returns one row per player per week. Older seasons only
// ship in this form; callers drop duplicate player_id rows.
func (c *Client) WeeklyRosters(ctx context.Context, year int) (*provider.Table, error) {
	u := fmt.Sprintf("%s/weekly_rosters/roster_weekly_%d.csv", c.baseURL, year)
	return c.getCSV(ctx, fmt.Sprintf("roster_weekly_%d", year), u)
}

// SeasonalStats returns regular season totals per player: player_id, season,
// recent_team, games plus passing, rushing and receiving columns.
// Postseason rows are dropped.
func (c *Client) SeasonalStats(ctx context.Context, year int) (*provider.Table, error) {
	u := fmt.Sprintf("%s/player_stats/player_stats_season_%d.csv", c.baseURL, year)
	name := fmt.Sprintf("player_stats_season_%d", year)
	tbl, err := c.getCSV(ctx, name, u)
	if err != nil {
		return nil, err
	}
	if !tbl.Has("season_type") {
		return tbl, nil
	}
	return filterRows(tbl, func(r provider.Row) bool {
		return r.String("season_type", "") == "REG"
	})
}

// Schedules returns every game nflverse knows about: season, game_type,
// home_team, away_team, home_score, away_score.
func (c *Client) Schedules(ctx context.Context) (*provider.Table, error) {
	return c.getCSV(ctx, "games", c.schedulesURL)
}

func filterRows(tbl *provider.Table, keep func(provider.Row) bool) (*provider.Table, error) {
	rows := make([][]interface{}, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		if keep(tbl.Row(i)) {
			rows = append(rows, tbl.Rows[i])
		}
	}
	if len(rows) == 0 {
		return nil, provider.NoData(tbl.Name)
	}
	return provider.NewTable(tbl.Name, tbl.Headers, rows), nil
}
