package nbastats

import (
	"context"
	"net/url"
	"strconv"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

const leagueID = "00"

// TeamRoster returns the CommonTeamRoster set: PLAYER_ID, PLAYER, NUM,
// POSITION, among others.
func (c *Client) TeamRoster(ctx context.Context, teamID int, season string) (*provider.Table, error) {
	params := url.Values{
		"LeagueID": {leagueID},
		"Season":   {season},
		"TeamID":   {strconv.Itoa(teamID)},
	}
	return c.table(ctx, "commonteamroster", params, "CommonTeamRoster")
}

// LeagueDashPlayerStats returns per-game regular season averages for every
// player who appeared in season: PLAYER_ID, PLAYER_NAME, TEAM_ABBREVIATION,
// GP, MIN, PTS, REB, AST, STL, BLK, FG_PCT, FG3_PCT.
func (c *Client) LeagueDashPlayerStats(ctx context.Context, season string) (*provider.Table, error) {
	params := url.Values{
		"LeagueID":       {leagueID},
		"Season":         {season},
		"SeasonType":     {"Regular Season"},
		"PerMode":        {"PerGame"},
		"MeasureType":    {"Base"},
		"PaceAdjust":     {"N"},
		"PlusMinus":      {"N"},
		"Rank":           {"N"},
		"LastNGames":     {"0"},
		"Month":          {"0"},
		"OpponentTeamID": {"0"},
		"PORound":        {"0"},
		"Period":         {"0"},
		"TeamID":         {"0"},
		"TwoWay":         {"0"},
	}
	// The endpoint rejects requests that omit any filter, even when empty.
	for _, k := range []string{
		"College", "Conference", "Country", "DateFrom", "DateTo", "Division",
		"DraftPick", "DraftYear", "GameScope", "GameSegment", "Height",
		"Location", "Outcome", "PlayerExperience", "PlayerPosition",
		"SeasonSegment", "ShotClockRange", "StarterBench", "VsConference",
		"VsDivision", "Weight",
	} {
		params.Set(k, "")
	}
	return c.table(ctx, "leaguedashplayerstats", params, "LeagueDashPlayerStats")
}

// AllPlayers returns the full historical player directory: PERSON_ID,
// DISPLAY_FIRST_LAST, FROM_YEAR, TO_YEAR.
func (c *Client) AllPlayers(ctx context.Context, season string) (*provider.Table, error) {
	params := url.Values{
		"IsOnlyCurrentSeason": {"0"},
		"LeagueID":            {leagueID},
		"Season":              {season},
	}
	return c.table(ctx, "commonallplayers", params, "CommonAllPlayers")
}

// PlayerCareer returns the per-game regular season log, one row per
// (SEASON_ID, TEAM_ABBREVIATION) plus a TOT row for traded seasons.
func (c *Client) PlayerCareer(ctx context.Context, playerID provider.PlayerID) (*provider.Table, error) {
	params := url.Values{
		"LeagueID": {leagueID},
		"PerMode":  {"PerGame"},
		"PlayerID": {playerID.String()},
	}
	return c.table(ctx, "playercareerstats", params, "SeasonTotalsRegularSeason")
}

// PlayerInfo returns the one-row CommonPlayerInfo set: HEIGHT, WEIGHT,
// SCHOOL, SEASON_EXP, DRAFT_YEAR.
func (c *Client) PlayerInfo(ctx context.Context, playerID provider.PlayerID) (*provider.Table, error) {
	params := url.Values{
		"LeagueID": {""},
		"PlayerID": {playerID.String()},
	}
	return c.table(ctx, "commonplayerinfo", params, "CommonPlayerInfo")
}
