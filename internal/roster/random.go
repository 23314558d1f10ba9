package roster

import (
	"fmt"

	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// Default bounds of the random team/season picker.
const (
	DefaultRandomMinYear = 2015
	DefaultRandomMaxYear = 2024
)

// NBAPick is a random basketball team and season.
type NBAPick struct {
	Team   string `json:"team"`
	Season string `json:"season"`
	TeamID int    `json:"team_id"`
}

// NFLPick is a random football team and season.
type NFLPick struct {
	Team     string `json:"team"`
	Season   int    `json:"season"`
	TeamName string `json:"team_name"`
}

// RandomNBA picks a team uniformly and a season start year in
// [minYear, maxYear].
func RandomNBA(intn IntN, minYear, maxYear int) (NBAPick, error) {
	if minYear > maxYear {
		return NBAPick{}, fmt.Errorf("%w: min_year %d is after max_year %d", ErrInvalidSeason, minYear, maxYear)
	}
	intn = orDefault(intn)
	abbrs := teams.NBAAbbreviations()
	team := abbrs[intn(len(abbrs))]
	year := minYear + intn(maxYear-minYear+1)
	return NBAPick{Team: team, Season: teams.FormatNBASeason(year), TeamID: teams.NBATeams[team]}, nil
}

// RandomNFL picks a team uniformly and a season in [minYear, maxYear]
// clamped to [firstSeason, lastSeason].
func RandomNFL(intn IntN, minYear, maxYear, firstSeason, lastSeason int) (NFLPick, error) {
	minYear = max(minYear, firstSeason)
	maxYear = min(maxYear, lastSeason)
	if minYear > maxYear {
		return NFLPick{}, fmt.Errorf("%w: no season between %d and %d", ErrInvalidSeason, minYear, maxYear)
	}
	intn = orDefault(intn)
	abbrs := teams.NFLAbbreviations()
	team := abbrs[intn(len(abbrs))]
	year := minYear + intn(maxYear-minYear+1)
	return NFLPick{Team: team, Season: year, TeamName: teams.NFLTeams[team].Name}, nil
}
