package handler

import (
	"net/http"

	"github.com/albapepper/ballknowledge-data/internal/cache"
	"github.com/albapepper/ballknowledge-data/internal/teams"
)

// NBATeam is one entry of the basketball team list.
type NBATeam struct {
	Abbreviation string `json:"abbreviation"`
	ID           int    `json:"id"`
}

// NBATeamList is the response of GET /teams.
type NBATeamList struct {
	Teams []NBATeam `json:"teams"`
}

// NFLTeamList is the response of GET /nfl/teams.
type NFLTeamList struct {
	Teams []teams.NFLTeam `json:"teams"`
}

// ListNBATeams godoc
// @Summary List basketball teams
// @Description Current franchises with their stats.nba.com team IDs, sorted by abbreviation.
// @Tags teams
// @Produce json
// @Success 200 {object} NBATeamList
// @Success 304 "Not Modified"
// @Router /teams [get]
func (h *Handler) ListNBATeams(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "teams:nba", cache.TTLStatic, func() (any, error) {
		abbrs := teams.NBAAbbreviations()
		list := NBATeamList{Teams: make([]NBATeam, 0, len(abbrs))}
		for _, a := range abbrs {
			list.Teams = append(list.Teams, NBATeam{Abbreviation: a, ID: teams.NBATeams[a]})
		}
		return list, nil
	})
}

// ListNFLTeams godoc
// @Summary List football teams
// @Description Current franchises with conference and division, sorted by abbreviation.
// @Tags teams
// @Produce json
// @Success 200 {object} NFLTeamList
// @Success 304 "Not Modified"
// @Router /nfl/teams [get]
func (h *Handler) ListNFLTeams(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "teams:nfl", cache.TTLStatic, func() (any, error) {
		abbrs := teams.NFLAbbreviations()
		list := NFLTeamList{Teams: make([]teams.NFLTeam, 0, len(abbrs))}
		for _, a := range abbrs {
			list.Teams = append(list.Teams, teams.NFLTeams[a])
		}
		return list, nil
	})
}
