package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/ballknowledge-data/internal/api/respond"
	"github.com/albapepper/ballknowledge-data/internal/roster"
)

// --------------------------------------------------------------------------
// NBA
// --------------------------------------------------------------------------

// GetNBARoster godoc
// @Summary Get a basketball roster
// @Description Roster of a team in a season, enriched with points per game and sorted by ppg descending.
// @Tags rosters
// @Produce json
// @Param team path string true "Team abbreviation" example(LAL)
// @Param season path string true "Season label" example(2023-24)
// @Success 200 {object} roster.NBARoster
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /roster/{team}/{season} [get]
func (h *Handler) GetNBARoster(w http.ResponseWriter, r *http.Request) {
	team := strings.ToUpper(chi.URLParam(r, "team"))
	season := chi.URLParam(r, "season")

	res, err := h.NBA.Roster(r.Context(), team, season)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSourced(w, r, res, res.Cached)
}

// GetNBASeasonPlayers godoc
// @Summary List basketball players in a season
// @Tags rosters
// @Produce json
// @Param season path string true "Season label" example(2023-24)
// @Success 200 {object} roster.NBASeasonPlayers
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /players/{season} [get]
func (h *Handler) GetNBASeasonPlayers(w http.ResponseWriter, r *http.Request) {
	season := chi.URLParam(r, "season")
	res, err := h.NBA.SeasonPlayers(r.Context(), season)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSourced(w, r, res, res.Cached)
}

// RandomNBATeam godoc
// @Summary Pick a random basketball team and season
// @Tags rosters
// @Produce json
// @Param min_year query int false "Earliest season start year" default(2015)
// @Param max_year query int false "Latest season start year" default(2024)
// @Success 200 {object} roster.NBAPick
// @Failure 400 {object} respond.ErrorResponse
// @Router /random [get]
func (h *Handler) RandomNBATeam(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseRandomQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pick, err := roster.RandomNBA(h.IntN, q.MinYear, q.MaxYear)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond.Object(w, http.StatusOK, pick)
}

// --------------------------------------------------------------------------
// NFL
// --------------------------------------------------------------------------

// GetNFLRoster godoc
// @Summary Get a football roster
// @Description Roster of a team in a season ordered by unit, position and name.
// @Tags rosters
// @Produce json
// @Param team path string true "Team abbreviation" example(KC)
// @Param season path int true "Season year" example(2023)
// @Success 200 {object} roster.NFLRoster
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /nfl/roster/{team}/{season} [get]
func (h *Handler) GetNFLRoster(w http.ResponseWriter, r *http.Request) {
	team := strings.ToUpper(chi.URLParam(r, "team"))
	year, err := pathSeason(chi.URLParam(r, "season"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.NFL.Roster(r.Context(), team, year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSourced(w, r, res, res.Cached)
}

// GetNFLSeasonPlayers godoc
// @Summary List football players in a season
// @Tags rosters
// @Produce json
// @Param season path int true "Season year" example(2023)
// @Success 200 {object} roster.NFLSeasonPlayers
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /nfl/players/{season} [get]
func (h *Handler) GetNFLSeasonPlayers(w http.ResponseWriter, r *http.Request) {
	year, err := pathSeason(chi.URLParam(r, "season"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.NFL.SeasonPlayers(r.Context(), year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSourced(w, r, res, res.Cached)
}

// GetNFLRecord godoc
// @Summary Get a football team's season record
// @Description Regular season wins, losses and ties computed from completed games.
// @Tags rosters
// @Produce json
// @Param team path string true "Team abbreviation" example(KC)
// @Param season path int true "Season year" example(2023)
// @Success 200 {object} roster.Record
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /nfl/record/{team}/{season} [get]
func (h *Handler) GetNFLRecord(w http.ResponseWriter, r *http.Request) {
	team := strings.ToUpper(chi.URLParam(r, "team"))
	year, err := pathSeason(chi.URLParam(r, "season"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.NFL.TeamRecord(r.Context(), team, year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeSourced(w, r, res, res.Cached)
}

// RandomNFLTeam godoc
// @Summary Pick a random football team and season
// @Description The year range is clamped to the supported seasons.
// @Tags rosters
// @Produce json
// @Param min_year query int false "Earliest season" default(2015)
// @Param max_year query int false "Latest season" default(2024)
// @Success 200 {object} roster.NFLPick
// @Failure 400 {object} respond.ErrorResponse
// @Router /nfl/random [get]
func (h *Handler) RandomNFLTeam(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseRandomQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pick, err := roster.RandomNFL(h.IntN, q.MinYear, q.MaxYear, h.NFLFirstSeason, roster.DefaultRandomMaxYear)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond.Object(w, http.StatusOK, pick)
}
