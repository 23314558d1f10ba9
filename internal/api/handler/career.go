package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/ballknowledge-data/internal/api/respond"
	"github.com/albapepper/ballknowledge-data/internal/cache"
	"github.com/albapepper/ballknowledge-data/internal/career"
)

// CareerPick identifies a randomly drawn career-mode player.
type CareerPick struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position,omitempty"`
}

func pick[B any](idx *career.Index[B], f career.Filter) (CareerPick, error) {
	if idx.Len() == 0 {
		return CareerPick{}, errCareerNotLoaded
	}
	e, ok := idx.Random(f)
	if !ok {
		return CareerPick{}, errNoEligible
	}
	return CareerPick{PlayerID: e.PlayerID.String(), PlayerName: e.PlayerName, Position: e.Position}, nil
}

func (h *Handler) writeCareer(w http.ResponseWriter, r *http.Request, sport string, lookup func(string) (any, bool)) {
	id := chi.URLParam(r, "player_id")
	h.writeCached(w, r, "career:"+sport+":"+id, cache.TTLStatic, func() (any, error) {
		e, ok := lookup(id)
		if !ok {
			return nil, notFound("Player not found in career data")
		}
		return e, nil
	})
}

// RandomNBACareer godoc
// @Summary Draw a random basketball career
// @Tags careers
// @Produce json
// @Param career_from query int false "Earliest allowed first season start year"
// @Param career_to query int false "Minimum last season start year"
// @Success 200 {object} CareerPick
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /career/random [get]
func (h *Handler) RandomNBACareer(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseCareerQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := pick(h.NBACareers, career.Filter{CareerFrom: q.CareerFrom, CareerTo: q.CareerTo})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond.Object(w, http.StatusOK, p)
}

// GetNBACareer godoc
// @Summary Get a basketball career
// @Description Full season log and bio of one pool entry.
// @Tags careers
// @Produce json
// @Param player_id path string true "stats.nba.com player ID"
// @Success 200 {object} career.NBAEntry
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /career/{player_id} [get]
func (h *Handler) GetNBACareer(w http.ResponseWriter, r *http.Request) {
	if h.NBACareers.Len() == 0 {
		h.writeError(w, r, errCareerNotLoaded)
		return
	}
	h.writeCareer(w, r, "nba", func(id string) (any, bool) { return h.NBACareers.ByID(id) })
}

// RandomNFLCareer godoc
// @Summary Draw a random football career
// @Tags careers
// @Produce json
// @Param position query string false "Position" Enums(QB, RB, WR, TE)
// @Param career_from query int false "Earliest allowed first season"
// @Param career_to query int false "Minimum last season"
// @Success 200 {object} CareerPick
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /nfl/career/random [get]
func (h *Handler) RandomNFLCareer(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseCareerQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := pick(h.NFLCareers, career.Filter{Position: q.Position, CareerFrom: q.CareerFrom, CareerTo: q.CareerTo})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond.Object(w, http.StatusOK, p)
}

// GetNFLCareer godoc
// @Summary Get a football career
// @Description Full season log and bio of one pool entry.
// @Tags careers
// @Produce json
// @Param player_id path string true "nflverse GSIS player ID"
// @Success 200 {object} career.NFLEntry
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /nfl/career/{player_id} [get]
func (h *Handler) GetNFLCareer(w http.ResponseWriter, r *http.Request) {
	if h.NFLCareers.Len() == 0 {
		h.writeError(w, r, errCareerNotLoaded)
		return
	}
	h.writeCareer(w, r, "nfl", func(id string) (any, bool) { return h.NFLCareers.ByID(id) })
}
