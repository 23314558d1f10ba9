// Package handler provides HTTP handlers for all API endpoints.
// Handlers validate input, call the roster pipelines or the career
// indexes, and map failures to status codes. Static responses go through
// the in-memory ETag cache; roster responses rely on the pipelines' file
// cache and report its hit in X-Cache and the "cached" field.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/albapepper/ballknowledge-data/internal/api/respond"
	"github.com/albapepper/ballknowledge-data/internal/cache"
	"github.com/albapepper/ballknowledge-data/internal/career"
	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/roster"
)

// NBARosters serves basketball rosters. *roster.NBA implements it.
type NBARosters interface {
	Roster(ctx context.Context, team, season string) (*roster.NBARoster, error)
	SeasonPlayers(ctx context.Context, season string) (*roster.NBASeasonPlayers, error)
}

// NFLRosters serves football rosters and records. *roster.NFL implements it.
type NFLRosters interface {
	Roster(ctx context.Context, team string, year int) (*roster.NFLRoster, error)
	SeasonPlayers(ctx context.Context, year int) (*roster.NFLSeasonPlayers, error)
	TeamRecord(ctx context.Context, team string, year int) (*roster.Record, error)
}

// Deps are the handler dependencies. Career indexes may be nil when no
// pool file is present; career endpoints then answer 503.
type Deps struct {
	NBA        NBARosters
	NFL        NFLRosters
	NBACareers *career.Index[career.NBABio]
	NFLCareers *career.Index[career.NFLBio]
	Cache      *cache.Cache

	NFLFirstSeason   int
	NFLDataAvailable bool

	IntN   roster.IntN      // random draws; nil uses math/rand/v2
	Now    func() time.Time // nil uses time.Now
	Logger *slog.Logger
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	Deps
	validate *validator.Validate
}

// New creates a Handler with shared dependencies.
func New(d Deps) *Handler {
	if d.Cache == nil {
		d.Cache = cache.New(false)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Handler{Deps: d, validate: validator.New()}
}

func (h *Handler) timestamp() string {
	return h.Now().UTC().Format(time.RFC3339)
}

// writeCached serves key from the response cache, building and storing it
// on a miss. Only responses that never change within ttl belong here:
// pipeline results carry their own cache flag and go through writeSourced.
func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() (any, error)) {
	if data, etag, ok := h.Cache.Get(key); ok {
		respond.Serve(w, r, respond.Payload{Data: data, ETag: etag, TTL: ttl, Source: respond.Cached})
		return
	}

	v, err := build()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := respond.Encode(v, ttl, respond.Fetched)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Cache.Set(key, p.Data, ttl)
	respond.Serve(w, r, p)
}

// writeSourced serves a pipeline result. cached is the pipeline's own flag,
// true when the file cache answered, and becomes X-Cache.
func (h *Handler) writeSourced(w http.ResponseWriter, r *http.Request, v any, cached bool) {
	p, err := respond.Encode(v, cache.TTLRoster, respond.SourceOf(cached))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	respond.Serve(w, r, p)
}

// --------------------------------------------------------------------------
// Errors
// --------------------------------------------------------------------------

var (
	errCareerNotLoaded = errors.New("career data not loaded")
	errNoEligible      = errors.New("no eligible players found")
)

// httpError carries an explicit status, code and message.
type httpError struct {
	status  int
	code    string
	message string
}

func (e *httpError) Error() string { return e.message }

func notFound(message string) error {
	return &httpError{status: http.StatusNotFound, code: "NOT_FOUND", message: message}
}

func badRequest(message string) error {
	return &httpError{status: http.StatusBadRequest, code: "INVALID_PARAMETER", message: message}
}

// writeError maps pipeline failures to responses:
//
//	unknown team            404 UNKNOWN_TEAM
//	invalid season / input  400 INVALID_PARAMETER
//	no data                 404 NOT_FOUND
//	provider unavailable    503 UPSTREAM_UNAVAILABLE
//	career pool missing     503 CAREER_DATA_UNAVAILABLE
//	request cancelled       503 REQUEST_CANCELLED
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var he *httpError
	switch {
	case errors.As(err, &he):
		respond.Error(w, he.status, respond.ErrorBody{Code: he.code, Message: he.message})
	case errors.Is(err, roster.ErrUnknownTeam):
		respond.Error(w, http.StatusNotFound, respond.ErrorBody{Code: "UNKNOWN_TEAM", Message: err.Error()})
	case errors.Is(err, provider.ErrInvalidInput):
		respond.Error(w, http.StatusBadRequest, respond.ErrorBody{Code: "INVALID_PARAMETER", Message: err.Error()})
	case errors.Is(err, provider.ErrNoData):
		respond.Error(w, http.StatusNotFound, respond.ErrorBody{Code: "NOT_FOUND", Message: "No data found", Detail: err.Error()})
	case errors.Is(err, provider.ErrUnavailable):
		h.Logger.Warn("Upstream unavailable", "path", r.URL.Path, "error", err)
		respond.Error(w, http.StatusServiceUnavailable, respond.ErrorBody{
			Code: "UPSTREAM_UNAVAILABLE", Message: "Data provider unavailable", Detail: err.Error(),
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.Logger.Info("Request cancelled", "path", r.URL.Path, "error", err)
		respond.Error(w, http.StatusServiceUnavailable, respond.ErrorBody{Code: "REQUEST_CANCELLED", Message: "Request cancelled"})
	case errors.Is(err, errCareerNotLoaded):
		respond.Error(w, http.StatusServiceUnavailable, respond.ErrorBody{Code: "CAREER_DATA_UNAVAILABLE", Message: "Career data not loaded"})
	case errors.Is(err, errNoEligible):
		respond.Error(w, http.StatusNotFound, respond.ErrorBody{Code: "NOT_FOUND", Message: "No eligible players found"})
	default:
		h.Logger.Error("Unhandled error", "path", r.URL.Path, "error", err)
		respond.Error(w, http.StatusInternalServerError, respond.ErrorBody{Code: "INTERNAL", Message: "Internal server error"})
	}
}
