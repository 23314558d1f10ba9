package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/roster"
)

type randomQuery struct {
	MinYear int `validate:"gte=1946,lte=2100"`
	MaxYear int `validate:"gte=1946,lte=2100"`
}

type careerQuery struct {
	Position   string `validate:"omitempty,oneof=QB RB WR TE"`
	CareerFrom int    `validate:"omitempty,gte=1946,lte=2100"`
	CareerTo   int    `validate:"omitempty,gte=1946,lte=2100"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validate.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", provider.ErrInvalidInput, err)
	}
	return nil
}

// queryInt reads an integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}

// pathSeason parses an integer season path segment.
func pathSeason(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("season must be an integer year")
	}
	return n, nil
}

func (h *Handler) parseRandomQuery(r *http.Request) (randomQuery, error) {
	var q randomQuery
	var err error
	if q.MinYear, err = queryInt(r, "min_year", roster.DefaultRandomMinYear); err != nil {
		return q, err
	}
	if q.MaxYear, err = queryInt(r, "max_year", roster.DefaultRandomMaxYear); err != nil {
		return q, err
	}
	return q, h.validateRequest(r.Context(), q)
}

func (h *Handler) parseCareerQuery(r *http.Request) (careerQuery, error) {
	q := careerQuery{Position: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("position")))}
	var err error
	if q.CareerFrom, err = queryInt(r, "career_from", 0); err != nil {
		return q, err
	}
	if q.CareerTo, err = queryInt(r, "career_to", 0); err != nil {
		return q, err
	}
	return q, h.validateRequest(r.Context(), q)
}
