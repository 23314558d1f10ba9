// Package roster fetches team rosters from the providers, enriches them, and
// keeps the results in the file cache.
//
// Inputs are validated before any provider call. League-wide tables that
// many rosters share (per-game averages, season rosters, schedules) are kept
// in a cache.Memo for the life of the process.
package roster

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

var (
	// ErrUnknownTeam is returned for an abbreviation outside the team table.
	ErrUnknownTeam = fmt.Errorf("unknown team: %w", provider.ErrInvalidInput)
	// ErrInvalidSeason is returned for a malformed or out-of-range season.
	ErrInvalidSeason = fmt.Errorf("invalid season: %w", provider.ErrInvalidInput)
)

// IntN draws a uniform integer in [0, n).
type IntN func(n int) int

func orDefault(intn IntN) IntN {
	if intn == nil {
		return rand.IntN
	}
	return intn
}

// SeasonPlayer is one entry of a season-wide player list.
type SeasonPlayer struct {
	ID   provider.PlayerID `json:"id"`
	Name string            `json:"name"`
}

// isNoData reports whether the provider answered but had nothing.
func isNoData(err error) bool {
	return errors.Is(err, provider.ErrNoData)
}
