// Package export writes the static roster artifacts the frontend ships with:
// one file per team and season plus one autocomplete player list per season.
//
//	<out>/rosters/{TEAM}_{SEASON}.json  {"team":...,"season":...,"players":[...]}
//	<out>/players/{SEASON}.json         [{"id":...,"name":...}, ...]
//
// Exports read the API's file cache first and only call the providers for
// what the cache lacks. Existing output is kept unless Force is set.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/roster"
)

// Options selects what to export.
type Options struct {
	StartYear int
	EndYear   int
	Teams     []string // current abbreviations; empty means all
	Force     bool     // overwrite existing output
}

// Years returns StartYear through EndYear.
func (o Options) Years() []int {
	var years []int
	for y := o.StartYear; y <= o.EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// selectTeams filters all by o.Teams, keeping the order of all.
func (o Options) selectTeams(all []string) []string {
	if len(o.Teams) == 0 {
		return all
	}
	want := make(map[string]bool, len(o.Teams))
	for _, t := range o.Teams {
		want[strings.ToUpper(strings.TrimSpace(t))] = true
	}
	var out []string
	for _, t := range all {
		if want[t] {
			out = append(out, t)
		}
	}
	return out
}

// ExportResult tracks counts and errors from an export run.
type ExportResult struct {
	Written     int // roster files written
	FromCache   int
	FromAPI     int
	Skipped     int // roster files that already existed
	SeasonFiles int // player list files written
	FailedYears []int
	Errors      []string
}

// AddErrorf records a formatted error message.
func (r *ExportResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *ExportResult) Summary() string {
	s := fmt.Sprintf("written=%d from_cache=%d from_api=%d skipped=%d season_files=%d errors=%d",
		r.Written, r.FromCache, r.FromAPI, r.Skipped, r.SeasonFiles, len(r.Errors))
	if len(r.FailedYears) > 0 {
		s += fmt.Sprintf(" failed_years=%v", r.FailedYears)
	}
	return s
}

// rosterFile is the on-disk shape of one exported roster.
type rosterFile[S, P any] struct {
	Team    string `json:"team"`
	Season  S      `json:"season"`
	Players []P    `json:"players"`
}

func rosterPath(out, team, season string) string {
	return filepath.Join(out, "rosters", team+"_"+season+".json")
}

func playersPath(out, season string) string {
	return filepath.Join(out, "players", season+".json")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

func writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return filecache.WriteFileAtomic(path, data)
}

// readPlayers returns the id/name pairs of an exported roster file.
func readPlayers(path string) ([]roster.SeasonPlayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f rosterFile[json.RawMessage, roster.SeasonPlayer]
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return f.Players, nil
}

// seasonList accumulates a season's autocomplete entries, one per id.
type seasonList map[provider.PlayerID]string

func (l seasonList) add(id provider.PlayerID, name string) {
	if name != "" {
		l[id] = name
	}
}

func (l seasonList) sorted() []roster.SeasonPlayer {
	out := make([]roster.SeasonPlayer, 0, len(l))
	for id, name := range l {
		out = append(out, roster.SeasonPlayer{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
