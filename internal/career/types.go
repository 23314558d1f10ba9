// Package career builds and serves the career pools behind career mode: one
// compact JSON array per sport holding every eligible player's season log
// and bio.
//
// Pools are built offline (cmd/ingest) and loaded read-only by the API. Every
// entry in a pool has at least MinPoolSeasons seasons.
package career

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

// MinPoolSeasons is the minimum number of seasons of any pool entry.
const MinPoolSeasons = 2

// Entry is one player in a career pool.
type Entry[B any] struct {
	PlayerID   provider.PlayerID `json:"player_id"`
	PlayerName string            `json:"player_name"`
	Position   string            `json:"position,omitempty"`
	Seasons    []SeasonRow       `json:"seasons"`
	Bio        B                 `json:"bio"`
}

// NBABio is the biography block of a basketball entry.
type NBABio struct {
	Height    string `json:"height"`
	Weight    int    `json:"weight"`
	School    string `json:"school"`
	Exp       int    `json:"exp"`
	DraftYear int    `json:"draft_year"`
}

// NFLBio is the biography block of a football entry.
type NFLBio struct {
	Height      string `json:"height"`
	Weight      int    `json:"weight"`
	College     string `json:"college"`
	YearsExp    int    `json:"years_exp"`
	DraftClub   string `json:"draft_club"`
	DraftNumber int    `json:"draft_number"`
}

type (
	NBAEntry = Entry[NBABio]
	NFLEntry = Entry[NFLBio]
)

// FirstYear returns the start year of the earliest season, or 0.
func (e *Entry[B]) FirstYear() int {
	first := 0
	for _, s := range e.Seasons {
		if y := s.StartYear(); y > 0 && (first == 0 || y < first) {
			first = y
		}
	}
	return first
}

// LastYear returns the start year of the latest season, or 0.
func (e *Entry[B]) LastYear() int {
	last := 0
	for _, s := range e.Seasons {
		if y := s.StartYear(); y > last {
			last = y
		}
	}
	return last
}

// HasSeason reports whether the entry already carries season.
func (e *Entry[B]) HasSeason(season string) bool {
	for _, s := range e.Seasons {
		if s.Season == season {
			return true
		}
	}
	return false
}

// AddSeason appends row and keeps seasons in label order.
func (e *Entry[B]) AddSeason(row SeasonRow) {
	e.Seasons = append(e.Seasons, row)
	sort.SliceStable(e.Seasons, func(i, j int) bool { return e.Seasons[i].Season < e.Seasons[j].Season })
}

// --------------------------------------------------------------------------
// Season rows
// --------------------------------------------------------------------------

// SeasonRow is one season of a player's log. Season is "2003-04" for
// basketball and "2010" for football; Stats holds the sport-specific
// numbers, which serialize flat next to season, team and gp:
//
//	{"season":"2003-04","team":"CLE","gp":79,"pts":20.9,"reb":5.5,...}
type SeasonRow struct {
	Season string
	Team   string
	GP     int
	Stats  map[string]float64
}

var fixedKeys = map[string]bool{"season": true, "team": true, "gp": true}

// StartYear parses the leading year of the season label.
func (s SeasonRow) StartYear() int {
	if len(s.Season) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s.Season[:4])
	if err != nil {
		return 0
	}
	return y
}

func (s SeasonRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeField := func(k string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("season row field %s: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return nil
	}

	if err := writeField("season", s.Season); err != nil {
		return nil, err
	}
	if err := writeField("team", s.Team); err != nil {
		return nil, err
	}
	if err := writeField("gp", s.GP); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(s.Stats))
	for k := range s.Stats {
		if !fixedKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writeField(k, s.Stats[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *SeasonRow) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("season row: %w", err)
	}

	*s = SeasonRow{Stats: make(map[string]float64, len(raw))}
	for k, v := range raw {
		var val interface{}
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.UseNumber()
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("season row field %s: %w", k, err)
		}
		switch k {
		case "season":
			s.Season = provider.String(val, "")
		case "team":
			s.Team = provider.String(val, "")
		case "gp":
			s.GP = provider.Int(val)
		default:
			if f, ok := provider.ExtractValue(val); ok {
				if _, isNum := val.(json.Number); isNum {
					s.Stats[k] = f
				}
			}
		}
	}
	return nil
}
