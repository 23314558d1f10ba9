// Package teams is the static franchise reference table shared by every
// pipeline: current abbreviations, provider IDs, relocation history, and the
// provider-specific aliases older seasons use.
package teams

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// NBA
// --------------------------------------------------------------------------

// NBATeams maps the 30 current NBA abbreviations to stats.nba.com team IDs.
var NBATeams = map[string]int{
	"ATL": 1610612737, "BOS": 1610612738, "BKN": 1610612751, "CHA": 1610612766,
	"CHI": 1610612741, "CLE": 1610612739, "DAL": 1610612742, "DEN": 1610612743,
	"DET": 1610612765, "GSW": 1610612744, "HOU": 1610612745, "IND": 1610612754,
	"LAC": 1610612746, "LAL": 1610612747, "MEM": 1610612763, "MIA": 1610612748,
	"MIL": 1610612749, "MIN": 1610612750, "NOP": 1610612740, "NYK": 1610612752,
	"OKC": 1610612760, "ORL": 1610612753, "PHI": 1610612755, "PHX": 1610612756,
	"POR": 1610612757, "SAC": 1610612758, "SAS": 1610612759, "TOR": 1610612761,
	"UTA": 1610612762, "WAS": 1610612764,
}

type abbrStep struct {
	Abbr     string
	FromYear int
}

// nbaHistory lists relocated/renamed franchises, newest identity first.
var nbaHistory = map[string][]abbrStep{
	"BKN": {{"BKN", 2012}, {"NJN", 0}},
	"OKC": {{"OKC", 2008}, {"SEA", 0}},
	"NOP": {{"NOP", 2013}, {"NOH", 0}},
	"MEM": {{"MEM", 2001}, {"VAN", 0}},
}

// HistoricalNBA returns the abbreviation a franchise used in the season that
// starts in seasonYear ("BKN", 2004 -> "NJN").
func HistoricalNBA(current string, seasonYear int) string {
	for _, step := range nbaHistory[current] {
		if seasonYear >= step.FromYear {
			return step.Abbr
		}
	}
	return current
}

// NBAAbbreviations returns the current NBA abbreviations in sorted order.
func NBAAbbreviations() []string {
	return sortedKeys(NBATeams)
}

// ValidNBASeason reports whether s has the "YYYY-YY" shape: seven characters
// with a dash at index 4.
func ValidNBASeason(s string) bool {
	return len(s) == 7 && s[4] == '-'
}

// FormatNBASeason turns a start year into a season label (2023 -> "2023-24").
func FormatNBASeason(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// NBASeasonYear returns the start year of a season label.
func NBASeasonYear(season string) (int, error) {
	if !ValidNBASeason(season) {
		return 0, fmt.Errorf("invalid season label %q", season)
	}
	return strconv.Atoi(season[:4])
}

// --------------------------------------------------------------------------
// NFL
// --------------------------------------------------------------------------

type NFLTeam struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

// NFLTeams holds the 32 current franchises keyed by current abbreviation.
var NFLTeams = map[string]NFLTeam{
	"BUF": {"BUF", "Buffalo Bills", "AFC", "East"},
	"MIA": {"MIA", "Miami Dolphins", "AFC", "East"},
	"NE":  {"NE", "New England Patriots", "AFC", "East"},
	"NYJ": {"NYJ", "New York Jets", "AFC", "East"},
	"BAL": {"BAL", "Baltimore Ravens", "AFC", "North"},
	"CIN": {"CIN", "Cincinnati Bengals", "AFC", "North"},
	"CLE": {"CLE", "Cleveland Browns", "AFC", "North"},
	"PIT": {"PIT", "Pittsburgh Steelers", "AFC", "North"},
	"HOU": {"HOU", "Houston Texans", "AFC", "South"},
	"IND": {"IND", "Indianapolis Colts", "AFC", "South"},
	"JAX": {"JAX", "Jacksonville Jaguars", "AFC", "South"},
	"TEN": {"TEN", "Tennessee Titans", "AFC", "South"},
	"DEN": {"DEN", "Denver Broncos", "AFC", "West"},
	"KC":  {"KC", "Kansas City Chiefs", "AFC", "West"},
	"LV":  {"LV", "Las Vegas Raiders", "AFC", "West"},
	"LAC": {"LAC", "Los Angeles Chargers", "AFC", "West"},
	"DAL": {"DAL", "Dallas Cowboys", "NFC", "East"},
	"NYG": {"NYG", "New York Giants", "NFC", "East"},
	"PHI": {"PHI", "Philadelphia Eagles", "NFC", "East"},
	"WAS": {"WAS", "Washington Commanders", "NFC", "East"},
	"CHI": {"CHI", "Chicago Bears", "NFC", "North"},
	"DET": {"DET", "Detroit Lions", "NFC", "North"},
	"GB":  {"GB", "Green Bay Packers", "NFC", "North"},
	"MIN": {"MIN", "Minnesota Vikings", "NFC", "North"},
	"ATL": {"ATL", "Atlanta Falcons", "NFC", "South"},
	"CAR": {"CAR", "Carolina Panthers", "NFC", "South"},
	"NO":  {"NO", "New Orleans Saints", "NFC", "South"},
	"TB":  {"TB", "Tampa Bay Buccaneers", "NFC", "South"},
	"ARI": {"ARI", "Arizona Cardinals", "NFC", "West"},
	"LAR": {"LAR", "Los Angeles Rams", "NFC", "West"},
	"SF":  {"SF", "San Francisco 49ers", "NFC", "West"},
	"SEA": {"SEA", "Seattle Seahawks", "NFC", "West"},
}

// nflAliases lists every abbreviation nflverse has used for a franchise.
var nflAliases = map[string][]string{
	"LAR": {"LA", "LAR", "SL", "STL"},
	"LV":  {"LV", "OAK"},
	"LAC": {"LAC", "SD"},
	"ARI": {"ARI", "ARZ"},
	"BAL": {"BAL", "BLT"},
	"CLE": {"CLE", "CLV"},
	"HOU": {"HOU", "HST"},
}

var nflAliasToCurrent = func() map[string]string {
	m := make(map[string]string)
	for current, aliases := range nflAliases {
		for _, a := range aliases {
			m[a] = current
		}
	}
	return m
}()

// NFLAbbreviations returns the current NFL abbreviations in sorted order.
func NFLAbbreviations() []string {
	return sortedKeys(NFLTeams)
}

// CurrentNFL maps a provider abbreviation to the current franchise
// abbreviation. Unknown values are returned unchanged.
func CurrentNFL(abbr string) string {
	if cur, ok := nflAliasToCurrent[abbr]; ok {
		return cur
	}
	return abbr
}

// FindNFLTeam returns the abbreviation used for team in the provider data,
// trying the current abbreviation first and then every known alias.
func FindNFLTeam(team string, available map[string]bool) (string, bool) {
	if available[team] {
		return team, true
	}
	for _, alias := range nflAliases[team] {
		if available[alias] {
			return alias, true
		}
	}
	return "", false
}

// Position units.
const (
	UnitOffense = "Offense"
	UnitDefense = "Defense"
	UnitSpecial = "Special Teams"
)

var (
	offensePositions = setOf("QB", "RB", "FB", "WR", "TE", "T", "G", "C", "OL", "OT", "OG", "LT", "LG", "RT", "RG")
	defensePositions = setOf("DE", "DT", "NT", "DL", "LB", "ILB", "OLB", "MLB", "CB", "S", "SS", "FS", "DB", "EDGE")
	specialPositions = setOf("K", "P", "LS", "KR", "PR")
)

// Unit classifies a roster position. Unknown positions count as offense.
func Unit(position string) string {
	pos := strings.ToUpper(position)
	switch {
	case offensePositions[pos]:
		return UnitOffense
	case defensePositions[pos]:
		return UnitDefense
	case specialPositions[pos]:
		return UnitSpecial
	default:
		return UnitOffense
	}
}

// UnitOrder is the display order of units on a roster.
func UnitOrder(unit string) int {
	switch unit {
	case UnitOffense:
		return 0
	case UnitDefense:
		return 1
	case UnitSpecial:
		return 2
	default:
		return 3
	}
}

func setOf(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
