package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoricalNBA(t *testing.T) {
	t.Parallel()

	cases := []struct {
		current string
		year    int
		want    string
	}{
		{"BKN", 2004, "NJN"},
		{"BKN", 2012, "BKN"},
		{"OKC", 2007, "SEA"},
		{"OKC", 2008, "OKC"},
		{"NOP", 2012, "NOH"},
		{"MEM", 2000, "VAN"},
		{"LAL", 1999, "LAL"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HistoricalNBA(tc.current, tc.year), "%s %d", tc.current, tc.year)
	}
}

func TestValidNBASeason(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidNBASeason("2023-24"))
	assert.False(t, ValidNBASeason("2023"))
	assert.False(t, ValidNBASeason("2023/24"))
	assert.False(t, ValidNBASeason("2023-2024"))
	assert.False(t, ValidNBASeason(""))
}

func TestFormatNBASeason(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2023-24", FormatNBASeason(2023))
	assert.Equal(t, "1999-00", FormatNBASeason(1999))
	assert.Equal(t, "2009-10", FormatNBASeason(2009))

	year, err := NBASeasonYear("1999-00")
	assert.NoError(t, err)
	assert.Equal(t, 1999, year)

	_, err = NBASeasonYear("99-00")
	assert.Error(t, err)
}

func TestFindNFLTeam(t *testing.T) {
	t.Parallel()

	available := map[string]bool{"STL": true, "OAK": true, "KC": true}

	got, ok := FindNFLTeam("KC", available)
	assert.True(t, ok)
	assert.Equal(t, "KC", got)

	got, ok = FindNFLTeam("LAR", available)
	assert.True(t, ok)
	assert.Equal(t, "STL", got)

	got, ok = FindNFLTeam("LV", available)
	assert.True(t, ok)
	assert.Equal(t, "OAK", got)

	_, ok = FindNFLTeam("SF", available)
	assert.False(t, ok)
}

func TestCurrentNFL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "LAR", CurrentNFL("SL"))
	assert.Equal(t, "LAC", CurrentNFL("SD"))
	assert.Equal(t, "KC", CurrentNFL("KC"))
}

func TestUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, UnitOffense, Unit("qb"))
	assert.Equal(t, UnitDefense, Unit("EDGE"))
	assert.Equal(t, UnitSpecial, Unit("LS"))
	assert.Equal(t, UnitOffense, Unit(""))
	assert.Less(t, UnitOrder(UnitOffense), UnitOrder(UnitDefense))
	assert.Less(t, UnitOrder(UnitDefense), UnitOrder(UnitSpecial))
}

func TestTeamTables(t *testing.T) {
	t.Parallel()

	assert.Len(t, NBAAbbreviations(), 30)
	assert.Len(t, NFLAbbreviations(), 32)
	for abbr, team := range NFLTeams {
		assert.Equal(t, abbr, team.Abbreviation)
	}
}
