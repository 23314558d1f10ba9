package export

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/ballknowledge-data/internal/filecache"
	"github.com/albapepper/ballknowledge-data/internal/provider"
	"github.com/albapepper/ballknowledge-data/internal/roster"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readJSON(t *testing.T, path string, out any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

// --------------------------------------------------------------------------
// NBA
// --------------------------------------------------------------------------

type fakeNBARosters struct {
	calls []int
}

func (f *fakeNBARosters) TeamRoster(ctx context.Context, teamID int, season string) (*provider.Table, error) {
	f.calls = append(f.calls, teamID)
	return provider.NewTable("CommonTeamRoster",
		[]string{"PLAYER", "NUM", "POSITION", "PLAYER_ID"},
		[][]interface{}{
			{"Vince Carter", "15", "G-F", 1713.0},
			{"Jason Kidd", "5", "G", 467.0},
		}), nil
}

func TestNBAExporter_Run(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	files := filecache.New(t.TempDir(), time.Hour, testLogger())
	files.Write(roster.NBARosterKey("LAL", "2004-05"), map[string]any{"team": "LAL", "season": "2004-05"}, "players", []roster.NBAPlayer{
		{ID: "1000", Name: "Bench Player", PPG: 2.1, IsLowScorer: true},
		{ID: "977", Name: "Kobe Bryant", PPG: 27.6},
	})

	src := &fakeNBARosters{}
	ex := NewNBAExporter(src, files, out, testLogger())
	opts := Options{StartYear: 2004, EndYear: 2004, Teams: []string{"lal", "BKN"}}

	res, err := ex.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Written)
	assert.Equal(t, 1, res.FromCache)
	assert.Equal(t, 1, res.FromAPI)
	assert.Equal(t, 1, res.SeasonFiles)
	assert.Equal(t, []int{1610612751}, src.calls)

	var lal rosterFile[string, roster.NBAPlayer]
	readJSON(t, filepath.Join(out, "rosters", "LAL_2004-05.json"), &lal)
	assert.Equal(t, "Kobe Bryant", lal.Players[0].Name, "cached rosters are sorted by ppg")

	var njn rosterFile[string, roster.NBAPlayer]
	readJSON(t, filepath.Join(out, "rosters", "NJN_2004-05.json"), &njn)
	assert.Equal(t, "NJN", njn.Team)
	require.Len(t, njn.Players, 2)
	assert.Equal(t, 0.0, njn.Players[0].PPG)

	var players []roster.SeasonPlayer
	readJSON(t, filepath.Join(out, "players", "2004-05.json"), &players)
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Bench Player", "Jason Kidd", "Kobe Bryant", "Vince Carter"}, names)

	again, err := ex.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Skipped)
	assert.Equal(t, 0, again.Written)
	assert.Len(t, src.calls, 1, "existing output is not refetched")

	forced, err := ex.Run(context.Background(), Options{StartYear: 2004, EndYear: 2004, Teams: []string{"BKN"}, Force: true})
	require.NoError(t, err)
	assert.Equal(t, 1, forced.Written)
	assert.Len(t, src.calls, 2)
}

// --------------------------------------------------------------------------
// NFL
// --------------------------------------------------------------------------

type fakeNFLRosters struct {
	tables map[int]*provider.Table
	calls  int
}

func (f *fakeNFLRosters) SeasonalRosters(ctx context.Context, year int) (*provider.Table, error) {
	f.calls++
	if tbl, ok := f.tables[year]; ok {
		return tbl, nil
	}
	return nil, provider.Unavailable("rosters", assert.AnError)
}

func (f *fakeNFLRosters) WeeklyRosters(ctx context.Context, year int) (*provider.Table, error) {
	return nil, provider.NoData("weekly")
}

func nflTable() *provider.Table {
	return provider.NewTable("roster_2015",
		[]string{"season", "team", "player_id", "player_name", "position", "jersey_number", "status"},
		[][]interface{}{
			{"2015", "SD", "00-0020531", "Philip Rivers", "QB", "17", "ACT"},
			{"2015", "SD", "00-0025399", "Antonio Gates", "TE", "85", "ACT"},
			{"2015", "SD", "00-0099999", "Cut Guy", "WR", "19", "CUT"},
			{"2015", "KC", "00-0023436", "Alex Smith", "QB", "11", "ACT"},
		})
}

func TestNFLExporter_Run(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	files := filecache.New(t.TempDir(), time.Hour, testLogger())
	files.Write(roster.NFLRosterKey("KC", 2015), map[string]any{"team": "KC", "season": 2015}, "players", []roster.NFLPlayer{
		{ID: "00-0023436", Name: "Alex Smith", Position: "QB", Number: "11", Unit: "Offense"},
	})

	src := &fakeNFLRosters{tables: map[int]*provider.Table{2015: nflTable()}}
	ex := NewNFLExporter(src, files, out, testLogger())

	res, err := ex.Run(context.Background(), Options{StartYear: 2015, EndYear: 2016, Teams: []string{"KC", "LAC"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.FromCache)
	assert.Equal(t, 1, res.FromAPI)
	assert.Equal(t, 2, res.Written)
	assert.Equal(t, []int{2016}, res.FailedYears)
	assert.Equal(t, 1, res.SeasonFiles)

	var lac rosterFile[int, roster.NFLPlayer]
	readJSON(t, filepath.Join(out, "rosters", "LAC_2015.json"), &lac)
	assert.Equal(t, "LAC", lac.Team)
	assert.Equal(t, 2015, lac.Season)
	require.Len(t, lac.Players, 2, "cut players are left out")

	var players []roster.SeasonPlayer
	readJSON(t, filepath.Join(out, "players", "2015.json"), &players)
	assert.Len(t, players, 4)

	assert.NoFileExists(t, filepath.Join(out, "rosters", "KC_2016.json"))
}

func TestNFLExporter_PlayerListFromCacheOnlyYear(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	files := filecache.New(t.TempDir(), time.Hour, testLogger())
	files.Write(roster.NFLRosterKey("KC", 2019), nil, "players", []roster.NFLPlayer{
		{ID: "00-0033873", Name: "Patrick Mahomes", Position: "QB"},
		{ID: "00-0030506", Name: "Travis Kelce", Position: "TE"},
	})

	src := &fakeNFLRosters{}
	res, err := NewNFLExporter(src, files, out, testLogger()).Run(context.Background(),
		Options{StartYear: 2019, EndYear: 2019, Teams: []string{"KC"}})
	require.NoError(t, err)
	assert.Equal(t, 0, src.calls)
	assert.Equal(t, 1, res.SeasonFiles)

	var players []roster.SeasonPlayer
	readJSON(t, filepath.Join(out, "players", "2019.json"), &players)
	require.Len(t, players, 2)
	assert.Equal(t, "Patrick Mahomes", players[0].Name)
}

func TestExportResult_Summary(t *testing.T) {
	t.Parallel()

	r := ExportResult{Written: 3, FromCache: 2, FromAPI: 1, FailedYears: []int{2001}}
	r.AddErrorf("boom %d", 1)
	assert.Equal(t, "written=3 from_cache=2 from_api=1 skipped=0 season_files=0 errors=1 failed_years=[2001]", r.Summary())
}
