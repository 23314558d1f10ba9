package career

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

var careerHeaders = []string{"SEASON_ID", "TEAM_ABBREVIATION", "GP", "MIN", "PTS", "REB", "AST", "STL", "BLK", "FG_PCT", "FG3_PCT"}

type fakeNBA struct {
	dash      map[string]*provider.Table
	directory *provider.Table
	careers   map[provider.PlayerID]*provider.Table

	careerCalls []provider.PlayerID
	infoErr     error
	onCareer    func(n int) error
}

func (f *fakeNBA) LeagueDashPlayerStats(ctx context.Context, season string) (*provider.Table, error) {
	if tbl, ok := f.dash[season]; ok {
		return tbl, nil
	}
	return nil, provider.NoData("league dash " + season)
}

func (f *fakeNBA) AllPlayers(ctx context.Context, season string) (*provider.Table, error) {
	if f.directory == nil {
		return nil, provider.Unavailable("all players", assert.AnError)
	}
	return f.directory, nil
}

func (f *fakeNBA) PlayerCareer(ctx context.Context, id provider.PlayerID) (*provider.Table, error) {
	f.careerCalls = append(f.careerCalls, id)
	if f.onCareer != nil {
		if err := f.onCareer(len(f.careerCalls)); err != nil {
			return nil, err
		}
	}
	if tbl, ok := f.careers[id]; ok {
		return tbl, nil
	}
	return nil, provider.NoData("career")
}

func (f *fakeNBA) PlayerInfo(ctx context.Context, id provider.PlayerID) (*provider.Table, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return provider.NewTable("CommonPlayerInfo",
		[]string{"HEIGHT", "WEIGHT", "SCHOOL", "SEASON_EXP", "DRAFT_YEAR"},
		[][]interface{}{{"6-9", "250", "St. Vincent-St. Mary HS (OH)", 21.0, "2003"}}), nil
}

func careerTable(rows ...[]interface{}) *provider.Table {
	return provider.NewTable("SeasonTotalsRegularSeason", careerHeaders, rows)
}

func seasonLine(season, team string, pts float64) []interface{} {
	return []interface{}{season, team, 70.0, 35.04, pts, 7.25, 6.91, 1.62, 0.71, 0.4721, 0.3449}
}

func twoSeasons() *provider.Table {
	return careerTable(seasonLine("2003-04", "CLE", 20.9), seasonLine("2004-05", "CLE", 27.2))
}

// productiveSetup has three eligible players (1, 2, 3) and two that fail the
// directory phase: 4 has a short career and 5 never scored 10 a game.
func productiveSetup() *fakeNBA {
	dash := provider.NewTable("LeagueDashPlayerStats",
		[]string{"PLAYER_ID", "PLAYER_NAME", "GP", "PTS"},
		[][]interface{}{
			{1.0, "One", 70.0, 25.0},
			{2.0, "Two", 70.0, 12.0},
			{3.0, "Three", 70.0, 10.0},
			{4.0, "Four", 70.0, 18.0},
			{5.0, "Five", 70.0, 9.99},
		})
	directory := provider.NewTable("CommonAllPlayers",
		[]string{"PERSON_ID", "DISPLAY_FIRST_LAST", "FROM_YEAR", "TO_YEAR"},
		[][]interface{}{
			{1.0, "Player One", "2003", "2015"},
			{2.0, "Player Two", "2001", "2005"},
			{3.0, "", "1999", "2008"},
			{4.0, "Player Four", "2002", "2005"},
			{5.0, "Player Five", "2000", "2012"},
			{6.0, "Player Six", "1970", "1979"},
		})
	return &fakeNBA{
		dash:      map[string]*provider.Table{"2003-04": dash},
		directory: directory,
		careers: map[provider.PlayerID]*provider.Table{
			"1": twoSeasons(),
			"2": twoSeasons(),
			"3": twoSeasons(),
		},
	}
}

func TestGroupNBASeasons_TradedSeasonUsesTotals(t *testing.T) {
	t.Parallel()

	tbl := careerTable(
		seasonLine("1996-97", "HOU", 12.0),
		seasonLine("1997-98", "HOU", 8.0),
		seasonLine("1997-98", "PHI", 10.0),
		seasonLine("1997-98", "TOT", 9.04),
		seasonLine("1998-99", "PHI", 14.0),
	)

	got := GroupNBASeasons(tbl)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"1996-97", "1997-98", "1998-99"}, []string{got[0].Season, got[1].Season, got[2].Season})
	assert.Equal(t, "HOU/PHI", got[1].Team)
	assert.Equal(t, 9.0, got[1].Stats["pts"])
	assert.Equal(t, 0.472, got[1].Stats["fg_pct"])
	assert.Equal(t, 35.0, got[1].Stats["min"])
	assert.Equal(t, 70, got[1].GP)
}

func TestFetchNBACareer(t *testing.T) {
	t.Parallel()

	t.Run("single season is discarded", func(t *testing.T) {
		src := &fakeNBA{careers: map[provider.PlayerID]*provider.Table{
			"9": careerTable(seasonLine("2019-20", "NYK", 11.0)),
		}}
		entry, err := FetchNBACareer(context.Background(), src, Candidate{ID: "9", Name: "Nine"}, nil)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("bio failure keeps the career", func(t *testing.T) {
		src := &fakeNBA{
			careers: map[provider.PlayerID]*provider.Table{"1": twoSeasons()},
			infoErr: provider.Unavailable("info", assert.AnError),
		}
		entry, err := FetchNBACareer(context.Background(), src, Candidate{ID: "1", Name: "One"}, testLogger())
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Len(t, entry.Seasons, 2)
		assert.Equal(t, NBABio{}, entry.Bio)
	})

	t.Run("bio is parsed", func(t *testing.T) {
		src := &fakeNBA{careers: map[provider.PlayerID]*provider.Table{"1": twoSeasons()}}
		entry, err := FetchNBACareer(context.Background(), src, Candidate{ID: "1", Name: "One"}, nil)
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, NBABio{Height: "6-9", Weight: 250, School: "St. Vincent-St. Mary HS (OH)", Exp: 21, DraftYear: 2003}, entry.Bio)
	})
}

func TestDraftYear(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2003, draftYear("2003"))
	assert.Equal(t, 0, draftYear("Undrafted"))
	assert.Equal(t, 0, draftYear(""))
}

func TestNBABuilder_Eligible(t *testing.T) {
	t.Parallel()

	b := NewNBABuilder(productiveSetup(), "", 2025, testLogger())
	got, err := b.Eligible(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{ID: "1", Name: "Player One"},
		{ID: "2", Name: "Player Two"},
		{ID: "3", Name: "Three"},
	}, got)
}

func TestNBABuilder_DirectoryFailureIsFatal(t *testing.T) {
	t.Parallel()

	src := productiveSetup()
	src.directory = nil
	_, err := NewNBABuilder(src, "", 2025, testLogger()).Eligible(context.Background())
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestNBABuilder_BuildWritesPoolAndRemovesCheckpoint(t *testing.T) {
	t.Parallel()

	out := t.TempDir() + "/nba_careers.json"
	src := productiveSetup()
	src.careers["3"] = careerTable(seasonLine("2003-04", "MIA", 10.0))

	b := NewNBABuilder(src, out, 2025, testLogger())
	b.checkpointEvery = 1

	res, err := b.Build(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Candidates)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 1, res.Discarded)

	pool, err := LoadPool[NBABio](out)
	require.NoError(t, err)
	require.Len(t, pool, 2)
	for _, e := range pool {
		assert.GreaterOrEqual(t, len(e.Seasons), MinPoolSeasons)
	}
	_, err = os.Stat(PartialPath(out))
	assert.True(t, os.IsNotExist(err))
}

func TestNBABuilder_FailedCandidateIsRecordedAndSkipped(t *testing.T) {
	t.Parallel()

	out := t.TempDir() + "/nba_careers.json"
	src := productiveSetup()
	src.onCareer = func(n int) error {
		if n == 2 {
			return provider.Unavailable("player career", assert.AnError)
		}
		return nil
	}

	res, err := NewNBABuilder(src, out, 2025, testLogger()).Build(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, src.careerCalls, 3)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 1, res.Discarded)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "(2)")

	pool, err := LoadPool[NBABio](out)
	require.NoError(t, err)
	ids := make([]provider.PlayerID, 0, len(pool))
	for _, e := range pool {
		ids = append(ids, e.PlayerID)
	}
	assert.ElementsMatch(t, []provider.PlayerID{"1", "3"}, ids)
}

func TestNBABuilder_ResumeSkipsCheckpointedPlayers(t *testing.T) {
	t.Parallel()

	out := t.TempDir() + "/nba_careers.json"
	done := []NBAEntry{
		{PlayerID: "1", PlayerName: "Player One", Seasons: GroupNBASeasons(twoSeasons())},
		{PlayerID: "2", PlayerName: "Player Two", Seasons: GroupNBASeasons(twoSeasons())},
	}
	require.NoError(t, SavePartial(out, done))

	src := productiveSetup()
	res, err := NewNBABuilder(src, out, 2025, testLogger()).Build(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, []provider.PlayerID{"3"}, src.careerCalls)
	assert.Equal(t, 2, res.Resumed)
	assert.Equal(t, 1, res.Added)

	pool, err := LoadPool[NBABio](out)
	require.NoError(t, err)
	assert.Len(t, pool, 3)
}

func TestNBABuilder_WithoutResumeIgnoresCheckpoint(t *testing.T) {
	t.Parallel()

	out := t.TempDir() + "/nba_careers.json"
	require.NoError(t, SavePartial(out, []NBAEntry{{PlayerID: "1", Seasons: GroupNBASeasons(twoSeasons())}}))

	src := productiveSetup()
	_, err := NewNBABuilder(src, out, 2025, testLogger()).Build(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, src.careerCalls, 3)
}

func TestNBABuilder_CancelCheckpoints(t *testing.T) {
	t.Parallel()

	out := t.TempDir() + "/nba_careers.json"
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := productiveSetup()
	src.onCareer = func(n int) error {
		if n == 2 {
			cancel()
			return ctx.Err()
		}
		return nil
	}

	_, err := NewNBABuilder(src, out, 2025, testLogger()).Build(ctx, false)
	require.ErrorIs(t, err, context.Canceled)

	partial, err := LoadPartial[NBABio](out)
	require.NoError(t, err)
	require.Len(t, partial, 1)
	assert.Equal(t, provider.PlayerID("1"), partial[0].PlayerID)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "final pool must not be written on cancel")
}
