package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/ballknowledge-data/internal/career"
	"github.com/albapepper/ballknowledge-data/internal/db"
)

type execCall struct {
	stmt string
	args []any
}

type fakeExec struct {
	calls  []execCall
	failOn func(stmt string, args []any) error
}

func (f *fakeExec) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{stmt: sql, args: args})
	if f.failOn != nil {
		if err := f.failOn(sql, args); err != nil {
			return pgconn.CommandTag{}, err
		}
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pool() []career.NFLEntry {
	return []career.NFLEntry{
		{
			PlayerID: "00-0033873", PlayerName: "Patrick Mahomes", Position: "QB",
			Seasons: []career.SeasonRow{
				{Season: "2017", Team: "KC", GP: 1, Stats: map[string]float64{"passing_yards": 284}},
				{Season: "2018", Team: "KC", GP: 16, Stats: map[string]float64{"passing_yards": 5097}},
			},
			Bio: career.NFLBio{Height: "6-2", College: "Texas Tech"},
		},
		{
			PlayerID: "00-0030506", PlayerName: "Travis Kelce", Position: "TE",
			Seasons: []career.SeasonRow{{Season: "2013", Team: "KC"}, {Season: "2014", Team: "KC", GP: 16}},
		},
	}
}

func TestPublishPool(t *testing.T) {
	t.Parallel()

	ex := &fakeExec{}
	res := PublishPool(context.Background(), ex, "NFL", pool(), quietLogger())
	assert.Equal(t, 2, res.PlayersUpserted)
	assert.Equal(t, 4, res.SeasonsUpserted)
	assert.Empty(t, res.Errors)
	require.Len(t, ex.calls, 6)

	player := ex.calls[0]
	assert.Equal(t, db.StmtUpsertPlayer, player.stmt)
	assert.Equal(t, "00-0033873", player.args[0])
	assert.Equal(t, "NFL", player.args[1])
	assert.Equal(t, "QB", player.args[3])
	assert.Equal(t, 2017, player.args[4])
	assert.Equal(t, 2018, player.args[5])
	assert.JSONEq(t, `{"height":"6-2","weight":0,"college":"Texas Tech","years_exp":0,"draft_club":"","draft_number":0}`, string(player.args[6].([]byte)))

	season := ex.calls[1]
	assert.Equal(t, db.StmtUpsertSeason, season.stmt)
	assert.Equal(t, []any{"00-0033873", "NFL", "2017", "KC", 1}, season.args[:5])
	assert.JSONEq(t, `{"passing_yards":284}`, string(season.args[5].([]byte)))

	assert.JSONEq(t, `{}`, string(ex.calls[4].args[5].([]byte)), "missing stats publish as an empty object")
}

func TestPublishPool_FailedPlayerSkipsSeasons(t *testing.T) {
	t.Parallel()

	ex := &fakeExec{failOn: func(stmt string, args []any) error {
		if stmt == db.StmtUpsertPlayer && args[0] == "00-0033873" {
			return errors.New("constraint violation")
		}
		return nil
	}}
	res := PublishPool(context.Background(), ex, "NFL", pool(), quietLogger())
	assert.Equal(t, 1, res.PlayersUpserted)
	assert.Equal(t, 2, res.SeasonsUpserted)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "00-0033873")
}

func TestPublishPool_NBAPositionIsNull(t *testing.T) {
	t.Parallel()

	ex := &fakeExec{}
	entries := []career.NBAEntry{{PlayerID: "2544", PlayerName: "LeBron James"}}
	res := PublishPool(context.Background(), ex, "NBA", entries, quietLogger())
	assert.Equal(t, 1, res.PlayersUpserted)
	assert.Nil(t, ex.calls[0].args[3])
	assert.Nil(t, ex.calls[0].args[4])
}

func TestPublishPool_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ex := &fakeExec{}
	res := PublishPool(ctx, ex, "NFL", pool(), quietLogger())
	assert.Empty(t, ex.calls)
	assert.Len(t, res.Errors, 1)
}

func TestSeedResult(t *testing.T) {
	t.Parallel()

	var r SeedResult
	r.Add(SeedResult{PlayersUpserted: 2, SeasonsUpserted: 5, Errors: []string{"x"}})
	r.AddErrorf("upsert %d", 1)
	assert.Equal(t, "players=2 seasons=5 errors=2", r.Summary())
}
