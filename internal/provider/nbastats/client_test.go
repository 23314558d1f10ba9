package nbastats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/ballknowledge-data/internal/provider"
)

const rosterBody = `{
  "resource": "commonteamroster",
  "resultSets": [
    {"name": "CommonTeamRoster",
     "headers": ["TeamID","SEASON","PLAYER","NUM","POSITION","PLAYER_ID"],
     "rowSet": [[1610612747,"2023","LeBron James","23","F",2544],
                [1610612747,"2023","Anthony Davis","3","F-C",203076]]},
    {"name": "Coaches", "headers": ["COACH_NAME"], "rowSet": [["Darvin Ham"]]}
  ]
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0, 0, nil)
}

func TestTeamRoster_DecodesNamedSet(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/commonteamroster", r.URL.Path)
		assert.Equal(t, "1610612747", r.URL.Query().Get("TeamID"))
		assert.Equal(t, "2023-24", r.URL.Query().Get("Season"))
		assert.Equal(t, "https://www.nba.com/", r.Header.Get("Referer"))
		assert.Equal(t, "stats", r.Header.Get("x-nba-stats-origin"))
		_, _ = w.Write([]byte(rosterBody))
	})

	tbl, err := c.TeamRoster(context.Background(), 1610612747, "2023-24")
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "CommonTeamRoster", tbl.Name)
	assert.Equal(t, provider.PlayerID("203076"), tbl.Row(1).ID("PLAYER_ID"))
	assert.Equal(t, "F-C", tbl.Row(1).String("POSITION", ""))
}

func TestGet_SingularResultSet(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultSet":{"name":"LeagueDashPlayerStats","headers":["PLAYER_ID","PTS"],"rowSet":[[1,10.2]]}}`))
	})

	tbl, err := c.LeagueDashPlayerStats(context.Background(), "2023-24")
	require.NoError(t, err)
	assert.Equal(t, 10.2, tbl.Row(0).Float("PTS", 1))
}

func TestTable_EmptyIsNoData(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultSets":[{"name":"SeasonTotalsRegularSeason","headers":["SEASON_ID"],"rowSet":[]}]}`))
	})

	_, err := c.PlayerCareer(context.Background(), "2544")
	assert.ErrorIs(t, err, provider.ErrNoData)
}

func TestGet_FailuresAreUnavailable(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/commonplayerinfo" {
			_, _ = w.Write([]byte(`<html>blocked</html>`))
			return
		}
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	_, err := c.AllPlayers(context.Background(), "2025-26")
	assert.ErrorIs(t, err, provider.ErrUnavailable)
	assert.Contains(t, err.Error(), "429")

	_, err = c.PlayerInfo(context.Background(), "2544")
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 8; i++ {
		_, err := c.TeamRoster(context.Background(), 1, "2023-24")
		assert.ErrorIs(t, err, provider.ErrUnavailable)
	}
	assert.Equal(t, int32(5), hits.Load(), "breaker short-circuits after 5 failures")
}

func TestGet_RespectsCancelledContext(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.TeamRoster(ctx, 1, "2023-24")
	assert.Error(t, err)
}
