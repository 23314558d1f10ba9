package provider

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{nil, 0, false},
		{12.5, 12.5, true},
		{7, 7, true},
		{"3.25", 3.25, true},
		{" 4 ", 4, true},
		{"NA", 0, false},
		{"", 0, false},
		{json.Number("9.0"), 9, true},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{[]int{1}, 0, false},
	}
	for _, tc := range cases {
		got, ok := ExtractValue(tc.in)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestCoercion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 27.3, Float(27.34, 1))
	assert.Equal(t, 0.457, Float("0.4567", 3))
	assert.Equal(t, 0.0, Float("None", 1))
	assert.Equal(t, 82, Int(82.9))
	assert.Equal(t, 0, Int(math.NaN()))
	assert.Equal(t, "G", String("G", "?"))
	assert.Equal(t, "?", String("nan", "?"))
	assert.Equal(t, "?", String(nil, "?"))
	assert.Equal(t, "23", String(23.0, ""))
}

func TestTableRow(t *testing.T) {
	t.Parallel()

	tbl := NewTable("CommonTeamRoster",
		[]string{"PLAYER_ID", "PLAYER", "NUM", "POSITION"},
		[][]interface{}{
			{2544.0, "LeBron James", "23", "F"},
			{1629029.0, "Luka Doncic", nil},
		})

	require.Equal(t, 2, tbl.Len())
	assert.True(t, tbl.Has("NUM"))
	assert.False(t, tbl.Has("PTS"))

	r := tbl.Row(0)
	assert.Equal(t, PlayerID("2544"), r.ID("PLAYER_ID"))
	assert.Equal(t, "LeBron James", r.String("PLAYER", ""))
	assert.Equal(t, 0.0, r.Float("PTS", 1), "missing column yields default")

	short := tbl.Row(1)
	assert.Equal(t, "", short.String("POSITION", ""), "short row yields default")
	assert.Equal(t, "Luka Doncic", short.First("PLAYER_NAME", "PLAYER"))

	var names []string
	tbl.Each(func(r Row) { names = append(names, r.String("PLAYER", "")) })
	assert.Equal(t, []string{"LeBron James", "Luka Doncic"}, names)
}

func TestPlayerIDJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal([]PlayerID{"201939", "00-0033873"})
	require.NoError(t, err)
	assert.JSONEq(t, `[201939,"00-0033873"]`, string(b))

	var ids []PlayerID
	require.NoError(t, json.Unmarshal([]byte(`[201939, "00-0033873", 7.0]`), &ids))
	assert.Equal(t, []PlayerID{"201939", "00-0033873", "7.0"}, ids)
	assert.Equal(t, 201939, ids[0].Int())
	assert.Equal(t, 0, ids[1].Int())
}

func TestFailureSentinels(t *testing.T) {
	t.Parallel()

	err := Unavailable("commonteamroster", errors.New("status 500"))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "status 500")

	assert.ErrorIs(t, NoData("roster LAL 2023-24"), ErrNoData)
}
