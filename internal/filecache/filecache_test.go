package filecache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type player struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	PPG  float64 `json:"ppg"`
}

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestReadWrite_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := New(t.TempDir(), 24*time.Hour, nil).WithClock(fixedClock(&now))

	want := []player{{ID: 2544, Name: "LeBron James", PPG: 25.7}}
	store.Write("LAL_2023-24", map[string]any{"team": "LAL", "season": "2023-24"}, "players", want)

	var got []player
	cachedAt, ok := store.Read("LAL_2023-24", "players", &got)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, cachedAt.Equal(now))

	now = now.Add(24 * time.Hour)
	got = nil
	_, ok = store.Read("LAL_2023-24", "players", &got)
	assert.True(t, ok, "exactly at expiry is still fresh")

	now = now.Add(time.Second)
	got = nil
	_, ok = store.Read("LAL_2023-24", "players", &got)
	assert.False(t, ok, "one second past expiry is a miss")

	_, err := os.Stat(store.Path("LAL_2023-24"))
	assert.NoError(t, err, "stale entries are not deleted")

	assert.True(t, store.ReadAny("LAL_2023-24", "players", &got))
	assert.Equal(t, want, got)
}

func TestRead_MissingAndCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := New(dir, time.Hour, nil)

	var out []player
	_, ok := store.Read("nope", "players", &out)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))
	_, ok = store.Read("bad", "players", &out)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "nostamp.json"), []byte(`{"players":[{"id":1}]}`), 0o644))
	_, ok = store.Read("nostamp", "players", &out)
	assert.False(t, ok, "entries without cached_at are absent")
}

func TestRead_EmptyPayloadIsMiss(t *testing.T) {
	t.Parallel()

	store := New(t.TempDir(), time.Hour, nil)
	store.Write("empty", nil, "players", []player{})

	var out []player
	_, ok := store.Read("empty", "players", &out)
	assert.False(t, ok)
}

func TestRead_LegacyTimestamp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stamp := time.Now().Add(-time.Hour).Format("2006-01-02T15:04:05.000000")
	body := `{"team":"BOS","season":"2023-24","cached_at":"` + stamp + `","players":[{"id":1628369,"name":"Jayson Tatum","ppg":26.9}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BOS_2023-24.json"), []byte(body), 0o644))

	store := New(dir, 24*time.Hour, nil)
	var out []player
	_, ok := store.Read("BOS_2023-24", "players", &out)
	require.True(t, ok)
	assert.Equal(t, "Jayson Tatum", out[0].Name)
}

func TestWrite_FailureIsSwallowed(t *testing.T) {
	t.Parallel()

	// A regular file where the directory should be makes every write fail.
	parent := t.TempDir()
	blocker := filepath.Join(parent, "cache")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := New(blocker, time.Hour, nil)
	assert.NotPanics(t, func() {
		store.Write("LAL_2023-24", nil, "players", []player{{ID: 1}})
	})

	var out []player
	_, ok := store.Read("LAL_2023-24", "players", &out)
	assert.False(t, ok)
}

func TestWrite_CreatesDirectories(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	store := New(dir, time.Hour, nil)
	store.Write("nfl_record_KC_2023", map[string]any{"team": "KC"}, "record", map[string]int{"wins": 11})

	var rec map[string]int
	_, ok := store.Read("nfl_record_KC_2023", "record", &rec)
	require.True(t, ok)
	assert.Equal(t, 11, rec["wins"])
}
