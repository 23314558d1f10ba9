package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterFlags_Options(t *testing.T) {
	t.Parallel()

	f := rosterFlags{startYear: 2010, endYear: 2012, teams: " kc, buf ,,", force: true}
	opts, err := f.options()
	require.NoError(t, err)
	assert.Equal(t, []string{"KC", "BUF"}, opts.Teams)
	assert.Equal(t, []int{2010, 2011, 2012}, opts.Years())
	assert.True(t, opts.Force)

	f = rosterFlags{startYear: 2020, endYear: 2010}
	_, err = f.options()
	assert.Error(t, err)
}

func TestCommandTree(t *testing.T) {
	t.Parallel()

	for _, path := range [][]string{
		{"careers", "build", "nba"},
		{"careers", "build", "nfl"},
		{"careers", "lineup", "nfl"},
		{"careers", "update", "nba"},
	} {
		cmd, rest, err := careersCmd().Find(path[1:])
		require.NoError(t, err, path)
		assert.Empty(t, rest, path)
		assert.Equal(t, path[len(path)-1], cmd.Name(), path)
	}
	assert.Len(t, rostersCmd().Commands(), 2)
	assert.Len(t, publishCmd().Commands(), 2)
	assert.NotNil(t, updateNBACmd().Flags().Lookup("years"))
	assert.NotNil(t, buildNBACmd().Flags().Lookup("resume"))
}

type stubDB struct{ err error }

func (s stubDB) HealthCheck(ctx context.Context) error { return s.err }

func TestCheckDatabase(t *testing.T) {
	t.Parallel()

	require.NoError(t, checkDatabase(context.Background(), stubDB{}))

	down := errors.New("connection refused")
	err := checkDatabase(context.Background(), stubDB{err: down})
	require.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "database health check")
}
