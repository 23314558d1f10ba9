package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSetExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(true)
	c.now = func() time.Time { return now }

	etag := c.Set("roster:LAL:2023-24", []byte(`{"team":"LAL"}`), time.Hour)
	data, gotTag, ok := c.Get("roster:LAL:2023-24")
	require.True(t, ok)
	assert.Equal(t, etag, gotTag)
	assert.Equal(t, `{"team":"LAL"}`, string(data))

	now = now.Add(time.Hour + time.Second)
	_, _, ok = c.Get("roster:LAL:2023-24")
	assert.False(t, ok)

	stats := c.Stats()
	assert.Equal(t, 1, stats["total_keys"])
	assert.Equal(t, 1, stats["expired_keys"])

	assert.Equal(t, 1, c.evict())
	assert.Equal(t, 0, c.Stats()["total_keys"])
}

func TestCache_Disabled(t *testing.T) {
	t.Parallel()

	c := New(false)
	etag := c.Set("k", []byte("v"), time.Hour)
	assert.NotEmpty(t, etag)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestETag(t *testing.T) {
	t.Parallel()

	a := ComputeETag([]byte("a"))
	assert.Equal(t, a, ComputeETag([]byte("a")))
	assert.NotEqual(t, a, ComputeETag([]byte("b")))
	assert.True(t, CheckETagMatch(a, a))
	assert.True(t, CheckETagMatch("*", a))
	assert.False(t, CheckETagMatch("", a))
}

func TestMemo_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	m := NewMemo[map[string]float64]()
	var calls atomic.Int32
	release := make(chan struct{})

	load := func(context.Context) (map[string]float64, error) {
		calls.Add(1)
		<-release
		return map[string]float64{"2544": 25.7}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := m.Get(context.Background(), "2023-24", load)
			assert.NoError(t, err)
			assert.Equal(t, 25.7, v["2544"])
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestMemo_DoesNotStoreFailures(t *testing.T) {
	t.Parallel()

	m := NewMemo[int]()
	calls := 0
	failing := func(context.Context) (int, error) {
		calls++
		return 0, errors.New("provider down")
	}

	_, err := m.Get(context.Background(), "k", failing)
	assert.Error(t, err)
	_, err = m.Get(context.Background(), "k", failing)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)

	v, err := m.Get(context.Background(), "k", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestMemo_LoadOutlivesCallerCancel(t *testing.T) {
	t.Parallel()

	m := NewMemo[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := m.Get(ctx, "k", func(ctx context.Context) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
