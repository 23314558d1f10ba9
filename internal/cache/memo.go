package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo is a process-lifetime cache of expensive loads keyed by string.
//
// Concurrent Gets for the same key share one load. Only successful loads are
// stored: a failed load is retried by the next caller instead of being
// pinned until restart.
type Memo[V any] struct {
	mu     sync.RWMutex
	values map[string]V
	group  singleflight.Group
}

// NewMemo returns an empty memo.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{values: make(map[string]V)}
}

// Get returns the stored value for key, calling load on a miss. The load is
// shared by every waiting caller, so it runs on a context that is not
// cancelled when the first caller goes away.
func (m *Memo[V]) Get(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	m.mu.RLock()
	v, ok := m.values[key]
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	out, err, _ := m.group.Do(key, func() (interface{}, error) {
		m.mu.RLock()
		v, ok := m.values[key]
		m.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return v, err
		}
		m.mu.Lock()
		m.values[key] = v
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out.(V), nil
}
