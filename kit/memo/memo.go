// Package memo provides keyed memoization: each key's loader runs at
// most once per process, and concurrent loads of the same key share a
// single in-flight execution instead of racing.
package memo

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// A Map memoizes one value per key. A key's loader runs at most once
// successfully; concurrent Load calls for the same key are collapsed
// into a single execution via singleflight. Failed loads are not
// cached, so a later Load may retry the key.
//
// In-flight deduplication keys on the fmt representation of K, so two
// distinct keys that format identically may share an execution while
// both are in flight. Cached results are keyed on K exactly.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	results map[K]V
	flight  singleflight.Group
}

// NewMap returns an empty memoization map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{results: make(map[K]V)}
}

// Load returns the memoized value for key, computing it with fn if no
// successful load has happened yet. When several goroutines Load the
// same key concurrently, fn runs once and all of them receive its
// result. If fn fails, its error is returned and nothing is cached.
func (m *Map[K, V]) Load(key K, fn func() (V, error)) (V, error) {
	m.mu.RLock()
	v, ok := m.results[key]
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	out, err, _ := m.flight.Do(fmt.Sprint(key), func() (any, error) {
		// A previous flight may have filled the cache while this
		// caller was waiting to start.
		m.mu.RLock()
		v, ok := m.results[key]
		m.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fn()
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.results[key] = v
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	v, _ = out.(V)
	return v, nil
}

// Peek returns the memoized value for key without computing anything,
// and whether one exists.
func (m *Map[K, V]) Peek(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.results[key]
	return v, ok
}

// Len returns the number of memoized keys.
func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.results)
}
