// Package lazy provides set-once and compute-once containers for
// deferred initialization under concurrent access. A Cell is assigned
// exactly once via Set and read any number of times afterward; Value
// and TryValue instead run a supplied initializer the first time they
// are loaded and cache its result.
package lazy

import (
	"errors"
	"sync"
)

var (
	// ErrAlreadyInitialized is returned by Cell.Set when the cell
	// already holds a value.
	ErrAlreadyInitialized = errors.New("lazy: cell already initialized")

	// ErrNotInitialized is returned by Cell.Get before any successful
	// Set.
	ErrNotInitialized = errors.New("lazy: cell not initialized")
)

// A Cell holds a value that is assigned exactly once and read many
// times afterward. All methods are safe for concurrent use: a single
// mutex guards the value and the initialized flag as one unit, so
// operations on the same cell are linearizable.
//
// The zero Cell is empty and ready to use. If T is a mutable type,
// callers must not modify the value after setting it -- the cell
// stores it without copying.
type Cell[T any] struct {
	mu          sync.Mutex
	value       T
	initialized bool
}

// New returns an empty cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Set stores value and marks the cell initialized. If the cell was
// already set, Set returns ErrAlreadyInitialized and leaves the stored
// value untouched. When multiple goroutines race on Set, exactly one
// of them succeeds.
//
// Zero values (including typed nils) are valid contents: the
// initialized flag, not the value, decides whether the cell is set, so
// after storing a nil pointer Get returns that nil with no error.
func (c *Cell[T]) Set(value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return ErrAlreadyInitialized
	}
	c.value = value
	c.initialized = true
	return nil
}

// Get returns the stored value. Before any successful Set it returns
// the zero value of T along with ErrNotInitialized. Every successful
// Get returns the same value; for reference types that is the same
// shared instance each time, not a copy.
func (c *Cell[T]) Get() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		var zero T
		return zero, ErrNotInitialized
	}
	return c.value, nil
}

// MustGet is like Get but panics if the cell has not been initialized.
func (c *Cell[T]) MustGet() T {
	v, err := c.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// IsInitialized reports whether the cell holds a value. Once true it
// never reverts to false. The result may already be stale when the
// caller observes it: another goroutine can complete a Set right after
// IsInitialized returns false.
func (c *Cell[T]) IsInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.initialized
}
