package lazy

import "sync"

// A Value computes its result the first time Load is called and caches
// it for every later call. Useful for keeping expensive work out of
// package and struct initialization until it is actually needed.
type Value[T any] struct {
	once sync.Once
	fn   func() T
	val  T
}

// NewValue returns a Value backed by fn. fn runs at most once, no
// matter how many goroutines call Load.
func NewValue[T any](fn func() T) *Value[T] {
	return &Value[T]{fn: fn}
}

// Load returns the computed value, running the initializer on the
// first call. Concurrent callers block until the initializer finishes
// and then all observe the same result.
func (v *Value[T]) Load() T {
	v.once.Do(func() {
		v.val = v.fn()
		v.fn = nil
	})
	return v.val
}

// A TryValue is a Value whose initializer can fail. The outcome of the
// first Load -- value and error together -- is retained and replayed
// on every later call; a failed initializer is not retried.
type TryValue[T any] struct {
	once sync.Once
	fn   func() (T, error)
	val  T
	err  error
}

// NewTryValue returns a TryValue backed by fn.
func NewTryValue[T any](fn func() (T, error)) *TryValue[T] {
	return &TryValue[T]{fn: fn}
}

// Load returns the computed value and error, running the initializer
// on the first call.
func (v *TryValue[T]) Load() (T, error) {
	v.once.Do(func() {
		v.val, v.err = v.fn()
		v.fn = nil
	})
	return v.val, v.err
}
