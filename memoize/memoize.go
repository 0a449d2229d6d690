package memoize

import (
	"github.com/goose-lang/std"

	"chained_hashmap/hashmap"
)

// Memoize caches the results of f in a chained hash table keyed by the
// argument.
type Memoize struct {
	f       func(uint64) uint64
	results *hashmap.Table[uint64]
	calls   *uint64
}

func NewMemoize(f func(uint64) uint64) Memoize {
	return Memoize{
		f:       f,
		results: hashmap.New[uint64](),
		calls:   new(uint64),
	}
}

func (m Memoize) Call(x uint64) uint64 {
	cached, ok := m.results.Get(x)
	if ok {
		return cached
	}
	y := m.f(x)
	*m.calls = std.SumAssumeNoOverflow(*m.calls, 1)
	m.results.Set(x, y)
	return y
}

// Calls returns how many times f has actually run.
func (m Memoize) Calls() uint64 {
	return *m.calls
}

// Cached returns the number of distinct arguments with a saved result.
func (m Memoize) Cached() int {
	return m.results.Size()
}

// MockMemoize has the same API as Memoize but with an implementation that
// doesn't actually save any results.
type MockMemoize struct {
	f     func(uint64) uint64
	calls uint64
}

func NewMockMemoize(f func(uint64) uint64) *MockMemoize {
	return &MockMemoize{f: f}
}

func (m *MockMemoize) Call(x uint64) uint64 {
	m.calls = std.SumAssumeNoOverflow(m.calls, 1)
	return m.f(x)
}

func (m *MockMemoize) Calls() uint64 {
	return m.calls
}
