// Package synctable wraps a hashmap.Table with a single lock, for callers
// that share one table between goroutines.
//
// Every operation holds the lock for its whole duration, so a Set that
// resizes the bucket array is never observed half done.
package synctable

import (
	"sync"

	"chained_hashmap/hashmap"
)

type Table[V any] struct {
	mu *sync.Mutex
	t  *hashmap.Table[V]
}

func New[V any](opts ...hashmap.Option) *Table[V] {
	return &Table[V]{
		mu: new(sync.Mutex),
		t:  hashmap.New[V](opts...),
	}
}

func (st *Table[V]) Set(key any, value V) {
	st.mu.Lock()
	st.t.Set(key, value)
	st.mu.Unlock()
}

func (st *Table[V]) Get(key any) (V, bool) {
	st.mu.Lock()
	v, ok := st.t.Get(key)
	st.mu.Unlock()
	return v, ok
}

func (st *Table[V]) Has(key any) bool {
	st.mu.Lock()
	ok := st.t.Has(key)
	st.mu.Unlock()
	return ok
}

func (st *Table[V]) Remove(key any) bool {
	st.mu.Lock()
	ok := st.t.Remove(key)
	st.mu.Unlock()
	return ok
}

// Update atomically replaces the value under key with f(old, present).
func (st *Table[V]) Update(key any, f func(old V, present bool) V) V {
	st.mu.Lock()
	defer st.mu.Unlock()
	old, ok := st.t.Get(key)
	v := f(old, ok)
	st.t.Set(key, v)
	return v
}

func (st *Table[V]) Clear() {
	st.mu.Lock()
	st.t.Clear()
	st.mu.Unlock()
}

// Entries returns a snapshot taken under the lock. Keys and Values likewise.
func (st *Table[V]) Entries() []hashmap.Entry[V] {
	st.mu.Lock()
	entries := st.t.Entries()
	st.mu.Unlock()
	return entries
}

func (st *Table[V]) Keys() []string {
	st.mu.Lock()
	keys := st.t.Keys()
	st.mu.Unlock()
	return keys
}

func (st *Table[V]) Values() []V {
	st.mu.Lock()
	values := st.t.Values()
	st.mu.Unlock()
	return values
}

func (st *Table[V]) Size() int {
	st.mu.Lock()
	n := st.t.Size()
	st.mu.Unlock()
	return n
}

func (st *Table[V]) Capacity() int {
	st.mu.Lock()
	n := st.t.Capacity()
	st.mu.Unlock()
	return n
}

// LoadFactor is fixed at construction, so it needs no lock.
func (st *Table[V]) LoadFactor() float64 {
	return st.t.LoadFactor()
}
