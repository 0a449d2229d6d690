package hashmap

import (
	"iter"
	"unicode/utf16"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// Table is a hash table with separate chaining. Keys of any type are
// normalized with Canonical, so the table is logically a map from string to V.
//
// The bucket array doubles whenever an insertion finds the table at or above
// its load factor, and never shrinks.
//
// A Table is not safe for concurrent use; see the synctable package for a
// locked wrapper.
type Table[V any] struct {
	capacity   uint64
	size       uint64
	loadFactor float64
	buckets    []bucket[V]
}

// New creates an empty table. Without options it starts with 16 buckets and
// a load factor of 0.75.
func New[V any](opts ...Option) *Table[V] {
	cfg := newConfig(opts)
	capacity := uint64(cfg.capacity)
	return &Table[V]{
		capacity:   capacity,
		size:       0,
		loadFactor: cfg.loadFactor,
		buckets:    make([]bucket[V], capacity),
	}
}

// hash computes the bucket index of a canonical key against the current
// capacity, over the key's UTF-16 code units.
func (t *Table[V]) hash(key string) uint64 {
	var h = uint64(0)
	for _, r := range key {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = (31*h + uint64(hi)) % t.capacity
			h = (31*h + uint64(lo)) % t.capacity
			continue
		}
		h = (31*h + uint64(r)) % t.capacity
	}
	return h
}

func (t *Table[V]) bucketFor(key string) *bucket[V] {
	return &t.buckets[t.hash(key)]
}

func (t *Table[V]) overloaded() bool {
	return float64(t.size)/float64(t.capacity) >= t.loadFactor
}

// Set stores value under key, overwriting any existing value.
func (t *Table[V]) Set(key any, value V) {
	t.set(Canonical(key), value)
}

func (t *Table[V]) set(key string, value V) {
	// grow first: the bucket index depends on the capacity
	if t.overloaded() {
		t.resize()
	}
	if t.bucketFor(key).store(key, value) {
		t.size = std.SumAssumeNoOverflow(t.size, 1)
	}
}

// resize doubles the capacity and re-inserts every entry, since each key's
// bucket index changes with the modulus.
//
// With a small load factor a re-insertion can itself resize. The nested call
// rehashes only the entries placed so far and leaves size equal to that
// count, so the outer loop still ends with size == oldSize.
func (t *Table[V]) resize() {
	oldBuckets := t.buckets
	oldSize := t.size
	t.capacity = std.SumAssumeNoOverflow(t.capacity, t.capacity)
	t.size = 0
	t.buckets = make([]bucket[V], t.capacity)
	for i := range oldBuckets {
		for _, e := range oldBuckets[i].entries {
			t.set(e.Key, e.Value)
		}
	}
	primitive.Assert(t.size == oldSize)
}

// Get returns the value stored under key. The boolean is false if the key is
// absent, which distinguishes a missing key from a stored zero value.
func (t *Table[V]) Get(key any) (V, bool) {
	k := Canonical(key)
	return t.bucketFor(k).get(k)
}

// Has reports whether key is present.
func (t *Table[V]) Has(key any) bool {
	k := Canonical(key)
	_, ok := t.bucketFor(k).find(k)
	return ok
}

// Remove deletes key and reports whether it was present.
func (t *Table[V]) Remove(key any) bool {
	k := Canonical(key)
	if !t.bucketFor(k).remove(k) {
		return false
	}
	t.size--
	return true
}

// Clear removes every entry. The capacity is kept.
func (t *Table[V]) Clear() {
	t.buckets = make([]bucket[V], t.capacity)
	t.size = 0
}

// All iterates over the entries in bucket order, and in insertion order
// within a bucket. The table must not be modified during iteration.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.buckets {
			for _, e := range t.buckets[i].entries {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}
	}
}

// Entries returns a snapshot of the entries, in the same order as All.
func (t *Table[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, t.size)
	for k, v := range t.All() {
		entries = append(entries, Entry[V]{Key: k, Value: v})
	}
	return entries
}

// Keys returns the canonical keys, in the same order as All.
func (t *Table[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values, in the same order as All.
func (t *Table[V]) Values() []V {
	values := make([]V, 0, t.size)
	for _, v := range t.All() {
		values = append(values, v)
	}
	return values
}

// Size returns the number of entries.
func (t *Table[V]) Size() int {
	return int(t.size)
}

// Capacity returns the number of buckets.
func (t *Table[V]) Capacity() int {
	return int(t.capacity)
}

// LoadFactor returns the size/capacity ratio at which the table grows.
func (t *Table[V]) LoadFactor() float64 {
	return t.loadFactor
}
