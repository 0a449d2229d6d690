package hashmap

// A bucket is the chain for one hash index: a slice of entries scanned
// linearly. Entries are kept in insertion order; an update overwrites the
// value in place and a removal shifts the tail down by one.

// Entry is one key-value pair. Key is the canonical form of the key that was
// passed to Set.
type Entry[V any] struct {
	Key   string
	Value V
}

type bucket[V any] struct {
	entries []Entry[V]
}

// find returns the index of key in the bucket, or (0, false).
func (b *bucket[V]) find(key string) (uint64, bool) {
	entries := b.entries
	var found = false
	var i = uint64(0)
	for i < uint64(len(entries)) {
		if entries[i].Key == key {
			found = true
			break
		}
		i++
	}
	return i, found
}

func (b *bucket[V]) get(key string) (V, bool) {
	i, ok := b.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return b.entries[i].Value, true
}

// store reports whether a new entry was appended (as opposed to an existing
// one being overwritten).
func (b *bucket[V]) store(key string, val V) bool {
	i, ok := b.find(key)
	if ok {
		b.entries[i].Value = val
		return false
	}
	b.entries = append(b.entries, Entry[V]{Key: key, Value: val})
	return true
}

func (b *bucket[V]) remove(key string) bool {
	i, ok := b.find(key)
	if !ok {
		return false
	}
	last := len(b.entries) - 1
	copy(b.entries[i:], b.entries[i+1:])
	// drop the reference held by the now-unused tail slot
	b.entries[last] = Entry[V]{}
	b.entries = b.entries[:last]
	return true
}
