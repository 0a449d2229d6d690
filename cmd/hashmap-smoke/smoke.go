package main

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"chained_hashmap/hashmap"
)

type result struct {
	Group string
	Check string
	Pass  bool
}

// A suite runs named checks against one table and logs each outcome.
type suite struct {
	log     zerolog.Logger
	group   string
	results []result
}

func (s *suite) check(name string, ok bool) {
	s.results = append(s.results, result{Group: s.group, Check: name, Pass: ok})
	var ev *zerolog.Event
	if ok {
		ev = s.log.Debug()
	} else {
		ev = s.log.Error()
	}
	ev.Str("group", s.group).Str("check", name).Bool("pass", ok).Send()
}

func countFailed(results []result) int {
	var n = 0
	for _, r := range results {
		if !r.Pass {
			n++
		}
	}
	return n
}

func equals[V comparable](m *hashmap.Table[any], key any, want V) bool {
	v, ok := m.Get(key)
	if !ok {
		return false
	}
	got, ok := v.(V)
	return ok && got == want
}

func absent(m *hashmap.Table[any], key any) bool {
	_, ok := m.Get(key)
	return !ok
}

// runSmoke exercises one table through the add, update, remove, list, clear,
// resize and edge-case groups in sequence, so later groups see the state
// earlier ones left behind.
func runSmoke(log zerolog.Logger) []result {
	s := &suite{log: log}
	m := hashmap.New[any]()

	s.group = "adding and retrieving"
	m.Set("name", "John")
	m.Set("age", 30)
	m.Set("city", "New York")
	s.check("get name", equals(m, "name", "John"))
	s.check("get age", equals(m, "age", 30))
	s.check("get non-existent", absent(m, "email"))

	s.group = "updating"
	m.Set("name", "Jane")
	s.check("update name", equals(m, "name", "Jane"))
	s.check("size after update", m.Size() == 3)

	s.group = "removing"
	s.check("remove age", m.Remove("age"))
	s.check("age gone", absent(m, "age"))
	s.check("remove non-existent", !m.Remove("email"))
	s.check("size after remove", m.Size() == 2)

	s.group = "listing"
	s.check("keys", slices.Equal(m.Keys(), []string{"name", "city"}))
	s.check("values", slices.Equal(m.Values(), []any{"Jane", "New York"}))
	s.check("entries", slices.Equal(m.Entries(), []hashmap.Entry[any]{
		{Key: "name", Value: "Jane"},
		{Key: "city", Value: "New York"},
	}))

	s.group = "clearing"
	m.Clear()
	s.check("size after clear", m.Size() == 0)
	s.check("name gone", absent(m, "name"))
	s.check("capacity unchanged", m.Capacity() == hashmap.DefaultCapacity)

	s.group = "resizing"
	for i := 0; i < 13; i++ {
		m.Set("key"+hashmap.Canonical(i), "value"+hashmap.Canonical(i))
	}
	s.check("size after adding", m.Size() == 13)
	s.check("capacity increased", m.Capacity() > hashmap.DefaultCapacity)
	s.check("key0 still accessible", equals(m, "key0", "value0"))

	s.group = "edge cases"
	m.Clear()
	long := strings.Repeat("longKey", 1000)
	m.Set(123, "numberKey")
	m.Set("", "emptyKey")
	m.Set(long, "longValue")
	s.check("number key", equals(m, 123, "numberKey"))
	s.check("number key as string", equals(m, "123", "numberKey"))
	s.check("empty key", equals(m, "", "emptyKey"))
	s.check("long key", equals(m, long, "longValue"))

	log.Info().
		Int("checks", len(s.results)).
		Int("failed", countFailed(s.results)).
		Int("capacity", m.Capacity()).
		Msg("smoke run complete")
	return s.results
}
