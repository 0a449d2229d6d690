package hashmap

import (
	"fmt"
	"math"
)

const (
	DefaultCapacity   = 16
	DefaultLoadFactor = 0.75
)

type config struct {
	capacity   int
	loadFactor float64
}

// An Option configures a Table created by New.
type Option func(*config)

// WithInitialCapacity sets the initial number of buckets, which must be at
// least 1.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLoadFactor sets the size/capacity ratio at which the table doubles. It
// must be positive and finite.
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}

func newConfig(opts []Option) config {
	c := config{
		capacity:   DefaultCapacity,
		loadFactor: DefaultLoadFactor,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.capacity < 1 {
		panic(fmt.Sprintf("hashmap: initial capacity %d is not positive", c.capacity))
	}
	if !(c.loadFactor > 0) || math.IsInf(c.loadFactor, 0) {
		panic(fmt.Sprintf("hashmap: invalid load factor %v", c.loadFactor))
	}
	return c
}
