package memoize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMemoize(t *testing.T) {
	assert := assert.New(t)
	m := NewMemoize(func(x uint64) uint64 { return x * x })
	assert.Equal(uint64(9), m.Call(3))
	assert.Equal(uint64(9), m.Call(3))

	assert.Equal(uint64(1), m.Call(1))
	assert.Equal(uint64(4), m.Call(2))
	assert.Equal(uint64(1), m.Call(1))

	assert.Equal(uint64(3), m.Calls(), "each argument computed once")
	assert.Equal(3, m.Cached())
}

func TestMockMemoize(t *testing.T) {
	assert := assert.New(t)
	m := NewMockMemoize(func(x uint64) uint64 { return x * x })
	assert.Equal(uint64(9), m.Call(3))
	assert.Equal(uint64(9), m.Call(3))

	assert.Equal(uint64(1), m.Call(1))
	assert.Equal(uint64(4), m.Call(2))
	assert.Equal(uint64(1), m.Call(1))

	assert.Equal(uint64(5), m.Calls())
}

func TestFib(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		n        uint64
		expected uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{50, 12586269025},
		{90, 2880067194370816120},
		// largest Fibonacci number that fits in a uint64
		{93, 12200160415121876738},
	}

	for _, test := range tests {
		assert.Equal(test.expected, Fib(test.n), "Fib(%d)", test.n)
	}
}

func TestSumSquares(t *testing.T) {
	s := []uint64{123, 1, 100, 66, 89, 1, 123}
	sum, calls := SumSquares(s)
	assert.Equal(t, uint64(2*15129+2*1+10000+4356+7921), sum)
	assert.Equal(t, uint64(5), calls)
}

func TestMemoizeMatchesMockProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		f := func(x uint64) uint64 { return 3*x + 1 }
		m := NewMemoize(f)
		mock := NewMockMemoize(f)
		xs := rapid.SliceOf(rapid.Uint64Range(0, 64)).Draw(t, "xs")
		distinct := make(map[uint64]struct{})
		for _, x := range xs {
			assert.Equal(mock.Call(x), m.Call(x))
			distinct[x] = struct{}{}
		}
		assert.Equal(uint64(len(distinct)), m.Calls())
		assert.Equal(len(distinct), m.Cached())
	})
}
