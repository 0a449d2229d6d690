package memoize

// Fib returns the nth Fibonacci number, memoizing the recursion so each
// argument is computed once.
//
// n must be at most 93; Fib(94) does not fit in a uint64 and the sum wraps
// around.
func Fib(n uint64) uint64 {
	var m Memoize
	m = NewMemoize(func(x uint64) uint64 {
		if x <= 1 {
			return x
		}
		return m.Call(x-1) + m.Call(x-2)
	})
	return m.Call(n)
}

// SumSquares squares each element of s through a shared cache, so repeated
// elements are only squared once.
func SumSquares(s []uint64) (uint64, uint64) {
	m := NewMemoize(func(x uint64) uint64 { return x * x })
	var sum = uint64(0)
	for _, x := range s {
		sum += m.Call(x)
	}
	return sum, m.Calls()
}
