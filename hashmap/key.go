package hashmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Canonical returns the string form a key is normalized to before hashing and
// comparison. Keys that print the same are the same key, so 123, uint8(123),
// 123.0 and "123" all address one entry.
//
// Numbers are printed the way JavaScript's String(x) prints them: integers in
// base 10, floats in the shortest decimal that round-trips, switching to
// exponent form outside [1e-6, 1e21).
func Canonical(key any) string {
	switch k := key.(type) {
	case nil:
		return "null"
	case string:
		return k
	case []byte:
		return string(k)
	case bool:
		return strconv.FormatBool(k)
	case int:
		return strconv.FormatInt(int64(k), 10)
	case int8:
		return strconv.FormatInt(int64(k), 10)
	case int16:
		return strconv.FormatInt(int64(k), 10)
	case int32:
		return strconv.FormatInt(int64(k), 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint:
		return strconv.FormatUint(uint64(k), 10)
	case uint8:
		return strconv.FormatUint(uint64(k), 10)
	case uint16:
		return strconv.FormatUint(uint64(k), 10)
	case uint32:
		return strconv.FormatUint(uint64(k), 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case uintptr:
		return strconv.FormatUint(uint64(k), 10)
	case float32:
		return formatFloat(float64(k), 32)
	case float64:
		return formatFloat(k, 64)
	}
	// fmt calls String or Error, and recovers if the receiver is a nil
	// pointer.
	return fmt.Sprint(key)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// covers -0 as well
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	// Go writes at least two exponent digits ("1e-07"); drop the padding.
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
