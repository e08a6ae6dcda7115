package linmath

import (
	"math"
	"unsafe"
)

// Float is the set of scalar types the vector, matrix, and rotation types
// are defined over. Concrete instantiations are float32 and float64.
//
// All transcendental functions are evaluated in float64 and rounded back to
// S, so float32 results are the correctly rounded float64 results.
type Float interface {
	~float32 | ~float64
}

func is32[S Float]() bool {
	var x S
	return unsafe.Sizeof(x) == 4
}

func sqrt[S Float](x S) S { return S(math.Sqrt(float64(x))) }
func abs[S Float](x S) S  { return S(math.Abs(float64(x))) }
func sin[S Float](x S) S  { return S(math.Sin(float64(x))) }
func cos[S Float](x S) S  { return S(math.Cos(float64(x))) }
func tan[S Float](x S) S  { return S(math.Tan(float64(x))) }
func asin[S Float](x S) S { return S(math.Asin(float64(x))) }
func acos[S Float](x S) S { return S(math.Acos(float64(x))) }
func atan[S Float](x S) S { return S(math.Atan(float64(x))) }

func atan2[S Float](y, x S) S { return S(math.Atan2(float64(y), float64(x))) }

// mod is the truncated remainder, with the sign of x.
func mod[S Float](x, y S) S { return S(math.Mod(float64(x), float64(y))) }

func sincos[S Float](x S) (S, S) {
	s, c := math.Sincos(float64(x))
	return S(s), S(c)
}

func isNaN[S Float](x S) bool { return math.IsNaN(float64(x)) }

func isInf[S Float](x S) bool { return math.IsInf(float64(x), 0) }

// partialMin returns a if a < b, and b otherwise. Unlike [math.Min], a NaN
// operand does not poison the result: the comparison is simply false.
func partialMin[S Float](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// partialMax returns a if a > b, and b otherwise. See [partialMin].
func partialMax[S Float](a, b S) S {
	if a > b {
		return a
	}
	return b
}

// Clamp clamps x to the range [lo, hi]. NaN is returned unchanged.
func Clamp[S Float](x, lo, hi S) S {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}
