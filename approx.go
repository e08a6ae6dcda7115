package linmath

import "math"

// DefaultMaxULPs is the default number of units in the last place two
// values may differ by and still compare equal in [ULPsEq].
const DefaultMaxULPs = 4

// DefaultEpsilon returns the machine epsilon of S, which is the default
// absolute tolerance of every approximate comparison in this package.
func DefaultEpsilon[S Float]() S {
	if is32[S]() {
		return S(0x1p-23)
	}
	return S(0x1p-52)
}

// DefaultMaxRelative returns the default relative tolerance used by
// [RelativeEq]. It is the same as [DefaultEpsilon].
func DefaultMaxRelative[S Float]() S {
	return DefaultEpsilon[S]()
}

// AbsDiffEq reports whether |a-b| <= epsilon.
func AbsDiffEq[S Float](a, b, epsilon S) bool {
	return abs(a-b) <= epsilon
}

// RelativeEq reports whether a and b are equal within an absolute
// tolerance of epsilon or, failing that, within maxRelative times the
// larger of their magnitudes. Infinities only compare equal to themselves.
func RelativeEq[S Float](a, b, epsilon, maxRelative S) bool {
	if a == b {
		return true
	}
	if isInf(a) || isInf(b) {
		return false
	}
	d := abs(a - b)
	if d <= epsilon {
		return true
	}
	largest := partialMax(abs(a), abs(b))
	return d <= largest*maxRelative
}

// ULPsEq reports whether a and b are equal within an absolute tolerance of
// epsilon or, failing that, are at most maxULPs representable values apart.
// Values of different sign are never ULP-equal, and NaN equals nothing.
func ULPsEq[S Float](a, b, epsilon S, maxULPs uint32) bool {
	if AbsDiffEq(a, b, epsilon) {
		return true
	}
	if isNaN(a) || isNaN(b) {
		return false
	}
	if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
		return false
	}
	return ulps(a, b) <= uint64(maxULPs)
}

// ulps returns the distance between a and b in units in the last place.
// a and b must have the same sign.
func ulps[S Float](a, b S) uint64 {
	var ia, ib int64
	if is32[S]() {
		ia = int64(math.Float32bits(float32(a)))
		ib = int64(math.Float32bits(float32(b)))
	} else {
		ia = int64(math.Float64bits(float64(a)) &^ (1 << 63))
		ib = int64(math.Float64bits(float64(b)) &^ (1 << 63))
	}
	if ia > ib {
		return uint64(ia - ib)
	}
	return uint64(ib - ia)
}

// ApproxEq reports whether a and b are equal using [ULPsEq] with the
// package defaults.
func ApproxEq[S Float](a, b S) bool {
	return ULPsEq(a, b, DefaultEpsilon[S](), DefaultMaxULPs)
}

// Approxer is implemented by every composite type in this package. ApproxEq
// compares with the package defaults, ApproxEqEps with an absolute
// tolerance. Both combine the per-field results with a logical and.
type Approxer[T any, S Float] interface {
	ApproxEq(o T) bool
	ApproxEqEps(o T, epsilon S) bool
}
