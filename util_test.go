package linmath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point fields with an absolute tolerance suitable
// for results that went through a few transcendental functions.
var approx = cmpopts.EquateApprox(0, 1e-9)

func assertApprox[T interface{ ApproxEq(T) bool }](t *testing.T, got, want T) {
	t.Helper()
	if !got.ApproxEq(want) {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func assertNear[T interface{ ApproxEqEps(T, S) bool }, S Float](t *testing.T, got, want T, epsilon S) {
	t.Helper()
	if !got.ApproxEqEps(want, epsilon) {
		t.Fatalf("got %v, expected %v", got, want)
	}
}
