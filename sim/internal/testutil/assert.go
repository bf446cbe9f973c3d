// Package testutil provides shared assertion helpers for the estimator's
// test packages.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// FixedRand returns a *rand.Rand seeded with seed, for stage-level tests.
func FixedRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertInHalfOpenRange checks lo <= got < hi and that got is finite.
func AssertInHalfOpenRange(t *testing.T, name string, lo, hi, got float64) {
	t.Helper()
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("%s: got non-finite %v", name, got)
		return
	}
	if got < lo || got >= hi {
		t.Errorf("%s: got %v, want in [%v, %v)", name, got, lo, hi)
	}
}
