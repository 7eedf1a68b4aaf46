// Package testutil provides shared test infrastructure for the wellsim packages.
// It has no dependency on drill/ so every package, drill itself included, can import it.
package testutil

import (
	"math"
	"testing"
)

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

// AssertNonDecreasing fails if any element of values is smaller than its predecessor.
func AssertNonDecreasing(t *testing.T, name string, values []float64) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Errorf("%s[%d] = %v decreases from %v", name, i, values[i], values[i-1])
			return
		}
	}
}

// SequenceSource replays a fixed list of values as a Float64 stream, cycling when exhausted.
type SequenceSource struct {
	Values []float64
	next   int
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
