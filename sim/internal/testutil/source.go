// Package testutil provides shared test infrastructure for the drawsim
// engine: scripted random sources and assertion helpers used across sim/
// test packages. It must not import sim, so sim's own tests can use it.
package testutil

import (
	"math"
	"testing"
)

// IntSource is the method set of sim.Source, restated to avoid an import cycle.
type IntSource interface {
	IntInRange(min, max int) int
}

// ScriptedSource returns Values in order, wrapping around at the end.
// A degenerate range (min == max) returns min without consuming a value,
// so a zero-width draw budget never eats into the script.
type ScriptedSource struct {
	Values []int
	next   int
	Calls  int // number of values consumed
}

// NewScriptedSource creates a ScriptedSource over values.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{Values: values}
}

func (s *ScriptedSource) IntInRange(min, max int) int {
	if min == max {
		return min
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	s.Calls++
	return v
}

// HookSource calls Before ahead of every delegated draw. Tests use it to
// observe simulation state between draws.
type HookSource struct {
	Inner  IntSource
	Before func()
}

func (h *HookSource) IntInRange(min, max int) int {
	if h.Before != nil {
		h.Before()
	}
	return h.Inner.IntInRange(min, max)
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
