// Package trace provides progress-snapshot recording for drawing simulations.
// It has no dependencies on sim/ and stores pure data types only.
package trace

import (
	"fmt"
	"strings"
)

// BallCount is a ball value paired with its draw count at snapshot time.
type BallCount struct {
	Value int
	Count int
}

// Snapshot captures the ranked top balls of one pool at a print boundary.
type Snapshot struct {
	Pool     string      // pool description, e.g. "1-49"
	MaxCount int         // highest single-ball count when taken
	Budget   int         // max count the run stops at
	Top      []BallCount // ranked by descending count
}

// String renders the snapshot as "<maxCount> repetitions:" followed by one
// "Ball v: n" line per ranked ball.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d repetitions:\n", s.MaxCount)
	for _, bc := range s.Top {
		fmt.Fprintf(&b, "Ball %d: %d\n", bc.Value, bc.Count)
	}
	return b.String()
}
