package trace

import "github.com/google/uuid"

// TraceLevel controls the verbosity of progress tracing.
type TraceLevel string

const (
	// TraceLevelNone disables snapshot recording.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelSnapshots captures every intermediate progress snapshot.
	TraceLevelSnapshots TraceLevel = "snapshots"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelSnapshots: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// RunTrace collects progress snapshots for one repetition of a simulation.
// A nil *RunTrace is valid and records nothing.
type RunTrace struct {
	ID        string
	Level     TraceLevel
	Budget    int // max count the run stops at
	Increment int // max-count distance between snapshots
	Snapshots []Snapshot
}

// NewRunTrace creates a RunTrace ready for recording, tagged with a fresh ID.
func NewRunTrace(level TraceLevel) *RunTrace {
	return &RunTrace{
		ID:        uuid.NewString(),
		Level:     level,
		Snapshots: make([]Snapshot, 0),
	}
}

// Enabled reports whether snapshots will be kept.
func (rt *RunTrace) Enabled() bool {
	return rt != nil && rt.Level == TraceLevelSnapshots
}

// RecordSnapshot appends a snapshot when the trace is enabled.
func (rt *RunTrace) RecordSnapshot(s Snapshot) {
	if !rt.Enabled() {
		return
	}
	rt.Snapshots = append(rt.Snapshots, s)
}

// RecordBudget keeps the run's draw budget and snapshot increment when the
// trace is enabled.
func (rt *RunTrace) RecordBudget(budget, increment int) {
	if !rt.Enabled() {
		return
	}
	rt.Budget = budget
	rt.Increment = increment
}

// Reset drops recorded snapshots and assigns a new ID, keeping the level.
func (rt *RunTrace) Reset() {
	if rt == nil {
		return
	}
	rt.ID = uuid.NewString()
	rt.Budget = 0
	rt.Increment = 0
	rt.Snapshots = rt.Snapshots[:0]
}
