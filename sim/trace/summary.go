package trace

// TraceSummary aggregates statistics from a RunTrace.
type TraceSummary struct {
	TotalSnapshots int
	UniquePools    int
	PoolSnapshots  map[string]int // pool → number of snapshots
	PeakMaxCount   map[string]int // pool → highest MaxCount seen
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *TraceSummary {
	summary := &TraceSummary{
		PoolSnapshots: make(map[string]int),
		PeakMaxCount:  make(map[string]int),
	}
	if rt == nil {
		return summary
	}

	summary.TotalSnapshots = len(rt.Snapshots)
	for _, s := range rt.Snapshots {
		summary.PoolSnapshots[s.Pool]++
		if s.MaxCount > summary.PeakMaxCount[s.Pool] {
			summary.PeakMaxCount[s.Pool] = s.MaxCount
		}
	}
	summary.UniquePools = len(summary.PoolSnapshots)

	return summary
}
