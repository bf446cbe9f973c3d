package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions    int
	HostsUsed         int
	TotalPlaced       int
	Unplaced          int         // Remaining after the last host
	BatchDistribution map[int]int // batch size drawn → number of hosts
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		BatchDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Allocations)
	for _, a := range st.Allocations {
		if a.Placed > 0 {
			summary.HostsUsed++
		}
		if a.BatchDrawn > 0 {
			summary.BatchDistribution[a.BatchDrawn]++
		}
		summary.TotalPlaced += a.Placed
	}
	if n := len(st.Allocations); n > 0 {
		summary.Unplaced = st.Allocations[n-1].Remaining
	}

	return summary
}
