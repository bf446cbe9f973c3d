package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceLevelDecisions)

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalDecisions != 0 || summary.HostsUsed != 0 || summary.TotalPlaced != 0 {
		t.Errorf("expected zero counts, got %+v", summary)
	}
	if len(summary.BatchDistribution) != 0 {
		t.Error("expected empty batch distribution")
	}
}

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalDecisions != 0 || summary.BatchDistribution == nil {
		t.Errorf("unexpected summary for nil trace: %+v", summary)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN 3 hosts placing 7 of 8 VMs, the last host capped by what remained
	st := NewSimulationTrace(TraceLevelDecisions)
	st.RecordAllocation(AllocationRecord{HostID: 0, BatchDrawn: 3, Placed: 3, Remaining: 5})
	st.RecordAllocation(AllocationRecord{HostID: 1, BatchDrawn: 2, Placed: 2, Remaining: 3})
	st.RecordAllocation(AllocationRecord{HostID: 2, BatchDrawn: 2, Placed: 2, Remaining: 1})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalDecisions != 3 {
		t.Errorf("expected 3 decisions, got %d", summary.TotalDecisions)
	}
	if summary.HostsUsed != 3 {
		t.Errorf("expected 3 hosts used, got %d", summary.HostsUsed)
	}
	if summary.TotalPlaced != 7 {
		t.Errorf("expected 7 placed, got %d", summary.TotalPlaced)
	}
	if summary.Unplaced != 1 {
		t.Errorf("expected 1 unplaced, got %d", summary.Unplaced)
	}
	if summary.BatchDistribution[2] != 2 || summary.BatchDistribution[3] != 1 {
		t.Errorf("unexpected batch distribution %v", summary.BatchDistribution)
	}
}

func TestSummarize_EmptyHosts_NotCountedAsUsed(t *testing.T) {
	st := NewSimulationTrace(TraceLevelDecisions)
	st.RecordAllocation(AllocationRecord{HostID: 0, BatchDrawn: 3, Placed: 2, Remaining: 0})
	st.RecordAllocation(AllocationRecord{HostID: 1})

	summary := Summarize(st)
	if summary.HostsUsed != 1 {
		t.Errorf("expected 1 host used, got %d", summary.HostsUsed)
	}
	if summary.BatchDistribution[0] != 0 {
		t.Error("empty host should not appear in batch distribution")
	}
}
