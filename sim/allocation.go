package sim

import (
	"math/rand"

	"github.com/inference-sim/cloudlet-sim/sim/trace"
)

const (
	minBatchPerHost = 2 // smallest batch a host receives while VMs remain
	batchSpread     = 2 // batch size is minBatchPerHost + Intn(batchSpread)
)

// PlanAllocation distributes VM ids 0..vmCount-1 across hostCount hosts.
//
// Hosts are visited in index order; each host takes the next
// min(remaining, 2 or 3) ids, the batch size drawn from rng. There is no
// rebalancing pass: when the hosts run out before the VMs do, the trailing
// ids are absent from every host's list. Hosts visited after the VMs are
// exhausted get an empty list and consume no randomness.
//
// st may be nil.
func PlanAllocation(hostCount, vmCount int, rng *rand.Rand, st *trace.SimulationTrace) []HostAssignment {
	layout := make([]HostAssignment, 0, max(hostCount, 0))
	remaining := vmCount
	for h := 0; h < hostCount; h++ {
		if remaining <= 0 {
			layout = append(layout, HostAssignment{ID: h, VMs: []int{}})
			st.RecordAllocation(trace.AllocationRecord{HostID: h})
			continue
		}

		drawn := minBatchPerHost + rng.Intn(batchSpread)
		batch := min(remaining, drawn)
		next := vmCount - remaining

		vms := make([]int, batch)
		for j := range vms {
			vms[j] = next + j
		}
		remaining -= batch

		layout = append(layout, HostAssignment{ID: h, VMs: vms})
		st.RecordAllocation(trace.AllocationRecord{
			HostID:     h,
			BatchDrawn: drawn,
			Placed:     batch,
			Remaining:  remaining,
		})
	}
	return layout
}

// UnallocatedVMs returns how many of vmCount ids appear on no host.
func UnallocatedVMs(layout []HostAssignment, vmCount int) int {
	placed := 0
	for _, h := range layout {
		placed += len(h.VMs)
	}
	return max(vmCount-placed, 0)
}
