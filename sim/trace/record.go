// Package trace provides decision-trace recording for VM placement analysis.
// It has no dependencies on sim/ and stores pure data types.
package trace

// AllocationRecord captures the placement decision for a single host.
type AllocationRecord struct {
	HostID     int
	BatchDrawn int // 2 or 3; 0 when nothing remained to place
	Placed     int // min(BatchDrawn, remaining before this host)
	Remaining  int // VMs still unplaced after this host
}
