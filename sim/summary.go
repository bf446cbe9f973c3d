package sim

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ResultSummary condenses a SimulationResult for human-readable reporting.
type ResultSummary struct {
	Hosts          int
	HostsUsed      int // hosts with at least one VM
	VMsAllocated   int
	VMsUnallocated int // VMs the placement heuristic left off every host

	TotalTime      float64
	SuccessRate    float64
	RAMUtilization float64

	Cloudlets        int
	MeanExecTime     float64
	StdDevExecTime   float64 // 0 with fewer than two cloudlets
	MaxExecTime      float64
	MeanStartTime    float64
	LatestFinishTime float64
}

// Summarize derives a ResultSummary. r must come from a run of cfg.
func Summarize(cfg SimulationConfig, r *SimulationResult) *ResultSummary {
	s := &ResultSummary{
		Hosts:          len(r.HostLayout),
		VMsUnallocated: UnallocatedVMs(r.HostLayout, cfg.VMCount),
		TotalTime:      r.TotalTime,
		SuccessRate:    r.SuccessRate,
		RAMUtilization: r.RAMUtilization,
		Cloudlets:      len(r.CloudletResults),
	}
	for _, h := range r.HostLayout {
		if len(h.VMs) > 0 {
			s.HostsUsed++
		}
		s.VMsAllocated += len(h.VMs)
	}

	if s.Cloudlets == 0 {
		return s
	}
	exec := make([]float64, s.Cloudlets)
	starts := make([]float64, s.Cloudlets)
	finishes := make([]float64, s.Cloudlets)
	for i, c := range r.CloudletResults {
		exec[i] = c.FinishTime - c.StartTime
		starts[i] = c.StartTime
		finishes[i] = c.FinishTime
	}
	s.MeanExecTime = stat.Mean(exec, nil)
	if s.Cloudlets > 1 {
		s.StdDevExecTime = stat.StdDev(exec, nil)
	}
	s.MaxExecTime = floats.Max(exec)
	s.MeanStartTime = stat.Mean(starts, nil)
	s.LatestFinishTime = floats.Max(finishes)
	return s
}

// Print writes the summary as a fixed-width report.
func (s *ResultSummary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Result ===")
	fmt.Fprintf(w, "Hosts                : %d (%d used)\n", s.Hosts, s.HostsUsed)
	fmt.Fprintf(w, "VMs Allocated        : %d\n", s.VMsAllocated)
	fmt.Fprintf(w, "VMs Unallocated      : %d\n", s.VMsUnallocated)
	fmt.Fprintf(w, "Total Time           : %.4f\n", s.TotalTime)
	fmt.Fprintf(w, "Success Rate         : %.2f%%\n", s.SuccessRate)
	fmt.Fprintf(w, "RAM Utilization      : %.2f%%\n", s.RAMUtilization)
	fmt.Fprintf(w, "Cloudlets            : %d\n", s.Cloudlets)
	if s.Cloudlets > 0 {
		fmt.Fprintf(w, "Mean Exec Time       : %.4f (stddev %.4f, max %.4f)\n", s.MeanExecTime, s.StdDevExecTime, s.MaxExecTime)
		fmt.Fprintf(w, "Mean Start Time      : %.4f\n", s.MeanStartTime)
		fmt.Fprintf(w, "Latest Finish Time   : %.4f\n", s.LatestFinishTime)
	}
}
