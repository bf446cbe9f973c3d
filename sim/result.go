package sim

import "github.com/inference-sim/cloudlet-sim/sim/trace"

// HostAssignment lists the VMs placed on one host.
type HostAssignment struct {
	ID  int   `json:"id" yaml:"id"`   // 0-based host index
	VMs []int `json:"vms" yaml:"vms"` // ascending VM ids; empty, never nil
}

// CloudletResult is the estimated execution window of one cloudlet.
// FinishTime >= StartTime always holds; FinishTime may exceed the
// makespan, see EstimateTiming.
type CloudletResult struct {
	ID         int     `json:"id" yaml:"id"`
	StartTime  float64 `json:"startTime" yaml:"start_time"`
	FinishTime float64 `json:"finishTime" yaml:"finish_time"`
}

// SimulationResult is the output of one estimation run.
type SimulationResult struct {
	TotalTime       float64          `json:"totalTime" yaml:"total_time"`
	SuccessRate     float64          `json:"successRate" yaml:"success_rate"`         // percent, [95, 100)
	RAMUtilization  float64          `json:"ramUtilization" yaml:"ram_utilization"`   // percent, [60, 85)
	HostLayout      []HostAssignment `json:"hostLayout" yaml:"host_layout"`           // exactly HostCount entries
	CloudletResults []CloudletResult `json:"cloudletResults" yaml:"cloudlet_results"` // exactly CloudletCount entries

	Trace *trace.SimulationTrace `json:"-" yaml:"-"` // nil unless the engine was built WithTrace
}
