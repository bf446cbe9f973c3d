package sim

import "math/rand"

// Timing model jitter bounds, all half-open [lo, lo+span).
const (
	makespanJitterLo   = 1.1
	makespanJitterSpan = 0.2
	execJitterLo       = 0.9
	execJitterSpan     = 0.2
	maxStartFraction   = 0.5 // start delay is bounded by this fraction of the makespan
)

// TimingEstimate holds the output of the timing model.
type TimingEstimate struct {
	BaseTimePerCloudlet float64          // CloudletLength / (MipsPerPe * PesPerVM)
	TotalTime           float64
	Cloudlets           []CloudletResult
}

// EstimateTiming computes the batch makespan and a start/finish window per
// cloudlet. cfg must have passed Validate; the divisors are not rechecked.
//
// The makespan models perfect parallelism over VMCount VMs inflated by a
// jitter in [1.1, 1.3). Each cloudlet starts after a random delay in
// [0, TotalTime/2) and runs for its base time scaled by a jitter in
// [0.9, 1.1). Start delay and makespan are not correlated further, so a
// cloudlet's FinishTime can exceed TotalTime.
func EstimateTiming(cfg SimulationConfig, rng *rand.Rand) TimingEstimate {
	base := float64(cfg.CloudletLength) / (float64(cfg.MipsPerPe) * float64(cfg.PesPerVM))
	total := base * float64(cfg.CloudletCount) / float64(cfg.VMCount)
	total *= makespanJitterLo + rng.Float64()*makespanJitterSpan

	cloudlets := make([]CloudletResult, max(cfg.CloudletCount, 0))
	for i := range cloudlets {
		start := rng.Float64() * total * maxStartFraction
		exec := base * (execJitterLo + rng.Float64()*execJitterSpan)
		cloudlets[i] = CloudletResult{ID: i, StartTime: start, FinishTime: start + exec}
	}

	return TimingEstimate{BaseTimePerCloudlet: base, TotalTime: total, Cloudlets: cloudlets}
}
