package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cloudlet-sim/sim/internal/testutil"
)

func timingConfig(cloudlets, length, mips, pesPerVM, vms int) SimulationConfig {
	cfg := DefaultSimulationConfig()
	cfg.CloudletCount = cloudlets
	cfg.CloudletLength = length
	cfg.MipsPerPe = mips
	cfg.PesPerVM = pesPerVM
	cfg.VMCount = vms
	return cfg
}

func TestEstimateTiming_BaseTimePerCloudlet(t *testing.T) {
	tests := []struct {
		name string
		cfg  SimulationConfig
		want float64
	}{
		{"300 over 100x1", timingConfig(3, 300, 100, 1, 5), 3.0},
		{"10000 over 1000x2", timingConfig(1, 10000, 1000, 2, 1), 5.0},
		{"non-integral", timingConfig(1, 1, 3, 1, 1), 1.0 / 3.0},
		{"zero length", timingConfig(4, 0, 100, 1, 2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTiming(tt.cfg, testutil.FixedRand(1))
			testutil.AssertFloat64Equal(t, "base", tt.want, got.BaseTimePerCloudlet, 1e-12)
		})
	}
}

func TestEstimateTiming_TotalTimeFollowsJitterDraw(t *testing.T) {
	// GIVEN base time 3.0, 6 cloudlets over 2 VMs (nominal makespan 9.0)
	cfg := timingConfig(6, 300, 100, 1, 2)
	twin := testutil.FixedRand(99)

	got := EstimateTiming(cfg, testutil.FixedRand(99))

	// THEN the makespan is nominal x the first draw mapped onto [1.1, 1.3)
	want := 9.0 * (1.1 + twin.Float64()*0.2)
	testutil.AssertFloat64Equal(t, "totalTime", want, got.TotalTime, 1e-12)
}

func TestEstimateTiming_Bounds_AcrossSeeds(t *testing.T) {
	cfg := timingConfig(50, 12000, 250, 2, 7)
	base := 12000.0 / 500.0
	nominal := base * 50 / 7

	for seed := int64(0); seed < 50; seed++ {
		est := EstimateTiming(cfg, testutil.FixedRand(seed))

		testutil.AssertInHalfOpenRange(t, "totalTime", nominal*1.1, nominal*1.3, est.TotalTime)
		require.Len(t, est.Cloudlets, 50)
		for i, c := range est.Cloudlets {
			assert.Equal(t, i, c.ID)
			testutil.AssertInHalfOpenRange(t, "startTime", 0, est.TotalTime*0.5, c.StartTime)
			testutil.AssertInHalfOpenRange(t, "execTime", base*0.9-1e-9, base*1.1+1e-9, c.FinishTime-c.StartTime)
			assert.GreaterOrEqual(t, c.FinishTime, c.StartTime)
		}
	}
}

func TestEstimateTiming_TotalTimePositive(t *testing.T) {
	est := EstimateTiming(timingConfig(1, 1, 1, 1, 1000), testutil.FixedRand(4))
	assert.Greater(t, est.TotalTime, 0.0)
}

func TestEstimateTiming_ZeroCloudlets(t *testing.T) {
	est := EstimateTiming(timingConfig(0, 500, 100, 1, 3), testutil.FixedRand(2))
	assert.Empty(t, est.Cloudlets)
	assert.Equal(t, 0.0, est.TotalTime)
	assert.Equal(t, 5.0, est.BaseTimePerCloudlet)
}

func TestEstimateTiming_ZeroLength_AllWindowsCollapse(t *testing.T) {
	est := EstimateTiming(timingConfig(3, 0, 100, 1, 1), testutil.FixedRand(8))
	require.Len(t, est.Cloudlets, 3)
	for _, c := range est.Cloudlets {
		assert.Equal(t, 0.0, c.StartTime)
		assert.Equal(t, 0.0, c.FinishTime)
	}
}

func TestEstimateTiming_Deterministic(t *testing.T) {
	cfg := timingConfig(10, 4000, 200, 1, 3)
	a := EstimateTiming(cfg, testutil.FixedRand(21))
	b := EstimateTiming(cfg, testutil.FixedRand(21))
	assert.Equal(t, a, b)
}
