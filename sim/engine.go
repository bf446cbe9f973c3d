package sim

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/inference-sim/cloudlet-sim/sim/trace"
)

// Engine runs the three estimation stages for a configuration.
// An Engine holds no per-run state and is safe for concurrent use.
type Engine struct {
	traceLevel trace.TraceLevel
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTrace makes every run record its placement decisions in
// SimulationResult.Trace.
func WithTrace() EngineOption {
	return func(e *Engine) {
		e.traceLevel = trace.TraceLevelDecisions
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{traceLevel: trace.TraceLevelNone}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run validates cfg and, if it is valid, estimates placement, timing and
// metrics. Identical cfg and key always produce identical results.
//
// A *ConfigurationError is returned before any stage runs; there is no
// partial result.
func (e *Engine) Run(cfg SimulationConfig, key SimulationKey) (*SimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{
		"seed":      int64(key),
		"hosts":     cfg.HostCount,
		"vms":       cfg.VMCount,
		"cloudlets": cfg.CloudletCount,
	})
	started := time.Now()

	// Streams are fetched here because PartitionedRNG is single-goroutine;
	// each stage then owns its stream exclusively.
	rng := NewPartitionedRNG(key)
	allocRNG := rng.ForSubsystem(SubsystemAllocation)
	timingRNG := rng.ForSubsystem(SubsystemTiming)
	metricsRNG := rng.ForSubsystem(SubsystemMetrics)

	var st *trace.SimulationTrace
	if e.traceLevel == trace.TraceLevelDecisions {
		st = trace.NewSimulationTrace(e.traceLevel)
	}

	var (
		layout  []HostAssignment
		timing  TimingEstimate
		metrics Metrics
		g       errgroup.Group
	)
	g.Go(func() error {
		layout = PlanAllocation(cfg.HostCount, cfg.VMCount, allocRNG, st)
		unallocated := UnallocatedVMs(layout, cfg.VMCount)
		log.WithField("stage", SubsystemAllocation).
			Debugf("placed %d VMs, %d unallocated", cfg.VMCount-unallocated, unallocated)
		return nil
	})
	g.Go(func() error {
		timing = EstimateTiming(cfg, timingRNG)
		log.WithField("stage", SubsystemTiming).
			Debugf("base time per cloudlet %.4f, total time %.4f", timing.BaseTimePerCloudlet, timing.TotalTime)
		return nil
	})
	g.Go(func() error {
		metrics = SynthesizeMetrics(metricsRNG)
		log.WithField("stage", SubsystemMetrics).
			Debugf("success rate %.2f%%, RAM utilization %.2f%%", metrics.SuccessRate, metrics.RAMUtilization)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithField("elapsed", time.Since(started)).Debug("estimation complete")

	return &SimulationResult{
		TotalTime:       timing.TotalTime,
		SuccessRate:     metrics.SuccessRate,
		RAMUtilization:  metrics.RAMUtilization,
		HostLayout:      layout,
		CloudletResults: timing.Cloudlets,
		Trace:           st,
	}, nil
}
