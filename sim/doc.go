// Package sim provides the estimation engine for cloudlet-sim.
//
// Given a hypothetical data-center configuration, the engine estimates how
// VMs would be placed onto hosts and how a batch of cloudlets would run on
// those VMs. Nothing is actually scheduled; there is no event queue and no
// capacity check.
//
// # Reading Guide
//
//   - config.go: SimulationConfig, YAML loading and up-front validation
//   - engine.go: Engine.Run, which validates once and fans out the stages
//   - allocation.go, timing.go, metrics.go: the three stages
//
// # Stages
//
// The Allocation Planner, Timing Estimator and Metrics Synthesizer share no
// state. Each draws from its own PartitionedRNG stream, so results depend
// only on the configuration and the SimulationKey, never on stage ordering.
//
// Decision tracing lives in sim/trace/ and has no dependency on this package.
package sim
