package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible estimation run.
// Two runs with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemAllocation drives the per-host batch size draws.
	SubsystemAllocation = "allocation"

	// SubsystemTiming drives makespan jitter, start delays and execution jitter.
	SubsystemTiming = "timing"

	// SubsystemMetrics drives the success-rate and RAM-utilization figures.
	SubsystemMetrics = "metrics"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per stage.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
// Each stage draws from its own stream, so the order in which stages run
// (or whether they run concurrently) never changes the result.
//
// Thread-safety: NOT thread-safe. ForSubsystem must be called from a single
// goroutine; the returned *rand.Rand may then be handed to exactly one
// other goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
