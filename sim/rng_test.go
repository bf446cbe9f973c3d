package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemTiming).Float64()
		v2 := rng2.ForSubsystem(SubsystemTiming).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// BDD: Drawing from the allocation stream doesn't shift the timing stream
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemAllocation).Intn(2)
	}
	aTimingFirst := rngA.ForSubsystem(SubsystemTiming).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemTiming).Float64()

	if aTimingFirst != expectedFirst {
		t.Errorf("timing first value = %v, want %v (isolation broken)", aTimingFirst, expectedFirst)
	}
}

func TestPartitionedRNG_SeedDerivation(t *testing.T) {
	// BDD: every subsystem seed is masterSeed XOR fnv1a64(name)
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))
	for _, name := range []string{SubsystemAllocation, SubsystemTiming, SubsystemMetrics} {
		direct := newRandFromSeed(seed ^ fnv1a64(name))
		got := rng.ForSubsystem(name)
		for i := 0; i < 5; i++ {
			if g, w := got.Float64(), direct.Float64(); g != w {
				t.Errorf("%s value %d: got %v, want %v", name, i, g, w)
			}
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	// BDD: Same name returns same *rand.Rand instance
	rng := NewPartitionedRNG(NewSimulationKey(42))

	rng1 := rng.ForSubsystem(SubsystemMetrics)
	rng2 := rng.ForSubsystem(SubsystemMetrics)

	if rng1 != rng2 {
		t.Error("ForSubsystem returned different instances for same name")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	if rng.Key() != SimulationKey(seed) {
		t.Errorf("Key() = %v, want %v", rng.Key(), seed)
	}
}

func TestPartitionedRNG_NegativeSeed(t *testing.T) {
	// BDD: MinInt64 seed works correctly
	rng := NewPartitionedRNG(NewSimulationKey(math.MinInt64))

	val := rng.ForSubsystem(SubsystemTiming).Float64()
	if val < 0 || val >= 1 {
		t.Errorf("Float64() returned %v, want [0, 1)", val)
	}
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	// BDD: Subsystems map is empty until ForSubsystem is called
	rng := NewPartitionedRNG(NewSimulationKey(42))

	if len(rng.subsystems) != 0 {
		t.Errorf("New PartitionedRNG has %d subsystems, want 0", len(rng.subsystems))
	}

	rng.ForSubsystem(SubsystemAllocation)

	if len(rng.subsystems) != 1 {
		t.Errorf("After one ForSubsystem call, have %d subsystems, want 1", len(rng.subsystems))
	}
}

// === fnv1a64 Tests ===

func TestFnv1a64_Collision(t *testing.T) {
	names := []string{SubsystemAllocation, SubsystemTiming, SubsystemMetrics, ""}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("Hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

// === Benchmark ===

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemTiming)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemTiming)
	}
}

// newRandFromSeed creates a *rand.Rand with the given seed
func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
