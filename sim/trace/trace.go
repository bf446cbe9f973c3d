package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every per-host placement decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects placement decision records during one estimation.
type SimulationTrace struct {
	Level       TraceLevel
	Allocations []AllocationRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:       level,
		Allocations: make([]AllocationRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Level == TraceLevelDecisions
}

// RecordAllocation appends a placement decision record.
// No-op unless the trace is enabled.
func (st *SimulationTrace) RecordAllocation(record AllocationRecord) {
	if !st.Enabled() {
		return
	}
	st.Allocations = append(st.Allocations, record)
}
