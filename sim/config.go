package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimulationConfig describes a hypothetical data-center configuration and
// the cloudlet batch to run on it. Immutable for the duration of one run.
//
// PesPerHost and RamPerHost are accepted but not used by the current
// estimation model; host capacity never bounds placement.
type SimulationConfig struct {
	HostCount  int `json:"hostCount" yaml:"host_count"`    // physical hosts
	PesPerHost int `json:"pesPerHost" yaml:"pes_per_host"` // processing elements per host (unused)
	RamPerHost int `json:"ramPerHost" yaml:"ram_per_host"` // MB per host (unused)
	MipsPerPe  int `json:"mipsPerPe" yaml:"mips_per_pe"`   // throughput per PE (must be > 0)

	VMCount  int `json:"vmCount" yaml:"vm_count"`    // VMs to place (must be > 0)
	PesPerVM int `json:"pesPerVm" yaml:"pes_per_vm"` // PEs allocated to each VM (must be > 0)
	RamPerVM int `json:"ramPerVm" yaml:"ram_per_vm"` // MB per VM (unused)

	CloudletCount  int `json:"cloudletCount" yaml:"cloudlet_count"`   // jobs in the batch
	CloudletLength int `json:"cloudletLength" yaml:"cloudlet_length"` // work units per job
}

// DefaultSimulationConfig returns the configuration used when no file or
// flag overrides a field.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		HostCount:      4,
		PesPerHost:     4,
		RamPerHost:     16384,
		MipsPerPe:      1000,
		VMCount:        10,
		PesPerVM:       1,
		RamPerVM:       2048,
		CloudletCount:  20,
		CloudletLength: 10000,
	}
}

// ConfigFile is the on-disk YAML form of a run: the configuration plus an
// optional seed. Nil Seed means "not set in YAML".
type ConfigFile struct {
	SimulationConfig `yaml:",inline"`

	Seed *int64 `yaml:"seed"`
}

// LoadConfigFile reads a YAML configuration file with strict field checking,
// starting from DefaultSimulationConfig so omitted keys keep their defaults.
func LoadConfigFile(path string) (*ConfigFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading simulation config: %w", err)
	}
	defer f.Close()

	cf := &ConfigFile{SimulationConfig: DefaultSimulationConfig()}
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cf); err != nil {
		return nil, fmt.Errorf("parsing simulation config: %w", err)
	}
	return cf, nil
}

// Validate checks every field and returns a *ConfigurationError listing all
// violations, or nil. Counts must be non-negative; VMCount, MipsPerPe and
// PesPerVM are divisors in the timing model and must be positive.
func (c SimulationConfig) Validate() error {
	v := &validator{}
	v.nonNegative("hostCount", c.HostCount)
	v.nonNegative("pesPerHost", c.PesPerHost)
	v.nonNegative("ramPerHost", c.RamPerHost)
	v.positive("mipsPerPe", c.MipsPerPe)
	v.positive("vmCount", c.VMCount)
	v.positive("pesPerVm", c.PesPerVM)
	v.nonNegative("ramPerVm", c.RamPerVM)
	v.nonNegative("cloudletCount", c.CloudletCount)
	v.nonNegative("cloudletLength", c.CloudletLength)
	return v.err()
}
