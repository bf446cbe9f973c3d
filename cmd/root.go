package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sim "github.com/inference-sim/cloudlet-sim/sim"
)

var (
	seed         int64  // Seed for the estimation streams
	logLevel     string // Log verbosity level
	configPath   string // Optional YAML configuration file
	outputFormat string // text, json or yaml
	traceOutput  bool   // Print per-host placement decisions
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cloudlet-sim",
	Short: "Estimate VM placement and cloudlet execution for a data-center configuration",
}

// configFlag binds one SimulationConfig field to a CLI flag.
type configFlag struct {
	name  string
	usage string
	field func(*sim.SimulationConfig) *int
}

var configFlags = []configFlag{
	{"host-count", "Number of physical hosts", func(c *sim.SimulationConfig) *int { return &c.HostCount }},
	{"pes-per-host", "Processing elements per host", func(c *sim.SimulationConfig) *int { return &c.PesPerHost }},
	{"ram-per-host", "RAM per host (MB)", func(c *sim.SimulationConfig) *int { return &c.RamPerHost }},
	{"mips-per-pe", "MIPS per processing element", func(c *sim.SimulationConfig) *int { return &c.MipsPerPe }},
	{"vm-count", "Number of VMs to place", func(c *sim.SimulationConfig) *int { return &c.VMCount }},
	{"pes-per-vm", "Processing elements per VM", func(c *sim.SimulationConfig) *int { return &c.PesPerVM }},
	{"ram-per-vm", "RAM per VM (MB)", func(c *sim.SimulationConfig) *int { return &c.RamPerVM }},
	{"cloudlet-count", "Number of cloudlets in the batch", func(c *sim.SimulationConfig) *int { return &c.CloudletCount }},
	{"cloudlet-length", "Work units per cloudlet", func(c *sim.SimulationConfig) *int { return &c.CloudletLength }},
}

// registerConfigFlags adds one flag per configuration field, defaulted
// from sim.DefaultSimulationConfig.
func registerConfigFlags(fs *pflag.FlagSet) {
	defaults := sim.DefaultSimulationConfig()
	for _, f := range configFlags {
		fs.Int(f.name, *f.field(&defaults), f.usage)
	}
}

// resolveRunConfig builds the configuration and seed for a run: defaults,
// then the YAML file (if path is set), then any flag set explicitly.
// flagSeed wins over the file's seed only when --seed was given.
func resolveRunConfig(fs *pflag.FlagSet, path string, flagSeed int64) (sim.SimulationConfig, int64, error) {
	cfg := sim.DefaultSimulationConfig()
	runSeed := flagSeed
	if path != "" {
		cf, err := sim.LoadConfigFile(path)
		if err != nil {
			return cfg, 0, err
		}
		cfg = cf.SimulationConfig
		if cf.Seed != nil && !fs.Changed("seed") {
			runSeed = *cf.Seed
		}
	}
	for _, f := range configFlags {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetInt(f.name)
		if err != nil {
			return cfg, 0, err
		}
		*f.field(&cfg) = v
	}
	return cfg, runSeed, nil
}

// setLogLevel parses and applies a logrus level, exiting on typos.
func setLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", level)
	}
	logrus.SetLevel(parsed)
}

// runCmd executes one estimation using parameters from flags and/or a config file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one estimation and print the result",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(logLevel)

		if !validOutputFormats[outputFormat] {
			logrus.Fatalf("Unknown output format %q (want text, json or yaml)", outputFormat)
		}

		cfg, runSeed, err := resolveRunConfig(cmd.Flags(), configPath, seed)
		if err != nil {
			logrus.Fatalf("Unable to load simulation config: %v", err)
		}

		logrus.Infof("Starting estimation: %d hosts, %d VMs, %d cloudlets, seed=%d",
			cfg.HostCount, cfg.VMCount, cfg.CloudletCount, runSeed)

		var opts []sim.EngineOption
		if traceOutput {
			opts = append(opts, sim.WithTrace())
		}
		result, err := sim.NewEngine(opts...).Run(cfg, sim.NewSimulationKey(runSeed))
		if err != nil {
			logrus.Fatalf("Estimation failed: %v", err)
		}

		if err := writeResult(os.Stdout, outputFormat, cfg, result); err != nil {
			logrus.Fatalf("Unable to write result: %v", err)
		}
		if traceOutput {
			writeTrace(os.Stdout, result.Trace)
		}

		logrus.Info("Estimation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the allocation, timing and metrics streams")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML simulation config (flags override its values)")
	runCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format (text, json, yaml)")
	runCmd.Flags().BoolVar(&traceOutput, "trace", false, "Print per-host placement decisions")

	registerConfigFlags(runCmd.Flags())

	rootCmd.AddCommand(runCmd)
}
