package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/cloudlet-sim/sim"
	"github.com/inference-sim/cloudlet-sim/sim/trace"
)

var validOutputFormats = map[string]bool{"text": true, "json": true, "yaml": true}

// writeResult renders a result in the requested format. json uses the same
// field names as the HTTP endpoint.
func writeResult(w io.Writer, format string, cfg sim.SimulationConfig, r *sim.SimulationResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		sim.Summarize(cfg, r).Print(w)
		fmt.Fprintln(w, "=== Host Layout ===")
		for _, h := range r.HostLayout {
			fmt.Fprintf(w, "Host %-4d: %v\n", h.ID, h.VMs)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeTrace prints the placement decisions and their summary.
func writeTrace(w io.Writer, st *trace.SimulationTrace) {
	if st == nil {
		return
	}
	fmt.Fprintln(w, "=== Placement Trace ===")
	for _, a := range st.Allocations {
		fmt.Fprintf(w, "Host %-4d: drawn=%d placed=%d remaining=%d\n", a.HostID, a.BatchDrawn, a.Placed, a.Remaining)
	}
	s := trace.Summarize(st)
	fmt.Fprintf(w, "Hosts used: %d, placed: %d, unplaced: %d\n", s.HostsUsed, s.TotalPlaced, s.Unplaced)
}
