// Entry point for cloudlet-sim. Command handling lives in cmd/.

package main

import (
	"github.com/inference-sim/cloudlet-sim/cmd"
)

func main() {
	cmd.Execute()
}
