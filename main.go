// main wires the tonelab CLI together.
package main

import (
	"github.com/embeau/tonelab/cmd"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/embeau/tonelab/internal/iostore"
)

func main() {
	// The manager pointer is stable; sharedSetup fills it during PreRunE.
	cmd.SetStoreManager(iostore.Manager)

	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	iostore.CloseStores()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
