package cmd

import (
	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
)

// historyCmd lists a user's recent emotion entries.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent emotion entries for a user, latest first.",
	Long: `Show the most recent emotion entries for a user.

Entries are listed latest first with per-axis scores, the dominant axis and
an intensity label for the dominant score. Use --limit to control how many
entries are shown.

Examples:
  # Last entries for the default user
  tonelab history

  # Last 50 entries for a specific user as JSON
  tonelab history --user juno --limit 50 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEmotionHistory(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list emotion history", err)
		}
	},
}
