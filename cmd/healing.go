package cmd

import (
	"github.com/embeau/tonelab/core"
	"github.com/embeau/tonelab/internal/contract"
	"github.com/spf13/cobra"
)

// healingCmd picks the healing color of the day.
var healingCmd = &cobra.Command{
	Use:   "healing",
	Short: "Show today's healing color for a user.",
	Long: `Pick a deterministic healing color for the current UTC date.

The color is drawn from the user's stored palette (neutral default when no
profile exists) using a date hash, so the same user sees the same color all
day and a different one tomorrow. Each pick carries calm-effect and
personal-fit scores plus a daily affirmation.

Results are memoized per user and date; repeat views within the day are
served from the memo cache.

Examples:
  # Healing color for the default user
  tonelab healing

  # For a specific user, JSON output
  tonelab healing --user juno --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDailyHealing(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot compute healing color", err)
		}
	},
}
